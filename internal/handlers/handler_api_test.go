package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bethehero/adopt_backend/internal/apperrors"
	"github.com/bethehero/adopt_backend/internal/core/domain"
	portsrepo "github.com/bethehero/adopt_backend/internal/core/ports/repositories"
	portssvc "github.com/bethehero/adopt_backend/internal/core/ports/services"
	"github.com/bethehero/adopt_backend/internal/dto"
	"github.com/bethehero/adopt_backend/internal/handlers"
	"github.com/bethehero/adopt_backend/pkg/config"
)

// --- Service facade mocks ---

type MockAuthSvc struct {
	mock.Mock
}

var _ portssvc.AuthSvcFacade = (*MockAuthSvc)(nil)

func (m *MockAuthSvc) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, string, error) {
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.String(1), args.Error(2)
}

func (m *MockAuthSvc) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.String(1), args.Error(2)
}

func (m *MockAuthSvc) ExchangeGoogleCode(ctx context.Context, req dto.GoogleExchangeRequest) (*domain.User, string, error) {
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.String(1), args.Error(2)
}

type MockUserSvc struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserSvc)(nil)

func (m *MockUserSvc) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserSvc) GetMe(ctx context.Context, userID string) (*domain.User, []domain.WorkspaceMembership, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	var memberships []domain.WorkspaceMembership
	if args.Get(1) != nil {
		memberships = args.Get(1).([]domain.WorkspaceMembership)
	}
	return user, memberships, args.Error(2)
}

func (m *MockUserSvc) ResolvePrincipal(ctx context.Context, userID string) (*domain.Principal, error) {
	args := m.Called(ctx, userID)
	var principal *domain.Principal
	if args.Get(0) != nil {
		principal = args.Get(0).(*domain.Principal)
	}
	return principal, args.Error(1)
}

type MockWorkspaceSvc struct {
	mock.Mock
}

var _ portssvc.WorkspaceSvcFacade = (*MockWorkspaceSvc)(nil)

func (m *MockWorkspaceSvc) GetWorkspaceByID(ctx context.Context, principal *domain.Principal, workspaceID string) (*domain.WorkspaceDetails, error) {
	args := m.Called(ctx, principal, workspaceID)
	var details *domain.WorkspaceDetails
	if args.Get(0) != nil {
		details = args.Get(0).(*domain.WorkspaceDetails)
	}
	return details, args.Error(1)
}

func (m *MockWorkspaceSvc) ListMyWorkspaces(ctx context.Context, principal *domain.Principal) ([]domain.WorkspaceMembership, error) {
	args := m.Called(ctx, principal)
	var memberships []domain.WorkspaceMembership
	if args.Get(0) != nil {
		memberships = args.Get(0).([]domain.WorkspaceMembership)
	}
	return memberships, args.Error(1)
}

func (m *MockWorkspaceSvc) CreateWorkspace(ctx context.Context, principal *domain.Principal, req dto.CreateWorkspaceRequest) (*domain.WorkspaceDetails, error) {
	args := m.Called(ctx, principal, req)
	var details *domain.WorkspaceDetails
	if args.Get(0) != nil {
		details = args.Get(0).(*domain.WorkspaceDetails)
	}
	return details, args.Error(1)
}

func (m *MockWorkspaceSvc) UpdateWorkspace(ctx context.Context, principal *domain.Principal, workspaceID string, req dto.UpdateWorkspaceRequest) (*domain.Workspace, error) {
	args := m.Called(ctx, principal, workspaceID, req)
	var workspace *domain.Workspace
	if args.Get(0) != nil {
		workspace = args.Get(0).(*domain.Workspace)
	}
	return workspace, args.Error(1)
}

func (m *MockWorkspaceSvc) UpdateWorkspaceLocation(ctx context.Context, principal *domain.Principal, workspaceID string, req dto.UpdateWorkspaceLocationRequest) (*domain.WorkspaceLocation, error) {
	args := m.Called(ctx, principal, workspaceID, req)
	var location *domain.WorkspaceLocation
	if args.Get(0) != nil {
		location = args.Get(0).(*domain.WorkspaceLocation)
	}
	return location, args.Error(1)
}

func (m *MockWorkspaceSvc) AddMember(ctx context.Context, principal *domain.Principal, workspaceID string, req dto.AddMemberRequest) (*domain.WorkspaceMember, error) {
	args := m.Called(ctx, principal, workspaceID, req)
	var member *domain.WorkspaceMember
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.WorkspaceMember)
	}
	return member, args.Error(1)
}

func (m *MockWorkspaceSvc) RemoveMember(ctx context.Context, principal *domain.Principal, workspaceID string, memberID string) error {
	args := m.Called(ctx, principal, workspaceID, memberID)
	return args.Error(0)
}

type MockPetSvc struct {
	mock.Mock
}

var _ portssvc.PetSvcFacade = (*MockPetSvc)(nil)

func (m *MockPetSvc) GetPetByID(ctx context.Context, principal *domain.Principal, petID string) (*domain.Pet, []domain.PetImage, error) {
	args := m.Called(ctx, principal, petID)
	var pet *domain.Pet
	if args.Get(0) != nil {
		pet = args.Get(0).(*domain.Pet)
	}
	var images []domain.PetImage
	if args.Get(1) != nil {
		images = args.Get(1).([]domain.PetImage)
	}
	return pet, images, args.Error(2)
}

func (m *MockPetSvc) ListPublicPets(ctx context.Context, filter portsrepo.PetListFilter) ([]domain.PublicPetListItem, int64, error) {
	args := m.Called(ctx, filter)
	var items []domain.PublicPetListItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.PublicPetListItem)
	}
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockPetSvc) CreatePet(ctx context.Context, principal *domain.Principal, req dto.CreatePetRequest) (*domain.Pet, error) {
	args := m.Called(ctx, principal, req)
	var pet *domain.Pet
	if args.Get(0) != nil {
		pet = args.Get(0).(*domain.Pet)
	}
	return pet, args.Error(1)
}

func (m *MockPetSvc) UpdatePet(ctx context.Context, principal *domain.Principal, petID string, req dto.UpdatePetRequest) (*domain.Pet, error) {
	args := m.Called(ctx, principal, petID, req)
	var pet *domain.Pet
	if args.Get(0) != nil {
		pet = args.Get(0).(*domain.Pet)
	}
	return pet, args.Error(1)
}

func (m *MockPetSvc) SubmitPetForReview(ctx context.Context, principal *domain.Principal, petID string) (*domain.Pet, error) {
	args := m.Called(ctx, principal, petID)
	var pet *domain.Pet
	if args.Get(0) != nil {
		pet = args.Get(0).(*domain.Pet)
	}
	return pet, args.Error(1)
}

func (m *MockPetSvc) ApprovePet(ctx context.Context, principal *domain.Principal, petID string) (*domain.Pet, error) {
	args := m.Called(ctx, principal, petID)
	var pet *domain.Pet
	if args.Get(0) != nil {
		pet = args.Get(0).(*domain.Pet)
	}
	return pet, args.Error(1)
}

func (m *MockPetSvc) RejectPet(ctx context.Context, principal *domain.Principal, petID string, req dto.RejectPetRequest) (*domain.Pet, error) {
	args := m.Called(ctx, principal, petID, req)
	var pet *domain.Pet
	if args.Get(0) != nil {
		pet = args.Get(0).(*domain.Pet)
	}
	return pet, args.Error(1)
}

func (m *MockPetSvc) CreateUploadURL(ctx context.Context, principal *domain.Principal, petID string, req dto.CreateUploadURLRequest) (*dto.UploadURLResponse, error) {
	args := m.Called(ctx, principal, petID, req)
	var resp *dto.UploadURLResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*dto.UploadURLResponse)
	}
	return resp, args.Error(1)
}

func (m *MockPetSvc) AddPetImage(ctx context.Context, principal *domain.Principal, petID string, req dto.AddPetImageRequest) (*domain.PetImage, error) {
	args := m.Called(ctx, principal, petID, req)
	var image *domain.PetImage
	if args.Get(0) != nil {
		image = args.Get(0).(*domain.PetImage)
	}
	return image, args.Error(1)
}

func (m *MockPetSvc) UpdatePetImage(ctx context.Context, principal *domain.Principal, petID, imageID string, req dto.UpdatePetImageRequest) (*domain.PetImage, error) {
	args := m.Called(ctx, principal, petID, imageID, req)
	var image *domain.PetImage
	if args.Get(0) != nil {
		image = args.Get(0).(*domain.PetImage)
	}
	return image, args.Error(1)
}

func (m *MockPetSvc) RemovePetImage(ctx context.Context, principal *domain.Principal, petID, imageID string) error {
	args := m.Called(ctx, principal, petID, imageID)
	return args.Error(0)
}

type MockAdoptionSvc struct {
	mock.Mock
}

var _ portssvc.AdoptionSvcFacade = (*MockAdoptionSvc)(nil)

func (m *MockAdoptionSvc) RegisterAdoption(ctx context.Context, principal *domain.Principal, req dto.RegisterAdoptionRequest) (*domain.Adoption, []domain.AdoptionFollowUp, error) {
	args := m.Called(ctx, principal, req)
	var adoption *domain.Adoption
	if args.Get(0) != nil {
		adoption = args.Get(0).(*domain.Adoption)
	}
	var followUps []domain.AdoptionFollowUp
	if args.Get(1) != nil {
		followUps = args.Get(1).([]domain.AdoptionFollowUp)
	}
	return adoption, followUps, args.Error(2)
}

func (m *MockAdoptionSvc) GetAdoptionByID(ctx context.Context, principal *domain.Principal, adoptionID string) (*domain.AdoptionDetails, error) {
	args := m.Called(ctx, principal, adoptionID)
	var details *domain.AdoptionDetails
	if args.Get(0) != nil {
		details = args.Get(0).(*domain.AdoptionDetails)
	}
	return details, args.Error(1)
}

type MockInterestSvc struct {
	mock.Mock
}

var _ portssvc.AdoptionInterestSvcFacade = (*MockInterestSvc)(nil)

func (m *MockInterestSvc) RegisterInterest(ctx context.Context, principal *domain.Principal, petID string, req dto.RegisterInterestRequest) (*domain.AdoptionInterest, error) {
	args := m.Called(ctx, principal, petID, req)
	var interest *domain.AdoptionInterest
	if args.Get(0) != nil {
		interest = args.Get(0).(*domain.AdoptionInterest)
	}
	return interest, args.Error(1)
}

func (m *MockInterestSvc) ListWorkspaceInterests(ctx context.Context, principal *domain.Principal, workspaceID string, params dto.ListInterestsParams) ([]domain.AdoptionInterest, int64, error) {
	args := m.Called(ctx, principal, workspaceID, params)
	var interests []domain.AdoptionInterest
	if args.Get(0) != nil {
		interests = args.Get(0).([]domain.AdoptionInterest)
	}
	return interests, args.Get(1).(int64), args.Error(2)
}

// --- Test Suite ---

type APIHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockAuth      *MockAuthSvc
	mockUser      *MockUserSvc
	mockWorkspace *MockWorkspaceSvc
	mockPet       *MockPetSvc
	mockAdoption  *MockAdoptionSvc
	mockInterest  *MockInterestSvc
	jwtSecret     string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *APIHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "adopt-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *APIHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterValidations())
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockAuth = new(MockAuthSvc)
	suite.mockUser = new(MockUserSvc)
	suite.mockWorkspace = new(MockWorkspaceSvc)
	suite.mockPet = new(MockPetSvc)
	suite.mockAdoption = new(MockAdoptionSvc)
	suite.mockInterest = new(MockInterestSvc)

	services := &portssvc.ServiceContainer{
		Auth:      suite.mockAuth,
		User:      suite.mockUser,
		Workspace: suite.mockWorkspace,
		Pet:       suite.mockPet,
		Adoption:  suite.mockAdoption,
		Interest:  suite.mockInterest,
	}

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true,
	}

	handlers.RegisterRoutes(suite.router, cfg, services, nil)
}

func (suite *APIHandlerTestSuite) doRequest(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APIHandlerTestSuite) TestHealthCheck() {
	w := suite.doRequest(http.MethodGet, "/health", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *APIHandlerTestSuite) TestLogin_Success() {
	loginReq := dto.LoginRequest{Email: "ana@example.com", Password: "s3cret-pass"}
	user := &domain.User{
		UserID:   "user-123",
		FullName: "Ana Souza",
		Email:    "ana@example.com",
		Role:     domain.RoleGuardian,
		IsActive: true,
	}

	suite.mockAuth.On("Login", mock.Anything, loginReq).
		Return(user, "signed-token", nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/auth/login", "", loginReq)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-token", resp.Token)
	suite.Equal("user-123", resp.User.UserID)
	suite.Equal(domain.RoleGuardian, resp.User.Role)
	suite.mockAuth.AssertExpectations(suite.T())
}

func (suite *APIHandlerTestSuite) TestLogin_InvalidCredentials() {
	loginReq := dto.LoginRequest{Email: "ana@example.com", Password: "wrong"}

	suite.mockAuth.On("Login", mock.Anything, loginReq).
		Return(nil, "", apperrors.ErrInvalidCredentials).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/auth/login", "", loginReq)

	suite.Equal(http.StatusUnauthorized, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(apperrors.CodeInvalidCredentials), resp["code"])
	suite.mockAuth.AssertExpectations(suite.T())
}

func (suite *APIHandlerTestSuite) TestLogin_MalformedBody() {
	w := suite.doRequest(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "not-an-email"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAuth.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything)
}

func (suite *APIHandlerTestSuite) TestListPublicPets_NoAuthRequired() {
	items := []domain.PublicPetListItem{
		{
			Pet: domain.Pet{
				PetID:       "pet-1",
				WorkspaceID: "ws-1",
				Name:        "Thor",
				Species:     domain.SpeciesDog,
				Sex:         domain.SexMale,
				Size:        domain.SizeSmall,
				AgeCategory: domain.AgeAdult,
				Status:      domain.PetApproved,
				IsActive:    true,
			},
			WorkspaceName: "Abrigo Esperanca",
		},
	}

	suite.mockPet.On("ListPublicPets", mock.Anything, mock.MatchedBy(func(f portsrepo.PetListFilter) bool {
		return f.Species == domain.SpeciesDog && f.Page == 1 && f.PerPage == 20
	})).Return(items, int64(1), nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/pets?species=DOG", "", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListPetsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.Total)
	suite.Require().Len(resp.Pets, 1)
	suite.Equal("pet-1", resp.Pets[0].PetID)
	suite.Equal("Abrigo Esperanca", resp.Pets[0].WorkspaceName)
	suite.mockPet.AssertExpectations(suite.T())
}

func (suite *APIHandlerTestSuite) TestListPublicPets_RejectsUnknownSpecies() {
	w := suite.doRequest(http.MethodGet, "/api/v1/pets?species=DRAGON", "", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPet.AssertNotCalled(suite.T(), "ListPublicPets", mock.Anything, mock.Anything)
}

func (suite *APIHandlerTestSuite) TestGetMe_Success() {
	userID := "user-123"
	user := &domain.User{
		UserID:   userID,
		FullName: "Ana Souza",
		Email:    "ana@example.com",
		Role:     domain.RoleGuardian,
		IsActive: true,
	}
	principal := &domain.Principal{UserID: userID, Role: domain.RoleGuardian}

	suite.mockUser.On("ResolvePrincipal", mock.AnythingOfType("*context.valueCtx"), userID).
		Return(principal, nil).Once()
	suite.mockUser.On("GetMe", mock.AnythingOfType("*context.valueCtx"), userID).
		Return(user, []domain.WorkspaceMembership{}, nil).Once()

	token := suite.generateTestToken(userID)
	w := suite.doRequest(http.MethodGet, "/api/v1/me", token, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.MeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(userID, resp.UserID)
	suite.Empty(resp.Memberships)
	suite.mockUser.AssertExpectations(suite.T())
}

func (suite *APIHandlerTestSuite) TestGetMe_MissingToken() {
	w := suite.doRequest(http.MethodGet, "/api/v1/me", "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockUser.AssertNotCalled(suite.T(), "GetMe", mock.Anything, mock.Anything)
}

func (suite *APIHandlerTestSuite) TestGetMe_BadToken() {
	w := suite.doRequest(http.MethodGet, "/api/v1/me", "not-a-jwt", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockUser.AssertNotCalled(suite.T(), "ResolvePrincipal", mock.Anything, mock.Anything)
}

func (suite *APIHandlerTestSuite) TestGetMe_DeactivatedAccount() {
	userID := "user-gone"

	suite.mockUser.On("ResolvePrincipal", mock.AnythingOfType("*context.valueCtx"), userID).
		Return(nil, apperrors.ErrUnauthenticated).Once()

	token := suite.generateTestToken(userID)
	w := suite.doRequest(http.MethodGet, "/api/v1/me", token, nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockUser.AssertNotCalled(suite.T(), "GetMe", mock.Anything, mock.Anything)
	suite.mockUser.AssertExpectations(suite.T())
}

func (suite *APIHandlerTestSuite) TestGetPet_PrincipalReachesService() {
	userID := "user-123"
	principal := &domain.Principal{UserID: userID, Role: domain.RoleGuardian}
	pet := &domain.Pet{
		PetID:       "pet-1",
		WorkspaceID: "ws-1",
		Name:        "Thor",
		Species:     domain.SpeciesDog,
		Status:      domain.PetApproved,
		IsActive:    true,
	}

	suite.mockUser.On("ResolvePrincipal", mock.AnythingOfType("*context.valueCtx"), userID).
		Return(principal, nil).Once()
	suite.mockPet.On("GetPetByID", mock.AnythingOfType("*context.valueCtx"), mock.MatchedBy(func(p *domain.Principal) bool {
		return p != nil && p.UserID == userID
	}), "pet-1").Return(pet, []domain.PetImage{}, nil).Once()

	token := suite.generateTestToken(userID)
	w := suite.doRequest(http.MethodGet, "/api/v1/pets/pet-1", token, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.PetDetailsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("pet-1", resp.PetID)
	suite.mockPet.AssertExpectations(suite.T())
}

func (suite *APIHandlerTestSuite) TestGetPet_NotFound() {
	userID := "user-123"
	principal := &domain.Principal{UserID: userID, Role: domain.RoleGuardian}

	suite.mockUser.On("ResolvePrincipal", mock.AnythingOfType("*context.valueCtx"), userID).
		Return(principal, nil).Once()
	suite.mockPet.On("GetPetByID", mock.AnythingOfType("*context.valueCtx"), principal, "pet-missing").
		Return(nil, nil, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken(userID)
	w := suite.doRequest(http.MethodGet, "/api/v1/pets/pet-missing", token, nil)

	suite.Equal(http.StatusNotFound, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(apperrors.CodeNotFound), resp["code"])
	suite.mockPet.AssertExpectations(suite.T())
}

func (suite *APIHandlerTestSuite) TestSubmitPet_BlockedWorkspaceIsUnprocessable() {
	userID := "user-123"
	principal := &domain.Principal{
		UserID: userID,
		Role:   domain.RolePartnerMember,
		Memberships: []domain.PrincipalMembership{
			{WorkspaceID: "ws-1", Role: domain.MemberEditor},
		},
	}

	suite.mockUser.On("ResolvePrincipal", mock.AnythingOfType("*context.valueCtx"), userID).
		Return(principal, nil).Once()
	suite.mockPet.On("SubmitPetForReview", mock.AnythingOfType("*context.valueCtx"), mock.Anything, "pet-1").
		Return(nil, apperrors.ErrWorkspaceBlocked).Once()

	token := suite.generateTestToken(userID)
	w := suite.doRequest(http.MethodPost, "/api/v1/pets/pet-1/submit", token, nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(apperrors.CodeWorkspaceBlocked), resp["code"])
	suite.mockPet.AssertExpectations(suite.T())
}

func TestAPIHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(APIHandlerTestSuite))
}
