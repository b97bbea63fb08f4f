package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/bethehero/adopt_backend/internal/core/domain"
	portsrepo "github.com/bethehero/adopt_backend/internal/core/ports/repositories"
	"github.com/bethehero/adopt_backend/internal/platform/storage"
)

// txStub satisfies the facade transaction methods. The services under test
// never drive transactions themselves; the pgx implementations do.
type txStub struct{}

func (txStub) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, nil
}

func (txStub) Commit(ctx context.Context, tx pgx.Tx) error {
	return nil
}

func (txStub) Rollback(ctx context.Context, tx pgx.Tx) error {
	return nil
}

// --- Mock UserRepository (based on UserRepositoryFacade) ---
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn        func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn     func(ctx context.Context, email string) (*domain.User, error)
	FindAdminCityPlacesFn func(ctx context.Context, userID string) ([]domain.GeoPlace, error)
	SaveUserFn            func(ctx context.Context, user domain.User) error
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindAdminCityPlaces(ctx context.Context, userID string) ([]domain.GeoPlace, error) {
	if m.FindAdminCityPlacesFn != nil {
		return m.FindAdminCityPlacesFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var places []domain.GeoPlace
	if args.Get(0) != nil {
		places = args.Get(0).([]domain.GeoPlace)
	}
	return places, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock WorkspaceRepository (based on WorkspaceRepositoryFacade) ---
type MockWorkspaceRepository struct {
	mock.Mock
	txStub
	FindWorkspaceDetailsFn          func(ctx context.Context, workspaceID string) (*domain.WorkspaceDetails, error)
	ListMembersFn                   func(ctx context.Context, workspaceID string, page, perPage int) ([]domain.WorkspaceMember, error)
	ListMembershipsByUserIDFn       func(ctx context.Context, userID string) ([]domain.WorkspaceMembership, error)
	FindActiveMembershipsByUserIDFn func(ctx context.Context, userID string) ([]domain.WorkspaceMember, error)
	CreateWorkspaceFn               func(ctx context.Context, workspace domain.Workspace, location domain.WorkspaceLocation, coverage domain.CityCoverage, owner domain.WorkspaceMember) error
	UpdateWorkspaceFn               func(ctx context.Context, workspace domain.Workspace) error
	UpdatePrimaryLocationFn         func(ctx context.Context, workspaceID string, location domain.WorkspaceLocation) error
	AddMemberFn                     func(ctx context.Context, member domain.WorkspaceMember) (*domain.WorkspaceMember, error)
	FindMemberFn                    func(ctx context.Context, workspaceID, memberID string) (*domain.WorkspaceMember, error)
	CountActiveOwnersFn             func(ctx context.Context, workspaceID string) (int, error)
	DeactivateMemberFn              func(ctx context.Context, workspaceID, memberID string) error
}

func (m *MockWorkspaceRepository) FindWorkspaceDetails(ctx context.Context, workspaceID string) (*domain.WorkspaceDetails, error) {
	if m.FindWorkspaceDetailsFn != nil {
		return m.FindWorkspaceDetailsFn(ctx, workspaceID)
	}
	args := m.Called(ctx, workspaceID)
	var details *domain.WorkspaceDetails
	if args.Get(0) != nil {
		details = args.Get(0).(*domain.WorkspaceDetails)
	}
	return details, args.Error(1)
}

func (m *MockWorkspaceRepository) ListMembers(ctx context.Context, workspaceID string, page, perPage int) ([]domain.WorkspaceMember, error) {
	if m.ListMembersFn != nil {
		return m.ListMembersFn(ctx, workspaceID, page, perPage)
	}
	args := m.Called(ctx, workspaceID, page, perPage)
	var members []domain.WorkspaceMember
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.WorkspaceMember)
	}
	return members, args.Error(1)
}

func (m *MockWorkspaceRepository) ListMembershipsByUserID(ctx context.Context, userID string) ([]domain.WorkspaceMembership, error) {
	if m.ListMembershipsByUserIDFn != nil {
		return m.ListMembershipsByUserIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var memberships []domain.WorkspaceMembership
	if args.Get(0) != nil {
		memberships = args.Get(0).([]domain.WorkspaceMembership)
	}
	return memberships, args.Error(1)
}

func (m *MockWorkspaceRepository) FindActiveMembershipsByUserID(ctx context.Context, userID string) ([]domain.WorkspaceMember, error) {
	if m.FindActiveMembershipsByUserIDFn != nil {
		return m.FindActiveMembershipsByUserIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var members []domain.WorkspaceMember
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.WorkspaceMember)
	}
	return members, args.Error(1)
}

func (m *MockWorkspaceRepository) CreateWorkspace(ctx context.Context, workspace domain.Workspace, location domain.WorkspaceLocation, coverage domain.CityCoverage, owner domain.WorkspaceMember) error {
	if m.CreateWorkspaceFn != nil {
		return m.CreateWorkspaceFn(ctx, workspace, location, coverage, owner)
	}
	args := m.Called(ctx, workspace, location, coverage, owner)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error {
	if m.UpdateWorkspaceFn != nil {
		return m.UpdateWorkspaceFn(ctx, workspace)
	}
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) UpdatePrimaryLocation(ctx context.Context, workspaceID string, location domain.WorkspaceLocation) error {
	if m.UpdatePrimaryLocationFn != nil {
		return m.UpdatePrimaryLocationFn(ctx, workspaceID, location)
	}
	args := m.Called(ctx, workspaceID, location)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) AddMember(ctx context.Context, member domain.WorkspaceMember) (*domain.WorkspaceMember, error) {
	if m.AddMemberFn != nil {
		return m.AddMemberFn(ctx, member)
	}
	args := m.Called(ctx, member)
	var added *domain.WorkspaceMember
	if args.Get(0) != nil {
		added = args.Get(0).(*domain.WorkspaceMember)
	}
	return added, args.Error(1)
}

func (m *MockWorkspaceRepository) FindMember(ctx context.Context, workspaceID, memberID string) (*domain.WorkspaceMember, error) {
	if m.FindMemberFn != nil {
		return m.FindMemberFn(ctx, workspaceID, memberID)
	}
	args := m.Called(ctx, workspaceID, memberID)
	var member *domain.WorkspaceMember
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.WorkspaceMember)
	}
	return member, args.Error(1)
}

func (m *MockWorkspaceRepository) CountActiveOwners(ctx context.Context, workspaceID string) (int, error) {
	if m.CountActiveOwnersFn != nil {
		return m.CountActiveOwnersFn(ctx, workspaceID)
	}
	args := m.Called(ctx, workspaceID)
	return args.Int(0), args.Error(1)
}

func (m *MockWorkspaceRepository) DeactivateMember(ctx context.Context, workspaceID, memberID string) error {
	if m.DeactivateMemberFn != nil {
		return m.DeactivateMemberFn(ctx, workspaceID, memberID)
	}
	args := m.Called(ctx, workspaceID, memberID)
	return args.Error(0)
}

// --- Mock GeoPlaceRepository ---
type MockGeoPlaceRepository struct {
	mock.Mock
	FindPlaceByIDFn func(ctx context.Context, placeID string) (*domain.GeoPlace, error)
}

func (m *MockGeoPlaceRepository) FindPlaceByID(ctx context.Context, placeID string) (*domain.GeoPlace, error) {
	if m.FindPlaceByIDFn != nil {
		return m.FindPlaceByIDFn(ctx, placeID)
	}
	args := m.Called(ctx, placeID)
	var place *domain.GeoPlace
	if args.Get(0) != nil {
		place = args.Get(0).(*domain.GeoPlace)
	}
	return place, args.Error(1)
}

// --- Mock AuditRepository ---
type MockAuditRepository struct {
	mock.Mock
	CreateLogFn func(ctx context.Context, log domain.AuditLog) error
}

func (m *MockAuditRepository) CreateLog(ctx context.Context, log domain.AuditLog) error {
	if m.CreateLogFn != nil {
		return m.CreateLogFn(ctx, log)
	}
	args := m.Called(ctx, log)
	return args.Error(0)
}

// --- Mock PetRepository (based on PetRepositoryFacade) ---
type MockPetRepository struct {
	mock.Mock
	txStub
	FindPetWithWorkspaceFn func(ctx context.Context, petID string) (*domain.PetWithWorkspace, error)
	FindPetForReviewFn     func(ctx context.Context, petID string) (*domain.PetForModeration, error)
	FindPetForAdoptionFn   func(ctx context.Context, petID string) (*domain.PetForAdoption, error)
	FindPetImageFn         func(ctx context.Context, petID, imageID string) (*domain.PetImage, error)
	CountPetImagesFn       func(ctx context.Context, petID string) (int, error)
	ListPublicPetsFn       func(ctx context.Context, filter portsrepo.PetListFilter) ([]domain.PublicPetListItem, int64, error)
	SavePetFn              func(ctx context.Context, pet domain.Pet) error
	UpdatePetFn            func(ctx context.Context, pet domain.Pet) error
	MarkPetPendingReviewFn func(ctx context.Context, petID, actorUserID string, at time.Time) (*domain.Pet, error)
	ApprovePetFn           func(ctx context.Context, petID, actorUserID string, at time.Time) (*domain.Pet, error)
	RejectPetFn            func(ctx context.Context, petID, actorUserID, reviewNote string, at time.Time) (*domain.Pet, error)
	AddPetImageFn          func(ctx context.Context, image domain.PetImage) (*domain.PetImage, error)
	UpdatePetImageFn       func(ctx context.Context, petID, imageID string, position *int, isCover *bool) (*domain.PetImage, error)
	DeletePetImageFn       func(ctx context.Context, petID, imageID string) error
}

func (m *MockPetRepository) FindPetWithWorkspace(ctx context.Context, petID string) (*domain.PetWithWorkspace, error) {
	if m.FindPetWithWorkspaceFn != nil {
		return m.FindPetWithWorkspaceFn(ctx, petID)
	}
	args := m.Called(ctx, petID)
	var snapshot *domain.PetWithWorkspace
	if args.Get(0) != nil {
		snapshot = args.Get(0).(*domain.PetWithWorkspace)
	}
	return snapshot, args.Error(1)
}

func (m *MockPetRepository) FindPetForReview(ctx context.Context, petID string) (*domain.PetForModeration, error) {
	if m.FindPetForReviewFn != nil {
		return m.FindPetForReviewFn(ctx, petID)
	}
	args := m.Called(ctx, petID)
	var snapshot *domain.PetForModeration
	if args.Get(0) != nil {
		snapshot = args.Get(0).(*domain.PetForModeration)
	}
	return snapshot, args.Error(1)
}

func (m *MockPetRepository) FindPetForAdoption(ctx context.Context, petID string) (*domain.PetForAdoption, error) {
	if m.FindPetForAdoptionFn != nil {
		return m.FindPetForAdoptionFn(ctx, petID)
	}
	args := m.Called(ctx, petID)
	var snapshot *domain.PetForAdoption
	if args.Get(0) != nil {
		snapshot = args.Get(0).(*domain.PetForAdoption)
	}
	return snapshot, args.Error(1)
}

func (m *MockPetRepository) FindPetImage(ctx context.Context, petID, imageID string) (*domain.PetImage, error) {
	if m.FindPetImageFn != nil {
		return m.FindPetImageFn(ctx, petID, imageID)
	}
	args := m.Called(ctx, petID, imageID)
	var image *domain.PetImage
	if args.Get(0) != nil {
		image = args.Get(0).(*domain.PetImage)
	}
	return image, args.Error(1)
}

func (m *MockPetRepository) CountPetImages(ctx context.Context, petID string) (int, error) {
	if m.CountPetImagesFn != nil {
		return m.CountPetImagesFn(ctx, petID)
	}
	args := m.Called(ctx, petID)
	return args.Int(0), args.Error(1)
}

func (m *MockPetRepository) ListPublicPets(ctx context.Context, filter portsrepo.PetListFilter) ([]domain.PublicPetListItem, int64, error) {
	if m.ListPublicPetsFn != nil {
		return m.ListPublicPetsFn(ctx, filter)
	}
	args := m.Called(ctx, filter)
	var items []domain.PublicPetListItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.PublicPetListItem)
	}
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockPetRepository) SavePet(ctx context.Context, pet domain.Pet) error {
	if m.SavePetFn != nil {
		return m.SavePetFn(ctx, pet)
	}
	args := m.Called(ctx, pet)
	return args.Error(0)
}

func (m *MockPetRepository) UpdatePet(ctx context.Context, pet domain.Pet) error {
	if m.UpdatePetFn != nil {
		return m.UpdatePetFn(ctx, pet)
	}
	args := m.Called(ctx, pet)
	return args.Error(0)
}

func (m *MockPetRepository) MarkPetPendingReview(ctx context.Context, petID, actorUserID string, at time.Time) (*domain.Pet, error) {
	if m.MarkPetPendingReviewFn != nil {
		return m.MarkPetPendingReviewFn(ctx, petID, actorUserID, at)
	}
	args := m.Called(ctx, petID, actorUserID, at)
	var pet *domain.Pet
	if args.Get(0) != nil {
		pet = args.Get(0).(*domain.Pet)
	}
	return pet, args.Error(1)
}

func (m *MockPetRepository) ApprovePet(ctx context.Context, petID, actorUserID string, at time.Time) (*domain.Pet, error) {
	if m.ApprovePetFn != nil {
		return m.ApprovePetFn(ctx, petID, actorUserID, at)
	}
	args := m.Called(ctx, petID, actorUserID, at)
	var pet *domain.Pet
	if args.Get(0) != nil {
		pet = args.Get(0).(*domain.Pet)
	}
	return pet, args.Error(1)
}

func (m *MockPetRepository) RejectPet(ctx context.Context, petID, actorUserID, reviewNote string, at time.Time) (*domain.Pet, error) {
	if m.RejectPetFn != nil {
		return m.RejectPetFn(ctx, petID, actorUserID, reviewNote, at)
	}
	args := m.Called(ctx, petID, actorUserID, reviewNote, at)
	var pet *domain.Pet
	if args.Get(0) != nil {
		pet = args.Get(0).(*domain.Pet)
	}
	return pet, args.Error(1)
}

func (m *MockPetRepository) AddPetImage(ctx context.Context, image domain.PetImage) (*domain.PetImage, error) {
	if m.AddPetImageFn != nil {
		return m.AddPetImageFn(ctx, image)
	}
	args := m.Called(ctx, image)
	var added *domain.PetImage
	if args.Get(0) != nil {
		added = args.Get(0).(*domain.PetImage)
	}
	return added, args.Error(1)
}

func (m *MockPetRepository) UpdatePetImage(ctx context.Context, petID, imageID string, position *int, isCover *bool) (*domain.PetImage, error) {
	if m.UpdatePetImageFn != nil {
		return m.UpdatePetImageFn(ctx, petID, imageID, position, isCover)
	}
	args := m.Called(ctx, petID, imageID, position, isCover)
	var updated *domain.PetImage
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.PetImage)
	}
	return updated, args.Error(1)
}

func (m *MockPetRepository) DeletePetImage(ctx context.Context, petID, imageID string) error {
	if m.DeletePetImageFn != nil {
		return m.DeletePetImageFn(ctx, petID, imageID)
	}
	args := m.Called(ctx, petID, imageID)
	return args.Error(0)
}

// --- Mock AdoptionRepository ---
type MockAdoptionRepository struct {
	mock.Mock
	txStub
	FindAdoptionForAccessFn func(ctx context.Context, adoptionID string) (*domain.AdoptionForAccess, error)
	FindAdoptionDetailsFn   func(ctx context.Context, adoptionID string) (*domain.AdoptionDetails, error)
	CreateAdoptionFn        func(ctx context.Context, adoption domain.Adoption) (*domain.Adoption, error)
}

func (m *MockAdoptionRepository) FindAdoptionForAccess(ctx context.Context, adoptionID string) (*domain.AdoptionForAccess, error) {
	if m.FindAdoptionForAccessFn != nil {
		return m.FindAdoptionForAccessFn(ctx, adoptionID)
	}
	args := m.Called(ctx, adoptionID)
	var access *domain.AdoptionForAccess
	if args.Get(0) != nil {
		access = args.Get(0).(*domain.AdoptionForAccess)
	}
	return access, args.Error(1)
}

func (m *MockAdoptionRepository) FindAdoptionDetails(ctx context.Context, adoptionID string) (*domain.AdoptionDetails, error) {
	if m.FindAdoptionDetailsFn != nil {
		return m.FindAdoptionDetailsFn(ctx, adoptionID)
	}
	args := m.Called(ctx, adoptionID)
	var details *domain.AdoptionDetails
	if args.Get(0) != nil {
		details = args.Get(0).(*domain.AdoptionDetails)
	}
	return details, args.Error(1)
}

func (m *MockAdoptionRepository) CreateAdoption(ctx context.Context, adoption domain.Adoption) (*domain.Adoption, error) {
	if m.CreateAdoptionFn != nil {
		return m.CreateAdoptionFn(ctx, adoption)
	}
	args := m.Called(ctx, adoption)
	var created *domain.Adoption
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.Adoption)
	}
	return created, args.Error(1)
}

// --- Mock AdoptionInterestRepository ---
type MockInterestRepository struct {
	mock.Mock
	txStub
	CreateInterestFn  func(ctx context.Context, interest domain.AdoptionInterest) (*domain.AdoptionInterest, error)
	ListByWorkspaceFn func(ctx context.Context, workspaceID string, page, perPage int) ([]domain.AdoptionInterest, int64, error)
}

func (m *MockInterestRepository) CreateInterest(ctx context.Context, interest domain.AdoptionInterest) (*domain.AdoptionInterest, error) {
	if m.CreateInterestFn != nil {
		return m.CreateInterestFn(ctx, interest)
	}
	args := m.Called(ctx, interest)
	var created *domain.AdoptionInterest
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.AdoptionInterest)
	}
	return created, args.Error(1)
}

func (m *MockInterestRepository) ListByWorkspace(ctx context.Context, workspaceID string, page, perPage int) ([]domain.AdoptionInterest, int64, error) {
	if m.ListByWorkspaceFn != nil {
		return m.ListByWorkspaceFn(ctx, workspaceID, page, perPage)
	}
	args := m.Called(ctx, workspaceID, page, perPage)
	var items []domain.AdoptionInterest
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.AdoptionInterest)
	}
	return items, args.Get(1).(int64), args.Error(2)
}

// --- Mock GoogleOAuth service ---
type MockGoogleOAuth struct {
	mock.Mock
	ExchangeCodeForTokenFn func(ctx context.Context, code, redirectURI string) (*oauth2.Token, error)
	GetUserInfoFn          func(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
	ValidateIDTokenFn      func(ctx context.Context, idToken string) (*idtoken.Payload, error)
}

func (m *MockGoogleOAuth) ExchangeCodeForToken(ctx context.Context, code, redirectURI string) (*oauth2.Token, error) {
	if m.ExchangeCodeForTokenFn != nil {
		return m.ExchangeCodeForTokenFn(ctx, code, redirectURI)
	}
	args := m.Called(ctx, code, redirectURI)
	var token *oauth2.Token
	if args.Get(0) != nil {
		token = args.Get(0).(*oauth2.Token)
	}
	return token, args.Error(1)
}

func (m *MockGoogleOAuth) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	if m.GetUserInfoFn != nil {
		return m.GetUserInfoFn(ctx, token)
	}
	args := m.Called(ctx, token)
	var info *domain.GoogleUserInfo
	if args.Get(0) != nil {
		info = args.Get(0).(*domain.GoogleUserInfo)
	}
	return info, args.Error(1)
}

func (m *MockGoogleOAuth) ValidateIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error) {
	if m.ValidateIDTokenFn != nil {
		return m.ValidateIDTokenFn(ctx, idToken)
	}
	args := m.Called(ctx, idToken)
	var payload *idtoken.Payload
	if args.Get(0) != nil {
		payload = args.Get(0).(*idtoken.Payload)
	}
	return payload, args.Error(1)
}

// --- Mock ObjectStore ---
type MockObjectStore struct {
	mock.Mock
	CreatePetImageUploadSlotFn func(ctx context.Context, petID, fileName, contentType string) (*storage.UploadSlot, error)
}

func (m *MockObjectStore) CreatePetImageUploadSlot(ctx context.Context, petID, fileName, contentType string) (*storage.UploadSlot, error) {
	if m.CreatePetImageUploadSlotFn != nil {
		return m.CreatePetImageUploadSlotFn(ctx, petID, fileName, contentType)
	}
	args := m.Called(ctx, petID, fileName, contentType)
	var slot *storage.UploadSlot
	if args.Get(0) != nil {
		slot = args.Get(0).(*storage.UploadSlot)
	}
	return slot, args.Error(1)
}

func (m *MockObjectStore) PublicURL(storagePath string) string {
	args := m.Called(storagePath)
	return args.String(0)
}
