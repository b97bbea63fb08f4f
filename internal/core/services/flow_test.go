package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/bethehero/adopt_backend/internal/apperrors"
	"github.com/bethehero/adopt_backend/internal/core/domain"
	"github.com/bethehero/adopt_backend/internal/core/services"
	"github.com/bethehero/adopt_backend/internal/dto"
	"github.com/bethehero/adopt_backend/pkg/config"
)

// AdoptionFlowTestSuite walks one listing through its whole life: workspace
// creation, drafting, cover image, review, approval and the final handover.
// The repository fakes share mutable state, so each step operates on what
// the previous step persisted.
type AdoptionFlowTestSuite struct {
	suite.Suite
	ctx context.Context

	mockWorkspaceRepo *MockWorkspaceRepository
	mockUserRepo      *MockUserRepository
	mockGeoRepo       *MockGeoPlaceRepository
	mockAuditRepo     *MockAuditRepository
	mockPetRepo       *MockPetRepository
	mockAdoptionRepo  *MockAdoptionRepository
	mockStore         *MockObjectStore

	workspaceSvc *services.WorkspaceService
	petSvc       *services.PetService
	adoptionSvc  *services.AdoptionService

	workspace *domain.Workspace
	location  *domain.WorkspaceLocation
	pet       *domain.Pet
	images    []domain.PetImage
	adopted   bool
	guardian  *domain.User
}

func (suite *AdoptionFlowTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockWorkspaceRepo = new(MockWorkspaceRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockGeoRepo = new(MockGeoPlaceRepository)
	suite.mockAuditRepo = new(MockAuditRepository)
	suite.mockPetRepo = new(MockPetRepository)
	suite.mockAdoptionRepo = new(MockAdoptionRepository)
	suite.mockStore = new(MockObjectStore)

	suite.workspaceSvc = services.NewWorkspaceService(suite.mockWorkspaceRepo, suite.mockUserRepo, suite.mockGeoRepo, suite.mockAuditRepo)
	suite.petSvc = services.NewPetService(suite.mockPetRepo, suite.mockWorkspaceRepo, suite.mockAuditRepo, suite.mockStore, &config.Config{})
	suite.adoptionSvc = services.NewAdoptionService(suite.mockAdoptionRepo, suite.mockPetRepo, suite.mockWorkspaceRepo, suite.mockUserRepo)

	suite.workspace = nil
	suite.location = nil
	suite.pet = nil
	suite.images = nil
	suite.adopted = false
	suite.guardian = &domain.User{
		UserID:   uuid.NewString(),
		FullName: "Ana Souza",
		Email:    "ana@example.com",
		Role:     domain.RoleGuardian,
		IsActive: true,
	}

	suite.mockGeoRepo.FindPlaceByIDFn = func(ctx context.Context, placeID string) (*domain.GeoPlace, error) {
		return &domain.GeoPlace{PlaceID: placeID, Name: "Sao Paulo", Type: domain.PlaceCity}, nil
	}
	suite.mockAuditRepo.CreateLogFn = func(ctx context.Context, log domain.AuditLog) error {
		return nil
	}

	suite.mockWorkspaceRepo.CreateWorkspaceFn = func(ctx context.Context, workspace domain.Workspace, location domain.WorkspaceLocation, coverage domain.CityCoverage, owner domain.WorkspaceMember) error {
		suite.workspace = &workspace
		suite.location = &location
		return nil
	}
	suite.mockWorkspaceRepo.FindWorkspaceDetailsFn = func(ctx context.Context, workspaceID string) (*domain.WorkspaceDetails, error) {
		if suite.workspace == nil || suite.workspace.WorkspaceID != workspaceID {
			return nil, apperrors.ErrNotFound
		}
		return &domain.WorkspaceDetails{
			Workspace:       *suite.workspace,
			PrimaryLocation: suite.location,
		}, nil
	}

	suite.mockPetRepo.SavePetFn = func(ctx context.Context, pet domain.Pet) error {
		suite.pet = &pet
		return nil
	}
	suite.mockPetRepo.FindPetWithWorkspaceFn = func(ctx context.Context, petID string) (*domain.PetWithWorkspace, error) {
		if suite.pet == nil || suite.pet.PetID != petID {
			return nil, apperrors.ErrNotFound
		}
		return &domain.PetWithWorkspace{Pet: *suite.pet, Workspace: *suite.workspace}, nil
	}
	suite.mockPetRepo.FindPetForReviewFn = func(ctx context.Context, petID string) (*domain.PetForModeration, error) {
		if suite.pet == nil || suite.pet.PetID != petID {
			return nil, apperrors.ErrNotFound
		}
		return &domain.PetForModeration{
			Pet:              *suite.pet,
			Images:           suite.images,
			Workspace:        *suite.workspace,
			WorkspaceCityIDs: []string{suite.location.CityPlaceID},
		}, nil
	}
	suite.mockPetRepo.FindPetForAdoptionFn = func(ctx context.Context, petID string) (*domain.PetForAdoption, error) {
		if suite.pet == nil || suite.pet.PetID != petID {
			return nil, apperrors.ErrNotFound
		}
		return &domain.PetForAdoption{
			Pet:         *suite.pet,
			Workspace:   *suite.workspace,
			HasAdoption: suite.adopted,
		}, nil
	}
	suite.mockPetRepo.CountPetImagesFn = func(ctx context.Context, petID string) (int, error) {
		return len(suite.images), nil
	}
	suite.mockPetRepo.AddPetImageFn = func(ctx context.Context, image domain.PetImage) (*domain.PetImage, error) {
		suite.images = append(suite.images, image)
		return &image, nil
	}
	suite.mockPetRepo.MarkPetPendingReviewFn = func(ctx context.Context, petID, actorUserID string, at time.Time) (*domain.Pet, error) {
		suite.pet.Status = domain.PetPendingReview
		updated := *suite.pet
		return &updated, nil
	}
	suite.mockPetRepo.ApprovePetFn = func(ctx context.Context, petID, actorUserID string, at time.Time) (*domain.Pet, error) {
		suite.pet.Status = domain.PetApproved
		suite.pet.ApprovedAt = &at
		suite.pet.ApprovedByUserID = &actorUserID
		updated := *suite.pet
		return &updated, nil
	}

	suite.mockUserRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		if userID != suite.guardian.UserID {
			return nil, apperrors.ErrNotFound
		}
		return suite.guardian, nil
	}
	suite.mockAdoptionRepo.CreateAdoptionFn = func(ctx context.Context, adoption domain.Adoption) (*domain.Adoption, error) {
		suite.adopted = true
		suite.pet.Status = domain.PetAdopted
		return &adoption, nil
	}
}

func (suite *AdoptionFlowTestSuite) TestDraftToAdoption() {
	creator := &domain.Principal{UserID: uuid.NewString(), Role: domain.RolePartnerMember}

	details, err := suite.workspaceSvc.CreateWorkspace(suite.ctx, creator, dto.CreateWorkspaceRequest{
		Name:        "Patas Felizes",
		Type:        domain.WorkspaceONG,
		Description: "Shelter and rescue",
		CityPlaceID: "city-sp",
	})
	suite.Require().NoError(err)
	suite.Equal(domain.VerificationPending, details.VerificationStatus)

	owner := &domain.Principal{
		UserID: creator.UserID,
		Role:   domain.RolePartnerMember,
		Memberships: []domain.PrincipalMembership{
			{WorkspaceID: details.WorkspaceID, Role: domain.MemberOwner},
		},
	}

	pet, err := suite.petSvc.CreatePet(suite.ctx, owner, dto.CreatePetRequest{
		WorkspaceID: details.WorkspaceID,
		Name:        "Thor",
		Description: "Gentle three year old looking for a yard",
		Species:     domain.SpeciesDog,
		Sex:         domain.SexMale,
		Size:        domain.SizeSmall,
		AgeCategory: domain.AgeAdult,
	})
	suite.Require().NoError(err)
	suite.Equal(domain.PetDraft, pet.Status)

	image, err := suite.petSvc.AddPetImage(suite.ctx, owner, pet.PetID, dto.AddPetImageRequest{
		URL:         "https://cdn.example.com/pets/" + pet.PetID + "/cover.jpg",
		StoragePath: "pets/" + pet.PetID + "/cover.jpg",
		Position:    0,
	})
	suite.Require().NoError(err)
	suite.True(image.IsCover)

	submitted, err := suite.petSvc.SubmitPetForReview(suite.ctx, owner, pet.PetID)
	suite.Require().NoError(err)
	suite.Equal(domain.PetPendingReview, submitted.Status)

	// The owner is not a moderator.
	_, err = suite.petSvc.ApprovePet(suite.ctx, owner, pet.PetID)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	superAdmin := &domain.Principal{UserID: uuid.NewString(), Role: domain.RoleSuperAdmin}
	approved, err := suite.petSvc.ApprovePet(suite.ctx, superAdmin, pet.PetID)
	suite.Require().NoError(err)
	suite.Equal(domain.PetApproved, approved.Status)

	// Handover requires a verified workspace.
	suite.workspace.VerificationStatus = domain.VerificationApproved

	adoption, followUps, err := suite.adoptionSvc.RegisterAdoption(suite.ctx, owner, dto.RegisterAdoptionRequest{
		PetID:          pet.PetID,
		GuardianUserID: suite.guardian.UserID,
	})
	suite.Require().NoError(err)
	suite.Equal(domain.AdoptionActive, adoption.Status)
	suite.Equal(suite.guardian.UserID, adoption.GuardianUserID)
	suite.Len(followUps, 3)
	suite.Equal(domain.PetAdopted, suite.pet.Status)

	_, _, err = suite.adoptionSvc.RegisterAdoption(suite.ctx, owner, dto.RegisterAdoptionRequest{
		PetID:          pet.PetID,
		GuardianUserID: suite.guardian.UserID,
	})
	suite.ErrorIs(err, apperrors.ErrPetAlreadyAdopted)
}

func TestAdoptionFlowTestSuite(t *testing.T) {
	suite.Run(t, new(AdoptionFlowTestSuite))
}
