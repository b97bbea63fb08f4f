package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bethehero/adopt_backend/internal/core/ports/repositories"
	portssvc "github.com/bethehero/adopt_backend/internal/core/ports/services"
	"github.com/bethehero/adopt_backend/internal/dto"
	"github.com/bethehero/adopt_backend/internal/middleware"
)

// petHandler handles pet listings, moderation and images.
type petHandler struct {
	petService      portssvc.PetSvcFacade
	interestService portssvc.AdoptionInterestSvcFacade
}

func newPetHandler(ps portssvc.PetSvcFacade, is portssvc.AdoptionInterestSvcFacade) *petHandler {
	return &petHandler{petService: ps, interestService: is}
}

// registerPublicPetRoutes registers the unauthenticated adoption listing.
func registerPublicPetRoutes(r *gin.Engine, petService portssvc.PetSvcFacade) {
	h := newPetHandler(petService, nil)
	r.GET("/api/v1/pets", h.listPublicPets)
}

func registerPetRoutes(rg *gin.RouterGroup, petService portssvc.PetSvcFacade, interestService portssvc.AdoptionInterestSvcFacade) {
	h := newPetHandler(petService, interestService)

	pets := rg.Group("/pets")
	{
		pets.POST("", h.createPet)
	}

	petSpecific := rg.Group("/pets/:pet_id")
	{
		petSpecific.GET("", h.getPet)
		petSpecific.PATCH("", h.updatePet)
		petSpecific.POST("/submit", h.submitForReview)
		petSpecific.POST("/approve", h.approvePet)
		petSpecific.POST("/reject", h.rejectPet)
		petSpecific.POST("/interests", h.registerInterest)

		images := petSpecific.Group("/images")
		{
			images.POST("/upload-url", h.createUploadURL)
			images.POST("", h.addImage)
			images.PATCH("/:image_id", h.updateImage)
			images.DELETE("/:image_id", h.removeImage)
		}
	}
}

// listPublicPets godoc
// @Summary List pets available for adoption
// @Description Public listing of approved, active pets from approved, active workspaces, newest approval first.
// @Tags pets
// @Produce json
// @Param species query string false "Filter by species"
// @Param size query string false "Filter by size"
// @Param ageCategory query string false "Filter by age category"
// @Param cityPlaceID query string false "Filter by workspace city"
// @Param page query int false "Page number" default(1)
// @Param perPage query int false "Items per page, capped at 20" default(20)
// @Success 200 {object} dto.ListPetsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /pets [get]
func (h *petHandler) listPublicPets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListPublicPets", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter := repositories.PetListFilter{Page: params.Page, PerPage: params.PerPage}
	if params.Species != nil {
		filter.Species = *params.Species
	}
	if params.Size != nil {
		filter.Size = *params.Size
	}
	if params.AgeCategory != nil {
		filter.AgeCategory = *params.AgeCategory
	}
	if params.CityPlaceID != nil {
		filter.CityPlaceID = *params.CityPlaceID
	}

	items, total, err := h.petService.ListPublicPets(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListPetsResponse(items, total, filter.Page, filter.PerPage))
}

// createPet godoc
// @Summary Create a pet listing
// @Description Creates a pet in DRAFT inside a workspace. Requires an editor role in the workspace.
// @Tags pets
// @Accept json
// @Produce json
// @Param pet body dto.CreatePetRequest true "Pet details"
// @Success 201 {object} dto.PetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not an editor of the workspace"
// @Failure 404 {object} map[string]string "Workspace not found"
// @Security BearerAuth
// @Router /pets [post]
func (h *petHandler) createPet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	principal := middleware.GetPrincipalFromContext(c)
	pet, err := h.petService.CreatePet(c.Request.Context(), principal, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Pet created", slog.String("pet_id", pet.PetID), slog.String("workspace_id", pet.WorkspaceID))
	c.JSON(http.StatusCreated, dto.ToPetResponse(pet))
}

// getPet godoc
// @Summary Get a pet with its images
// @Description Approved active pets are visible to anyone authenticated; other states only to workspace editors and covering admins.
// @Tags pets
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Success 200 {object} dto.PetDetailsResponse
// @Failure 404 {object} map[string]string "Pet not found"
// @Security BearerAuth
// @Router /pets/{pet_id} [get]
func (h *petHandler) getPet(c *gin.Context) {
	principal := middleware.GetPrincipalFromContext(c)
	pet, images, err := h.petService.GetPetByID(c.Request.Context(), principal, c.Param("pet_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPetDetailsResponse(pet, images))
}

// updatePet godoc
// @Summary Update a pet's data
// @Description Updates listing fields. Adopted pets are immutable. Requires an editor role in the workspace.
// @Tags pets
// @Accept json
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Param pet body dto.UpdatePetRequest true "Fields to change"
// @Success 200 {object} dto.PetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not an editor or pet adopted"
// @Failure 404 {object} map[string]string "Pet not found"
// @Security BearerAuth
// @Router /pets/{pet_id} [patch]
func (h *petHandler) updatePet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	principal := middleware.GetPrincipalFromContext(c)
	pet, err := h.petService.UpdatePet(c.Request.Context(), principal, c.Param("pet_id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPetResponse(pet))
}

// submitForReview godoc
// @Summary Submit a pet for moderation
// @Description Moves a complete DRAFT pet to PENDING_REVIEW. The pet needs its required data and a valid image set.
// @Tags pets
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Success 200 {object} dto.PetResponse
// @Failure 403 {object} map[string]string "Not an editor"
// @Failure 404 {object} map[string]string "Pet not found"
// @Failure 422 {object} map[string]string "Wrong status, incomplete data or invalid images"
// @Security BearerAuth
// @Router /pets/{pet_id}/submit [post]
func (h *petHandler) submitForReview(c *gin.Context) {
	principal := middleware.GetPrincipalFromContext(c)
	pet, err := h.petService.SubmitPetForReview(c.Request.Context(), principal, c.Param("pet_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Pet submitted for review", slog.String("pet_id", pet.PetID))
	c.JSON(http.StatusOK, dto.ToPetResponse(pet))
}

// approvePet godoc
// @Summary Approve a pet under review
// @Description Moves a PENDING_REVIEW pet to APPROVED. Requires an admin covering one of the workspace's cities.
// @Tags moderation
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Success 200 {object} dto.PetResponse
// @Failure 403 {object} map[string]string "Not a covering admin"
// @Failure 404 {object} map[string]string "Pet not found"
// @Failure 422 {object} map[string]string "Wrong status or invalid images"
// @Security BearerAuth
// @Router /pets/{pet_id}/approve [post]
func (h *petHandler) approvePet(c *gin.Context) {
	principal := middleware.GetPrincipalFromContext(c)
	pet, err := h.petService.ApprovePet(c.Request.Context(), principal, c.Param("pet_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Pet approved", slog.String("pet_id", pet.PetID))
	c.JSON(http.StatusOK, dto.ToPetResponse(pet))
}

// rejectPet godoc
// @Summary Reject a pet under review
// @Description Moves a PENDING_REVIEW pet to REJECTED with a review note. Requires an admin covering one of the workspace's cities.
// @Tags moderation
// @Accept json
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Param rejection body dto.RejectPetRequest true "Review note"
// @Success 200 {object} dto.PetResponse
// @Failure 400 {object} map[string]string "Missing review note"
// @Failure 403 {object} map[string]string "Not a covering admin"
// @Failure 404 {object} map[string]string "Pet not found"
// @Failure 422 {object} map[string]string "Wrong status"
// @Security BearerAuth
// @Router /pets/{pet_id}/reject [post]
func (h *petHandler) rejectPet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RejectPetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RejectPet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	principal := middleware.GetPrincipalFromContext(c)
	pet, err := h.petService.RejectPet(c.Request.Context(), principal, c.Param("pet_id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Pet rejected", slog.String("pet_id", pet.PetID))
	c.JSON(http.StatusOK, dto.ToPetResponse(pet))
}

// registerInterest godoc
// @Summary Register interest in adopting a pet
// @Description Records a guardian's interest in an approved, active pet.
// @Tags interests
// @Accept json
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Param interest body dto.RegisterInterestRequest true "Optional message"
// @Success 201 {object} dto.InterestResponse
// @Failure 403 {object} map[string]string "Caller is not a guardian"
// @Failure 404 {object} map[string]string "Pet not found"
// @Failure 422 {object} map[string]string "Pet not adoptable"
// @Security BearerAuth
// @Router /pets/{pet_id}/interests [post]
func (h *petHandler) registerInterest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterInterest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	principal := middleware.GetPrincipalFromContext(c)
	interest, err := h.interestService.RegisterInterest(c.Request.Context(), principal, c.Param("pet_id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Interest registered", slog.String("pet_id", interest.PetID), slog.String("interest_id", interest.InterestID))
	c.JSON(http.StatusCreated, dto.ToInterestResponse(interest))
}

// createUploadURL godoc
// @Summary Create a presigned image upload URL
// @Description Issues a short-lived presigned PUT URL under the pet's storage prefix. Requires an editor role in the workspace.
// @Tags pet-images
// @Accept json
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Param upload body dto.CreateUploadURLRequest true "File name and content type"
// @Success 201 {object} dto.UploadURLResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not an editor"
// @Failure 404 {object} map[string]string "Pet not found"
// @Security BearerAuth
// @Router /pets/{pet_id}/images/upload-url [post]
func (h *petHandler) createUploadURL(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateUploadURL", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	principal := middleware.GetPrincipalFromContext(c)
	slot, err := h.petService.CreateUploadURL(c.Request.Context(), principal, c.Param("pet_id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// addImage godoc
// @Summary Attach an uploaded image to a pet
// @Description Registers an uploaded object as a pet image. The first image becomes the cover. At most five images per pet.
// @Tags pet-images
// @Accept json
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Param image body dto.AddPetImageRequest true "Image URL, storage path and position"
// @Success 201 {object} dto.PetImageResponse
// @Failure 400 {object} map[string]string "Invalid input or storage path"
// @Failure 403 {object} map[string]string "Not an editor"
// @Failure 404 {object} map[string]string "Pet not found"
// @Failure 409 {object} map[string]string "Position taken or image limit reached"
// @Security BearerAuth
// @Router /pets/{pet_id}/images [post]
func (h *petHandler) addImage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddPetImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddPetImage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	principal := middleware.GetPrincipalFromContext(c)
	image, err := h.petService.AddPetImage(c.Request.Context(), principal, c.Param("pet_id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPetImageResponse(image))
}

// updateImage godoc
// @Summary Change an image's position or cover flag
// @Description Setting the cover demotes the previous one; moving onto an occupied position swaps the two images.
// @Tags pet-images
// @Accept json
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Param image_id path string true "Image ID"
// @Param image body dto.UpdatePetImageRequest true "Position and/or cover flag"
// @Success 200 {object} dto.PetImageResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not an editor"
// @Failure 404 {object} map[string]string "Pet or image not found"
// @Security BearerAuth
// @Router /pets/{pet_id}/images/{image_id} [patch]
func (h *petHandler) updateImage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePetImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePetImage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	principal := middleware.GetPrincipalFromContext(c)
	image, err := h.petService.UpdatePetImage(c.Request.Context(), principal, c.Param("pet_id"), c.Param("image_id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPetImageResponse(image))
}

// removeImage godoc
// @Summary Remove a pet image
// @Description Deletes an image. A pet under review keeps at least one image; deleting the cover promotes the lowest-position survivor.
// @Tags pet-images
// @Param pet_id path string true "Pet ID"
// @Param image_id path string true "Image ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Not an editor"
// @Failure 404 {object} map[string]string "Pet or image not found"
// @Failure 409 {object} map[string]string "Cannot remove the last image under review"
// @Security BearerAuth
// @Router /pets/{pet_id}/images/{image_id} [delete]
func (h *petHandler) removeImage(c *gin.Context) {
	principal := middleware.GetPrincipalFromContext(c)
	err := h.petService.RemovePetImage(c.Request.Context(), principal, c.Param("pet_id"), c.Param("image_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
