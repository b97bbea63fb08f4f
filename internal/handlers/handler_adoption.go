package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bethehero/adopt_backend/internal/core/ports/services"
	"github.com/bethehero/adopt_backend/internal/dto"
	"github.com/bethehero/adopt_backend/internal/middleware"
)

// adoptionHandler handles adoption registration and retrieval.
type adoptionHandler struct {
	adoptionService portssvc.AdoptionSvcFacade
}

func newAdoptionHandler(as portssvc.AdoptionSvcFacade) *adoptionHandler {
	return &adoptionHandler{adoptionService: as}
}

func registerAdoptionRoutes(rg *gin.RouterGroup, adoptionService portssvc.AdoptionSvcFacade) {
	h := newAdoptionHandler(adoptionService)

	adoptions := rg.Group("/adoptions")
	{
		adoptions.POST("", h.registerAdoption)
		adoptions.GET("/:adoption_id", h.getAdoption)
	}
}

// registerAdoption godoc
// @Summary Register a completed adoption
// @Description Records the handover of an approved pet to a guardian. Marks the pet ADOPTED and schedules the three follow-up check-ins atomically. Requires OWNER or EDITOR in the pet's workspace.
// @Tags adoptions
// @Accept json
// @Produce json
// @Param adoption body dto.RegisterAdoptionRequest true "Pet, guardian and optional handover time"
// @Success 201 {object} dto.RegisterAdoptionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not allowed to manage the workspace"
// @Failure 404 {object} map[string]string "Pet or guardian not found"
// @Failure 409 {object} map[string]string "Pet already adopted"
// @Failure 422 {object} map[string]string "Pet not approved or workspace blocked"
// @Security BearerAuth
// @Router /adoptions [post]
func (h *adoptionHandler) registerAdoption(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterAdoptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterAdoption", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	principal := middleware.GetPrincipalFromContext(c)
	adoption, followUps, err := h.adoptionService.RegisterAdoption(c.Request.Context(), principal, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Adoption registered",
		slog.String("adoption_id", adoption.AdoptionID),
		slog.String("pet_id", adoption.PetID),
		slog.String("guardian_user_id", adoption.GuardianUserID),
	)

	c.JSON(http.StatusCreated, dto.ToRegisterAdoptionResponse(adoption, followUps))
}

// getAdoption godoc
// @Summary Get an adoption
// @Description Returns the adoption with its pet, guardian, workspace and follow-ups. Visible to the guardian, workspace members and covering admins.
// @Tags adoptions
// @Produce json
// @Param adoption_id path string true "Adoption ID"
// @Success 200 {object} dto.AdoptionDetailsResponse
// @Failure 403 {object} map[string]string "Not a party to the adoption"
// @Failure 404 {object} map[string]string "Adoption not found"
// @Security BearerAuth
// @Router /adoptions/{adoption_id} [get]
func (h *adoptionHandler) getAdoption(c *gin.Context) {
	principal := middleware.GetPrincipalFromContext(c)
	details, err := h.adoptionService.GetAdoptionByID(c.Request.Context(), principal, c.Param("adoption_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAdoptionDetailsResponse(details))
}
