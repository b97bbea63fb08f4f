package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bethehero/adopt_backend/internal/core/ports/services"
	"github.com/bethehero/adopt_backend/internal/dto"
	"github.com/bethehero/adopt_backend/internal/middleware"
)

// workspaceHandler handles partner workspace management.
type workspaceHandler struct {
	workspaceService portssvc.WorkspaceSvcFacade
	interestService  portssvc.AdoptionInterestSvcFacade
}

func newWorkspaceHandler(ws portssvc.WorkspaceSvcFacade, is portssvc.AdoptionInterestSvcFacade) *workspaceHandler {
	return &workspaceHandler{workspaceService: ws, interestService: is}
}

func registerWorkspaceRoutes(rg *gin.RouterGroup, workspaceService portssvc.WorkspaceSvcFacade, interestService portssvc.AdoptionInterestSvcFacade) {
	h := newWorkspaceHandler(workspaceService, interestService)

	workspaces := rg.Group("/workspaces")
	{
		workspaces.POST("", h.createWorkspace)
		workspaces.GET("", h.listMyWorkspaces)
	}

	workspaceSpecific := rg.Group("/workspaces/:workspace_id")
	{
		workspaceSpecific.GET("", h.getWorkspace)
		workspaceSpecific.PATCH("", h.updateWorkspace)
		workspaceSpecific.PUT("/location", h.updateWorkspaceLocation)
		workspaceSpecific.POST("/members", h.addMember)
		workspaceSpecific.DELETE("/members/:member_id", h.removeMember)
		workspaceSpecific.GET("/interests", h.listInterests)
	}
}

// createWorkspace godoc
// @Summary Create a partner workspace
// @Description Creates a workspace in PENDING verification with its primary location, city coverage and the creator as OWNER.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace body dto.CreateWorkspaceRequest true "Workspace details"
// @Success 201 {object} dto.WorkspaceDetailsResponse
// @Failure 400 {object} map[string]string "Invalid input or city"
// @Failure 403 {object} map[string]string "Only partner members can create workspaces"
// @Security BearerAuth
// @Router /workspaces [post]
func (h *workspaceHandler) createWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWorkspace", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	principal := middleware.GetPrincipalFromContext(c)
	details, err := h.workspaceService.CreateWorkspace(c.Request.Context(), principal, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Workspace created", slog.String("workspace_id", details.Workspace.WorkspaceID))
	c.JSON(http.StatusCreated, dto.ToWorkspaceDetailsResponse(details))
}

// listMyWorkspaces godoc
// @Summary List the caller's workspaces
// @Tags workspaces
// @Produce json
// @Success 200 {array} dto.MembershipResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /workspaces [get]
func (h *workspaceHandler) listMyWorkspaces(c *gin.Context) {
	principal := middleware.GetPrincipalFromContext(c)
	memberships, err := h.workspaceService.ListMyWorkspaces(c.Request.Context(), principal)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListMembershipsResponse(memberships))
}

// getWorkspace godoc
// @Summary Get a workspace
// @Description Returns the workspace with its primary location, city coverage and members. Visible to members and covering admins.
// @Tags workspaces
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.WorkspaceDetailsResponse
// @Failure 403 {object} map[string]string "Not a member"
// @Failure 404 {object} map[string]string "Workspace not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [get]
func (h *workspaceHandler) getWorkspace(c *gin.Context) {
	principal := middleware.GetPrincipalFromContext(c)
	details, err := h.workspaceService.GetWorkspaceByID(c.Request.Context(), principal, c.Param("workspace_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceDetailsResponse(details))
}

// updateWorkspace godoc
// @Summary Update workspace data
// @Description Updates the basic fields of a workspace. Requires the OWNER role.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param workspace body dto.UpdateWorkspaceRequest true "Fields to change"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not an owner"
// @Failure 404 {object} map[string]string "Workspace not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [patch]
func (h *workspaceHandler) updateWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateWorkspace", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	principal := middleware.GetPrincipalFromContext(c)
	workspace, err := h.workspaceService.UpdateWorkspace(c.Request.Context(), principal, c.Param("workspace_id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

// updateWorkspaceLocation godoc
// @Summary Replace the workspace's primary location
// @Description Sets a new primary location and adds its city to the coverage. Requires the OWNER role.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param location body dto.UpdateWorkspaceLocationRequest true "New primary location"
// @Success 200 {object} dto.LocationResponse
// @Failure 400 {object} map[string]string "Invalid input or city"
// @Failure 403 {object} map[string]string "Not an owner"
// @Failure 404 {object} map[string]string "Workspace not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/location [put]
func (h *workspaceHandler) updateWorkspaceLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateWorkspaceLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateWorkspaceLocation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	principal := middleware.GetPrincipalFromContext(c)
	location, err := h.workspaceService.UpdateWorkspaceLocation(c.Request.Context(), principal, c.Param("workspace_id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

// addMember godoc
// @Summary Add a member to a workspace
// @Description Adds an existing user to the workspace by email with a role. Requires the OWNER role.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param member body dto.AddMemberRequest true "Member email and role"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not an owner"
// @Failure 404 {object} map[string]string "Workspace or user not found"
// @Failure 409 {object} map[string]string "Already a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/members [post]
func (h *workspaceHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	principal := middleware.GetPrincipalFromContext(c)
	member, err := h.workspaceService.AddMember(c.Request.Context(), principal, c.Param("workspace_id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Member added", slog.String("workspace_id", c.Param("workspace_id")), slog.String("member_id", member.MemberID))
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

// removeMember godoc
// @Summary Remove a member from a workspace
// @Description Deactivates a membership. The last active owner cannot be removed. Requires the OWNER role.
// @Tags workspaces
// @Param workspace_id path string true "Workspace ID"
// @Param member_id path string true "Member ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Not an owner"
// @Failure 404 {object} map[string]string "Workspace or member not found"
// @Failure 409 {object} map[string]string "Cannot remove the last owner"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/members/{member_id} [delete]
func (h *workspaceHandler) removeMember(c *gin.Context) {
	principal := middleware.GetPrincipalFromContext(c)
	err := h.workspaceService.RemoveMember(c.Request.Context(), principal, c.Param("workspace_id"), c.Param("member_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// listInterests godoc
// @Summary List adoption interests received by a workspace
// @Description Returns the workspace's adoption interests, newest first. Visible to members and covering admins.
// @Tags interests
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param page query int false "Page number" default(1)
// @Param perPage query int false "Items per page, capped at 20" default(20)
// @Success 200 {object} dto.InterestListResponse
// @Failure 403 {object} map[string]string "Not a member"
// @Failure 404 {object} map[string]string "Workspace not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/interests [get]
func (h *workspaceHandler) listInterests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListInterestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListInterests", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	principal := middleware.GetPrincipalFromContext(c)
	interests, total, err := h.interestService.ListWorkspaceInterests(c.Request.Context(), principal, c.Param("workspace_id"), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInterestListResponse(interests, total, params.Page, params.PerPage))
}
