package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "cuponera/internal/handler/dto/request"
	resdto "cuponera/internal/handler/dto/response"
	"cuponera/internal/handler/httperr"
	"cuponera/internal/handler/middleware"
	"cuponera/internal/usecase/commands"
	"cuponera/internal/usecase/queries"
)

type BusinessRequestHandler struct {
	onboardingCommands commands.OnboardingCommands
	requestQueries     queries.BusinessRequestQueries
}

func NewBusinessRequestHandler(
	onboardingCommands commands.OnboardingCommands,
	requestQueries queries.BusinessRequestQueries,
) *BusinessRequestHandler {
	return &BusinessRequestHandler{
		onboardingCommands: onboardingCommands,
		requestQueries:     requestQueries,
	}
}

// @Summary Request business role
// @Description Apply for the business role with company details
// @Tags onboarding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitBusinessRequest true "Company details"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /request-business [post]
func (h *BusinessRequestHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.SubmitBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid request format",
			"fields": httperr.FieldErrors(err),
		})
		return
	}

	requestID, err := h.onboardingCommands.Submit(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, commands.ErrPendingRequestExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A pending business request already exists",
			})
		case errors.Is(err, commands.ErrAlreadyBusiness):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Account already holds the business role",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: requestID})
}

// @Summary List business requests
// @Description List business role requests, optionally filtered by status
// @Tags onboarding
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending, approved or rejected"
// @Success 200 {object} resdto.BusinessRequestListResponse
// @Router /business-requests [get]
func (h *BusinessRequestHandler) List(c *gin.Context) {
	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	views, err := h.requestQueries.List(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.NewBusinessRequestListResponse(views))
}

// @Summary Approve business request
// @Description Approve a pending request and grant the business role
// @Tags onboarding
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /business-requests/{id}/approve [post]
func (h *BusinessRequestHandler) Approve(c *gin.Context) {
	h.decide(c, h.onboardingCommands.Approve)
}

// @Summary Reject business request
// @Description Reject a pending request
// @Tags onboarding
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /business-requests/{id}/reject [post]
func (h *BusinessRequestHandler) Reject(c *gin.Context) {
	h.decide(c, h.onboardingCommands.Reject)
}

func (h *BusinessRequestHandler) decide(c *gin.Context, decision func(ctx context.Context, adminID, requestID uuid.UUID) error) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID",
		})
		return
	}

	if err := decision(c.Request.Context(), adminID, requestID); err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Business request not found",
			})
		case errors.Is(err, commands.ErrRequestNotPending):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Business request was already decided",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
