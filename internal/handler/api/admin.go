package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cuponera/internal/domain/user"
	reqdto "cuponera/internal/handler/dto/request"
	resdto "cuponera/internal/handler/dto/response"
	"cuponera/internal/handler/middleware"
	"cuponera/internal/infra"
	"cuponera/internal/usecase/commands"
	"cuponera/internal/usecase/queries"
)

type AdminHandler struct {
	adminCommands commands.AdminCommands
	userQueries   queries.UserQueries
	reportQueries queries.ReportQueries
}

func NewAdminHandler(
	adminCommands commands.AdminCommands,
	userQueries queries.UserQueries,
	reportQueries queries.ReportQueries,
) *AdminHandler {
	return &AdminHandler{
		adminCommands: adminCommands,
		userQueries:   userQueries,
		reportQueries: reportQueries,
	}
}

// @Summary List users
// @Description List all accounts with their roles
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size"
// @Param cursor query string false "Pagination cursor"
// @Success 200 {object} resdto.UserListResponse
// @Router /users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var after *queries.Cursor
	if cursor := c.Query("cursor"); cursor != "" {
		after = &queries.Cursor{After: cursor}
	}

	items, next, err := h.userQueries.List(c.Request.Context(), after, limit)
	if err != nil {
		if after != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid cursor",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.NewUserListResponse(items, next))
}

// @Summary Change user role
// @Description Replace a user's role
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.ChangeRoleRequest true "New role"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/users/{id}/role [post]
func (h *AdminHandler) ChangeRole(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID",
		})
		return
	}

	var req reqdto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	newRole, err := user.NewRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid role",
		})
		return
	}

	if err := h.adminCommands.ChangeRole(c.Request.Context(), adminID, targetID, newRole); err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, commands.ErrSelfRoleChange):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Admins cannot change their own role",
			})
		case errors.Is(err, commands.ErrBusinessPromotion):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Business accounts cannot be promoted to admin",
			})
		case errors.Is(err, commands.ErrLastAdmin):
			c.JSON(http.StatusConflict, gin.H{
				"error": "At least one admin must remain",
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

// @Summary Company sales report
// @Description Aggregate sales per business account
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CompanyReportResponse
// @Router /admin/reports/companies [get]
func (h *AdminHandler) CompanyReport(c *gin.Context) {
	rows, err := h.reportQueries.SalesByCompany(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.NewCompanyReportResponse(rows))
}

// @Summary Company sales detail
// @Description Per-offer sales breakdown for one business
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Business user ID"
// @Success 200 {object} queries.CompanyDetailReport
// @Failure 422 {object} map[string]string
// @Router /admin/reports/companies/{id} [get]
func (h *AdminHandler) CompanyDetail(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID",
		})
		return
	}

	report, err := h.reportQueries.CompanyDetail(c.Request.Context(), businessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "User is not a business account",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, report)
}
