package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resdto "cuponera/internal/handler/dto/response"
	"cuponera/internal/handler/middleware"
	"cuponera/internal/usecase/queries"
)

type CouponHandler struct {
	couponQueries queries.CouponQueries
}

func NewCouponHandler(couponQueries queries.CouponQueries) *CouponHandler {
	return &CouponHandler{couponQueries: couponQueries}
}

// @Summary List my coupons
// @Description List the authenticated user's purchased coupons
// @Tags coupons
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size"
// @Param cursor query string false "Pagination cursor"
// @Success 200 {object} resdto.CouponListResponse
// @Router /my/coupons [get]
func (h *CouponHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var after *queries.Cursor
	if cursor := c.Query("cursor"); cursor != "" {
		after = &queries.Cursor{After: cursor}
	}

	views, next, err := h.couponQueries.ListByBuyer(c.Request.Context(), userID, status, after, limit)
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

	c.JSON(http.StatusOK, resdto.NewCouponListResponse(views, next))
}

// @Summary Get my coupon
// @Description Get one of the authenticated user's coupons
// @Tags coupons
// @Security BearerAuth
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} queries.CouponView
// @Failure 404 {object} map[string]string
// @Router /my/coupons/{id} [get]
func (h *CouponHandler) GetMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coupon ID",
		})
		return
	}

	view, err := h.couponQueries.GetForBuyer(c.Request.Context(), userID, couponID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Coupon not found",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}
