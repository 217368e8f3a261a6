package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "cuponera/internal/handler/dto/request"
	resdto "cuponera/internal/handler/dto/response"
	"cuponera/internal/handler/httperr"
	"cuponera/internal/handler/middleware"
	"cuponera/internal/pkg/clock"
	"cuponera/internal/usecase/commands"
	"cuponera/internal/usecase/queries"
)

type OfferHandler struct {
	offerCommands    commands.OfferCommands
	purchaseCommands commands.PurchaseCommands
	offerQueries     queries.OfferQueries
	clock            clock.Clock
}

func NewOfferHandler(
	offerCommands commands.OfferCommands,
	purchaseCommands commands.PurchaseCommands,
	offerQueries queries.OfferQueries,
	clk clock.Clock,
) *OfferHandler {
	return &OfferHandler{
		offerCommands:    offerCommands,
		purchaseCommands: purchaseCommands,
		offerQueries:     offerQueries,
		clock:            clk,
	}
}

// @Summary List offers
// @Description List currently purchasable offers
// @Tags offers
// @Produce json
// @Param q query string false "Title substring filter"
// @Param limit query int false "Page size"
// @Param cursor query string false "Pagination cursor"
// @Success 200 {object} resdto.OfferListResponse
// @Router /offers [get]
func (h *OfferHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	search := c.Query("q")

	var after *queries.Cursor
	if cursor := c.Query("cursor"); cursor != "" {
		after = &queries.Cursor{After: cursor}
	}

	items, next, err := h.offerQueries.ListVisible(c.Request.Context(), h.clock.Now(), search, after, limit)
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

	c.JSON(http.StatusOK, resdto.NewOfferListResponse(items, next))
}

// @Summary Get offer
// @Description Get one offer; hidden offers are visible to their owner and admins only
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 404 {object} map[string]string
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid offer ID",
		})
		return
	}

	view, err := h.offerQueries.GetVisible(c.Request.Context(), offerID, h.clock.Now())
	if err == nil {
		c.JSON(http.StatusOK, resdto.NewOfferResponse(view))
		return
	}

	// Owners and admins can still see offers outside the public window
	if actor, ok := h.actor(c); ok {
		full, ferr := h.offerQueries.GetByID(c.Request.Context(), offerID)
		if ferr == nil && (full.BusinessID == actor.ID || actor.IsAdmin()) {
			c.JSON(http.StatusOK, resdto.NewOfferResponse(full))
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{
		"error": "Offer not found",
	})
}

// @Summary List own offers
// @Description List the authenticated business's offers
// @Tags offers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.OffersResponse
// @Router /offers/mine [get]
func (h *OfferHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	views, err := h.offerQueries.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.NewOffersResponse(views))
}

// @Summary Create offer
// @Description Publish a new offer
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferRequest true "Offer"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Router /offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid request format",
			"fields": httperr.FieldErrors(err),
		})
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	offerID, err := h.offerCommands.Create(c.Request.Context(), userID, cmd)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOfferValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: offerID})
}

// @Summary Update offer
// @Description Partially update an offer
// @Tags offers
// @Accept json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.UpdateOfferRequest true "Changes"
// @Success 200 {object} resdto.UpdateOfferResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offers/{id} [patch]
func (h *OfferHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid offer ID",
		})
		return
	}

	var req reqdto.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid request format",
			"fields": httperr.FieldErrors(err),
		})
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	updated, err := h.offerCommands.Update(c.Request.Context(), actor, offerID, cmd)
	if err != nil {
		h.abortOfferError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.UpdateOfferResponse{
		Meta: resdto.UpdateMeta{Updated: updated},
	})
}

// @Summary Delete offer
// @Description Delete an offer without sold coupons
// @Tags offers
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /offers/{id} [delete]
func (h *OfferHandler) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid offer ID",
		})
		return
	}

	if err := h.offerCommands.Delete(c.Request.Context(), actor, offerID); err != nil {
		h.abortOfferError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Buy offer
// @Description Purchase one coupon for an offer
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.BuyOfferRequest true "Card details"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /offers/{id}/buy [post]
func (h *OfferHandler) Buy(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid offer ID",
		})
		return
	}

	var req reqdto.BuyOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid request format",
			"fields": httperr.FieldErrors(err),
		})
		return
	}

	result, err := h.purchaseCommands.Buy(c.Request.Context(), userID, req.ToCommand(offerID))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOfferNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Offer not found",
			})
		case errors.Is(err, commands.ErrOfferNotPurchasable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Offer is not currently purchasable",
			})
		case errors.Is(err, commands.ErrSelfPurchase):
			c.JSON(http.StatusConflict, gin.H{
				"error": "You cannot buy your own offer",
			})
		case errors.Is(err, commands.ErrPurchaseLimit):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Active coupon limit reached for this offer",
			})
		case errors.Is(err, commands.ErrOfferSoldOut):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Offer is sold out",
			})
		case errors.Is(err, commands.ErrInvalidCard):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Card validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.PurchaseResponse{
		CouponID:          result.CouponID,
		Code:              result.Code,
		ReceiptNo:         result.ReceiptNo,
		UnitPrice:         result.UnitPrice,
		PlatformFeeAmount: result.PlatformFeeAmount,
		BusinessAmount:    result.BusinessAmount,
	})
}

func (h *OfferHandler) actor(c *gin.Context) (commands.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return commands.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return commands.Actor{}, false
	}
	return commands.Actor{ID: userID, Role: role}, true
}

func (h *OfferHandler) abortOfferError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrOfferNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Offer not found",
		})
	case errors.Is(err, commands.ErrNotOfferOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Offer belongs to another business",
		})
	case errors.Is(err, commands.ErrOfferHasCoupons):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Offer has sold coupons and cannot be deleted",
		})
	case errors.Is(err, commands.ErrOfferValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
