//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"cuponera/internal/domain/user"
	"cuponera/internal/handler/api"
	resdto "cuponera/internal/handler/dto/response"
	"cuponera/internal/pkg/clock"
	"cuponera/internal/pkg/errs"
	"cuponera/internal/usecase/commands"
	"cuponera/internal/usecase/queries"
	"cuponera/tests/common/builder"
	"cuponera/tests/common/httptest"
	"cuponera/tests/common/testutil"
	commandsmock "cuponera/tests/mock/commands"
	queriesmock "cuponera/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var handlerNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

type OfferHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockOffers    *commandsmock.MockOfferCommands
	mockPurchases *commandsmock.MockPurchaseCommands
	mockQueries   *queriesmock.MockOfferQueries
	handler       *api.OfferHandler

	// identity injected by the stand-in middleware
	authedUserID uuid.UUID
	authedRole   user.Role
}

func (s *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockOffers = commandsmock.NewMockOfferCommands(s.mockCtrl)
	s.mockPurchases = commandsmock.NewMockPurchaseCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOfferQueries(s.mockCtrl)
	s.handler = api.NewOfferHandler(s.mockOffers, s.mockPurchases, s.mockQueries, clock.NewMockClock(handlerNow))

	s.authedUserID = uuid.New()
	s.authedRole = user.RoleBusiness

	auth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.authedUserID)
			c.Set("user_role", s.authedRole)
		}
	}

	s.router.GET("/api/offers", s.handler.List)
	s.router.GET("/api/offers/mine", auth, s.handler.ListMine)
	s.router.GET("/api/offers/:id", auth, s.handler.Get)
	s.router.POST("/api/offers", auth, s.handler.Create)
	s.router.PATCH("/api/offers/:id", auth, s.handler.Update)
	s.router.DELETE("/api/offers/:id", auth, s.handler.Delete)
	s.router.POST("/api/offers/:id/buy", auth, s.handler.Buy)
}

func (s *OfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}

func (s *OfferHandlerTestSuite) TestList() {
	url := "/api/offers"

	s.Run("success: returns catalog page with cursor", func() {
		items := []*queries.OfferListItem{
			{ID: uuid.New(), Title: "Two pupusas for one", BusinessName: "Pupuseria El Buen Gusto"},
		}
		next := &queries.Cursor{After: "v1:next"}
		s.mockQueries.EXPECT().ListVisible(gomock.Any(), handlerNow, "", nil, 20).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.OfferListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Offers, 1)
		s.Require().NotNil(response.NextCursor)
		s.Equal("v1:next", *response.NextCursor)
	})

	s.Run("success: passes limit and cursor through", func() {
		after := &queries.Cursor{After: "v1:abc"}
		s.mockQueries.EXPECT().ListVisible(gomock.Any(), handlerNow, "", after, 5).
			Return([]*queries.OfferListItem{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5&cursor=v1:abc", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: q filters by title substring", func() {
		s.mockQueries.EXPECT().ListVisible(gomock.Any(), handlerNow, "pupusa", nil, 20).
			Return([]*queries.OfferListItem{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?q=pupusa", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on a broken cursor", func() {
		s.mockQueries.EXPECT().ListVisible(gomock.Any(), handlerNow, "", gomock.Any(), 20).
			Return(nil, nil, errs.New("invalid cursor")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *OfferHandlerTestSuite) TestGet() {
	offerView := builder.NewOfferBuilder().BuildView()
	url := "/api/offers/" + offerView.ID.String()

	s.Run("success: public offer needs no auth", func() {
		s.mockQueries.EXPECT().GetVisible(gomock.Any(), offerView.ID, handlerNow).
			Return(offerView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("success: owner sees a hidden offer", func() {
		owned := builder.NewOfferBuilder().WithOwner(s.authedUserID).BuildView()
		ownedURL := "/api/offers/" + owned.ID.String()

		s.mockQueries.EXPECT().GetVisible(gomock.Any(), owned.ID, handlerNow).
			Return(nil, errs.New("not visible")).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), owned.ID).
			Return(owned, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, ownedURL, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 hides other businesses' hidden offers", func() {
		s.mockQueries.EXPECT().GetVisible(gomock.Any(), offerView.ID, handlerNow).
			Return(nil, errs.New("not visible")).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), offerView.ID).
			Return(offerView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Offer not found")
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/offers/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid offer ID")
	})
}

func (s *OfferHandlerTestSuite) TestCreate() {
	url := "/api/offers"
	reqBody := builder.NewOfferBuilder().BuildCreateDTO()

	s.Run("success: returns 201 with the offer id", func() {
		newID := uuid.New()
		s.mockOffers.EXPECT().Create(gomock.Any(), s.authedUserID, gomock.Any()).
			Return(newID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(newID, response.ID)
	})

	s.Run("error: 401 without auth", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: 400 on validation errors", func() {
		tests := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing title", mutate: testutil.Field("title", nil)},
			{name: "missing starts_at", mutate: testutil.Field("starts_at", nil)},
			{name: "malformed date", mutate: testutil.Field("ends_at", "28/08/2026")},
		}
		for _, tc := range tests {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 when the command rejects the data", func() {
		s.mockOffers.EXPECT().Create(gomock.Any(), s.authedUserID, gomock.Any()).
			Return(uuid.Nil, commands.ErrOfferValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *OfferHandlerTestSuite) TestUpdate() {
	offerID := uuid.New()
	url := "/api/offers/" + offerID.String()
	body := map[string]any{"title": "New title"}

	s.Run("success: returns 200 with updated=true after a write", func() {
		s.mockOffers.EXPECT().
			Update(gomock.Any(), commands.Actor{ID: s.authedUserID, Role: user.RoleBusiness}, offerID, gomock.Any()).
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")

		var response resdto.UpdateOfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Meta.Updated)
	})

	s.Run("success: returns updated=false when nothing changed", func() {
		s.mockOffers.EXPECT().
			Update(gomock.Any(), gomock.Any(), offerID, gomock.Any()).
			Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")

		var response resdto.UpdateOfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Meta.Updated)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		tests := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "not found", commandsError: commands.ErrOfferNotFound, expectedStatus: http.StatusNotFound},
			{name: "not the owner", commandsError: commands.ErrNotOfferOwner, expectedStatus: http.StatusForbidden},
			{name: "validation failed", commandsError: commands.ErrOfferValidation, expectedStatus: http.StatusBadRequest},
			{name: "internal error", commandsError: errs.New("boom"), expectedStatus: http.StatusInternalServerError},
		}
		for _, tc := range tests {
			s.Run(tc.name, func() {
				s.mockOffers.EXPECT().
					Update(gomock.Any(), gomock.Any(), offerID, gomock.Any()).
					Return(false, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *OfferHandlerTestSuite) TestDelete() {
	offerID := uuid.New()
	url := "/api/offers/" + offerID.String()

	s.Run("success: returns 204", func() {
		s.mockOffers.EXPECT().
			Delete(gomock.Any(), commands.Actor{ID: s.authedUserID, Role: user.RoleBusiness}, offerID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when coupons were sold", func() {
		s.mockOffers.EXPECT().Delete(gomock.Any(), gomock.Any(), offerID).
			Return(commands.ErrOfferHasCoupons).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "sold coupons")
	})
}

func (s *OfferHandlerTestSuite) TestBuy() {
	offerID := uuid.New()
	url := "/api/offers/" + offerID.String() + "/buy"
	reqBody := map[string]any{
		"card_number":    "4111111111111111",
		"card_exp_month": 12,
		"card_exp_year":  2030,
		"card_cvc":       "123",
	}

	s.Run("success: returns 201 with the coupon", func() {
		result := &commands.PurchaseResult{
			CouponID:          uuid.New(),
			Code:              "AB12CD34EF56",
			ReceiptNo:         "R-20260828-000001",
			UnitPrice:         decimal.RequireFromString("6.00"),
			PlatformFeeAmount: decimal.RequireFromString("0.60"),
			BusinessAmount:    decimal.RequireFromString("5.40"),
		}
		s.mockPurchases.EXPECT().Buy(gomock.Any(), s.authedUserID, gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.CouponID, response.CouponID)
		s.Equal(result.Code, response.Code)
		s.Equal(result.ReceiptNo, response.ReceiptNo)
		s.True(response.UnitPrice.Equal(result.UnitPrice))
		s.True(response.PlatformFeeAmount.Equal(result.PlatformFeeAmount))
		s.True(response.BusinessAmount.Equal(result.BusinessAmount))
	})

	s.Run("error: 401 without auth", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: 400 on card format errors", func() {
		tests := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "card number too short", mutate: testutil.Field("card_number", "4111")},
			{name: "card number not numeric", mutate: testutil.Field("card_number", "4111-1111-1111-1111")},
			{name: "month out of range", mutate: testutil.Field("card_exp_month", 13)},
			{name: "missing cvc", mutate: testutil.Field("card_cvc", nil)},
		}
		for _, tc := range tests {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps purchase errors to proper statuses", func() {
		tests := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "offer not found", commandsError: commands.ErrOfferNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Offer not found"},
			{name: "not purchasable", commandsError: commands.ErrOfferNotPurchasable, expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "not currently purchasable"},
			{name: "self purchase", commandsError: commands.ErrSelfPurchase, expectedStatus: http.StatusConflict, expectedMsg: "your own offer"},
			{name: "purchase limit", commandsError: commands.ErrPurchaseLimit, expectedStatus: http.StatusConflict, expectedMsg: "limit reached"},
			{name: "sold out", commandsError: commands.ErrOfferSoldOut, expectedStatus: http.StatusConflict, expectedMsg: "sold out"},
			{name: "invalid card", commandsError: commands.ErrInvalidCard, expectedStatus: http.StatusBadRequest, expectedMsg: "Card validation failed"},
			{name: "internal error", commandsError: errs.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range tests {
			s.Run(tc.name, func() {
				s.mockPurchases.EXPECT().Buy(gomock.Any(), s.authedUserID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
