//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"cuponera/internal/handler/api"
	resdto "cuponera/internal/handler/dto/response"
	"cuponera/internal/infra"
	"cuponera/internal/pkg/errs"
	"cuponera/internal/usecase/commands"
	"cuponera/internal/usecase/queries"
	"cuponera/tests/common/httptest"
	commandsmock "cuponera/tests/mock/commands"
	queriesmock "cuponera/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockCommands    *commandsmock.MockAdminCommands
	mockUserQueries *queriesmock.MockUserQueries
	mockReports     *queriesmock.MockReportQueries
	handler         *api.AdminHandler
	adminID         uuid.UUID
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.mockUserQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.mockReports = queriesmock.NewMockReportQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockCommands, s.mockUserQueries, s.mockReports)
	s.adminID = uuid.New()

	auth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.adminID)
		}
	}
	s.router.GET("/api/users", auth, s.handler.ListUsers)
	s.router.POST("/api/admin/users/:id/role", auth, s.handler.ChangeRole)
	s.router.GET("/api/admin/reports/companies", auth, s.handler.CompanyReport)
	s.router.GET("/api/admin/reports/companies/:id", auth, s.handler.CompanyDetail)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestListUsers() {
	url := "/api/users"

	s.Run("success: returns a page of users", func() {
		items := []*queries.UserListItem{
			{ID: uuid.New(), Name: "Maria Lopez", Email: "maria@example.com", Role: "user", IsActive: true},
		}
		s.mockUserQueries.EXPECT().List(gomock.Any(), nil, 20).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.UserListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Users, 1)
		s.Nil(response.NextCursor)
	})

	s.Run("error: 400 on a broken cursor", func() {
		s.mockUserQueries.EXPECT().List(gomock.Any(), gomock.Any(), 20).
			Return(nil, nil, errs.New("invalid cursor")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor=garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *AdminHandlerTestSuite) TestChangeRole() {
	targetID := uuid.New()
	url := "/api/admin/users/" + targetID.String() + "/role"
	body := map[string]any{"role": "business"}

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().
			ChangeRole(gomock.Any(), s.adminID, targetID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on an unknown role", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"role": "superadmin"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		tests := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "target missing", commandsError: commands.ErrUserNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "User not found"},
			{name: "self change", commandsError: commands.ErrSelfRoleChange, expectedStatus: http.StatusConflict, expectedMsg: "own role"},
			{name: "business promotion", commandsError: commands.ErrBusinessPromotion, expectedStatus: http.StatusConflict, expectedMsg: "cannot be promoted"},
			{name: "last admin", commandsError: commands.ErrLastAdmin, expectedStatus: http.StatusConflict, expectedMsg: "one admin must remain"},
		}
		for _, tc := range tests {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					ChangeRole(gomock.Any(), s.adminID, targetID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestCompanyReport() {
	url := "/api/admin/reports/companies"

	s.Run("success: returns per-company totals", func() {
		rows := []*queries.CompanySalesRow{
			{
				BusinessID:   uuid.New(),
				BusinessName: "Pupuseria El Buen Gusto",
				CouponsSold:  3,
				GrossSales:   decimal.RequireFromString("18.00"),
				PlatformGain: decimal.RequireFromString("1.80"),
				BusinessGain: decimal.RequireFromString("16.20"),
			},
		}
		s.mockReports.EXPECT().SalesByCompany(gomock.Any()).Return(rows, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.CompanyReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Companies, 1)
		s.Equal(int64(3), response.Companies[0].CouponsSold)
	})
}

func (s *AdminHandlerTestSuite) TestCompanyDetail() {
	businessID := uuid.New()
	url := "/api/admin/reports/companies/" + businessID.String()

	s.Run("success: returns the per-offer breakdown", func() {
		report := &queries.CompanyDetailReport{
			Company: queries.CompanySalesRow{BusinessID: businessID, BusinessName: "Pupuseria El Buen Gusto"},
			Offers:  []*queries.CompanyOfferRow{{OfferID: uuid.New(), Title: "Two pupusas for one", CouponsSold: 2}},
		}
		s.mockReports.EXPECT().CompanyDetail(gomock.Any(), businessID).Return(report, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response queries.CompanyDetailReport
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Offers, 1)
	})

	s.Run("error: 422 for a non-business account", func() {
		s.mockReports.EXPECT().CompanyDetail(gomock.Any(), businessID).
			Return(nil, infra.WrapRepoErr("not a business", errs.New("no rows"), infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not a business account")
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/reports/companies/xyz", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user ID")
	})
}
