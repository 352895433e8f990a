//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"gin-order-admin/internal/domain/coupon"
	"gin-order-admin/internal/handler/api"
	resdto "gin-order-admin/internal/handler/dto/response"
	"gin-order-admin/internal/pkg/errs"
	"gin-order-admin/internal/usecase/commands"
	"gin-order-admin/internal/usecase/queries"
	"gin-order-admin/tests/common/builder"
	"gin-order-admin/tests/common/httptest"
	"gin-order-admin/tests/common/testutil"
	commandsmock "gin-order-admin/tests/mock/commands"
	queriesmock "gin-order-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	mockQueries  *queriesmock.MockCouponQueries
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	handler := api.NewCouponHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/coupons/preview", handler.Preview)
	s.router.GET("/admin/coupons", handler.List)
	s.router.GET("/admin/coupons/:code", handler.Get)
	s.router.POST("/admin/coupons", handler.Create)
	s.router.PATCH("/admin/coupons/:code", handler.Update)
	s.router.PUT("/admin/coupons/:code/active", handler.SetActive)
	s.router.DELETE("/admin/coupons/:code", handler.Delete)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func (s *CouponHandlerTestSuite) TestPreview() {
	s.Run("success: rejection is a 200 with the reason", func() {
		s.mockQueries.EXPECT().Preview(gomock.Any(), "autumn20", gomock.Any()).
			Return(&queries.CouponPreview{Code: "AUTUMN20", Reason: "below_minimum", DiscountAmount: decimal.Zero, Subtotal: decimal.NewFromInt(50)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons/preview",
			map[string]any{"code": "autumn20", "subtotal": "50"}, "")

		var response resdto.CouponPreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Valid)
		s.Equal("below_minimum", response.Reason)
		s.Equal("0.00", response.DiscountAmount)
		s.Equal("50.00", response.Subtotal)
	})

	s.Run("error: unknown code", func() {
		s.mockQueries.EXPECT().Preview(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrCouponNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons/preview",
			map[string]any{"code": "GHOST10", "subtotal": "50"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})

	s.Run("error: negative subtotal", func() {
		s.mockQueries.EXPECT().Preview(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(queries.ErrNegativeSubtotal, errs.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons/preview",
			map[string]any{"code": "AUTUMN20", "subtotal": "-1"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Subtotal cannot be negative")
	})

	s.Run("error: missing code", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons/preview",
			map[string]any{"subtotal": "10"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *CouponHandlerTestSuite) TestList() {
	s.Run("success: page with cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.CouponView{builder.NewCouponBuilder().BuildView()}, &queries.Cursor{After: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/coupons?limit=5&cursor=abc", nil, "")

		var response resdto.CouponPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal("AUTUMN20", response.Items[0].Code)
		s.Equal("20.00", response.Items[0].DiscountValue)
		s.Require().NotNil(response.Items[0].MaxDiscountAmount)
		s.Equal("30.00", *response.Items[0].MaxDiscountAmount)
		s.Equal("next", response.NextCursor)
	})

	s.Run("error: limit out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/coupons?limit=500", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: bad cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Mark(errors.New("cursor is not base64url"), queries.ErrInvalidCursor))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/coupons?cursor=%25%25", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *CouponHandlerTestSuite) TestCreate() {
	b := builder.NewCouponBuilder()
	reqBody := b.BuildCreateDTO()

	s.Run("success: 201 with the stored coupon", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return("AUTUMN20", nil)
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), "AUTUMN20").Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/coupons", reqBody, "")

		var response resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("active", response.Status)
		s.Equal(0, response.UsedCount)
	})

	s.Run("error: 400 on malformed bodies", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing code", mutate: testutil.Field("code", nil)},
			{name: "code too short", mutate: testutil.Field("code", "AB")},
			{name: "unknown discount type", mutate: testutil.Field("discountType", "bogo")},
			{name: "zero usage limit", mutate: testutil.Field("usageLimit", 0)},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/coupons",
					testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"duplicate code", commands.ErrCouponCodeTaken, http.StatusConflict, "already exists"},
			{"domain validation", errs.Mark(coupon.ErrInvalidDiscountPercent, errs.ErrDomainValidation), http.StatusBadRequest, "Invalid coupon"},
			{"unexpected", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/coupons", reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CouponHandlerTestSuite) TestUpdateAndSetActive() {
	s.Run("success: update returns the fresh coupon", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "AUTUMN20", gomock.Any()).Return(nil)
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), "AUTUMN20").Return(builder.NewCouponBuilder().BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/coupons/AUTUMN20",
			map[string]any{"description": "Autumn sale, extended"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: usage limit below usage", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "AUTUMN20", gomock.Any()).
			Return(errs.Mark(coupon.ErrUsageLimitBelowUsed, errs.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/coupons/AUTUMN20",
			map[string]any{"usageLimit": 1}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Usage limit cannot be lower")
	})

	s.Run("success: deactivate", func() {
		s.mockCommands.EXPECT().SetActive(gomock.Any(), "AUTUMN20", false).Return(nil)
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), "AUTUMN20").Return(builder.NewCouponBuilder().AsInactive().BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/coupons/AUTUMN20/active",
			map[string]any{"active": false}, "")

		var response resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.IsActive)
	})

	s.Run("error: active flag is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/coupons/AUTUMN20/active",
			map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: unknown coupon", func() {
		s.mockCommands.EXPECT().SetActive(gomock.Any(), "GHOST10", true).Return(commands.ErrCouponNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/coupons/GHOST10/active",
			map[string]any{"active": true}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})
}

func (s *CouponHandlerTestSuite) TestDelete() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "AUTUMN20").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/coupons/AUTUMN20", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: coupon already used", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "AUTUMN20").Return(commands.ErrCouponInUse)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/coupons/AUTUMN20", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "deactivate it instead")
	})
}
