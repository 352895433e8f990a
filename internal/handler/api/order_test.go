//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"gin-order-admin/internal/domain/coupon"
	"gin-order-admin/internal/domain/giftcard"
	"gin-order-admin/internal/handler/api"
	reqdto "gin-order-admin/internal/handler/dto/request"
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
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const orderNumber = "ORD-20261015-ABCDEF12"

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	handler := api.NewOrderHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/orders", handler.PlaceOrder)
	s.router.GET("/orders/:orderNumber", handler.GetOrder)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) placeOrder(body any, key string) *httptest.Recorder {
	if key == "" {
		return httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", body, "")
	}
	return httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/orders", body,
		map[string]string{"Idempotency-Key": key})
}

func (s *OrderHandlerTestSuite) TestPlaceOrder() {
	b := builder.NewOrderBuilder().WithCoupon("AUTUMN20").WithGiftCard("GC-1A2B-3C4D-5E6F")
	reqBody := b.BuildDTO()
	view := b.BuildView(orderNumber, "30", "50")

	s.Run("success: 201 with the stored totals", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), "").
			DoAndReturn(func(_ context.Context, req reqdto.PlaceOrderRequest, _ string) (*commands.PlaceOrderResult, error) {
				s.Equal("AUTUMN20", *req.CouponCode)
				s.Len(req.Items, 1)
				return &commands.PlaceOrderResult{OrderNumber: orderNumber}, nil
			})
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), orderNumber).Return(view, nil)

		rec := s.placeOrder(reqBody, "")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(orderNumber, response.OrderNumber)
		s.Equal("200.00", response.Subtotal)
		s.Equal("30.00", response.DiscountAmount)
		s.Equal("50.00", response.GiftCardAmount)
		s.Equal("130.00", response.FinalAmount)
		s.Empty(rec.Header().Get("Idempotent-Replayed"))
	})

	s.Run("success: replay answers 200 with the replay header", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), "key-1").
			Return(&commands.PlaceOrderResult{OrderNumber: orderNumber, IsReplayed: true}, nil)
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), orderNumber).Return(view, nil)

		rec := s.placeOrder(reqBody, "key-1")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: oversized idempotency key", func() {
		rec := s.placeOrder(reqBody, strings.Repeat("k", 129))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
	})

	s.Run("error: 400 on malformed bodies", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing items", mutate: testutil.Field("items", nil)},
			{name: "empty items", mutate: testutil.Field("items", []any{})},
			{name: "missing customer", mutate: testutil.Field("customer", nil)},
			{name: "missing payment method", mutate: testutil.Field("paymentMethod", nil)},
			{name: "invalid customer email", mutate: func(m map[string]any) {
				m["customer"].(map[string]any)["email"] = "not-an-email"
			}},
			{name: "zero quantity", mutate: func(m map[string]any) {
				m["items"].([]any)[0].(map[string]any)["quantity"] = 0
			}},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := s.placeOrder(testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: rejected coupon carries field and reason", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), "").Return(nil, coupon.ErrCouponExpired)

		rec := s.placeOrder(reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Coupon cannot be applied")
		httptest.AssertErrorDetail(s.T(), rec, map[string]any{"field": "couponCode", "reason": "expired"})
	})

	s.Run("error: rejected gift card carries field and reason", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), "").Return(nil, giftcard.ErrGiftCardZeroBalance)

		rec := s.placeOrder(reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Gift card cannot be applied")
		httptest.AssertErrorDetail(s.T(), rec, map[string]any{"field": "giftCardNumber", "reason": "zero_balance"})
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"domain validation", errs.Mark(errors.New("invalid payment method"), errs.ErrDomainValidation), http.StatusBadRequest, "Invalid order"},
			{"commit conflict", errs.Mark(commands.ErrCommitConflict, commands.ErrCheckoutConflict), http.StatusConflict, "Checkout conflicted"},
			{"key in flight", errs.ErrIdempotencyInProgress, http.StatusConflict, "still being processed"},
			{"key reused", errs.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity, "different request"},
			{"store down", errs.Mark(errors.New("dial tcp"), commands.ErrIdempotencyUnavailable), http.StatusServiceUnavailable, "temporarily unavailable"},
			{"unexpected", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.commandsError)

				rec := s.placeOrder(reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *OrderHandlerTestSuite) TestGetOrder() {
	s.Run("success", func() {
		view := builder.NewOrderBuilder().BuildView(orderNumber, "0", "0")
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), orderNumber).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+orderNumber, nil, "")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("210.00", response.FinalAmount)
		s.Require().Len(response.Items, 1)
		s.Equal("200.00", response.Items[0].LineTotal)
	})

	s.Run("error: unknown number", func() {
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), gomock.Any()).Return(nil, queries.ErrOrderNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/ORD-20261015-00000000", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}
