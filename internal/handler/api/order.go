package api

import (
	"errors"
	"net/http"

	"gin-order-admin/internal/domain/coupon"
	"gin-order-admin/internal/domain/giftcard"
	reqdto "gin-order-admin/internal/handler/dto/request"
	resdto "gin-order-admin/internal/handler/dto/response"
	"gin-order-admin/internal/handler/httperr"
	"gin-order-admin/internal/pkg/errs"
	"gin-order-admin/internal/usecase/commands"
	"gin-order-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "Idempotent-Replayed"
	maxIdempotencyKeyLen = 128
)

var errIdempotencyKeyTooLong = errors.New("idempotency key too long")

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Place order
// @Description Checkout a cart with an optional coupon and gift card. A supplied coupon or gift card that cannot be applied fails the order.
// @Tags orders
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Replays the first result for repeated submissions"
// @Param request body reqdto.PlaceOrderRequest true "Checkout request"
// @Success 201 {object} resdto.OrderResponse
// @Success 200 {object} resdto.OrderResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	key := c.GetHeader(idempotencyKeyHeader)
	if len(key) > maxIdempotencyKeyLen {
		httperr.AbortWithError(c, http.StatusBadRequest, errIdempotencyKeyTooLong, "Idempotency-Key must be at most 128 characters", nil)
		return
	}

	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.PlaceOrder(c.Request.Context(), req, key)
	if err != nil {
		abortCheckoutError(c, err)
		return
	}

	view, err := h.q.GetByNumber(c.Request.Context(), result.OrderNumber)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order", nil)
		return
	}
	res, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	if result.IsReplayed {
		c.Header(replayedHeader, "true")
		c.JSON(http.StatusOK, res)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Get order
// @Description Look up an order by its number
// @Tags orders
// @Produce json
// @Param orderNumber path string true "Order number"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{orderNumber} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	view, err := h.q.GetByNumber(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	res, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func abortCheckoutError(c *gin.Context, err error) {
	switch {
	case coupon.IsRejection(err):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Coupon cannot be applied",
			gin.H{"field": "couponCode", "reason": coupon.RejectionReason(err)})
	case giftcard.IsRejection(err):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Gift card cannot be applied",
			gin.H{"field": "giftCardNumber", "reason": giftcard.RejectionReason(err)})
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order", gin.H{"reason": rootMessage(err)})
	case errors.Is(err, commands.ErrCheckoutConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Checkout conflicted with another order, please try again", nil)
	case errors.Is(err, errs.ErrIdempotencyInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Request with this Idempotency-Key is still being processed", nil)
	case errors.Is(err, errs.ErrIdempotencyKeyReused):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Idempotency-Key was already used with a different request", nil)
	case errors.Is(err, commands.ErrIdempotencyUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Checkout is temporarily unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
