package api

import (
	"errors"
	"fmt"
	"net/http"

	reqdto "gin-order-admin/internal/handler/dto/request"
	resdto "gin-order-admin/internal/handler/dto/response"
	"gin-order-admin/internal/handler/export"
	"gin-order-admin/internal/handler/httperr"
	"gin-order-admin/internal/pkg/clock"
	"gin-order-admin/internal/pkg/errs"
	"gin-order-admin/internal/usecase/commands"
	"gin-order-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminOrderHandler struct {
	cmds  commands.OrderCommands
	q     queries.OrderQueries
	clock clock.Clock
}

func NewAdminOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries, clk clock.Clock) *AdminOrderHandler {
	return &AdminOrderHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary List orders
// @Description Newest first, keyset paginated
// @Tags admin-orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, confirmed, completed or cancelled"
// @Param q query string false "Order number, customer name or email"
// @Param from query string false "YYYY-MM-DD"
// @Param until query string false "YYYY-MM-DD, inclusive"
// @Param limit query int false "Page size (max 200)"
// @Param cursor query string false "Cursor from the previous page"
// @Success 200 {object} resdto.OrderPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/orders [get]
func (h *AdminOrderHandler) List(c *gin.Context) {
	var query reqdto.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	items, next, err := h.q.List(c.Request.Context(), query.ToFilters(), query.ToCursor(), query.Limit)
	if err != nil {
		abortListError(c, err)
		return
	}
	res, err := resdto.FromOrderList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get order
// @Tags admin-orders
// @Produce json
// @Security BearerAuth
// @Param orderNumber path string true "Order number"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/orders/{orderNumber} [get]
func (h *AdminOrderHandler) Get(c *gin.Context) {
	view, err := h.q.GetByNumber(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		if errors.Is(err, queries.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	res, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update order status
// @Tags admin-orders
// @Accept json
// @Security BearerAuth
// @Param orderNumber path string true "Order number"
// @Param request body reqdto.UpdateOrderStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/orders/{orderNumber}/status [patch]
func (h *AdminOrderHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	err := h.cmds.UpdateStatus(c.Request.Context(), c.Param("orderNumber"), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Export orders
// @Description Same filters as the listing, as an .xlsx workbook
// @Tags admin-orders
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param status query string false "Order status"
// @Param q query string false "Search text"
// @Param from query string false "YYYY-MM-DD"
// @Param until query string false "YYYY-MM-DD, inclusive"
// @Success 200 {file} file
// @Failure 400 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Router /api/admin/orders/export [get]
func (h *AdminOrderHandler) Export(c *gin.Context) {
	var query reqdto.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	views, err := h.q.Export(c.Request.Context(), query.ToFilters())
	if err != nil {
		if errors.Is(err, queries.ErrExportTooLarge) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Too many orders to export, narrow the filters", nil)
			return
		}
		abortListError(c, err)
		return
	}

	filename := fmt.Sprintf("orders-%s.xlsx", h.clock.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", export.ContentType)
	c.Status(http.StatusOK)
	if err := export.WriteOrders(c.Writer, views); err != nil {
		// headers are already out; the client sees a truncated body
		_ = c.Error(errs.Wrap(err, "failed to write order export"))
	}
}
