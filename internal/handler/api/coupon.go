package api

import (
	"errors"
	"net/http"

	"gin-order-admin/internal/domain/coupon"
	reqdto "gin-order-admin/internal/handler/dto/request"
	resdto "gin-order-admin/internal/handler/dto/response"
	"gin-order-admin/internal/handler/httperr"
	"gin-order-admin/internal/pkg/errs"
	"gin-order-admin/internal/usecase/commands"
	"gin-order-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary Preview coupon
// @Description Evaluates a code against a subtotal without consuming a use
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.CouponPreviewRequest true "Code and subtotal"
// @Success 200 {object} resdto.CouponPreviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/coupons/preview [post]
func (h *CouponHandler) Preview(c *gin.Context) {
	var req reqdto.CouponPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	preview, err := h.q.Preview(c.Request.Context(), req.Code, req.Subtotal)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrNegativeSubtotal):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Subtotal cannot be negative", nil)
			return
		case errors.Is(err, queries.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponPreview(preview))
}

// @Summary List coupons
// @Tags admin-coupons
// @Produce json
// @Security BearerAuth
// @Param q query string false "Code or description"
// @Param active query bool false "Filter by the active flag"
// @Param limit query int false "Page size (max 200)"
// @Param cursor query string false "Cursor from the previous page"
// @Success 200 {object} resdto.CouponPageResponse
// @Router /api/admin/coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	var query reqdto.ListCouponsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	items, next, err := h.q.List(c.Request.Context(), query.ToFilters(), query.ToCursor(), query.Limit)
	if err != nil {
		abortListError(c, err)
		return
	}
	res, err := resdto.FromCouponList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get coupon
// @Tags admin-coupons
// @Produce json
// @Security BearerAuth
// @Param code path string true "Coupon code"
// @Success 200 {object} resdto.CouponResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/coupons/{code} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	h.respondWithCoupon(c, c.Param("code"), http.StatusOK)
}

// @Summary Create coupon
// @Tags admin-coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Coupon"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	code, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		abortCouponWriteError(c, err)
		return
	}
	h.respondWithCoupon(c, code, http.StatusCreated)
}

// @Summary Update coupon
// @Description Partial update. Use the clear* flags to remove optional bounds.
// @Tags admin-coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Coupon code"
// @Param request body reqdto.UpdateCouponRequest true "Changes"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/coupons/{code} [patch]
func (h *CouponHandler) Update(c *gin.Context) {
	var req reqdto.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	code := c.Param("code")
	if err := h.cmds.Update(c.Request.Context(), code, req); err != nil {
		abortCouponWriteError(c, err)
		return
	}
	h.respondWithCoupon(c, code, http.StatusOK)
}

// @Summary Activate or deactivate coupon
// @Tags admin-coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Coupon code"
// @Param request body reqdto.SetCouponActiveRequest true "Active flag"
// @Success 200 {object} resdto.CouponResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/coupons/{code}/active [put]
func (h *CouponHandler) SetActive(c *gin.Context) {
	var req reqdto.SetCouponActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	code := c.Param("code")
	if err := h.cmds.SetActive(c.Request.Context(), code, *req.Active); err != nil {
		abortCouponWriteError(c, err)
		return
	}
	h.respondWithCoupon(c, code, http.StatusOK)
}

// @Summary Delete coupon
// @Description Only coupons no order has used can be deleted; deactivate the others.
// @Tags admin-coupons
// @Security BearerAuth
// @Param code path string true "Coupon code"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/coupons/{code} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("code")); err != nil {
		abortCouponWriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CouponHandler) respondWithCoupon(c *gin.Context, code string, status int) {
	view, err := h.q.GetByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, queries.ErrCouponNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	res, err := resdto.FromCouponView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}

func abortCouponWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCouponNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
	case errors.Is(err, commands.ErrCouponCodeTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "Coupon code already exists", nil)
	case errors.Is(err, commands.ErrCouponInUse):
		httperr.AbortWithError(c, http.StatusConflict, err, "Coupon has been used by orders, deactivate it instead", nil)
	case errors.Is(err, coupon.ErrUsageLimitBelowUsed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Usage limit cannot be lower than the current usage count", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon", gin.H{"reason": rootMessage(err)})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
