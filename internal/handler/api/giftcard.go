package api

import (
	"errors"
	"net/http"

	reqdto "gin-order-admin/internal/handler/dto/request"
	resdto "gin-order-admin/internal/handler/dto/response"
	"gin-order-admin/internal/handler/httperr"
	"gin-order-admin/internal/pkg/errs"
	"gin-order-admin/internal/usecase/commands"
	"gin-order-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GiftCardHandler struct {
	cmds commands.GiftCardCommands
	q    queries.GiftCardQueries
}

func NewGiftCardHandler(cmds commands.GiftCardCommands, q queries.GiftCardQueries) *GiftCardHandler {
	return &GiftCardHandler{cmds: cmds, q: q}
}

// @Summary Gift card balance
// @Tags gift-cards
// @Produce json
// @Param number path string true "Gift card number"
// @Success 200 {object} resdto.GiftCardBalanceResponse
// @Failure 404 {object} httperr.Response
// @Router /api/gift-cards/{number}/balance [get]
func (h *GiftCardHandler) Balance(c *gin.Context) {
	balance, err := h.q.Balance(c.Request.Context(), c.Param("number"))
	if err != nil {
		if errors.Is(err, queries.ErrGiftCardNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Gift card not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGiftCardBalance(balance))
}

// @Summary List gift cards
// @Tags admin-gift-cards
// @Produce json
// @Security BearerAuth
// @Param status query string false "active or disabled"
// @Param limit query int false "Page size (max 200)"
// @Param cursor query string false "Cursor from the previous page"
// @Success 200 {object} resdto.GiftCardPageResponse
// @Router /api/admin/gift-cards [get]
func (h *GiftCardHandler) List(c *gin.Context) {
	var query reqdto.ListGiftCardsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	items, next, err := h.q.List(c.Request.Context(), query.ToFilters(), query.ToCursor(), query.Limit)
	if err != nil {
		abortListError(c, err)
		return
	}
	res, err := resdto.FromGiftCardList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get gift card
// @Tags admin-gift-cards
// @Produce json
// @Security BearerAuth
// @Param number path string true "Gift card number"
// @Success 200 {object} resdto.GiftCardResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/gift-cards/{number} [get]
func (h *GiftCardHandler) Get(c *gin.Context) {
	h.respondWithGiftCard(c, c.Param("number"), http.StatusOK)
}

// @Summary Issue gift card
// @Description The number is generated unless supplied
// @Tags admin-gift-cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueGiftCardRequest true "Gift card"
// @Success 201 {object} resdto.GiftCardResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/gift-cards [post]
func (h *GiftCardHandler) Issue(c *gin.Context) {
	var req reqdto.IssueGiftCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	number, err := h.cmds.Issue(c.Request.Context(), req)
	if err != nil {
		abortGiftCardWriteError(c, err)
		return
	}
	h.respondWithGiftCard(c, number, http.StatusCreated)
}

// @Summary Enable or disable gift card
// @Tags admin-gift-cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param number path string true "Gift card number"
// @Param request body reqdto.SetGiftCardStatusRequest true "Status"
// @Success 200 {object} resdto.GiftCardResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/gift-cards/{number}/status [put]
func (h *GiftCardHandler) SetStatus(c *gin.Context) {
	var req reqdto.SetGiftCardStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	number := c.Param("number")
	if err := h.cmds.SetStatus(c.Request.Context(), number, req); err != nil {
		abortGiftCardWriteError(c, err)
		return
	}
	h.respondWithGiftCard(c, number, http.StatusOK)
}

func (h *GiftCardHandler) respondWithGiftCard(c *gin.Context, number string, status int) {
	view, err := h.q.GetByNumber(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, queries.ErrGiftCardNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Gift card not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	res, err := resdto.FromGiftCardView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}

func abortGiftCardWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrGiftCardNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Gift card not found", nil)
	case errors.Is(err, commands.ErrGiftCardNumberTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "Gift card number already exists", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid gift card", gin.H{"reason": rootMessage(err)})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
