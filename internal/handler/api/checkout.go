package api

import (
	"errors"
	"net/http"

	reqdto "pos-pricing-engine/internal/handler/dto/request"
	resdto "pos-pricing-engine/internal/handler/dto/response"
	"pos-pricing-engine/internal/pkg/errs"
	"pos-pricing-engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	engine *usecase.Engine
}

func NewCheckoutHandler(engine *usecase.Engine) *CheckoutHandler {
	return &CheckoutHandler{engine: engine}
}

// @Summary Checkout
// @Description Submit the sale against the last settled quote
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Tender"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tender, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.engine.Checkout(c.Request.Context(), tender, req.CustomerID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSessionExpired), errors.Is(err, errs.ErrNoSession):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Register session required"})
		case errors.Is(err, errs.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		case errors.Is(err, errs.ErrQuoteNotSettled):
			c.JSON(http.StatusConflict, gin.H{"error": "Waiting for an authoritative quote"})
		case errors.Is(err, errs.ErrInsufficientPayment):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Tendered cash is below the total"})
		case errors.Is(err, errs.ErrCheckoutFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Sale was rejected; cart preserved"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}
