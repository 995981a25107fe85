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

type CouponHandler struct {
	engine *usecase.Engine
}

func NewCouponHandler(engine *usecase.Engine) *CouponHandler {
	return &CouponHandler{engine: engine}
}

// @Summary Apply coupon
// @Description Validate and apply a coupon code, reconciling immediately
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.ApplyCouponRequest true "Coupon code"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /coupons [post]
func (h *CouponHandler) Apply(c *gin.Context) {
	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.engine.ApplyCoupon(c.Request.Context(), req.Code); err != nil {
		if errors.Is(err, errs.ErrInvalidCoupon) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid coupon code"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply coupon"})
		return
	}

	c.JSON(http.StatusOK, h.snapshot())
}

// @Summary Remove coupon
// @Tags coupons
// @Produce json
// @Param code path string true "Coupon code"
// @Success 200 {object} resdto.CartResponse
// @Router /coupons/{code} [delete]
func (h *CouponHandler) Remove(c *gin.Context) {
	h.engine.RemoveCoupon(c.Param("code"))
	c.JSON(http.StatusOK, h.snapshot())
}

func (h *CouponHandler) snapshot() resdto.CartResponse {
	return resdto.FromCart(h.engine.Cart().Lines(), h.engine.Cart().Subtotal(), h.engine, usecase.NoticeNone)
}
