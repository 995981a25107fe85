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

type CartHandler struct {
	engine *usecase.Engine
}

func NewCartHandler(engine *usecase.Engine) *CartHandler {
	return &CartHandler{engine: engine}
}

// @Summary Get cart
// @Description Current cart snapshot with badges, previews and quote state
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot(usecase.NoticeNone))
}

// @Summary Add item
// @Description Add a catalog item to the cart (scan or tap)
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddItemRequest true "Catalog item payload"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed item payload"})
		return
	}

	if err := h.engine.AddItem(c.Request.Context(), item); err != nil {
		if errors.Is(err, errs.ErrOutOfStock) {
			c.JSON(http.StatusConflict, gin.H{"error": "Item is out of stock"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
		return
	}

	c.JSON(http.StatusOK, h.snapshot(usecase.NoticeNone))
}

// @Summary Update line quantity
// @Description Adjust a cart line by delta or set its quantity outright
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Variant ID"
// @Param request body reqdto.UpdateLineRequest true "Quantity change"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{id} [patch]
func (h *CartHandler) UpdateLine(c *gin.Context) {
	var req reqdto.UpdateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide exactly one of delta or quantity"})
		return
	}

	itemID := c.Param("id")
	var (
		notice usecase.Notice
		err    error
	)
	if req.Delta != nil {
		notice, err = h.engine.ChangeQuantity(c.Request.Context(), itemID, *req.Delta)
	} else {
		notice, err = h.engine.SetQuantity(c.Request.Context(), itemID, *req.Quantity)
	}
	if err != nil {
		if errors.Is(err, errs.ErrLineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart line not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update line"})
		return
	}

	c.JSON(http.StatusOK, h.snapshot(notice))
}

// @Summary Remove line
// @Tags cart
// @Produce json
// @Param id path string true "Variant ID"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveLine(c *gin.Context) {
	h.engine.RemoveLine(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, h.snapshot(usecase.NoticeNone))
}

// @Summary Clear cart
// @Description Empty the cart, drop applied coupons and the persisted copy
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	h.engine.ClearCart(c.Request.Context())
	c.JSON(http.StatusOK, h.snapshot(usecase.NoticeNone))
}

func (h *CartHandler) snapshot(notice usecase.Notice) resdto.CartResponse {
	return resdto.FromCart(h.engine.Cart().Lines(), h.engine.Cart().Subtotal(), h.engine, notice)
}
