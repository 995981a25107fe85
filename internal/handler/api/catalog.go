package api

import (
	"errors"
	"net/http"

	reqdto "pos-pricing-engine/internal/handler/dto/request"
	resdto "pos-pricing-engine/internal/handler/dto/response"
	"pos-pricing-engine/internal/handler/httperr"
	"pos-pricing-engine/internal/pkg/errs"
	"pos-pricing-engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	engine *usecase.Engine
}

func NewCatalogHandler(engine *usecase.Engine) *CatalogHandler {
	return &CatalogHandler{engine: engine}
}

// @Summary List stores
// @Tags catalog
// @Produce json
// @Success 200 {array} usecase.StoreInfo
// @Router /stores [get]
func (h *CatalogHandler) Stores(c *gin.Context) {
	stores, err := h.engine.Stores(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Store directory unavailable", nil)
		return
	}
	c.JSON(http.StatusOK, stores)
}

// @Summary Select store
// @Description Lock the terminal to a store and load its discount rules
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.SelectStoreRequest true "Store"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /stores/select [post]
func (h *CatalogHandler) SelectStore(c *gin.Context) {
	var req reqdto.SelectStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.engine.SelectStore(c.Request.Context(), req.StoreID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Store is not accessible"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"store_id": req.StoreID})
}

// @Summary Search catalog
// @Tags catalog
// @Produce json
// @Param query query string false "Search text"
// @Success 200 {array} resdto.CatalogItemResponse
// @Failure 409 {object} map[string]string
// @Router /catalog/search [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	items, err := h.engine.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		if errors.Is(err, errs.ErrStoreNotSelected) {
			c.JSON(http.StatusConflict, gin.H{"error": "Select a store first"})
			return
		}
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Catalog unavailable", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItems(items, h.engine))
}

// @Summary Barcode lookup
// @Description Resolve a scanned barcode; an unmatched barcode is a message, not an error
// @Tags catalog
// @Produce json
// @Param code path string true "Barcode"
// @Success 200 {object} resdto.CatalogItemResponse
// @Success 204 "No matching item"
// @Router /catalog/barcode/{code} [get]
func (h *CatalogHandler) Barcode(c *gin.Context) {
	item, err := h.engine.LookupBarcode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, errs.ErrStoreNotSelected) {
			c.JSON(http.StatusConflict, gin.H{"error": "Select a store first"})
			return
		}
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Barcode lookup unavailable", nil)
		return
	}
	if item == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItem(*item, h.engine))
}

// @Summary Cross-store stock
// @Tags catalog
// @Produce json
// @Param id path string true "Variant ID"
// @Success 200 {object} resdto.StockLevelsResponse
// @Router /variants/{id}/stock [get]
func (h *CatalogHandler) Stock(c *gin.Context) {
	variantID := c.Param("id")
	levels, err := h.engine.StockByStore(c.Request.Context(), variantID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Stock lookup unavailable", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.StockLevelsResponse{VariantID: variantID, Levels: levels})
}

// @Summary Get search view preference
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]string
// @Router /prefs/search-view [get]
func (h *CatalogHandler) SearchView(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"view": h.engine.SearchView(c.Request.Context())})
}

// @Summary Set search view preference
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.SearchViewRequest true "View"
// @Success 200 {object} map[string]string
// @Router /prefs/search-view [put]
func (h *CatalogHandler) SetSearchView(c *gin.Context) {
	var req reqdto.SearchViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	h.engine.SetSearchView(c.Request.Context(), req.View)
	c.JSON(http.StatusOK, gin.H{"view": req.View})
}
