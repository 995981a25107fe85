package api

import (
	"net/http"

	reqdto "pos-pricing-engine/internal/handler/dto/request"
	resdto "pos-pricing-engine/internal/handler/dto/response"
	"pos-pricing-engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	engine *usecase.Engine
}

func NewSessionHandler(engine *usecase.Engine) *SessionHandler {
	return &SessionHandler{engine: engine}
}

// @Summary Register login
// @Description Open a register session binding this terminal to a store
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterLoginRequest true "Login"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /session [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var req reqdto.RegisterLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.engine.Login(c.Request.Context(), req.ToDomain()); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Register login failed"})
		return
	}

	c.JSON(http.StatusCreated, h.status())
}

// @Summary Session status
// @Description Current session state; polling this is the expiry checkpoint
// @Tags session
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Router /session [get]
func (h *SessionHandler) Status(c *gin.Context) {
	// The poll itself is the checkpoint; an expired session flips the
	// state and the response tells the UI to force re-authentication.
	_ = h.engine.Sessions().Check()
	c.JSON(http.StatusOK, h.status())
}

// @Summary End session
// @Description Explicit end action: best-effort remote call, unconditional local teardown
// @Tags session
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Router /session [delete]
func (h *SessionHandler) End(c *gin.Context) {
	h.engine.EndSession(c.Request.Context())
	c.JSON(http.StatusOK, h.status())
}

func (h *SessionHandler) status() resdto.SessionResponse {
	guard := h.engine.Sessions()
	if sess, ok := guard.Current(); ok {
		return resdto.FromSession(guard.State(), &sess)
	}
	return resdto.FromSession(guard.State(), nil)
}
