package usecase

import (
	"context"
	"log/slog"
	"sync"

	"pos-pricing-engine/internal/domain/session"
	"pos-pricing-engine/internal/pkg/clock"
	"pos-pricing-engine/internal/pkg/errs"
)

// SessionGuard tracks the register session and its expiry. Expiry is a
// polling comparison run at session-critical checkpoints, not a
// scheduled timer. An expired session forces re-authentication but
// never clears the cart by itself; only the explicit End action does.
type SessionGuard struct {
	mu      sync.Mutex
	gateway SessionGateway
	clock   clock.Clock
	logger  *slog.Logger

	sess  *session.RegisterSession
	state session.State
}

func NewSessionGuard(gateway SessionGateway, clk clock.Clock, logger *slog.Logger) *SessionGuard {
	return &SessionGuard{
		gateway: gateway,
		clock:   clk,
		logger:  logger,
		state:   session.StateNone,
	}
}

func (g *SessionGuard) Login(ctx context.Context, req RegisterLoginRequest) (session.RegisterSession, error) {
	sess, err := g.gateway.RegisterLogin(ctx, req)
	if err != nil {
		return session.RegisterSession{}, errs.Wrap(err, "register login")
	}

	g.mu.Lock()
	g.sess = &sess
	g.state = session.StateActive
	g.mu.Unlock()
	return sess, nil
}

// Check is the checkpoint expiry poll. On expiry it clears the session
// and reports ErrSessionExpired so the caller can force
// re-authentication.
func (g *SessionGuard) Check() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sess == nil {
		if g.state == session.StateExpired {
			return errs.ErrSessionExpired
		}
		return errs.ErrNoSession
	}
	if g.sess.ExpiredAt(g.clock.Now()) {
		g.sess = nil
		g.state = session.StateExpired
		return errs.ErrSessionExpired
	}
	return nil
}

func (g *SessionGuard) Current() (session.RegisterSession, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sess == nil {
		return session.RegisterSession{}, false
	}
	return *g.sess, true
}

func (g *SessionGuard) State() session.State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// End performs the explicit end-session action. The remote call is
// best effort (it is also attempted on page unload, when the network
// may already be gone); local state is cleared unconditionally.
func (g *SessionGuard) End(ctx context.Context) {
	g.mu.Lock()
	sess := g.sess
	g.sess = nil
	g.state = session.StateNone
	g.mu.Unlock()

	if sess == nil {
		return
	}
	if err := g.gateway.EndSession(ctx, sess.RegisterID); err != nil {
		g.logger.Warn("best-effort end-session call failed", "register_id", sess.RegisterID, "error", err)
	}
}
