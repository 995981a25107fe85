package response

import (
	"time"

	"pos-pricing-engine/internal/domain/session"
)

type SessionResponse struct {
	State      string     `json:"state"`
	RegisterID string     `json:"register_id,omitempty"`
	StoreID    string     `json:"store_id,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

func FromSession(state session.State, sess *session.RegisterSession) SessionResponse {
	resp := SessionResponse{State: string(state)}
	if sess != nil {
		resp.RegisterID = sess.RegisterID
		resp.StoreID = sess.StoreID
		expires := sess.ExpiresAt
		resp.ExpiresAt = &expires
	}
	return resp
}
