//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pos-pricing-engine/internal/domain/session"
	"pos-pricing-engine/internal/pkg/clock"
	"pos-pricing-engine/internal/pkg/errs"
	"pos-pricing-engine/internal/usecase"
	usecasemock "pos-pricing-engine/tests/mock/usecase"
)

var testLoginReq = usecase.RegisterLoginRequest{
	StoreID:    "store-1",
	TerminalID: "term-1",
	Operator:   "alex",
	Passcode:   "0000",
}

func TestSessionGuardLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := usecasemock.NewMockSessionGateway(ctrl)
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	guard := usecase.NewSessionGuard(gw, clk, testLogger())

	// No session yet.
	require.ErrorIs(t, guard.Check(), errs.ErrNoSession)
	assert.Equal(t, session.StateNone, guard.State())

	sess := session.RegisterSession{
		RegisterID: "reg-1",
		StoreID:    "store-1",
		ExpiresAt:  now.Add(8 * time.Hour),
	}
	gw.EXPECT().RegisterLogin(gomock.Any(), testLoginReq).Return(sess, nil)

	got, err := guard.Login(context.Background(), testLoginReq)
	require.NoError(t, err)
	assert.Equal(t, "reg-1", got.RegisterID)
	assert.Equal(t, session.StateActive, guard.State())
	require.NoError(t, guard.Check())

	current, ok := guard.Current()
	require.True(t, ok)
	assert.Equal(t, "reg-1", current.RegisterID)
}

func TestSessionGuardExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := usecasemock.NewMockSessionGateway(ctrl)
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	guard := usecase.NewSessionGuard(gw, clk, testLogger())

	sess := session.RegisterSession{RegisterID: "reg-1", StoreID: "store-1", ExpiresAt: now.Add(time.Hour)}
	gw.EXPECT().RegisterLogin(gomock.Any(), gomock.Any()).Return(sess, nil)
	_, err := guard.Login(context.Background(), testLoginReq)
	require.NoError(t, err)

	// Expiry is only noticed when a checkpoint polls, not on a timer.
	clk.Add(2 * time.Hour)
	assert.Equal(t, session.StateActive, guard.State())

	require.ErrorIs(t, guard.Check(), errs.ErrSessionExpired)
	assert.Equal(t, session.StateExpired, guard.State())

	_, ok := guard.Current()
	assert.False(t, ok)

	// Subsequent checkpoints keep reporting the expiry until re-login.
	require.ErrorIs(t, guard.Check(), errs.ErrSessionExpired)
}

func TestSessionGuardEnd(t *testing.T) {
	t.Run("remote call is best effort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := usecasemock.NewMockSessionGateway(ctrl)
		now := time.Now()
		guard := usecase.NewSessionGuard(gw, clock.NewMockClock(now), testLogger())

		sess := session.RegisterSession{RegisterID: "reg-1", ExpiresAt: now.Add(time.Hour)}
		gw.EXPECT().RegisterLogin(gomock.Any(), gomock.Any()).Return(sess, nil)
		_, err := guard.Login(context.Background(), testLoginReq)
		require.NoError(t, err)

		gw.EXPECT().EndSession(gomock.Any(), "reg-1").Return(errs.New("network gone"))

		guard.End(context.Background())
		assert.Equal(t, session.StateNone, guard.State())
		_, ok := guard.Current()
		assert.False(t, ok)
	})

	t.Run("ending without a session skips the remote call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := usecasemock.NewMockSessionGateway(ctrl)
		guard := usecase.NewSessionGuard(gw, clock.NewMockClock(time.Now()), testLogger())

		guard.End(context.Background())
		assert.Equal(t, session.StateNone, guard.State())
	})
}


