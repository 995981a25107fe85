//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pos-pricing-engine/internal/domain/session"
	"pos-pricing-engine/internal/pkg/errs"
	"pos-pricing-engine/internal/usecase"
	"pos-pricing-engine/tests/common/builder"
)

func sessionFor(now time.Time) session.RegisterSession {
	return session.RegisterSession{
		RegisterID: "reg-1",
		StoreID:    "store-1",
		ExpiresAt:  now.Add(8 * time.Hour),
	}
}

// readyFixture logs a register in and settles a quote for one cart line.
func readyFixture(t *testing.T, grand int64) *engineFixture {
	t.Helper()
	ctx := context.Background()

	f := newEngineFixture(t, testDebounce)

	f.gateway.EXPECT().RegisterLogin(gomock.Any(), gomock.Any()).
		Return(sessionFor(f.clk.Now()), nil)
	require.NoError(t, f.engine.Login(ctx, testLoginReq))

	f.gateway.EXPECT().FetchQuote(gomock.Any(), gomock.Any()).
		Return(quoteOf(grand), nil).AnyTimes()

	item := builder.NewItemBuilder().WithOnHand(10).Build()
	require.NoError(t, f.engine.AddItem(ctx, item))

	require.Eventually(t, func() bool {
		return f.engine.Quote().State == usecase.StateSettled
	}, time.Second, time.Millisecond)

	return f
}

func cashTender(amount string) usecase.Tender {
	return usecase.Tender{
		Kind:         usecase.TenderCash,
		CashReceived: decimal.RequireFromString(amount),
	}
}

func TestCheckoutGuards(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		f := newEngineFixture(t, time.Minute)

		_, err := f.engine.Checkout(context.Background(), cashTender("50"), nil)
		require.ErrorIs(t, err, errs.ErrNoSession)
	})

	t.Run("expired session", func(t *testing.T) {
		f := newEngineFixture(t, time.Minute)
		ctx := context.Background()

		f.gateway.EXPECT().RegisterLogin(gomock.Any(), gomock.Any()).
			Return(sessionFor(f.clk.Now()), nil)
		require.NoError(t, f.engine.Login(ctx, testLoginReq))

		f.clk.Add(9 * time.Hour)

		_, err := f.engine.Checkout(ctx, cashTender("50"), nil)
		require.ErrorIs(t, err, errs.ErrSessionExpired)
	})

	t.Run("empty cart", func(t *testing.T) {
		f := newEngineFixture(t, time.Minute)
		ctx := context.Background()

		f.gateway.EXPECT().RegisterLogin(gomock.Any(), gomock.Any()).
			Return(sessionFor(f.clk.Now()), nil)
		require.NoError(t, f.engine.Login(ctx, testLoginReq))

		_, err := f.engine.Checkout(ctx, cashTender("50"), nil)
		require.ErrorIs(t, err, errs.ErrEmptyCart)
	})

	t.Run("no settled quote", func(t *testing.T) {
		// The minute-long debounce keeps the round pending, so no
		// authoritative total exists for the cart yet.
		f := newEngineFixture(t, time.Minute)
		ctx := context.Background()

		f.gateway.EXPECT().RegisterLogin(gomock.Any(), gomock.Any()).
			Return(sessionFor(f.clk.Now()), nil)
		require.NoError(t, f.engine.Login(ctx, testLoginReq))
		require.NoError(t, f.engine.AddItem(ctx, builder.NewItemBuilder().Build()))

		_, err := f.engine.Checkout(ctx, cashTender("50"), nil)
		require.ErrorIs(t, err, errs.ErrQuoteNotSettled)
	})

	t.Run("insufficient cash", func(t *testing.T) {
		f := readyFixture(t, 30)

		_, err := f.engine.Checkout(context.Background(), cashTender("20"), nil)
		require.ErrorIs(t, err, errs.ErrInsufficientPayment)
		// The sale survives the rejected payment.
		assert.False(t, f.engine.Cart().IsEmpty())
	})
}

func TestCheckoutSuccess(t *testing.T) {
	t.Run("cash covering the settled total", func(t *testing.T) {
		f := readyFixture(t, 30)
		ctx := context.Background()

		f.gateway.EXPECT().SubmitSale(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req usecase.CheckoutRequest) (usecase.CheckoutResult, error) {
				assert.Equal(t, "store-1", req.StoreID)
				assert.Equal(t, "reg-1", req.RegisterID)
				assert.NotEqual(t, uuid.Nil, req.IdempotencyKey)
				assert.Len(t, req.Lines, 1)
				return usecase.CheckoutResult{SaleID: "sale-001"}, nil
			})

		result, err := f.engine.Checkout(ctx, cashTender("50"), nil)
		require.NoError(t, err)
		assert.Equal(t, "sale-001", result.SaleID)

		// A completed sale resets the terminal for the next customer.
		assert.True(t, f.engine.Cart().IsEmpty())
		assert.Empty(t, f.engine.Coupons().Codes())
	})

	t.Run("card tender skips the cash sufficiency check", func(t *testing.T) {
		f := readyFixture(t, 30)

		f.gateway.EXPECT().SubmitSale(gomock.Any(), gomock.Any()).
			Return(usecase.CheckoutResult{SaleID: "sale-002"}, nil)

		tender := usecase.Tender{
			Kind: usecase.TenderCard,
			Card: &usecase.CardDetails{Brand: "visa", Last4: "4242", AuthCode: "A1B2"},
		}
		result, err := f.engine.Checkout(context.Background(), tender, nil)
		require.NoError(t, err)
		assert.Equal(t, "sale-002", result.SaleID)
	})
}

func TestCheckoutSubmitFailureKeepsTheSale(t *testing.T) {
	f := readyFixture(t, 30)
	ctx := context.Background()

	f.gateway.EXPECT().SubmitSale(gomock.Any(), gomock.Any()).
		Return(usecase.CheckoutResult{}, errs.New("sale endpoint unavailable"))

	_, err := f.engine.Checkout(ctx, cashTender("50"), nil)
	require.ErrorIs(t, err, errs.ErrCheckoutFailed)

	// Cart and coupons stay intact so the operator can retry.
	assert.False(t, f.engine.Cart().IsEmpty())
}


