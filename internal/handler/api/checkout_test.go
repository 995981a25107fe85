//go:build unit

package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"pos-pricing-engine/internal/domain/quote"
	"pos-pricing-engine/internal/domain/session"
	"pos-pricing-engine/internal/handler/api"
	resdto "pos-pricing-engine/internal/handler/dto/response"
	"pos-pricing-engine/internal/infra/cache"
	"pos-pricing-engine/internal/pkg/clock"
	"pos-pricing-engine/internal/pkg/errs"
	"pos-pricing-engine/internal/pkg/money"
	"pos-pricing-engine/internal/usecase"
	"pos-pricing-engine/tests/common/builder"
	"pos-pricing-engine/tests/common/httptest"
	usecasemock "pos-pricing-engine/tests/mock/usecase"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockGateway *usecasemock.MockGateway
	engine      *usecase.Engine
	clk         *clock.MockClock
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = usecasemock.NewMockGateway(s.mockCtrl)
	s.clk = clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	state := cache.NewMemoryLocalState()
	carts := usecase.NewCartStore(state, logger)
	coupons := usecase.NewCouponManager(s.mockGateway)
	reconciler := usecase.NewReconciler(s.mockGateway, 5*time.Millisecond, logger)
	sessions := usecase.NewSessionGuard(s.mockGateway, s.clk, logger)
	s.engine = usecase.NewEngine(s.mockGateway, carts, coupons, reconciler, sessions, state, s.clk, logger)

	handler := api.NewCheckoutHandler(s.engine)
	s.router.POST("/checkout", handler.Checkout)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.engine.ClearCart(context.Background())
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

// prepareSale opens a session, fills the cart and waits for the quote
// to settle so checkout can proceed.
func (s *CheckoutHandlerTestSuite) prepareSale(grand int64) {
	ctx := context.Background()
	total := decimal.NewFromInt(grand)

	s.mockGateway.EXPECT().RegisterLogin(gomock.Any(), gomock.Any()).Return(session.RegisterSession{
		RegisterID: "reg-1",
		StoreID:    "store-1",
		ExpiresAt:  s.clk.Now().Add(8 * time.Hour),
	}, nil)
	s.Require().NoError(s.engine.Login(ctx, usecase.RegisterLoginRequest{StoreID: "store-1", TerminalID: "term-1"}))

	s.mockGateway.EXPECT().FetchQuote(gomock.Any(), gomock.Any()).
		Return(usecase.QuoteResult{
			Quote:    quote.Quote{Subtotal: total, GrandTotal: total},
			Currency: money.DefaultCurrency(),
		}, nil).AnyTimes()

	s.Require().NoError(s.engine.AddItem(ctx, builder.NewItemBuilder().WithOnHand(10).Build()))
	s.Require().Eventually(func() bool {
		return s.engine.Quote().State == usecase.StateSettled
	}, time.Second, time.Millisecond)
}

func cashBody(amount string) gin.H {
	return gin.H{"payment": gin.H{"kind": "CASH", "cash_received": amount}}
}

func (s *CheckoutHandlerTestSuite) TestCheckoutSuccess() {
	s.prepareSale(30)
	s.mockGateway.EXPECT().SubmitSale(gomock.Any(), gomock.Any()).
		Return(usecase.CheckoutResult{SaleID: "sale-001"}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", cashBody("50"), "")

	s.Equal(http.StatusCreated, rec.Code)
	var resp resdto.CheckoutResponse
	_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
	s.Equal("sale-001", resp.SaleID)
	s.True(s.engine.Cart().IsEmpty())
}

func (s *CheckoutHandlerTestSuite) TestCheckoutWithoutSession() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", cashBody("50"), "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *CheckoutHandlerTestSuite) TestCheckoutInsufficientCash() {
	s.prepareSale(30)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", cashBody("10"), "")
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.False(s.engine.Cart().IsEmpty())
}

func (s *CheckoutHandlerTestSuite) TestCheckoutRemoteRejection() {
	s.prepareSale(30)
	s.mockGateway.EXPECT().SubmitSale(gomock.Any(), gomock.Any()).
		Return(usecase.CheckoutResult{}, errs.New("sale endpoint unavailable"))

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", cashBody("50"), "")

	s.Equal(http.StatusBadGateway, rec.Code)
	s.False(s.engine.Cart().IsEmpty())
}

func (s *CheckoutHandlerTestSuite) TestCheckoutInvalidTenders() {
	cases := []struct {
		name string
		body gin.H
	}{
		{name: "cash tender without an amount", body: gin.H{"payment": gin.H{"kind": "CASH"}}},
		{name: "card tender without card details", body: gin.H{"payment": gin.H{"kind": "CARD"}}},
		{name: "unknown tender kind", body: gin.H{"payment": gin.H{"kind": "CHECK"}}},
		{name: "missing payment", body: gin.H{}},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", tc.body, "")
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}


