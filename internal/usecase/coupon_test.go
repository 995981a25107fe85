//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pos-pricing-engine/internal/domain/discount"
	"pos-pricing-engine/internal/pkg/errs"
	"pos-pricing-engine/internal/usecase"
	"pos-pricing-engine/tests/common/builder"
	usecasemock "pos-pricing-engine/tests/mock/usecase"
)

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "SAVE10", usecase.NormalizeCode("  save10 "))
	assert.Equal(t, "SAVE10", usecase.NormalizeCode("SAVE10"))
	assert.Equal(t, "", usecase.NormalizeCode("   "))
}

func TestCouponManagerApply(t *testing.T) {
	subtotal := decimal.NewFromInt(40)

	t.Run("valid code joins the applied set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := usecasemock.NewMockCouponGateway(ctrl)
		m := usecase.NewCouponManager(gw)

		rule := builder.NewRuleBuilder().WithID("rule-save10").Build()
		gw.EXPECT().ValidateCoupon(gomock.Any(), "SAVE10", subtotal).
			Return(usecase.CouponResult{Code: "SAVE10", Name: "Ten percent off", Rules: []discount.Rule{rule}}, nil)

		require.NoError(t, m.Apply(context.Background(), " save10 ", subtotal))

		assert.Equal(t, []string{"SAVE10"}, m.Codes())
		assert.Equal(t, "Coupon SAVE10 applied", m.Status())
		require.Len(t, m.Rules(), 1)
		assert.Equal(t, rule.ID, m.Rules()[0].ID)
	})

	t.Run("duplicate apply is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := usecasemock.NewMockCouponGateway(ctrl)
		m := usecase.NewCouponManager(gw)

		gw.EXPECT().ValidateCoupon(gomock.Any(), "SAVE10", subtotal).
			Return(usecase.CouponResult{Code: "SAVE10"}, nil).Times(1)

		require.NoError(t, m.Apply(context.Background(), "SAVE10", subtotal))
		require.NoError(t, m.Apply(context.Background(), "save10", subtotal))

		assert.Equal(t, []string{"SAVE10"}, m.Codes())
	})

	t.Run("rejected code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := usecasemock.NewMockCouponGateway(ctrl)
		m := usecase.NewCouponManager(gw)

		gw.EXPECT().ValidateCoupon(gomock.Any(), "EXPIRED", subtotal).
			Return(usecase.CouponResult{}, errs.New("coupon expired"))

		err := m.Apply(context.Background(), "expired", subtotal)
		require.ErrorIs(t, err, errs.ErrInvalidCoupon)
		assert.Empty(t, m.Codes())
	})

	t.Run("blank code is invalid without a round trip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := usecasemock.NewMockCouponGateway(ctrl)
		m := usecase.NewCouponManager(gw)

		require.ErrorIs(t, m.Apply(context.Background(), "   ", subtotal), errs.ErrInvalidCoupon)
	})
}

func TestCouponManagerRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := usecasemock.NewMockCouponGateway(ctrl)
	m := usecase.NewCouponManager(gw)
	subtotal := decimal.NewFromInt(40)

	gw.EXPECT().ValidateCoupon(gomock.Any(), "SAVE10", subtotal).
		Return(usecase.CouponResult{Code: "SAVE10"}, nil)
	gw.EXPECT().ValidateCoupon(gomock.Any(), "FREESHIP", subtotal).
		Return(usecase.CouponResult{Code: "FREESHIP"}, nil)

	require.NoError(t, m.Apply(context.Background(), "SAVE10", subtotal))
	require.NoError(t, m.Apply(context.Background(), "FREESHIP", subtotal))

	m.Remove("save10")
	assert.Equal(t, []string{"FREESHIP"}, m.Codes())
	assert.NotEmpty(t, m.Status())

	// Removing the last coupon clears the status line.
	m.Remove("FREESHIP")
	assert.Empty(t, m.Codes())
	assert.Empty(t, m.Status())
}

func TestCouponManagerRulesOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := usecasemock.NewMockCouponGateway(ctrl)
	m := usecase.NewCouponManager(gw)
	subtotal := decimal.NewFromInt(40)

	first := builder.NewRuleBuilder().WithID("rule-a").Build()
	second := builder.NewRuleBuilder().WithID("rule-b").Build()

	gw.EXPECT().ValidateCoupon(gomock.Any(), "A", subtotal).
		Return(usecase.CouponResult{Code: "A", Rules: []discount.Rule{first}}, nil)
	gw.EXPECT().ValidateCoupon(gomock.Any(), "B", subtotal).
		Return(usecase.CouponResult{Code: "B", Rules: []discount.Rule{second}}, nil)

	require.NoError(t, m.Apply(context.Background(), "A", subtotal))
	require.NoError(t, m.Apply(context.Background(), "B", subtotal))

	rules := m.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "rule-a", rules[0].ID)
	assert.Equal(t, "rule-b", rules[1].ID)
}

func TestCouponManagerReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := usecasemock.NewMockCouponGateway(ctrl)
	m := usecase.NewCouponManager(gw)
	subtotal := decimal.NewFromInt(40)

	gw.EXPECT().ValidateCoupon(gomock.Any(), "SAVE10", subtotal).
		Return(usecase.CouponResult{Code: "SAVE10"}, nil)
	require.NoError(t, m.Apply(context.Background(), "SAVE10", subtotal))

	m.Reset()
	assert.Empty(t, m.Codes())
	assert.Empty(t, m.Rules())
	assert.Empty(t, m.Status())
}


