package domain

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/niklaus3016/gaoqianleme/internal/client"
	"github.com/niklaus3016/gaoqianleme/internal/model"
	"github.com/niklaus3016/gaoqianleme/pkg/testutil"
)

func Test_earnDomain_Click(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user-1")

	clicks := 0
	goldCaller := &testutil.MockGoldCaller{
		ClickFunc: func(ctx context.Context) (*model.GoldClick, error) {
			clicks++
			return &model.GoldClick{
				TotalGold:        1210,
				TodayGold:        30,
				GoldEarned:       10,
				RemainingSeconds: 10,
			}, nil
		},
		MonthlyFunc: func(ctx context.Context, year, month int) (*model.MonthlyGold, error) {
			return &model.MonthlyGold{LastMonthGold: 2500, CurrentMonthGold: 800}, nil
		},
	}

	earnDomain := NewEarnDomain(goldCaller, &testutil.MockRecordCaller{}, NewCooldown(10))

	result, err := earnDomain.Click(ctx)
	require.NoError(t, err)
	require.False(t, result.RateLimited)
	require.Equal(t, float64(10), result.Earned)
	require.Equal(t, 10, result.CooldownSeconds)
	require.Equal(t, 1, clicks)

	state := earnDomain.State()
	require.Equal(t, float64(1210), state.TotalGold)
	require.Equal(t, float64(2500), state.LastMonthGold)

	// A second trigger during the cooldown must not reach the network.
	result, err = earnDomain.Click(ctx)
	require.NoError(t, err)
	require.True(t, result.RateLimited)
	require.Greater(t, result.CooldownSeconds, 0)
	require.Equal(t, 1, clicks)
}

func Test_earnDomain_Click_ServerRateLimit(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user-1")

	goldCaller := &testutil.MockGoldCaller{
		ClickFunc: func(ctx context.Context) (*model.GoldClick, error) {
			return nil, fmt.Errorf("5:%w", client.ErrRateLimit)
		},
	}

	earnDomain := NewEarnDomain(goldCaller, &testutil.MockRecordCaller{}, NewCooldown(10))

	// The rejection is converted into a cooldown, not surfaced as an error.
	result, err := earnDomain.Click(ctx)
	require.NoError(t, err)
	require.True(t, result.RateLimited)
	require.Equal(t, 5, result.CooldownSeconds)
	require.Equal(t, 5, earnDomain.CooldownRemaining())
}

func Test_earnDomain_Click_FailureImposesNoCooldown(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user-1")

	goldCaller := &testutil.MockGoldCaller{
		ClickFunc: func(ctx context.Context) (*model.GoldClick, error) {
			return nil, fmt.Errorf("boom")
		},
	}

	earnDomain := NewEarnDomain(goldCaller, &testutil.MockRecordCaller{}, NewCooldown(10))

	_, err := earnDomain.Click(ctx)
	require.Error(t, err)
	require.Equal(t, 0, earnDomain.CooldownRemaining())

	// The action is immediately retryable.
	goldCaller.ClickFunc = func(ctx context.Context) (*model.GoldClick, error) {
		return &model.GoldClick{GoldEarned: 10, RemainingSeconds: 10}, nil
	}
	goldCaller.MonthlyFunc = func(ctx context.Context, year, month int) (*model.MonthlyGold, error) {
		return &model.MonthlyGold{}, nil
	}

	result, err := earnDomain.Click(ctx)
	require.NoError(t, err)
	require.False(t, result.RateLimited)
}

func newWithdrawableEarnDomain(
	t *testing.T, goldCaller *testutil.MockGoldCaller, recordCaller *testutil.MockRecordCaller,
) EarnDomain {
	t.Helper()

	goldCaller.InfoFunc = func(ctx context.Context, page, limit int) (*model.GoldInfo, error) {
		return &model.GoldInfo{TotalGold: 5000}, nil
	}
	goldCaller.TodayFunc = func(ctx context.Context) (float64, error) {
		return 30, nil
	}
	goldCaller.MonthlyFunc = func(ctx context.Context, year, month int) (*model.MonthlyGold, error) {
		return &model.MonthlyGold{LastMonthGold: 2500, CurrentMonthGold: 800}, nil
	}
	goldCaller.WithdrawalsFunc = func(ctx context.Context, limit int) ([]model.Withdrawal, error) {
		return nil, nil
	}

	earnDomain := NewEarnDomain(goldCaller, recordCaller, NewCooldown(10))
	require.NoError(t, earnDomain.Refresh(testutil.MockContextWithUserID("user-1")))

	return earnDomain
}

func Test_earnDomain_PrepareWithdraw(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user-1")
	earnDomain := newWithdrawableEarnDomain(t, &testutil.MockGoldCaller{}, &testutil.MockRecordCaller{})

	preview, err := earnDomain.PrepareWithdraw(ctx, "13800001234", "张三")
	require.NoError(t, err)
	require.Equal(t, "138****1234", preview.MaskedAccount)
	require.Equal(t, float64(2500), preview.GoldAmount)
	require.Equal(t, 2.5, preview.Yuan)

	_, err = earnDomain.PrepareWithdraw(ctx, "", "张三")
	require.Error(t, err)
}

func Test_earnDomain_PrepareWithdraw_BelowMinimum(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user-1")

	goldCaller := &testutil.MockGoldCaller{}
	earnDomain := newWithdrawableEarnDomain(t, goldCaller, &testutil.MockRecordCaller{})

	goldCaller.MonthlyFunc = func(ctx context.Context, year, month int) (*model.MonthlyGold, error) {
		return &model.MonthlyGold{LastMonthGold: 500}, nil
	}
	require.NoError(t, earnDomain.Refresh(ctx))

	_, err := earnDomain.PrepareWithdraw(ctx, "13800001234", "张三")
	require.Error(t, err)
	require.Contains(t, err.Error(), "上月金币不足")
}

func Test_earnDomain_ConfirmWithdraw(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user-1")

	var withdrawnGold float64
	goldCaller := &testutil.MockGoldCaller{
		WithdrawFunc: func(ctx context.Context, account, name string, goldAmount float64) error {
			withdrawnGold = goldAmount
			return nil
		},
	}

	var bookedAmount float64
	var bookedCategory, bookedDescription string
	recordCaller := &testutil.MockRecordCaller{
		AddFunc: func(ctx context.Context, amount float64, typ, category, description string) (*model.Record, error) {
			bookedAmount = amount
			bookedCategory = category
			bookedDescription = description
			return &model.Record{ID: "r1", Amount: amount}, nil
		},
	}

	earnDomain := newWithdrawableEarnDomain(t, goldCaller, recordCaller)

	preview, err := earnDomain.PrepareWithdraw(ctx, "13800001234", "张三")
	require.NoError(t, err)
	require.NoError(t, earnDomain.ConfirmWithdraw(ctx, preview))

	require.Equal(t, float64(2500), withdrawnGold)
	require.Equal(t, 2.5, bookedAmount)
	require.Equal(t, "副业收入", bookedCategory)
	require.Equal(t, "电子手工", bookedDescription)
}
