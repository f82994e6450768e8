package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/niklaus3016/gaoqianleme/internal/client"
	"github.com/niklaus3016/gaoqianleme/internal/model"
	"github.com/niklaus3016/gaoqianleme/pkg/testutil"
)

func Test_goalDomain_Progress(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user-1")

	serverEarned := 2000.0
	targetCaller := &testutil.MockTargetCaller{
		GetFunc: func(ctx context.Context, targetDate string) (*model.Target, error) {
			return &model.Target{Target: 10000, Period: "year", TargetDate: targetDate}, nil
		},
	}
	recordCaller := &testutil.MockRecordCaller{
		TotalFunc: func(ctx context.Context, filter client.TotalFilter) (*model.Total, error) {
			if filter.Type == "income" {
				return &model.Total{Total: serverEarned}, nil
			}
			return &model.Total{}, nil
		},
	}

	goal := NewGoalDomain(targetCaller, recordCaller)
	require.NoError(t, goal.Refresh(ctx))

	progress, ok := goal.Progress()
	require.True(t, ok)
	require.Equal(t, 20.0, progress)

	// A new ledger entry moves the derived total, not a local counter.
	serverEarned = 2500
	require.NoError(t, goal.Refresh(ctx))

	progress, ok = goal.Progress()
	require.True(t, ok)
	require.Equal(t, 25.0, progress)

	remaining, ok := goal.Remaining()
	require.True(t, ok)
	require.Equal(t, 7500.0, remaining)
}

func Test_goalDomain_Progress_UndefinedWithoutTarget(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user-1")

	targetCaller := &testutil.MockTargetCaller{
		GetFunc: func(ctx context.Context, targetDate string) (*model.Target, error) {
			return nil, nil
		},
	}
	recordCaller := &testutil.MockRecordCaller{
		TotalFunc: func(ctx context.Context, filter client.TotalFilter) (*model.Total, error) {
			return &model.Total{Total: 100}, nil
		},
	}

	goal := NewGoalDomain(targetCaller, recordCaller)
	require.NoError(t, goal.Refresh(ctx))

	_, ok := goal.Progress()
	require.False(t, ok)

	_, ok = goal.Remaining()
	require.False(t, ok)
}

func Test_goalDomain_SetGoal_RoundTrip(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user-1")

	var stored *model.Target
	targetCaller := &testutil.MockTargetCaller{
		SetFunc: func(ctx context.Context, amount float64, period, targetDate string) (*model.Target, error) {
			stored = &model.Target{Target: amount, Period: period, TargetDate: targetDate}
			return stored, nil
		},
		GetFunc: func(ctx context.Context, targetDate string) (*model.Target, error) {
			return stored, nil
		},
	}
	recordCaller := &testutil.MockRecordCaller{
		TotalFunc: func(ctx context.Context, filter client.TotalFilter) (*model.Total, error) {
			return &model.Total{}, nil
		},
	}

	goal := NewGoalDomain(targetCaller, recordCaller)

	target, err := goal.SetGoal(ctx, 50000)
	require.NoError(t, err)
	require.Equal(t, 50000.0, target.Target)

	require.NoError(t, goal.Refresh(ctx))
	require.Equal(t, 50000.0, goal.State().Target.Target)

	_, err = goal.SetGoal(ctx, 0)
	require.Error(t, err)
}
