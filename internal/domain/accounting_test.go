package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/niklaus3016/gaoqianleme/internal/client"
	"github.com/niklaus3016/gaoqianleme/internal/model"
	"github.com/niklaus3016/gaoqianleme/pkg/dateutil"
	"github.com/niklaus3016/gaoqianleme/pkg/testutil"
)

func Test_accountingDomain_AddRecord_Validation(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user-1")

	calls := 0
	recordCaller := &testutil.MockRecordCaller{
		AddFunc: func(ctx context.Context, amount float64, typ, category, description string) (*model.Record, error) {
			calls++
			return &model.Record{}, nil
		},
	}

	accounting := NewAccountingDomain(recordCaller, &testutil.MockTargetCaller{})

	// Invalid input never reaches the network.
	_, err := accounting.AddRecord(ctx, 0, "income", "工资", "")
	require.Error(t, err)

	_, err = accounting.AddRecord(ctx, 100, "income", "  ", "")
	require.Error(t, err)

	require.Zero(t, calls)
}

func Test_accountingDomain_AddRecord(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user-1")

	serverRecords := []model.Record{}
	serverTotal := 2000.0

	recordCaller := &testutil.MockRecordCaller{
		AddFunc: func(ctx context.Context, amount float64, typ, category, description string) (*model.Record, error) {
			record := model.Record{ID: "r-new", Amount: amount, Type: typ, Category: category}
			serverRecords = append([]model.Record{record}, serverRecords...)
			serverTotal += amount
			return &record, nil
		},
		ListFunc: func(ctx context.Context, page, limit int) ([]model.Record, error) {
			return serverRecords, nil
		},
		TotalFunc: func(ctx context.Context, filter client.TotalFilter) (*model.Total, error) {
			if filter.Type == "income" {
				return &model.Total{Total: serverTotal}, nil
			}
			return &model.Total{}, nil
		},
	}

	var goalDelta float64
	var goalDate string
	targetCaller := &testutil.MockTargetCaller{
		UpdateFunc: func(ctx context.Context, delta float64, targetDate string) (*model.Target, error) {
			goalDelta = delta
			goalDate = targetDate
			return &model.Target{}, nil
		},
	}

	accounting := NewAccountingDomain(recordCaller, targetCaller)

	record, err := accounting.AddRecord(ctx, 500, "income", "工资", "八月工资")
	require.NoError(t, err)
	require.Equal(t, "r-new", record.ID)

	// The reconciling refresh overwrote the optimistic patch with server truth.
	state := accounting.State()
	require.Len(t, state.Records, 1)
	require.Equal(t, 2500.0, state.TodayTotal)
	require.Equal(t, 2500.0, state.MonthTotal)

	// The signed delta reached the annual goal.
	require.Equal(t, 500.0, goalDelta)
	require.Equal(t, dateutil.YearStart(time.Now()), goalDate)
}

func Test_accountingDomain_DeleteRecord(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user-1")

	serverRecords := []model.Record{
		{ID: "r1", Amount: 200, Type: "income", Category: "工资"},
		{ID: "r2", Amount: 300, Type: "income", Category: "兼职"},
	}
	serverTotal := 500.0

	recordCaller := &testutil.MockRecordCaller{
		DeleteFunc: func(ctx context.Context, recordID string) error {
			kept := serverRecords[:0]
			for _, record := range serverRecords {
				if record.ID != recordID {
					kept = append(kept, record)
				} else {
					serverTotal -= record.Amount
				}
			}
			serverRecords = kept
			return nil
		},
		ListFunc: func(ctx context.Context, page, limit int) ([]model.Record, error) {
			return serverRecords, nil
		},
		TotalFunc: func(ctx context.Context, filter client.TotalFilter) (*model.Total, error) {
			if filter.Type == "income" {
				return &model.Total{Total: serverTotal}, nil
			}
			return &model.Total{}, nil
		},
	}

	var goalDelta float64
	targetCaller := &testutil.MockTargetCaller{
		UpdateFunc: func(ctx context.Context, delta float64, targetDate string) (*model.Target, error) {
			goalDelta = delta
			return &model.Target{}, nil
		},
	}

	accounting := NewAccountingDomain(recordCaller, targetCaller)
	require.NoError(t, accounting.Refresh(ctx))
	require.Equal(t, 500.0, accounting.State().TodayTotal)

	require.NoError(t, accounting.DeleteRecord(ctx, "r1"))

	state := accounting.State()
	require.Len(t, state.Records, 1)
	require.Equal(t, "r2", state.Records[0].ID)
	require.Equal(t, 300.0, state.TodayTotal)
	require.Equal(t, -200.0, goalDelta)
}

func Test_accountingDomain_DeleteRecord_Unknown(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user-1")

	deletes := 0
	recordCaller := &testutil.MockRecordCaller{
		DeleteFunc: func(ctx context.Context, recordID string) error {
			deletes++
			return nil
		},
	}

	accounting := NewAccountingDomain(recordCaller, &testutil.MockTargetCaller{})

	require.Error(t, accounting.DeleteRecord(ctx, "missing"))
	require.Zero(t, deletes)
}

func Test_accountingDomain_Refresh_CollapsesDuplicates(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user-1")

	recordCaller := &testutil.MockRecordCaller{
		ListFunc: func(ctx context.Context, page, limit int) ([]model.Record, error) {
			return []model.Record{
				{ID: "r1", Amount: 100},
				{ID: "r2", Amount: 200},
				{ID: "r1", Amount: 100},
			}, nil
		},
		TotalFunc: func(ctx context.Context, filter client.TotalFilter) (*model.Total, error) {
			return &model.Total{}, nil
		},
	}

	accounting := NewAccountingDomain(recordCaller, &testutil.MockTargetCaller{})
	require.NoError(t, accounting.Refresh(ctx))

	state := accounting.State()
	require.Len(t, state.Records, 2)
	require.Equal(t, "r1", state.Records[0].ID)
	require.Equal(t, "r2", state.Records[1].ID)
}
