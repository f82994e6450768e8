package domain

import (
	"context"
	"sync"
	"time"

	"github.com/niklaus3016/gaoqianleme/internal/client"
	"github.com/niklaus3016/gaoqianleme/internal/model"
	"github.com/niklaus3016/gaoqianleme/pkg/dateutil"
	"github.com/niklaus3016/gaoqianleme/pkg/errorx"
	"github.com/niklaus3016/gaoqianleme/pkg/xcontext"
)

// GoalState is the rendered view of the annual goal screen. CurrentEarned is
// always derived from summed ledger entries, never trusted from a stored
// counter.
type GoalState struct {
	Target        *model.Target
	CurrentEarned float64
}

type GoalDomain interface {
	Refresh(ctx context.Context) error
	SetGoal(ctx context.Context, amount float64) (*model.Target, error)
	State() GoalState
	Progress() (float64, bool)
	Remaining() (float64, bool)
	DaysLeft() int
}

type goalDomain struct {
	targetCaller client.TargetCaller
	recordCaller client.RecordCaller

	mu    sync.Mutex
	state GoalState
}

func NewGoalDomain(
	targetCaller client.TargetCaller,
	recordCaller client.RecordCaller,
) *goalDomain {
	return &goalDomain{
		targetCaller: targetCaller,
		recordCaller: recordCaller,
	}
}

func (d *goalDomain) Refresh(ctx context.Context) error {
	now := time.Now()
	targetDate := dateutil.YearStart(now)
	yearStart, yearEnd := dateutil.YearRange(now.Year())

	var wg sync.WaitGroup
	var target *model.Target
	var targetErr error
	var earned float64

	wg.Add(2)
	go func() {
		defer wg.Done()
		target, targetErr = d.targetCaller.Get(ctx, targetDate)
	}()
	go func() {
		defer wg.Done()
		earned = sumCategoryTotals(ctx, d.recordCaller, yearStart, yearEnd)
	}()
	wg.Wait()

	if targetErr != nil {
		return targetErr
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = GoalState{Target: target, CurrentEarned: earned}

	return nil
}

func (d *goalDomain) SetGoal(ctx context.Context, amount float64) (*model.Target, error) {
	if amount <= 0 {
		return nil, errorx.New(errorx.BadRequest, "请输入有效的目标金额")
	}

	targetDate := dateutil.YearStart(time.Now())
	target, err := d.targetCaller.Set(ctx, amount, "year", targetDate)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.state.Target = target
	d.mu.Unlock()

	if err := d.Refresh(ctx); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot reconcile after setting goal: %v", err)
	}

	return target, nil
}

func (d *goalDomain) State() GoalState {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.state
}

// Progress reports the earned percentage of the annual target. It is only
// defined once a target has been set.
func (d *goalDomain) Progress() (float64, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state.Target == nil || d.state.Target.Target <= 0 {
		return 0, false
	}

	return d.state.CurrentEarned / d.state.Target.Target * 100, true
}

func (d *goalDomain) Remaining() (float64, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state.Target == nil || d.state.Target.Target <= 0 {
		return 0, false
	}

	remaining := d.state.Target.Target - d.state.CurrentEarned
	if remaining < 0 {
		remaining = 0
	}

	return remaining, true
}

func (d *goalDomain) DaysLeft() int {
	return dateutil.DaysLeftInYear(time.Now())
}
