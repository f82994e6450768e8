package domain

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/niklaus3016/gaoqianleme/internal/client"
	"github.com/niklaus3016/gaoqianleme/internal/model"
	"github.com/niklaus3016/gaoqianleme/pkg/dateutil"
	"github.com/niklaus3016/gaoqianleme/pkg/errorx"
	"github.com/niklaus3016/gaoqianleme/pkg/xcontext"
)

// AccountingState is the rendered view of the ledger screen.
type AccountingState struct {
	Records    []model.Record
	TodayTotal float64
	MonthTotal float64
}

type AccountingDomain interface {
	AddRecord(ctx context.Context, amount float64, typ, category, description string) (*model.Record, error)
	DeleteRecord(ctx context.Context, recordID string) error
	Refresh(ctx context.Context) error
	State() AccountingState
	Statistics(ctx context.Context, days int) ([]model.DailyStatistic, error)
}

type accountingDomain struct {
	recordCaller client.RecordCaller
	targetCaller client.TargetCaller

	mu    sync.Mutex
	state AccountingState
}

func NewAccountingDomain(
	recordCaller client.RecordCaller,
	targetCaller client.TargetCaller,
) *accountingDomain {
	return &accountingDomain{
		recordCaller: recordCaller,
		targetCaller: targetCaller,
	}
}

func (d *accountingDomain) AddRecord(
	ctx context.Context, amount float64, typ, category, description string,
) (*model.Record, error) {
	if amount <= 0 {
		return nil, errorx.New(errorx.BadRequest, "请输入有效金额")
	}

	if strings.TrimSpace(category) == "" {
		return nil, errorx.New(errorx.BadRequest, "请选择类别")
	}

	if typ == "" {
		typ = "income"
	}

	record, err := d.recordCaller.Add(ctx, amount, typ, category, description)
	if err != nil {
		return nil, err
	}

	// Optimistic patch for instant feedback. The reconciling refresh below
	// overwrites it with the server's view.
	d.mu.Lock()
	d.state.Records = append([]model.Record{*record}, d.state.Records...)
	d.state.TodayTotal += amount
	d.state.MonthTotal += amount
	d.mu.Unlock()

	if err := d.Refresh(ctx); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot reconcile after adding record: %v", err)
	}

	d.propagateGoalDelta(ctx, amount)

	return record, nil
}

func (d *accountingDomain) DeleteRecord(ctx context.Context, recordID string) error {
	d.mu.Lock()
	var amount float64
	var found bool
	for _, record := range d.state.Records {
		if record.ID == recordID {
			amount = record.Amount
			found = true
			break
		}
	}
	d.mu.Unlock()

	if !found {
		return errorx.New(errorx.NotFound, "记录不存在")
	}

	if err := d.recordCaller.Delete(ctx, recordID); err != nil {
		return err
	}

	// Delete is confirmed, drop the record locally before the refresh lands.
	d.mu.Lock()
	records := d.state.Records[:0]
	for _, record := range d.state.Records {
		if record.ID != recordID {
			records = append(records, record)
		}
	}
	d.state.Records = records
	d.state.TodayTotal -= amount
	d.state.MonthTotal -= amount
	d.mu.Unlock()

	if err := d.Refresh(ctx); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot reconcile after deleting record: %v", err)
	}

	d.propagateGoalDelta(ctx, -amount)

	return nil
}

// Refresh refetches the ledger list and both period totals concurrently and
// swaps the whole state at once when every call has settled, so a fresh list
// is never shown next to stale totals.
func (d *accountingDomain) Refresh(ctx context.Context) error {
	cfg := xcontext.Configs(ctx).Earn
	now := time.Now()
	todayStart, todayEnd := dateutil.DayRange(now)
	monthStart, monthEnd := dateutil.MonthRange(now.Year(), int(now.Month()))

	var wg sync.WaitGroup
	var records []model.Record
	var listErr error
	var todayTotal, monthTotal float64

	wg.Add(3)
	go func() {
		defer wg.Done()
		records, listErr = d.recordCaller.List(ctx, 1, cfg.LogWindow)
	}()
	go func() {
		defer wg.Done()
		todayTotal = sumCategoryTotals(ctx, d.recordCaller, todayStart, todayEnd)
	}()
	go func() {
		defer wg.Done()
		monthTotal = sumCategoryTotals(ctx, d.recordCaller, monthStart, monthEnd)
	}()
	wg.Wait()

	if listErr != nil {
		return listErr
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = AccountingState{
		Records:    dedupeRecords(records),
		TodayTotal: todayTotal,
		MonthTotal: monthTotal,
	}

	return nil
}

// dedupeRecords drops repeated ids, keeping the first occurrence. The backend
// list occasionally repeats a row across page boundaries.
func dedupeRecords(records []model.Record) []model.Record {
	seen := make(map[string]struct{}, len(records))
	deduped := records[:0]
	for _, record := range records {
		if _, ok := seen[record.ID]; ok {
			continue
		}

		seen[record.ID] = struct{}{}
		deduped = append(deduped, record)
	}

	return deduped
}

func (d *accountingDomain) State() AccountingState {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.state
}

func (d *accountingDomain) Statistics(
	ctx context.Context, days int,
) ([]model.DailyStatistic, error) {
	return d.recordCaller.Statistics(ctx, days)
}

// propagateGoalDelta forwards a signed amount to the annual goal running
// total. Its failure is logged and otherwise ignored, the next full goal
// reload heals any drift.
func (d *accountingDomain) propagateGoalDelta(ctx context.Context, delta float64) {
	targetDate := dateutil.YearStart(time.Now())
	if _, err := d.targetCaller.Update(ctx, delta, targetDate); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot propagate %.2f to annual goal: %v", delta, err)
	}
}
