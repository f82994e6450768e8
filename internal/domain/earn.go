package domain

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/niklaus3016/gaoqianleme/internal/client"
	"github.com/niklaus3016/gaoqianleme/internal/model"
	"github.com/niklaus3016/gaoqianleme/pkg/errorx"
	"github.com/niklaus3016/gaoqianleme/pkg/xcontext"
)

// EarnState is the rendered view of the earn screen. The backend stays
// authoritative, every mutation patches this snapshot immediately and then a
// reconciling refresh overwrites it wholesale.
type EarnState struct {
	TotalGold        float64
	TodayGold        float64
	LastMonthGold    float64
	CurrentMonthGold float64
	Details          []model.GoldDetail
	Withdrawals      []model.Withdrawal
}

type ClickResult struct {
	Earned          float64
	TotalGold       float64
	TodayGold       float64
	RateLimited     bool
	CooldownSeconds int
}

type WithdrawPreview struct {
	AlipayAccount string
	AlipayName    string
	MaskedAccount string
	GoldAmount    float64
	Yuan          float64
}

type EarnDomain interface {
	Click(ctx context.Context) (*ClickResult, error)
	Refresh(ctx context.Context) error
	State() EarnState
	CooldownRemaining() int
	PrepareWithdraw(ctx context.Context, alipayAccount, alipayName string) (*WithdrawPreview, error)
	ConfirmWithdraw(ctx context.Context, preview *WithdrawPreview) error
	Withdrawals(ctx context.Context, limit int) ([]model.Withdrawal, error)
}

type earnDomain struct {
	goldCaller   client.GoldCaller
	recordCaller client.RecordCaller
	cooldown     *Cooldown

	mu    sync.Mutex
	state EarnState
}

func NewEarnDomain(
	goldCaller client.GoldCaller,
	recordCaller client.RecordCaller,
	cooldown *Cooldown,
) *earnDomain {
	return &earnDomain{
		goldCaller:   goldCaller,
		recordCaller: recordCaller,
		cooldown:     cooldown,
	}
}

func (d *earnDomain) Click(ctx context.Context) (*ClickResult, error) {
	if !d.cooldown.TryBegin() {
		// Still pending or cooling, refuse without a round trip.
		return &ClickResult{
			RateLimited:     true,
			CooldownSeconds: d.cooldown.Remaining(),
		}, nil
	}

	resp, err := d.goldCaller.Click(ctx)
	if err != nil {
		if seconds, ok := client.IsRateLimit(err); ok {
			d.cooldown.Finish(seconds)
			return &ClickResult{RateLimited: true, CooldownSeconds: d.cooldown.Remaining()}, nil
		}

		d.cooldown.Fail()
		return nil, err
	}

	d.cooldown.Finish(resp.RemainingSeconds)

	d.mu.Lock()
	d.state.TotalGold = resp.TotalGold
	d.state.TodayGold = resp.TodayGold
	d.mu.Unlock()

	// The click response already carries fresh totals, only the monthly
	// figures need reconciling.
	d.refreshMonthly(ctx)

	return &ClickResult{
		Earned:          resp.GoldEarned,
		TotalGold:       resp.TotalGold,
		TodayGold:       resp.TodayGold,
		CooldownSeconds: d.cooldown.Remaining(),
	}, nil
}

func (d *earnDomain) Refresh(ctx context.Context) error {
	logWindow := xcontext.Configs(ctx).Earn.LogWindow

	var wg sync.WaitGroup
	var info *model.GoldInfo
	var today float64
	var monthly *model.MonthlyGold
	var withdrawals []model.Withdrawal
	var infoErr, todayErr, monthlyErr, withdrawalsErr error

	wg.Add(4)
	go func() {
		defer wg.Done()
		info, infoErr = d.goldCaller.Info(ctx, 1, logWindow)
	}()
	go func() {
		defer wg.Done()
		today, todayErr = d.goldCaller.Today(ctx)
	}()
	go func() {
		defer wg.Done()
		now := time.Now()
		monthly, monthlyErr = d.goldCaller.Monthly(ctx, now.Year(), int(now.Month()))
	}()
	go func() {
		defer wg.Done()
		withdrawals, withdrawalsErr = d.goldCaller.Withdrawals(ctx, logWindow)
	}()
	wg.Wait()

	if infoErr != nil {
		return infoErr
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.state.TotalGold = info.TotalGold
	d.state.Details = info.Details
	if todayErr == nil {
		d.state.TodayGold = today
	} else {
		xcontext.Logger(ctx).Warnf("Cannot refresh today gold: %v", todayErr)
	}
	if monthlyErr == nil {
		d.state.LastMonthGold = monthly.LastMonthGold
		d.state.CurrentMonthGold = monthly.CurrentMonthGold
	} else {
		xcontext.Logger(ctx).Warnf("Cannot refresh monthly gold: %v", monthlyErr)
	}
	if withdrawalsErr == nil {
		d.state.Withdrawals = withdrawals
	} else {
		xcontext.Logger(ctx).Warnf("Cannot refresh withdrawals: %v", withdrawalsErr)
	}

	return nil
}

func (d *earnDomain) State() EarnState {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.state
}

func (d *earnDomain) CooldownRemaining() int {
	return d.cooldown.Remaining()
}

func (d *earnDomain) PrepareWithdraw(
	ctx context.Context, alipayAccount, alipayName string,
) (*WithdrawPreview, error) {
	if strings.TrimSpace(alipayAccount) == "" || strings.TrimSpace(alipayName) == "" {
		return nil, errorx.New(errorx.BadRequest, "请填写支付宝账号和姓名")
	}

	cfg := xcontext.Configs(ctx).Earn

	d.mu.Lock()
	lastMonthGold := d.state.LastMonthGold
	d.mu.Unlock()

	if lastMonthGold < cfg.WithdrawMinimum {
		return nil, errorx.New(errorx.BadRequest,
			"上月金币不足%.0f,无法提现", cfg.WithdrawMinimum)
	}

	return &WithdrawPreview{
		AlipayAccount: alipayAccount,
		AlipayName:    alipayName,
		MaskedAccount: maskAccount(alipayAccount),
		GoldAmount:    lastMonthGold,
		Yuan:          lastMonthGold / cfg.CoinsPerYuan,
	}, nil
}

func (d *earnDomain) ConfirmWithdraw(ctx context.Context, preview *WithdrawPreview) error {
	if preview == nil {
		return errorx.New(errorx.BadRequest, "请先确认提现信息")
	}

	err := d.goldCaller.Withdraw(ctx, preview.AlipayAccount, preview.AlipayName, preview.GoldAmount)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.state.LastMonthGold -= preview.GoldAmount
	if d.state.LastMonthGold < 0 {
		d.state.LastMonthGold = 0
	}
	d.mu.Unlock()

	// Book the withdrawn amount as income. A failure here only loses the
	// companion record, the withdrawal itself already went through.
	if _, err := d.recordCaller.Add(ctx, preview.Yuan, "income", "副业收入", "电子手工"); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot book withdrawal income record: %v", err)
	}

	return d.Refresh(ctx)
}

func (d *earnDomain) Withdrawals(ctx context.Context, limit int) ([]model.Withdrawal, error) {
	return d.goldCaller.Withdrawals(ctx, limit)
}

func (d *earnDomain) refreshMonthly(ctx context.Context) {
	now := time.Now()
	monthly, err := d.goldCaller.Monthly(ctx, now.Year(), int(now.Month()))
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot refresh monthly gold: %v", err)
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.LastMonthGold = monthly.LastMonthGold
	d.state.CurrentMonthGold = monthly.CurrentMonthGold
}

func maskAccount(account string) string {
	runes := []rune(account)
	if len(runes) <= 7 {
		return string(runes[:1]) + "****"
	}

	return string(runes[:3]) + "****" + string(runes[len(runes)-4:])
}
