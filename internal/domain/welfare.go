package domain

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/math"
	"golang.org/x/exp/slices"

	"github.com/niklaus3016/gaoqianleme/internal/client"
	"github.com/niklaus3016/gaoqianleme/internal/model"
	"github.com/niklaus3016/gaoqianleme/pkg/dateutil"
	"github.com/niklaus3016/gaoqianleme/pkg/errorx"
	"github.com/niklaus3016/gaoqianleme/pkg/xcontext"
)

var prizeLevelNames = map[string]string{
	"special": "特等奖",
	"first":   "一等奖",
	"second":  "二等奖",
	"third":   "三等奖",
	"none":    "未中奖",
}

// PrizeLevelName translates a backend prize level into its display label.
func PrizeLevelName(level string) string {
	if name, ok := prizeLevelNames[level]; ok {
		return name
	}

	return "中奖"
}

// WelfareState is the rendered view of the lottery screen. Coins holds the
// current month gold, which is the balance tickets are bought with.
type WelfareState struct {
	Coins          float64
	CurrentTickets []model.Ticket
	AllTickets     []model.Ticket
	History        []model.DrawResult
	Stats          *model.LotteryStats
}

// WinNotification is one consolidated message for all tickets resolved as
// winning by a single draw.
type WinNotification struct {
	ID      string
	Level   string
	Amount  float64
	Tickets int
}

type WelfareDomain interface {
	Refresh(ctx context.Context) error
	BuyTicket(ctx context.Context, count int) (*model.BuyTickets, error)
	CheckDrawResult(ctx context.Context) (*WinNotification, error)
	MaxPurchasable(ctx context.Context) int
	State() WelfareState
}

type welfareDomain struct {
	lotteryCaller client.LotteryCaller
	goldCaller    client.GoldCaller

	mu               sync.Mutex
	state            WelfareState
	lastSeenDrawDate string
}

func NewWelfareDomain(
	lotteryCaller client.LotteryCaller,
	goldCaller client.GoldCaller,
) *welfareDomain {
	return &welfareDomain{
		lotteryCaller: lotteryCaller,
		goldCaller:    goldCaller,
	}
}

// Refresh refetches the balance, both ticket lists, the draw history and the
// pool stats concurrently and swaps the state once every call has settled.
// Read failures on a single slice keep that slice's previous value.
func (d *welfareDomain) Refresh(ctx context.Context) error {
	now := time.Now()
	drawDate := dateutil.DayString(now)

	var wg sync.WaitGroup
	var monthly *model.MonthlyGold
	var current, all []model.Ticket
	var history []model.DrawResult
	var stats *model.LotteryStats
	var monthlyErr, currentErr, allErr, historyErr, statsErr error

	wg.Add(5)
	go func() {
		defer wg.Done()
		monthly, monthlyErr = d.goldCaller.Monthly(ctx, now.Year(), int(now.Month()))
	}()
	go func() {
		defer wg.Done()
		current, currentErr = d.lotteryCaller.TicketsByDate(ctx, drawDate)
	}()
	go func() {
		defer wg.Done()
		all, allErr = d.lotteryCaller.AllTickets(ctx)
	}()
	go func() {
		defer wg.Done()
		history, historyErr = d.lotteryCaller.History(ctx, 10)
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = d.lotteryCaller.Stats(ctx)
	}()
	wg.Wait()

	if allErr != nil {
		return allErr
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.state.AllTickets = all
	if monthlyErr == nil {
		d.state.Coins = monthly.CurrentMonthGold
	} else {
		xcontext.Logger(ctx).Warnf("Cannot refresh lottery balance: %v", monthlyErr)
	}
	if currentErr == nil {
		d.state.CurrentTickets = current
	} else {
		xcontext.Logger(ctx).Warnf("Cannot refresh current tickets: %v", currentErr)
	}
	if historyErr == nil {
		d.state.History = history
	} else {
		xcontext.Logger(ctx).Warnf("Cannot refresh draw history: %v", historyErr)
	}
	if statsErr == nil {
		d.state.Stats = stats
	} else {
		xcontext.Logger(ctx).Warnf("Cannot refresh lottery stats: %v", statsErr)
	}

	return nil
}

func (d *welfareDomain) BuyTicket(ctx context.Context, count int) (*model.BuyTickets, error) {
	if count <= 0 {
		return nil, errorx.New(errorx.BadRequest, "请输入有效的购买数量")
	}

	cfg := xcontext.Configs(ctx).Lottery

	d.mu.Lock()
	held := len(d.state.CurrentTickets)
	coins := d.state.Coins
	d.mu.Unlock()

	// Both caps are enforced before any network call is made.
	if held+count > cfg.MaxTicketsPerDraw {
		return nil, errorx.New(errorx.BadRequest, "今日额度已满,明天再来试试运气")
	}

	if coins < cfg.TicketPrice*float64(count) {
		return nil, errorx.New(errorx.BadRequest, "金币不足,无法购买")
	}

	resp, err := d.lotteryCaller.Buy(ctx, count)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.state.CurrentTickets = append(d.state.CurrentTickets, resp.Tickets...)
	d.state.Coins = resp.RemainingGold
	d.mu.Unlock()

	if err := d.Refresh(ctx); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot reconcile after buying tickets: %v", err)
	}

	return resp, nil
}

// CheckDrawResult looks for a draw that happened since the last check. On a
// new draw date it refreshes every lottery slice, waits for the refreshed
// ticket list to arrive, and only then diffs it against the previous snapshot
// for tickets that newly turned winning. The first observed draw date only
// sets the baseline, it never raises a notification.
func (d *welfareDomain) CheckDrawResult(ctx context.Context) (*WinNotification, error) {
	latest, err := d.lotteryCaller.Latest(ctx)
	if err != nil {
		return nil, err
	}

	if latest == nil {
		return nil, nil
	}

	d.mu.Lock()
	lastSeen := d.lastSeenDrawDate
	oldTickets := slices.Clone(d.state.AllTickets)
	d.mu.Unlock()

	if latest.DrawDate == lastSeen {
		return nil, nil
	}

	d.mu.Lock()
	d.lastSeenDrawDate = latest.DrawDate
	d.mu.Unlock()

	if err := d.Refresh(ctx); err != nil {
		return nil, err
	}

	if lastSeen == "" {
		return nil, nil
	}

	d.mu.Lock()
	newTickets := slices.Clone(d.state.AllTickets)
	d.mu.Unlock()

	var winning []model.Ticket
	for _, ticket := range newTickets {
		if !ticket.IsWinning {
			continue
		}

		index := slices.IndexFunc(oldTickets, func(old model.Ticket) bool {
			return old.ID == ticket.ID
		})
		if index >= 0 && oldTickets[index].IsWinning {
			continue
		}

		winning = append(winning, ticket)
	}

	if len(winning) == 0 {
		return nil, nil
	}

	highest := winning[0]
	var total float64
	for _, ticket := range winning {
		total += ticket.PrizeAmount
		if ticket.PrizeAmount > highest.PrizeAmount {
			highest = ticket
		}
	}

	return &WinNotification{
		ID:      uuid.NewString(),
		Level:   PrizeLevelName(highest.PrizeLevel),
		Amount:  total,
		Tickets: len(winning),
	}, nil
}

// MaxPurchasable reports how many more tickets the user could buy right now,
// bounded by both the per-draw cap and the coin balance.
func (d *welfareDomain) MaxPurchasable(ctx context.Context) int {
	cfg := xcontext.Configs(ctx).Lottery

	d.mu.Lock()
	held := len(d.state.CurrentTickets)
	coins := d.state.Coins
	d.mu.Unlock()

	byCap := cfg.MaxTicketsPerDraw - held
	byCoins := int(coins / cfg.TicketPrice)

	return math.Max(0, math.Min(byCap, byCoins))
}

func (d *welfareDomain) State() WelfareState {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.state
}
