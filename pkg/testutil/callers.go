package testutil

import (
	"context"

	"github.com/niklaus3016/gaoqianleme/internal/client"
	"github.com/niklaus3016/gaoqianleme/internal/model"
)

type MockGoldCaller struct {
	ClickFunc       func(ctx context.Context) (*model.GoldClick, error)
	InfoFunc        func(ctx context.Context, page, limit int) (*model.GoldInfo, error)
	TodayFunc       func(ctx context.Context) (float64, error)
	MonthlyFunc     func(ctx context.Context, year, month int) (*model.MonthlyGold, error)
	WithdrawFunc    func(ctx context.Context, alipayAccount, alipayName string, goldAmount float64) error
	WithdrawalsFunc func(ctx context.Context, limit int) ([]model.Withdrawal, error)
}

func (m *MockGoldCaller) Click(ctx context.Context) (*model.GoldClick, error) {
	if m.ClickFunc != nil {
		return m.ClickFunc(ctx)
	}

	panic("not implemented")
}

func (m *MockGoldCaller) Info(ctx context.Context, page, limit int) (*model.GoldInfo, error) {
	if m.InfoFunc != nil {
		return m.InfoFunc(ctx, page, limit)
	}

	panic("not implemented")
}

func (m *MockGoldCaller) Today(ctx context.Context) (float64, error) {
	if m.TodayFunc != nil {
		return m.TodayFunc(ctx)
	}

	panic("not implemented")
}

func (m *MockGoldCaller) Monthly(ctx context.Context, year, month int) (*model.MonthlyGold, error) {
	if m.MonthlyFunc != nil {
		return m.MonthlyFunc(ctx, year, month)
	}

	panic("not implemented")
}

func (m *MockGoldCaller) Withdraw(
	ctx context.Context, alipayAccount, alipayName string, goldAmount float64,
) error {
	if m.WithdrawFunc != nil {
		return m.WithdrawFunc(ctx, alipayAccount, alipayName, goldAmount)
	}

	panic("not implemented")
}

func (m *MockGoldCaller) Withdrawals(ctx context.Context, limit int) ([]model.Withdrawal, error) {
	if m.WithdrawalsFunc != nil {
		return m.WithdrawalsFunc(ctx, limit)
	}

	panic("not implemented")
}

type MockLotteryCaller struct {
	BuyFunc           func(ctx context.Context, ticketCount int) (*model.BuyTickets, error)
	LatestFunc        func(ctx context.Context) (*model.DrawResult, error)
	StatsFunc         func(ctx context.Context) (*model.LotteryStats, error)
	HistoryFunc       func(ctx context.Context, limit int) ([]model.DrawResult, error)
	TicketsByDateFunc func(ctx context.Context, drawDate string) ([]model.Ticket, error)
	AllTicketsFunc    func(ctx context.Context) ([]model.Ticket, error)
}

func (m *MockLotteryCaller) Buy(ctx context.Context, ticketCount int) (*model.BuyTickets, error) {
	if m.BuyFunc != nil {
		return m.BuyFunc(ctx, ticketCount)
	}

	panic("not implemented")
}

func (m *MockLotteryCaller) Latest(ctx context.Context) (*model.DrawResult, error) {
	if m.LatestFunc != nil {
		return m.LatestFunc(ctx)
	}

	panic("not implemented")
}

func (m *MockLotteryCaller) Stats(ctx context.Context) (*model.LotteryStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}

	panic("not implemented")
}

func (m *MockLotteryCaller) History(ctx context.Context, limit int) ([]model.DrawResult, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, limit)
	}

	panic("not implemented")
}

func (m *MockLotteryCaller) TicketsByDate(
	ctx context.Context, drawDate string,
) ([]model.Ticket, error) {
	if m.TicketsByDateFunc != nil {
		return m.TicketsByDateFunc(ctx, drawDate)
	}

	panic("not implemented")
}

func (m *MockLotteryCaller) AllTickets(ctx context.Context) ([]model.Ticket, error) {
	if m.AllTicketsFunc != nil {
		return m.AllTicketsFunc(ctx)
	}

	panic("not implemented")
}

type MockTargetCaller struct {
	GetFunc    func(ctx context.Context, targetDate string) (*model.Target, error)
	SetFunc    func(ctx context.Context, amount float64, period, targetDate string) (*model.Target, error)
	UpdateFunc func(ctx context.Context, delta float64, targetDate string) (*model.Target, error)
	MonthFunc  func(ctx context.Context, year, month int) ([]model.Target, error)
}

func (m *MockTargetCaller) Get(ctx context.Context, targetDate string) (*model.Target, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, targetDate)
	}

	panic("not implemented")
}

func (m *MockTargetCaller) Set(
	ctx context.Context, amount float64, period, targetDate string,
) (*model.Target, error) {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, amount, period, targetDate)
	}

	panic("not implemented")
}

func (m *MockTargetCaller) Update(
	ctx context.Context, delta float64, targetDate string,
) (*model.Target, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, delta, targetDate)
	}

	panic("not implemented")
}

func (m *MockTargetCaller) Month(ctx context.Context, year, month int) ([]model.Target, error) {
	if m.MonthFunc != nil {
		return m.MonthFunc(ctx, year, month)
	}

	panic("not implemented")
}

type MockRecordCaller struct {
	AddFunc        func(ctx context.Context, amount float64, typ, category, description string) (*model.Record, error)
	DeleteFunc     func(ctx context.Context, recordID string) error
	ListFunc       func(ctx context.Context, page, limit int) ([]model.Record, error)
	TodayFunc      func(ctx context.Context) ([]model.Record, error)
	MonthFunc      func(ctx context.Context, year, month int) ([]model.Record, error)
	TotalFunc      func(ctx context.Context, filter client.TotalFilter) (*model.Total, error)
	TodayTotalFunc func(ctx context.Context, typ string) (*model.Total, error)
	MonthTotalFunc func(ctx context.Context, year, month int, typ string) (*model.Total, error)
	StatisticsFunc func(ctx context.Context, days int) ([]model.DailyStatistic, error)
}

func (m *MockRecordCaller) Add(
	ctx context.Context, amount float64, typ, category, description string,
) (*model.Record, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, amount, typ, category, description)
	}

	panic("not implemented")
}

func (m *MockRecordCaller) Delete(ctx context.Context, recordID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, recordID)
	}

	panic("not implemented")
}

func (m *MockRecordCaller) List(ctx context.Context, page, limit int) ([]model.Record, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, limit)
	}

	panic("not implemented")
}

func (m *MockRecordCaller) Today(ctx context.Context) ([]model.Record, error) {
	if m.TodayFunc != nil {
		return m.TodayFunc(ctx)
	}

	panic("not implemented")
}

func (m *MockRecordCaller) Month(ctx context.Context, year, month int) ([]model.Record, error) {
	if m.MonthFunc != nil {
		return m.MonthFunc(ctx, year, month)
	}

	panic("not implemented")
}

func (m *MockRecordCaller) Total(
	ctx context.Context, filter client.TotalFilter,
) (*model.Total, error) {
	if m.TotalFunc != nil {
		return m.TotalFunc(ctx, filter)
	}

	panic("not implemented")
}

func (m *MockRecordCaller) TodayTotal(ctx context.Context, typ string) (*model.Total, error) {
	if m.TodayTotalFunc != nil {
		return m.TodayTotalFunc(ctx, typ)
	}

	panic("not implemented")
}

func (m *MockRecordCaller) MonthTotal(
	ctx context.Context, year, month int, typ string,
) (*model.Total, error) {
	if m.MonthTotalFunc != nil {
		return m.MonthTotalFunc(ctx, year, month, typ)
	}

	panic("not implemented")
}

func (m *MockRecordCaller) Statistics(
	ctx context.Context, days int,
) ([]model.DailyStatistic, error) {
	if m.StatisticsFunc != nil {
		return m.StatisticsFunc(ctx, days)
	}

	panic("not implemented")
}

type MockAdvisorCaller struct {
	IdeasFunc func(ctx context.Context, skills string) ([]model.WealthIdea, error)
	ChatFunc  func(ctx context.Context, history []model.ChatMessage, message string) (string, error)
}

func (m *MockAdvisorCaller) Ideas(ctx context.Context, skills string) ([]model.WealthIdea, error) {
	if m.IdeasFunc != nil {
		return m.IdeasFunc(ctx, skills)
	}

	panic("not implemented")
}

func (m *MockAdvisorCaller) Chat(
	ctx context.Context, history []model.ChatMessage, message string,
) (string, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, history, message)
	}

	panic("not implemented")
}
