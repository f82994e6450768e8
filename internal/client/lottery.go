package client

import (
	"context"
	"strconv"

	"github.com/niklaus3016/gaoqianleme/internal/model"
	"github.com/niklaus3016/gaoqianleme/pkg/api"
	"github.com/niklaus3016/gaoqianleme/pkg/xcontext"
)

type LotteryCaller interface {
	Buy(ctx context.Context, ticketCount int) (*model.BuyTickets, error)
	Latest(ctx context.Context) (*model.DrawResult, error)
	Stats(ctx context.Context) (*model.LotteryStats, error)
	History(ctx context.Context, limit int) ([]model.DrawResult, error)
	TicketsByDate(ctx context.Context, drawDate string) ([]model.Ticket, error)
	AllTickets(ctx context.Context) ([]model.Ticket, error)
}

type lotteryCaller struct {
	apiGenerator api.Generator
}

func NewLotteryCaller(apiGenerator api.Generator) *lotteryCaller {
	return &lotteryCaller{apiGenerator: apiGenerator}
}

func (c *lotteryCaller) Buy(ctx context.Context, ticketCount int) (*model.BuyTickets, error) {
	resp, err := c.apiGenerator.New("/api/lottery/buy").
		Body(api.JSON{
			"userId":      xcontext.RequestUserID(ctx),
			"ticketCount": ticketCount,
		}).
		POST(ctx)
	if err != nil {
		return nil, err
	}

	data, err := api.ParseEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var result model.BuyTickets
	if err := decodeData(data, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Latest returns the most recent draw, or nil before the first draw ever
// happens.
func (c *lotteryCaller) Latest(ctx context.Context) (*model.DrawResult, error) {
	resp, err := c.apiGenerator.New("/api/lottery/latest").GET(ctx)
	if err != nil {
		return nil, err
	}

	data, err := api.ParseEnvelope(resp)
	if err != nil {
		return nil, err
	}

	inner, err := data.GetJSON("result")
	if err != nil || inner == nil {
		return nil, nil
	}

	var result model.DrawResult
	if err := decodeData(inner, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *lotteryCaller) Stats(ctx context.Context) (*model.LotteryStats, error) {
	resp, err := c.apiGenerator.New("/api/lottery/stats").GET(ctx)
	if err != nil {
		return nil, err
	}

	data, err := api.ParseEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var result model.LotteryStats
	if err := decodeData(data, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *lotteryCaller) History(ctx context.Context, limit int) ([]model.DrawResult, error) {
	resp, err := c.apiGenerator.New("/api/lottery/history").
		Query(api.Parameter{"limit": strconv.Itoa(limit)}).
		GET(ctx)
	if err != nil {
		return nil, err
	}

	data, err := api.ParseEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var result []model.DrawResult
	if err := decodeSlice(data, "results", &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *lotteryCaller) TicketsByDate(ctx context.Context, drawDate string) ([]model.Ticket, error) {
	resp, err := c.apiGenerator.New("/api/lottery/tickets").
		Query(api.Parameter{
			"userId":   xcontext.RequestUserID(ctx),
			"drawDate": drawDate,
		}).
		GET(ctx)
	if err != nil {
		return nil, err
	}

	data, err := api.ParseEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var result []model.Ticket
	if err := decodeSlice(data, "tickets", &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *lotteryCaller) AllTickets(ctx context.Context) ([]model.Ticket, error) {
	resp, err := c.apiGenerator.New("/api/lottery/all-tickets").
		Query(api.Parameter{"userId": xcontext.RequestUserID(ctx)}).
		GET(ctx)
	if err != nil {
		return nil, err
	}

	data, err := api.ParseEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var result []model.Ticket
	if err := decodeSlice(data, "tickets", &result); err != nil {
		return nil, err
	}

	return result, nil
}
