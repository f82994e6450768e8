package client

import (
	"context"
	"strconv"

	"github.com/niklaus3016/gaoqianleme/internal/model"
	"github.com/niklaus3016/gaoqianleme/pkg/api"
	"github.com/niklaus3016/gaoqianleme/pkg/xcontext"
)

// TotalFilter narrows a total query. Zero fields are omitted from the
// request entirely so the backend is not over-constrained by empty strings.
type TotalFilter struct {
	StartDate string `structs:"startDate"`
	EndDate   string `structs:"endDate"`
	Type      string `structs:"type"`
}

type RecordCaller interface {
	Add(ctx context.Context, amount float64, typ, category, description string) (*model.Record, error)
	Delete(ctx context.Context, recordID string) error
	List(ctx context.Context, page, limit int) ([]model.Record, error)
	Today(ctx context.Context) ([]model.Record, error)
	Month(ctx context.Context, year, month int) ([]model.Record, error)
	Total(ctx context.Context, filter TotalFilter) (*model.Total, error)
	TodayTotal(ctx context.Context, typ string) (*model.Total, error)
	MonthTotal(ctx context.Context, year, month int, typ string) (*model.Total, error)
	Statistics(ctx context.Context, days int) ([]model.DailyStatistic, error)
}

type recordCaller struct {
	apiGenerator api.Generator
}

func NewRecordCaller(apiGenerator api.Generator) *recordCaller {
	return &recordCaller{apiGenerator: apiGenerator}
}

func (c *recordCaller) Add(
	ctx context.Context, amount float64, typ, category, description string,
) (*model.Record, error) {
	resp, err := c.apiGenerator.New("/api/record/add").
		Body(api.JSON{
			"userId":      xcontext.RequestUserID(ctx),
			"amount":      amount,
			"type":        typ,
			"category":    category,
			"description": description,
		}).
		POST(ctx)
	if err != nil {
		return nil, err
	}

	data, err := api.ParseEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var result model.Record
	if err := decodeData(data, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *recordCaller) Delete(ctx context.Context, recordID string) error {
	resp, err := c.apiGenerator.New("/api/record/delete").
		Body(api.JSON{"recordId": recordID}).
		POST(ctx)
	if err != nil {
		return err
	}

	if _, err := api.ParseEnvelope(resp); err != nil {
		return err
	}

	return nil
}

func (c *recordCaller) List(ctx context.Context, page, limit int) ([]model.Record, error) {
	resp, err := c.apiGenerator.New("/api/record/list").
		Query(api.Parameter{
			"userId": xcontext.RequestUserID(ctx),
			"page":   strconv.Itoa(page),
			"limit":  strconv.Itoa(limit),
		}).
		GET(ctx)
	if err != nil {
		return nil, err
	}

	return c.parseRecords(resp)
}

func (c *recordCaller) Today(ctx context.Context) ([]model.Record, error) {
	resp, err := c.apiGenerator.New("/api/record/today").
		Query(api.Parameter{"userId": xcontext.RequestUserID(ctx)}).
		GET(ctx)
	if err != nil {
		return nil, err
	}

	return c.parseRecords(resp)
}

func (c *recordCaller) Month(ctx context.Context, year, month int) ([]model.Record, error) {
	resp, err := c.apiGenerator.New("/api/record/month").
		Query(api.Parameter{
			"userId": xcontext.RequestUserID(ctx),
			"year":   strconv.Itoa(year),
			"month":  strconv.Itoa(month),
		}).
		GET(ctx)
	if err != nil {
		return nil, err
	}

	return c.parseRecords(resp)
}

func (c *recordCaller) Total(ctx context.Context, filter TotalFilter) (*model.Total, error) {
	params := queryParams(filter)
	params["userId"] = xcontext.RequestUserID(ctx)

	resp, err := c.apiGenerator.New("/api/record/total").
		Query(params).
		GET(ctx)
	if err != nil {
		return nil, err
	}

	return c.parseTotal(resp)
}

func (c *recordCaller) TodayTotal(ctx context.Context, typ string) (*model.Total, error) {
	params := api.Parameter{"userId": xcontext.RequestUserID(ctx)}
	if typ != "" {
		params["type"] = typ
	}

	resp, err := c.apiGenerator.New("/api/record/today-total").
		Query(params).
		GET(ctx)
	if err != nil {
		return nil, err
	}

	return c.parseTotal(resp)
}

func (c *recordCaller) MonthTotal(
	ctx context.Context, year, month int, typ string,
) (*model.Total, error) {
	params := api.Parameter{
		"userId": xcontext.RequestUserID(ctx),
		"year":   strconv.Itoa(year),
		"month":  strconv.Itoa(month),
	}
	if typ != "" {
		params["type"] = typ
	}

	resp, err := c.apiGenerator.New("/api/record/month-total").
		Query(params).
		GET(ctx)
	if err != nil {
		return nil, err
	}

	return c.parseTotal(resp)
}

func (c *recordCaller) Statistics(ctx context.Context, days int) ([]model.DailyStatistic, error) {
	resp, err := c.apiGenerator.New("/api/record/statistics").
		Query(api.Parameter{
			"userId": xcontext.RequestUserID(ctx),
			"days":   strconv.Itoa(days),
		}).
		GET(ctx)
	if err != nil {
		return nil, err
	}

	data, err := api.ParseEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var result []model.DailyStatistic
	if err := decodeSlice(data, "statistics", &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *recordCaller) parseRecords(resp *api.Response) ([]model.Record, error) {
	data, err := api.ParseEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var result []model.Record
	if err := decodeSlice(data, "records", &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *recordCaller) parseTotal(resp *api.Response) (*model.Total, error) {
	data, err := api.ParseEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var result model.Total
	if err := decodeData(data, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
