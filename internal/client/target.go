package client

import (
	"context"
	"strconv"

	"github.com/niklaus3016/gaoqianleme/internal/model"
	"github.com/niklaus3016/gaoqianleme/pkg/api"
	"github.com/niklaus3016/gaoqianleme/pkg/xcontext"
)

type TargetCaller interface {
	Get(ctx context.Context, targetDate string) (*model.Target, error)
	Set(ctx context.Context, amount float64, period, targetDate string) (*model.Target, error)
	Update(ctx context.Context, delta float64, targetDate string) (*model.Target, error)
	Month(ctx context.Context, year, month int) ([]model.Target, error)
}

type targetCaller struct {
	apiGenerator api.Generator
}

func NewTargetCaller(apiGenerator api.Generator) *targetCaller {
	return &targetCaller{apiGenerator: apiGenerator}
}

// Get returns the goal keyed by targetDate, or nil when the user never set
// one. The backend answers 200 with a null target in that case.
func (c *targetCaller) Get(ctx context.Context, targetDate string) (*model.Target, error) {
	resp, err := c.apiGenerator.New("/api/target/get").
		Query(api.Parameter{
			"userId":     xcontext.RequestUserID(ctx),
			"targetDate": targetDate,
		}).
		GET(ctx)
	if err != nil {
		return nil, err
	}

	data, err := api.ParseEnvelope(resp)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, nil
	}

	if raw, ok := data["target"]; ok && raw == nil {
		return nil, nil
	}

	var result model.Target
	if err := decodeData(data, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *targetCaller) Set(
	ctx context.Context, amount float64, period, targetDate string,
) (*model.Target, error) {
	resp, err := c.apiGenerator.New("/api/target/set").
		Body(api.JSON{
			"userId":     xcontext.RequestUserID(ctx),
			"target":     amount,
			"period":     period,
			"targetDate": targetDate,
		}).
		POST(ctx)
	if err != nil {
		return nil, err
	}

	data, err := api.ParseEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var result model.Target
	if err := decodeData(data, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Update shifts the goal's running total by delta, which is negative when a
// record is removed.
func (c *targetCaller) Update(
	ctx context.Context, delta float64, targetDate string,
) (*model.Target, error) {
	resp, err := c.apiGenerator.New("/api/target/update").
		Body(api.JSON{
			"userId":     xcontext.RequestUserID(ctx),
			"targetDate": targetDate,
			"amount":     delta,
		}).
		POST(ctx)
	if err != nil {
		return nil, err
	}

	data, err := api.ParseEnvelope(resp)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, nil
	}

	var result model.Target
	if err := decodeData(data, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *targetCaller) Month(ctx context.Context, year, month int) ([]model.Target, error) {
	resp, err := c.apiGenerator.New("/api/target/month").
		Query(api.Parameter{
			"userId": xcontext.RequestUserID(ctx),
			"year":   strconv.Itoa(year),
			"month":  strconv.Itoa(month),
		}).
		GET(ctx)
	if err != nil {
		return nil, err
	}

	data, err := api.ParseEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var result []model.Target
	if err := decodeSlice(data, "targets", &result); err != nil {
		return nil, err
	}

	return result, nil
}
