package client

import (
	"context"
	"strconv"
	"time"

	"github.com/puzpuzpuz/xsync"

	"github.com/niklaus3016/gaoqianleme/internal/model"
	"github.com/niklaus3016/gaoqianleme/pkg/api"
	"github.com/niklaus3016/gaoqianleme/pkg/errorx"
	"github.com/niklaus3016/gaoqianleme/pkg/xcontext"
)

type GoldCaller interface {
	Click(ctx context.Context) (*model.GoldClick, error)
	Info(ctx context.Context, page, limit int) (*model.GoldInfo, error)
	Today(ctx context.Context) (float64, error)
	Monthly(ctx context.Context, year, month int) (*model.MonthlyGold, error)
	Withdraw(ctx context.Context, alipayAccount, alipayName string, goldAmount float64) error
	Withdrawals(ctx context.Context, limit int) ([]model.Withdrawal, error)
}

type goldCaller struct {
	apiGenerator api.Generator

	// notBefore tracks, per user, the earliest next click the server will
	// accept, so repeated taps inside a known cooldown are rejected without a
	// round trip.
	notBefore *xsync.MapOf[string, time.Time]
}

func NewGoldCaller(apiGenerator api.Generator) *goldCaller {
	return &goldCaller{
		apiGenerator: apiGenerator,
		notBefore:    xsync.NewMapOf[time.Time](),
	}
}

func (c *goldCaller) Click(ctx context.Context) (*model.GoldClick, error) {
	userID := xcontext.RequestUserID(ctx)
	if limit, ok := c.notBefore.Load(userID); ok {
		if wait := time.Until(limit); wait > 0 {
			return nil, wrapRateLimit(int(wait.Seconds()) + 1)
		}

		c.notBefore.Delete(userID)
	}

	resp, err := c.apiGenerator.New("/api/gold/click").
		Body(api.JSON{"userId": userID}).
		POST(ctx)
	if err != nil {
		return nil, err
	}

	data, err := api.ParseEnvelope(resp)
	if err != nil {
		if seconds, ok := parseWaitSeconds(err); ok {
			c.notBefore.Store(userID, time.Now().Add(time.Duration(seconds)*time.Second))
			return nil, wrapRateLimit(seconds)
		}

		return nil, err
	}

	var result model.GoldClick
	if err := decodeData(data, &result); err != nil {
		return nil, err
	}

	if result.RemainingSeconds > 0 {
		c.notBefore.Store(userID,
			time.Now().Add(time.Duration(result.RemainingSeconds)*time.Second))
	}

	return &result, nil
}

func (c *goldCaller) Info(ctx context.Context, page, limit int) (*model.GoldInfo, error) {
	resp, err := c.apiGenerator.New("/api/gold/info").
		Query(api.Parameter{
			"userId": xcontext.RequestUserID(ctx),
			"page":   strconv.Itoa(page),
			"limit":  strconv.Itoa(limit),
		}).
		GET(ctx)
	if err != nil {
		return nil, err
	}

	data, err := api.ParseEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var result model.GoldInfo
	if err := decodeData(data, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *goldCaller) Today(ctx context.Context) (float64, error) {
	resp, err := c.apiGenerator.New("/api/gold/today").
		Query(api.Parameter{"userId": xcontext.RequestUserID(ctx)}).
		GET(ctx)
	if err != nil {
		return 0, err
	}

	data, err := api.ParseEnvelope(resp)
	if err != nil {
		return 0, err
	}

	today, err := data.GetFloat64("todayGold")
	if err != nil {
		return 0, errorx.New(errorx.BadResponse, "网络请求失败")
	}

	return today, nil
}

func (c *goldCaller) Monthly(ctx context.Context, year, month int) (*model.MonthlyGold, error) {
	resp, err := c.apiGenerator.New("/api/gold/monthly").
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

	var result model.MonthlyGold
	if err := decodeData(data, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *goldCaller) Withdraw(
	ctx context.Context, alipayAccount, alipayName string, goldAmount float64,
) error {
	resp, err := c.apiGenerator.New("/api/gold/withdraw").
		Body(api.JSON{
			"userId":        xcontext.RequestUserID(ctx),
			"alipayAccount": alipayAccount,
			"alipayName":    alipayName,
			"goldAmount":    goldAmount,
		}).
		POST(ctx)
	if err != nil {
		return err
	}

	if _, err := api.ParseEnvelope(resp); err != nil {
		return err
	}

	return nil
}

func (c *goldCaller) Withdrawals(ctx context.Context, limit int) ([]model.Withdrawal, error) {
	resp, err := c.apiGenerator.New("/api/gold/withdrawals").
		Query(api.Parameter{
			"userId": xcontext.RequestUserID(ctx),
			"limit":  strconv.Itoa(limit),
		}).
		GET(ctx)
	if err != nil {
		return nil, err
	}

	// The withdrawal history endpoint answers with the list directly in data.
	list, err := api.ParseEnvelopeList(resp)
	if err != nil {
		return nil, err
	}

	var result []model.Withdrawal
	if err := decodeList(list, &result); err != nil {
		return nil, err
	}

	return result, nil
}
