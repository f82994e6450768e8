package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/niklaus3016/gaoqianleme/pkg/api"
	"github.com/niklaus3016/gaoqianleme/pkg/xcontext"
)

func Test_goldCaller_Click(t *testing.T) {
	ctx := xcontext.WithRequestUserID(context.Background(), "user-1")

	calls := 0
	caller := NewGoldCaller(&api.MockAPIGenerator{
		MockClient: api.MockAPIClient{
			POSTFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
				calls++
				return &api.Response{
					Code: http.StatusOK,
					Body: api.JSON{
						"code": float64(200),
						"data": map[string]any{
							"userId":           "user-1",
							"totalGold":        float64(1210),
							"todayGold":        float64(30),
							"goldEarned":       float64(10),
							"remainingSeconds": float64(10),
						},
					},
				}, nil
			},
		},
	})

	result, err := caller.Click(ctx)
	require.NoError(t, err)
	require.Equal(t, float64(10), result.GoldEarned)
	require.Equal(t, float64(1210), result.TotalGold)
	require.Equal(t, 10, result.RemainingSeconds)
	require.Equal(t, 1, calls)

	// The reported cooldown is respected without another round trip.
	_, err = caller.Click(ctx)
	seconds, ok := IsRateLimit(err)
	require.True(t, ok)
	require.Greater(t, seconds, 0)
	require.Equal(t, 1, calls)
}

func Test_goldCaller_Click_ServerRateLimit(t *testing.T) {
	ctx := xcontext.WithRequestUserID(context.Background(), "user-1")

	calls := 0
	caller := NewGoldCaller(&api.MockAPIGenerator{
		MockClient: api.MockAPIClient{
			POSTFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
				calls++
				return &api.Response{
					Code: http.StatusOK,
					Body: api.JSON{
						"code":    float64(429),
						"message": "请等待 5 秒",
					},
				}, nil
			},
		},
	})

	_, err := caller.Click(ctx)
	seconds, ok := IsRateLimit(err)
	require.True(t, ok)
	require.Equal(t, 5, seconds)
	require.Equal(t, 1, calls)

	// The parsed wait goes into the local registry too.
	_, err = caller.Click(ctx)
	_, ok = IsRateLimit(err)
	require.True(t, ok)
	require.Equal(t, 1, calls)
}

func Test_goldCaller_Monthly(t *testing.T) {
	ctx := xcontext.WithRequestUserID(context.Background(), "user-1")

	var query api.Parameter
	mock := &api.MockAPIGenerator{}
	mock.MockClient = api.MockAPIClient{
		QueryFunc: func(q api.Parameter) api.Client {
			query = q
			return &mock.MockClient
		},
		GETFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
			return &api.Response{
				Code: http.StatusOK,
				Body: api.JSON{
					"code": float64(200),
					"data": map[string]any{
						"lastMonthGold":    float64(2500),
						"currentMonthGold": float64(800),
					},
				},
			}, nil
		},
	}

	caller := NewGoldCaller(mock)
	monthly, err := caller.Monthly(ctx, 2026, 8)
	require.NoError(t, err)
	require.Equal(t, float64(2500), monthly.LastMonthGold)
	require.Equal(t, float64(800), monthly.CurrentMonthGold)
	require.Equal(t, "user-1", query["userId"])
	require.Equal(t, "2026", query["year"])
	require.Equal(t, "8", query["month"])
}
