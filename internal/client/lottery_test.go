package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/niklaus3016/gaoqianleme/pkg/api"
	"github.com/niklaus3016/gaoqianleme/pkg/xcontext"
)

func Test_lotteryCaller_Latest(t *testing.T) {
	caller := NewLotteryCaller(&api.MockAPIGenerator{
		MockClient: api.MockAPIClient{
			GETFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
				return &api.Response{
					Code: http.StatusOK,
					Body: api.JSON{
						"code": float64(200),
						"data": map[string]any{
							"result": map[string]any{
								"drawDate":       "2026-08-29",
								"winningNumbers": []any{"888888"},
								"totalPool":      float64(50000),
								"isDrawn":        true,
							},
						},
					},
				}, nil
			},
		},
	})

	result, err := caller.Latest(context.Background())
	require.NoError(t, err)
	require.Equal(t, "2026-08-29", result.DrawDate)
	require.True(t, result.IsDrawn)
	require.Equal(t, []string{"888888"}, result.WinningNumbers)
}

func Test_lotteryCaller_Latest_NoDrawYet(t *testing.T) {
	caller := NewLotteryCaller(&api.MockAPIGenerator{
		MockClient: api.MockAPIClient{
			GETFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
				return &api.Response{
					Code: http.StatusOK,
					Body: api.JSON{
						"code": float64(200),
						"data": map[string]any{"result": nil},
					},
				}, nil
			},
		},
	})

	result, err := caller.Latest(context.Background())
	require.NoError(t, err)
	require.Nil(t, result)
}

func Test_lotteryCaller_AllTickets(t *testing.T) {
	ctx := xcontext.WithRequestUserID(context.Background(), "user-1")

	caller := NewLotteryCaller(&api.MockAPIGenerator{
		MockClient: api.MockAPIClient{
			GETFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
				return &api.Response{
					Code: http.StatusOK,
					Body: api.JSON{
						"code": float64(200),
						"data": map[string]any{
							"tickets": []any{
								map[string]any{
									"_id":          "t1",
									"uid":          "user-1",
									"ticketNumber": "123456",
									"isWinning":    true,
									"prizeLevel":   "third",
									"prizeAmount":  float64(500),
								},
							},
						},
					},
				}, nil
			},
		},
	})

	tickets, err := caller.AllTickets(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	require.Equal(t, "t1", tickets[0].ID)
	require.True(t, tickets[0].IsWinning)
	require.Equal(t, float64(500), tickets[0].PrizeAmount)
}
