package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/niklaus3016/gaoqianleme/pkg/api"
)

func newAdvisorResponse(text string) *api.Response {
	return &api.Response{
		Code: http.StatusOK,
		Body: api.JSON{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"parts": []any{
							map[string]any{"text": text},
						},
					},
				},
			},
		},
	}
}

func Test_advisorCaller_Ideas(t *testing.T) {
	caller := NewAdvisorCaller(&api.MockAPIGenerator{
		MockClient: api.MockAPIClient{
			POSTFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
				return newAdvisorResponse(`[
					{
						"title": "周末摆摊",
						"description": "卖手作饰品",
						"difficulty": "简单",
						"potentialMonthlyIncome": "1000-3000元",
						"steps": ["选品", "找摊位"]
					}
				]`), nil
			},
		},
	}, "key", "idea-model", "chat-model")

	ideas, err := caller.Ideas(context.Background(), "会做手工")
	require.NoError(t, err)
	require.Len(t, ideas, 1)
	require.Equal(t, "周末摆摊", ideas[0].Title)
	require.Equal(t, []string{"选品", "找摊位"}, ideas[0].Steps)
}

func Test_advisorCaller_Ideas_NoKey(t *testing.T) {
	caller := NewAdvisorCaller(&api.MockAPIGenerator{}, "", "idea-model", "chat-model")

	_, err := caller.Ideas(context.Background(), "会做手工")
	require.Error(t, err)
}

func Test_advisorCaller_Chat(t *testing.T) {
	caller := NewAdvisorCaller(&api.MockAPIGenerator{
		MockClient: api.MockAPIClient{
			POSTFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
				return newAdvisorResponse("先从记账开始"), nil
			},
		},
	}, "key", "idea-model", "chat-model")

	reply, err := caller.Chat(context.Background(), nil, "怎么开始攒钱?")
	require.NoError(t, err)
	require.Equal(t, "先从记账开始", reply)
}

func Test_advisorCaller_Chat_MalformedResponse(t *testing.T) {
	caller := NewAdvisorCaller(&api.MockAPIGenerator{
		MockClient: api.MockAPIClient{
			POSTFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
				return &api.Response{Code: http.StatusOK, Body: api.JSON{}}, nil
			},
		},
	}, "key", "idea-model", "chat-model")

	_, err := caller.Chat(context.Background(), nil, "hi")
	require.Error(t, err)
}
