package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/niklaus3016/gaoqianleme/internal/model"
	"github.com/niklaus3016/gaoqianleme/pkg/api"
	"github.com/niklaus3016/gaoqianleme/pkg/errorx"
	"github.com/niklaus3016/gaoqianleme/pkg/xcontext"
)

const ideasPrompt = `根据用户的技能和背景: "%s",提供3个创新的副业或搞钱点子。` +
	`每个点子包含标题、简介、难度(简单/中等/困难)、预估月收入和执行步骤。`

const chatSystemPrompt = `你是一位专业的理财顾问,名叫"财富军师"。` +
	`请用简洁、实用、接地气的语言回答用户关于赚钱和理财的问题。`

type AdvisorCaller interface {
	Ideas(ctx context.Context, skills string) ([]model.WealthIdea, error)
	Chat(ctx context.Context, history []model.ChatMessage, message string) (string, error)
}

type advisorCaller struct {
	apiGenerator api.Generator
	apiKey       string
	ideaModel    string
	chatModel    string
}

func NewAdvisorCaller(apiGenerator api.Generator, apiKey, ideaModel, chatModel string) *advisorCaller {
	return &advisorCaller{
		apiGenerator: apiGenerator,
		apiKey:       apiKey,
		ideaModel:    ideaModel,
		chatModel:    chatModel,
	}
}

func (c *advisorCaller) Ideas(ctx context.Context, skills string) ([]model.WealthIdea, error) {
	if c.apiKey == "" {
		return nil, errorx.New(errorx.BadRequest, "未配置军师服务密钥")
	}

	resp, err := c.apiGenerator.New("/v1beta/models/%s:generateContent", c.ideaModel).
		Body(api.JSON{
			"contents": []api.JSON{
				{
					"role":  model.ChatRoleUser,
					"parts": []api.JSON{{"text": fmt.Sprintf(ideasPrompt, skills)}},
				},
			},
			"generationConfig": api.JSON{
				"responseMimeType": "application/json",
				"responseSchema": api.JSON{
					"type": "ARRAY",
					"items": api.JSON{
						"type": "OBJECT",
						"properties": api.JSON{
							"title":                  api.JSON{"type": "STRING"},
							"description":            api.JSON{"type": "STRING"},
							"difficulty":             api.JSON{"type": "STRING"},
							"potentialMonthlyIncome": api.JSON{"type": "STRING"},
							"steps": api.JSON{
								"type":  "ARRAY",
								"items": api.JSON{"type": "STRING"},
							},
						},
					},
				},
			},
		}).
		POST(ctx, api.OAuth2("Bearer", c.apiKey))
	if err != nil {
		return nil, err
	}

	text, err := candidateText(resp)
	if err != nil {
		return nil, err
	}

	var ideas []model.WealthIdea
	if err := json.Unmarshal([]byte(text), &ideas); err != nil {
		xcontext.Logger(ctx).Errorf("cannot parse ideas payload: %v", err)
		return nil, errorx.New(errorx.BadResponse, "军师暂时无法出谋划策")
	}

	return ideas, nil
}

func (c *advisorCaller) Chat(
	ctx context.Context, history []model.ChatMessage, message string,
) (string, error) {
	if c.apiKey == "" {
		return "", errorx.New(errorx.BadRequest, "未配置军师服务密钥")
	}

	contents := make([]api.JSON, 0, len(history)+1)
	for _, m := range history {
		contents = append(contents, api.JSON{
			"role":  m.Role,
			"parts": []api.JSON{{"text": m.Content}},
		})
	}
	contents = append(contents, api.JSON{
		"role":  model.ChatRoleUser,
		"parts": []api.JSON{{"text": message}},
	})

	resp, err := c.apiGenerator.New("/v1beta/models/%s:generateContent", c.chatModel).
		Body(api.JSON{
			"contents": contents,
			"systemInstruction": api.JSON{
				"parts": []api.JSON{{"text": chatSystemPrompt}},
			},
		}).
		POST(ctx, api.OAuth2("Bearer", c.apiKey))
	if err != nil {
		return "", err
	}

	return candidateText(resp)
}

func candidateText(resp *api.Response) (string, error) {
	body, ok := resp.Body.(api.JSON)
	if !ok {
		return "", errorx.New(errorx.BadResponse, "军师暂时无法出谋划策")
	}

	candidates, err := body.GetArray("candidates")
	if err != nil || len(candidates) == 0 {
		return "", errorx.New(errorx.BadResponse, "军师暂时无法出谋划策")
	}

	first, ok := candidates[0].(map[string]any)
	if !ok {
		return "", errorx.New(errorx.BadResponse, "军师暂时无法出谋划策")
	}

	parts, err := api.JSON(first).GetArray("content.parts")
	if err != nil || len(parts) == 0 {
		return "", errorx.New(errorx.BadResponse, "军师暂时无法出谋划策")
	}

	part, ok := parts[0].(map[string]any)
	if !ok {
		return "", errorx.New(errorx.BadResponse, "军师暂时无法出谋划策")
	}

	text, err := api.JSON(part).GetString("text")
	if err != nil || text == "" {
		return "", errorx.New(errorx.BadResponse, "军师暂时无法出谋划策")
	}

	return text, nil
}
