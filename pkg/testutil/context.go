package testutil

import (
	"context"

	"github.com/niklaus3016/gaoqianleme/config"
	"github.com/niklaus3016/gaoqianleme/pkg/logger"
	"github.com/niklaus3016/gaoqianleme/pkg/xcontext"
)

func MockContext() context.Context {
	cfg := config.Configs{
		Env: "test",
		Backend: config.BackendConfigs{
			Domains: []string{"http://localhost:8080"},
		},
		Earn: config.EarnConfigs{
			DefaultCooldown: 10,
			WithdrawMinimum: 1000,
			CoinsPerYuan:    1000,
			LogWindow:       50,
		},
		Lottery: config.LotteryConfigs{
			TicketPrice:       1000,
			MaxTicketsPerDraw: 10,
			PollIntervalSec:   30,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))

	return ctx
}

func MockContextWithUserID(userID string) context.Context {
	return xcontext.WithRequestUserID(MockContext(), userID)
}
