package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/niklaus3016/gaoqianleme/internal/domain"
	"github.com/niklaus3016/gaoqianleme/internal/domain/cron"
	"github.com/niklaus3016/gaoqianleme/pkg/errorx"
	"github.com/niklaus3016/gaoqianleme/pkg/xcontext"
)

func (s *srv) lotteryStatus(*cli.Context) error {
	if err := s.welfareDomain.Refresh(s.ctx); err != nil {
		return err
	}

	state := s.welfareDomain.State()
	cfg := xcontext.Configs(s.ctx).Lottery

	fmt.Printf("我的金币: %.0f\n", state.Coins)
	fmt.Printf("当前持券: %d / %d (还可购买 %d 张)\n",
		len(state.CurrentTickets), cfg.MaxTicketsPerDraw, s.welfareDomain.MaxPurchasable(s.ctx))

	if state.Stats != nil {
		fmt.Printf("奖池:     %.0f 金币,%d 位老板参与\n",
			state.Stats.TotalPool, state.Stats.Participants)
	}

	if len(state.History) > 0 {
		fmt.Println("\n历史开奖:")
		for _, draw := range state.History {
			fmt.Printf("  %s  号码 %v\n", draw.DrawDate, draw.WinningNumbers)
		}
	}

	return nil
}

func (s *srv) lotteryBuy(cliCtx *cli.Context) error {
	count := 1
	if cliCtx.NArg() > 0 {
		var err error
		count, err = strconv.Atoi(cliCtx.Args().First())
		if err != nil {
			return errorx.New(errorx.BadRequest, "请输入有效的购买数量")
		}
	}

	// The local caps need the current snapshot to be meaningful.
	if err := s.welfareDomain.Refresh(s.ctx); err != nil {
		return err
	}

	result, err := s.welfareDomain.BuyTicket(s.ctx, count)
	if err != nil {
		return err
	}

	fmt.Printf("购买成功,花费 %.0f 金币,剩余 %.0f\n", result.TotalCost, result.RemainingGold)
	for _, ticket := range result.Tickets {
		fmt.Printf("  奖券 NO.%s (开奖 %s)\n", ticket.TicketNumber, ticket.DrawDate)
	}

	return nil
}

func (s *srv) lotteryTickets(*cli.Context) error {
	if err := s.welfareDomain.Refresh(s.ctx); err != nil {
		return err
	}

	state := s.welfareDomain.State()
	if len(state.AllTickets) == 0 {
		fmt.Println("暂无奖券,虚位以待")
		return nil
	}

	for _, ticket := range state.AllTickets {
		status := "未中奖"
		if ticket.IsWinning {
			status = fmt.Sprintf("%s +%.0f 金币",
				domain.PrizeLevelName(ticket.PrizeLevel), ticket.PrizeAmount)
		}

		fmt.Printf("%s  NO.%-12s %s\n", ticket.BuyDate, ticket.TicketNumber, status)
	}

	return nil
}

func (s *srv) lotteryWatch(*cli.Context) error {
	if err := s.welfareDomain.Refresh(s.ctx); err != nil {
		return err
	}

	interval := xcontext.Configs(s.ctx).Lottery.PollInterval()
	fmt.Printf("每 %s 检查一次开奖结果,Ctrl+C 退出\n", interval)

	manager := cron.NewCronJobManager()
	manager.Register(cron.NewDrawWatchCronJob(s.welfareDomain, interval,
		func(notification domain.WinNotification) {
			fmt.Printf("恭喜中奖! %s +%.0f 金币 (%d 张奖券)\n",
				notification.Level, notification.Amount, notification.Tickets)
		}))
	manager.Start(s.ctx)

	return nil
}
