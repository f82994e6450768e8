package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/niklaus3016/gaoqianleme/internal/domain"
)

func (s *srv) earnStatus(*cli.Context) error {
	if err := s.earnDomain.Refresh(s.ctx); err != nil {
		return err
	}

	state := s.earnDomain.State()
	fmt.Printf("总金币:   %.0f\n", state.TotalGold)
	fmt.Printf("今日获得: %.0f\n", state.TodayGold)
	fmt.Printf("上月金币: %.0f    本月金币: %.0f\n", state.LastMonthGold, state.CurrentMonthGold)

	if len(state.Details) > 0 {
		fmt.Println("\n最近记录:")
		for _, detail := range state.Details {
			fmt.Printf("  %s  +%.0f\n", detail.CreateTime, detail.GoldNum)
		}
	}

	return nil
}

func (s *srv) earnClick(cliCtx *cli.Context) error {
	repeat := cliCtx.Int("repeat")
	if repeat < 1 {
		repeat = 1
	}

	for i := 0; i < repeat; i++ {
		result, err := s.earnDomain.Click(s.ctx)
		if err != nil {
			return err
		}

		if result.RateLimited {
			fmt.Printf("手速太快啦,请等待 %d 秒\n", result.CooldownSeconds)
		} else {
			fmt.Printf("+%.0f 金币!  总金币 %.0f,今日 %.0f,冷却 %d 秒\n",
				result.Earned, result.TotalGold, result.TodayGold, result.CooldownSeconds)
		}

		if i+1 < repeat {
			waitForCooldown(s.earnDomain)
		}
	}

	return nil
}

// waitForCooldown blocks until the next click is allowed, printing a countdown
// once per second.
func waitForCooldown(earnDomain domain.EarnDomain) {
	printed := false
	for {
		remaining := earnDomain.CooldownRemaining()
		if remaining <= 0 {
			if printed {
				fmt.Println()
			}
			return
		}

		fmt.Printf("\r冷却中 %d 秒...", remaining)
		printed = true
		time.Sleep(time.Second)
	}
}

func (s *srv) earnWithdraw(cliCtx *cli.Context) error {
	if err := s.earnDomain.Refresh(s.ctx); err != nil {
		return err
	}

	preview, err := s.earnDomain.PrepareWithdraw(s.ctx,
		cliCtx.String("account"), cliCtx.String("name"))
	if err != nil {
		return err
	}

	fmt.Printf("即将提现 %.0f 金币 (￥%.2f) 到支付宝 %s (%s)\n",
		preview.GoldAmount, preview.Yuan, preview.MaskedAccount, preview.AlipayName)

	if !cliCtx.Bool("yes") {
		fmt.Print("确认提现? [y/N] ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.ToLower(strings.TrimSpace(line)) != "y" {
			fmt.Println("已取消")
			return nil
		}
	}

	if err := s.earnDomain.ConfirmWithdraw(s.ctx, preview); err != nil {
		return err
	}

	fmt.Println("提现申请已提交")
	return nil
}

func (s *srv) withdrawHistory(*cli.Context) error {
	withdrawals, err := s.earnDomain.Withdrawals(s.ctx, 10)
	if err != nil {
		return err
	}

	if len(withdrawals) == 0 {
		fmt.Println("暂无提现记录")
		return nil
	}

	for _, w := range withdrawals {
		fmt.Printf("%s  ￥%-8.2f %s (%s)\n",
			w.CreateTime, w.Amount, w.AlipayAccount, w.AlipayName)
	}

	return nil
}
