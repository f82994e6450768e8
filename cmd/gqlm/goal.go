package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/niklaus3016/gaoqianleme/pkg/errorx"
)

func (s *srv) showGoal(*cli.Context) error {
	if err := s.goalDomain.Refresh(s.ctx); err != nil {
		return err
	}

	state := s.goalDomain.State()
	if state.Target == nil {
		fmt.Println("还没有设定年度目标,使用 goal set <金额> 设定一个")
		return nil
	}

	fmt.Printf("年度目标: ￥%.2f\n", state.Target.Target)
	fmt.Printf("已赚到:   ￥%.2f\n", state.CurrentEarned)

	if progress, ok := s.goalDomain.Progress(); ok {
		fmt.Printf("进度:     %.1f%%\n", progress)
	}

	if remaining, ok := s.goalDomain.Remaining(); ok {
		fmt.Printf("还差:     ￥%.2f (剩余%d天)\n", remaining, s.goalDomain.DaysLeft())
	}

	return nil
}

func (s *srv) setGoal(cliCtx *cli.Context) error {
	if cliCtx.NArg() != 1 {
		return errorx.New(errorx.BadRequest, "请输入目标金额")
	}

	amount, err := strconv.ParseFloat(cliCtx.Args().First(), 64)
	if err != nil {
		return errorx.New(errorx.BadRequest, "请输入有效的目标金额")
	}

	target, err := s.goalDomain.SetGoal(s.ctx, amount)
	if err != nil {
		return err
	}

	fmt.Printf("年度目标已设为 ￥%.2f\n", target.Target)
	return nil
}
