package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/niklaus3016/gaoqianleme/pkg/errorx"
)

func (s *srv) listRecords(*cli.Context) error {
	if err := s.accountingDomain.Refresh(s.ctx); err != nil {
		return err
	}

	state := s.accountingDomain.State()
	fmt.Printf("今日进账: ￥%.2f    本月进账: ￥%.2f\n\n", state.TodayTotal, state.MonthTotal)

	if len(state.Records) == 0 {
		fmt.Println("暂无记录")
		return nil
	}

	for _, record := range state.Records {
		desc := record.Description
		if desc == "" {
			desc = "-"
		}

		fmt.Printf("%s  ￥%-10.2f %-8s %-10s %s  [%s]\n",
			record.CreateTime, record.Amount, record.Type, record.Category, desc, record.ID)
	}

	return nil
}

func (s *srv) addRecord(cliCtx *cli.Context) error {
	record, err := s.accountingDomain.AddRecord(s.ctx,
		cliCtx.Float64("amount"),
		cliCtx.String("type"),
		cliCtx.String("category"),
		cliCtx.String("desc"),
	)
	if err != nil {
		return err
	}

	state := s.accountingDomain.State()
	fmt.Printf("已记账 ￥%.2f (%s)\n", record.Amount, record.Category)
	fmt.Printf("今日进账: ￥%.2f    本月进账: ￥%.2f\n", state.TodayTotal, state.MonthTotal)
	return nil
}

func (s *srv) deleteRecord(cliCtx *cli.Context) error {
	if cliCtx.NArg() != 1 {
		return errorx.New(errorx.BadRequest, "请输入要删除的记录号")
	}

	// The record has to be known locally before it can be removed.
	if err := s.accountingDomain.Refresh(s.ctx); err != nil {
		return err
	}

	if err := s.accountingDomain.DeleteRecord(s.ctx, cliCtx.Args().First()); err != nil {
		return err
	}

	state := s.accountingDomain.State()
	fmt.Println("已删除")
	fmt.Printf("今日进账: ￥%.2f    本月进账: ￥%.2f\n", state.TodayTotal, state.MonthTotal)
	return nil
}

func (s *srv) recordStats(cliCtx *cli.Context) error {
	statistics, err := s.accountingDomain.Statistics(s.ctx, cliCtx.Int("days"))
	if err != nil {
		return err
	}

	if len(statistics) == 0 {
		fmt.Println("暂无统计数据")
		return nil
	}

	for _, day := range statistics {
		fmt.Printf("%s  ￥%-10.2f (%d笔)\n", day.Date, day.Total, day.Count)
	}

	return nil
}
