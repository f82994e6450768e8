package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Name = "gqlm"
	app.Usage = "高钱了么 personal finance client"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to a TOML config file",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable debug logging",
		},
	}
	app.Before = s.loadContext
	app.Commands = []*cli.Command{
		{
			Name:     "login",
			Usage:    "Sign in with an employee id or phone number",
			Category: "Session",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "user", Usage: "employee id"},
				&cli.StringFlag{Name: "phone", Usage: "phone number"},
			},
			Action: s.login,
		},
		{
			Name:     "logout",
			Usage:    "Forget the stored session",
			Category: "Session",
			Action:   s.logout,
		},
		{
			Name:     "goal",
			Usage:    "Show the annual goal and its progress",
			Category: "Goal",
			Action:   s.showGoal,
			Subcommands: []*cli.Command{
				{
					Name:      "set",
					Usage:     "Set the annual goal amount",
					ArgsUsage: "<amount>",
					Action:    s.setGoal,
				},
			},
		},
		{
			Name:     "record",
			Usage:    "Manage income records",
			Category: "Accounting",
			Action:   s.listRecords,
			Subcommands: []*cli.Command{
				{
					Name:  "add",
					Usage: "Add an income record",
					Flags: []cli.Flag{
						&cli.Float64Flag{Name: "amount", Required: true},
						&cli.StringFlag{Name: "category", Required: true},
						&cli.StringFlag{Name: "type", Value: "income"},
						&cli.StringFlag{Name: "desc"},
					},
					Action: s.addRecord,
				},
				{
					Name:      "delete",
					Usage:     "Delete an income record",
					ArgsUsage: "<record-id>",
					Action:    s.deleteRecord,
				},
				{
					Name:  "stats",
					Usage: "Show per-day totals",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "days", Value: 7},
					},
					Action: s.recordStats,
				},
			},
		},
		{
			Name:     "earn",
			Usage:    "Tap-to-earn coins and withdrawals",
			Category: "Earn",
			Action:   s.earnStatus,
			Subcommands: []*cli.Command{
				{
					Name:  "click",
					Usage: "Trigger the earn action",
					Flags: []cli.Flag{
						&cli.IntFlag{
							Name:  "repeat",
							Value: 1,
							Usage: "click this many times, waiting out each cooldown",
						},
					},
					Action: s.earnClick,
				},
				{
					Name:  "withdraw",
					Usage: "Withdraw last month's coins to Alipay",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "account", Required: true, Usage: "Alipay account"},
						&cli.StringFlag{Name: "name", Required: true, Usage: "Alipay real name"},
						&cli.BoolFlag{Name: "yes", Usage: "skip the confirmation prompt"},
					},
					Action: s.earnWithdraw,
				},
				{
					Name:   "history",
					Usage:  "Show past withdrawals",
					Action: s.withdrawHistory,
				},
			},
		},
		{
			Name:     "lottery",
			Usage:    "Lucky ticket pool",
			Category: "Lottery",
			Action:   s.lotteryStatus,
			Subcommands: []*cli.Command{
				{
					Name:      "buy",
					Usage:     "Buy lucky tickets for today's draw",
					ArgsUsage: "[count]",
					Action:    s.lotteryBuy,
				},
				{
					Name:   "tickets",
					Usage:  "List all owned tickets",
					Action: s.lotteryTickets,
				},
				{
					Name:   "watch",
					Usage:  "Poll for draw results and report wins",
					Action: s.lotteryWatch,
				},
			},
		},
		{
			Name:      "ideas",
			Usage:     "Ask the advisor for money-making ideas",
			Category:  "Advisor",
			ArgsUsage: "<skills>",
			Action:    s.advisorIdeas,
		},
		{
			Name:      "guru",
			Usage:     "Chat with the wealth advisor",
			Category:  "Advisor",
			ArgsUsage: "<message>",
			Action:    s.advisorChat,
		},
	}

	s.app = app
}
