package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/niklaus3016/gaoqianleme/internal/model"
	"github.com/niklaus3016/gaoqianleme/pkg/errorx"
)

func (s *srv) advisorIdeas(cliCtx *cli.Context) error {
	if cliCtx.NArg() == 0 {
		return errorx.New(errorx.BadRequest, "请描述你的技能和背景")
	}

	fmt.Println("军师思考中...")

	ideas, err := s.advisorCaller.Ideas(s.ctx, strings.Join(cliCtx.Args().Slice(), " "))
	if err != nil {
		return err
	}

	for i, idea := range ideas {
		fmt.Printf("\n%d. %s (%s, 预估月入 %s)\n", i+1, idea.Title,
			idea.Difficulty, idea.PotentialMonthlyIncome)
		fmt.Printf("   %s\n", idea.Description)
		for _, step := range idea.Steps {
			fmt.Printf("   - %s\n", step)
		}
	}

	return nil
}

func (s *srv) advisorChat(cliCtx *cli.Context) error {
	var history []model.ChatMessage

	ask := func(message string) error {
		reply, err := s.advisorCaller.Chat(s.ctx, history, message)
		if err != nil {
			return err
		}

		history = append(history,
			model.ChatMessage{Role: model.ChatRoleUser, Content: message},
			model.ChatMessage{Role: model.ChatRoleModel, Content: reply},
		)

		fmt.Printf("财富军师: %s\n", reply)
		return nil
	}

	if cliCtx.NArg() > 0 {
		return ask(strings.Join(cliCtx.Args().Slice(), " "))
	}

	fmt.Println("与财富军师对话,输入 exit 退出")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}

		if message == "exit" {
			return nil
		}

		if err := ask(message); err != nil {
			fmt.Println(err)
		}
	}
}
