package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/niklaus3016/gaoqianleme/pkg/errorx"
)

func (s *srv) login(cliCtx *cli.Context) error {
	var err error
	switch {
	case cliCtx.String("user") != "":
		_, err = s.store.Login(cliCtx.String("user"))
	case cliCtx.String("phone") != "":
		_, err = s.store.LoginWithPhone(cliCtx.String("phone"))
	default:
		return errorx.New(errorx.BadRequest, "请通过 --user 或 --phone 指定登录方式")
	}

	if err != nil {
		return err
	}

	sess, err := s.store.Load()
	if err != nil {
		return err
	}

	fmt.Printf("已登录: %s\n", sess.UserID)
	return nil
}

func (s *srv) logout(*cli.Context) error {
	if err := s.store.Clear(); err != nil {
		return err
	}

	fmt.Println("已退出登录")
	return nil
}
