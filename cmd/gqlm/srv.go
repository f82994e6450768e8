package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/niklaus3016/gaoqianleme/config"
	"github.com/niklaus3016/gaoqianleme/internal/client"
	"github.com/niklaus3016/gaoqianleme/internal/domain"
	"github.com/niklaus3016/gaoqianleme/internal/session"
	"github.com/niklaus3016/gaoqianleme/pkg/api"
	"github.com/niklaus3016/gaoqianleme/pkg/logger"
	"github.com/niklaus3016/gaoqianleme/pkg/xcontext"
)

type srv struct {
	app *cli.App
	ctx context.Context

	store *session.Store

	goldCaller    client.GoldCaller
	lotteryCaller client.LotteryCaller
	targetCaller  client.TargetCaller
	recordCaller  client.RecordCaller
	advisorCaller client.AdvisorCaller

	earnDomain       domain.EarnDomain
	accountingDomain domain.AccountingDomain
	goalDomain       domain.GoalDomain
	welfareDomain    domain.WelfareDomain
}

// loadContext builds the shared context for one command invocation. It runs
// after flag parsing so the config path flag is honored.
func (s *srv) loadContext(cliCtx *cli.Context) error {
	cfg, err := config.Load(cliCtx.String("config"))
	if err != nil {
		return err
	}

	level := logger.INFO
	if cfg.Env == "test" || cliCtx.Bool("verbose") {
		level = logger.DEBUG
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(level))

	s.store = session.NewStore(sessionPath(cfg))

	sess, err := s.store.LoadOrCreate()
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithRequestUserID(ctx, sess.UserID)

	s.loadCallers(cfg)
	s.loadDomains(cfg)

	return nil
}

func (s *srv) loadCallers(cfg config.Configs) {
	backend := api.NewGenerator(cfg.Backend.Domains...)
	advisor := api.NewGenerator(cfg.Advisor.Domain)

	s.goldCaller = client.NewGoldCaller(backend)
	s.lotteryCaller = client.NewLotteryCaller(backend)
	s.targetCaller = client.NewTargetCaller(backend)
	s.recordCaller = client.NewRecordCaller(backend)
	s.advisorCaller = client.NewAdvisorCaller(advisor,
		cfg.Advisor.APIKey, cfg.Advisor.IdeaModel, cfg.Advisor.ChatModel)
}

func (s *srv) loadDomains(cfg config.Configs) {
	cooldown := domain.NewCooldown(cfg.Earn.DefaultCooldown)

	s.earnDomain = domain.NewEarnDomain(s.goldCaller, s.recordCaller, cooldown)
	s.accountingDomain = domain.NewAccountingDomain(s.recordCaller, s.targetCaller)
	s.goalDomain = domain.NewGoalDomain(s.targetCaller, s.recordCaller)
	s.welfareDomain = domain.NewWelfareDomain(s.lotteryCaller, s.goldCaller)
}

func sessionPath(cfg config.Configs) string {
	if cfg.Session.Path != "" {
		return cfg.Session.Path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".gqlm-session.json"
	}

	return filepath.Join(home, ".gqlm", "session.json")
}
