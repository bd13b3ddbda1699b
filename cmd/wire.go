package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/spf13/viper"
	"github.com/stefan-k/cobald/internal/adapters/logging"
	"github.com/stefan-k/cobald/internal/adapters/negotiator/condor"
	execrunner "github.com/stefan-k/cobald/internal/adapters/negotiator/exec"
	statusadapter "github.com/stefan-k/cobald/internal/adapters/render/status"
	tomlrepo "github.com/stefan-k/cobald/internal/adapters/repo/toml"
	"github.com/stefan-k/cobald/internal/application"
	"go.uber.org/zap"
)

type app struct {
	service        *application.Service
	config         tomlrepo.Config
	logger         *zap.Logger
	statusRenderer func(application.StatusReport, statusadapter.RenderOptions) (string, error)
	now            func() time.Time
}

func (a *app) wire(cfg *viper.Viper, logOutput io.Writer) error {
	config, err := tomlrepo.LoadConfig(cfg)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(config.LogLevel, config.LogFormat, logOutput)
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}

	clk := clock.New()
	runner := execrunner.NewRunner()
	opts := []condor.Option{
		condor.WithPool(config.Pool),
		condor.WithMaxAge(config.MaxAge),
		condor.WithQueryTimeout(config.QueryTimeout),
		condor.WithReconfigureTimeout(config.ReconfigureTimeout),
		condor.WithBinaries(config.UserprioBinary, config.ConfigValBinary),
		condor.WithClock(clk),
		condor.WithLogger(logger),
	}

	a.config = config
	a.logger = logger
	a.service = application.NewService(
		condor.NewConstraintView(runner, opts...),
		condor.NewUsageView(runner, opts...),
		tomlrepo.NewPlanRepository(),
		config.Pool,
	)
	a.statusRenderer = statusadapter.Render
	a.now = clk.Now

	logger.Debug("wired negotiator views",
		zap.String("pool", config.Pool),
		zap.Duration("max_age", config.MaxAge),
		zap.Duration("query_timeout", config.QueryTimeout),
	)

	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
