package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonwraymond/vibematch/catalog"
	"github.com/jonwraymond/vibematch/config"
	"github.com/jonwraymond/vibematch/matcher"
	"github.com/jonwraymond/vibematch/provider"
)

// app carries state shared by every subcommand.
type app struct {
	cfg    *config.Config
	logger *zap.Logger

	catalogPath string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:          "vibematch",
		Short:        "Match a mood or aesthetic to catalog products",
		Long:         "vibematch embeds a free-text vibe, ranks catalog products by similarity, and reports the best matches.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "catalog file (YAML or JSON); default: built-in catalog")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		a.newDemoCmd(),
		a.newMatchCmd(),
		a.newCatalogCmd(),
		a.newServeCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("catalog") {
		cfg.Match.CatalogPath = a.catalogPath
	}
	if cmd.Flags().Changed("log-level") {
		cfg.App.LogLevel = a.logLevel
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// newLogger builds a zap logger writing to stderr so stdout stays clean
// for reports and the stdio transport.
func newLogger(env config.Environment, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	zc := zap.NewDevelopmentConfig()
	if env == config.Production {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}

func (a *app) loadCatalog() (*catalog.Catalog, error) {
	if a.cfg.Match.CatalogPath == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(a.cfg.Match.CatalogPath)
	if err != nil {
		return nil, err
	}
	a.logger.Info("catalog loaded",
		zap.String("path", a.cfg.Match.CatalogPath),
		zap.Int("items", cat.Len()))
	return cat, nil
}

// newMatcher validates the configuration and builds a matcher over the
// configured catalog. The caller closes it.
func (a *app) newMatcher() (*matcher.Matcher, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}
	cat, err := a.loadCatalog()
	if err != nil {
		return nil, err
	}
	emb, err := provider.Embedder(provider.Default(), a.cfg.Match.Embedder, a.cfg.Match.Dimensions)
	if err != nil {
		return nil, err
	}
	strategy, err := matcher.ParseScoreType(a.cfg.Match.Strategy)
	if err != nil {
		return nil, err
	}

	m, err := matcher.New(cat, matcher.Options{
		Embedder:    emb,
		Strategy:    strategy,
		HybridAlpha: matcher.Float64(a.cfg.Match.HybridAlpha),
		TopK:        a.cfg.Match.TopK,
		Threshold:   matcher.Float64(a.cfg.Match.Threshold),
		Logger:      a.logger,
	})
	if err != nil {
		return nil, err
	}
	a.logger.Debug("matcher ready",
		zap.String("embedder", a.cfg.Match.Embedder),
		zap.Int("dimensions", m.Catalog().Dimensions()),
		zap.String("strategy", string(m.ScoreType())))
	return m, nil
}

func closeMatcher(m *matcher.Matcher, logger *zap.Logger) {
	if err := m.Close(); err != nil {
		logger.Warn("close matcher", zap.Error(err))
	}
}
