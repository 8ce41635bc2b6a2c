package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"wealth-advisor/config"
	"wealth-advisor/domain"
	"wealth-advisor/logging"
	"wealth-advisor/metrics"
	"wealth-advisor/persona"
	"wealth-advisor/repository"
	"wealth-advisor/service"
	"wealth-advisor/tools"
)

// app carries the wired components shared by every command.
type app struct {
	configPath string
	logLevel   string
	jsonOut    bool

	cfg      *config.Config
	logger   *zap.Logger
	svc      *service.FinancialService
	cache    repository.CacheRepository
	history  repository.HistoryRepository
	metrics  *metrics.Metrics
	registry *tools.Registry
	catalog  *persona.Catalog
	persona  domain.Persona
	closers  []func() error
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	a.cfg = cfg

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}
	a.logger = logger
	a.closers = append(a.closers, func() error {
		logger.Sync()
		return nil
	})

	tables := service.DefaultTables()
	if cfg.Advisor.TablesPath != "" {
		if tables, err = service.LoadTables(cfg.Advisor.TablesPath); err != nil {
			return err
		}
		logger.Info("tables loaded", zap.String("path", cfg.Advisor.TablesPath), zap.Int("tax_year", tables.Tax.Year))
	}
	a.svc = service.NewFinancialService(tables)

	switch cfg.Cache.Driver {
	case "redis":
		rc := repository.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.TTL)
		a.cache = rc
		a.closers = append(a.closers, rc.Close)
	case "memory":
		mc := repository.NewMemoryCache(cfg.Cache.TTL)
		a.cache = mc
		a.closers = append(a.closers, mc.Close)
	default:
		a.cache = repository.NoopCache{}
	}

	a.history = repository.NewHistoryRepositoryMemory(cfg.History.Capacity)
	a.metrics = metrics.New()
	a.registry = tools.NewRegistry(a.cache, a.history, a.metrics, logger)
	if err := tools.RegisterBuiltins(a.registry, a.svc, a.defaults()); err != nil {
		return err
	}

	a.catalog = persona.Default()
	if a.persona, err = a.catalog.Select(cfg.Advisor.Persona); err != nil {
		return err
	}
	return nil
}

func (a *app) defaults() tools.Defaults {
	return tools.Defaults{
		RetirementAge:    a.cfg.Advisor.RetirementAge,
		ExpectedReturn:   a.cfg.Advisor.ExpectedReturn,
		InflationRate:    a.cfg.Advisor.InflationRate,
		CompoundsPerYear: a.cfg.Advisor.CompoundsPerYear,
	}
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printText(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, text)
	return err
}
