package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/sbilibin2017/equiv/internal/catalog"
	"github.com/sbilibin2017/equiv/internal/facades"
	"github.com/sbilibin2017/equiv/internal/logger"
	"github.com/sbilibin2017/equiv/internal/models"
	"github.com/sbilibin2017/equiv/internal/repositories"
	"github.com/sbilibin2017/equiv/internal/services"
)

const ratesHTTPTimeout = 10 * time.Second

// app is the dependency graph shared by one invocation's subcommands.
type app struct {
	cachePath  string
	ratesURL   string
	logLevel   string
	scientific bool

	db        *sqlx.DB
	rates     *services.CurrencyService
	converter *services.ConverterService
}

func Execute() error {
	root, a := newRootCmd()
	defer a.close()
	return root.Execute()
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:          "equiv",
		Short:        "Convert values between units and currencies",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&a.cachePath, "cache", "", "exchange rate cache file (default ~/.equiv/rates.db)")
	root.PersistentFlags().StringVar(&a.ratesURL, "rates-url", facades.DefaultExchangeRatesURL, "exchange rate endpoint")
	root.PersistentFlags().BoolVar(&a.scientific, "scientific", false, "render results in scientific notation")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "error", "log level")

	root.AddCommand(
		categoriesCmd(a),
		unitsCmd(a),
		convertCmd(a),
		allCmd(a),
		resolveCmd(a),
		phraseCmd(a),
		ratesCmd(a),
	)
	return root, a
}

func (a *app) open(ctx context.Context) error {
	if err := logger.Initialize(a.logLevel); err != nil {
		return err
	}
	if err := catalog.ValidateAliases(); err != nil {
		return err
	}

	if a.cachePath == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		a.cachePath = filepath.Join(dir, ".equiv", "rates.db")
	}
	if err := os.MkdirAll(filepath.Dir(a.cachePath), 0o700); err != nil {
		return err
	}

	db, err := sqlx.Open("sqlite", a.cachePath)
	if err != nil {
		return err
	}
	db.SetMaxOpenConns(1)
	if err := repositories.Migrate(ctx, db); err != nil {
		db.Close()
		return err
	}
	a.db = db

	reader := facades.NewExchangeRatesHTTPFacade(&http.Client{Timeout: ratesHTTPTimeout}, a.ratesURL)
	a.rates = services.NewCurrencyService(reader, repositories.NewExchangeRateSQLRepository(db))
	a.rates.Hydrate(ctx)
	a.converter = services.NewConverterService(a.rates)
	return nil
}

func (a *app) close() error {
	_ = logger.Log.Sync()
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// ensureRates fetches rates when the cache had none, or always with refresh.
func (a *app) ensureRates(ctx context.Context, refresh bool) error {
	if refresh || len(a.rates.Currencies()) == 0 {
		a.rates.FetchRates(ctx)
	}
	if len(a.rates.Currencies()) == 0 {
		return fmt.Errorf("no exchange rates available: %s", a.rates.Err())
	}
	return nil
}

// ensureCategory validates the category and loads rates for currency.
func (a *app) ensureCategory(ctx context.Context, category models.Category) error {
	info, ok := catalog.Lookup(category)
	if !ok {
		return fmt.Errorf("unknown category %q", category)
	}
	if info.IsCurrency() {
		return a.ensureRates(ctx, false)
	}
	return nil
}
