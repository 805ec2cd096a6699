package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmynk/fairs/internal/config"
	"github.com/mmynk/fairs/internal/money"
	"github.com/mmynk/fairs/internal/storage"
	"github.com/mmynk/fairs/internal/storage/sqlite"
	"github.com/mmynk/fairs/pkg/logging"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "fairs",
		Short:         "Split restaurant bills fairly",
		Long:          `fairs allocates a shared bill to the people who ordered each item, tip included, and turns OCR receipt text into bill items.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))
			if used := a.v.ConfigFileUsed(); used != "" {
				slog.Debug("Using config file", "path", used)
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./fairs.yaml or $HOME/.config/fairs/fairs.yaml)")
	flags.String("db-path", "", "SQLite database path (default ./data/fairs.db)")
	flags.String("log-level", "", "debug, info, warn or error (default info)")
	a.v.BindPFlag("db_path", flags.Lookup("db-path"))
	a.v.BindPFlag("log_level", flags.Lookup("log-level"))

	root.AddCommand(
		newServeCmd(a),
		newScanCmd(a),
		newSplitCmd(a),
		newGroupsCmd(a),
	)
	return root
}

func (a *app) openStore() (*sqlite.SQLiteStore, error) {
	store, err := sqlite.New(a.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", a.cfg.DBPath, err)
	}
	return store, nil
}

// currency picks the display currency: an explicit code, then the stored
// preference, then the configured default.
func (a *app) currency(ctx context.Context, store storage.Store, code string) (money.Currency, error) {
	if code != "" {
		c, ok := money.LookupCurrency(strings.ToUpper(code))
		if !ok {
			return money.Currency{}, fmt.Errorf("unknown currency %q", code)
		}
		return c, nil
	}
	if store != nil {
		stored, ok, err := store.GetSetting(ctx, storage.SettingCurrency)
		if err != nil {
			return money.Currency{}, err
		}
		if ok {
			return money.CurrencyFor(stored), nil
		}
	}
	if a.cfg.Currency != "" {
		return money.CurrencyFor(a.cfg.Currency), nil
	}
	return money.CurrencyFor(money.DefaultCurrencyCode), nil
}
