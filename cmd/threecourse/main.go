package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jask/threecourse/internal/config"
	"github.com/jask/threecourse/internal/database"
	"github.com/jask/threecourse/internal/database/repository"
	"github.com/jask/threecourse/internal/logging"
	"github.com/jask/threecourse/internal/menu"
	"github.com/jask/threecourse/internal/service"
	"github.com/jask/threecourse/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "threecourse",
		Short:        "Build a three-course menu and check it out",
		SilenceUsage: true,
		RunE:         runTUI,
	}
	root.AddCommand(newOrdersCmd(), newConfigCmd())
	return root
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closer.Close()

	key, err := menu.ParseSelectionKey(cfg.Menu.SelectionKey)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	m := menu.New(menu.WithSelectionKey(key), menu.WithStrictPrices(cfg.Menu.StrictPrices))

	orders := &service.OrderService{Log: log}
	if cfg.Journal.Enabled {
		db, err := openJournal(cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		orders.Orders = repository.NewOrderRepo(db)
	}

	log.Info().Str("selection_key", string(key)).Bool("strict_prices", cfg.Menu.StrictPrices).Bool("journal", cfg.Journal.Enabled).Msg("start")

	p := tea.NewProgram(tui.New(ctx, cfg, tui.Deps{Menu: m, Orders: orders, Log: log}), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited")
		return err
	}
	log.Info().Msg("exit")
	return nil
}

// openJournal opens the sqlite journal and brings its schema up to date.
func openJournal(cfg config.Config) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Journal.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir journal dir: %w", err)
	}
	db, err := database.Open(cfg.Journal.Path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if err := database.RunMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return db, nil
}

func journalService(cfg config.Config) (*service.OrderService, *sql.DB, error) {
	if !cfg.Journal.Enabled {
		return nil, nil, fmt.Errorf("journal is disabled; set journal.enabled = true in %s", config.Path())
	}
	db, err := openJournal(cfg)
	if err != nil {
		return nil, nil, err
	}
	return &service.OrderService{Orders: repository.NewOrderRepo(db), Log: zerolog.Nop()}, db, nil
}
