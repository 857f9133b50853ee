package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/buffbites/internal/config"
	"github.com/jask/buffbites/internal/database"
	"github.com/jask/buffbites/internal/database/repository"
	"github.com/jask/buffbites/internal/flow"
	"github.com/jask/buffbites/internal/i18n"
	"github.com/jask/buffbites/internal/logging"
	"github.com/jask/buffbites/internal/menu"
	"github.com/jask/buffbites/internal/order"
	"github.com/jask/buffbites/internal/tui"
)

// session is what every command needs once config is loaded.
type session struct {
	cfg     config.Config
	logger  *zap.Logger
	catalog menu.Catalog
	loc     *i18n.Localizer
	db      *sql.DB
}

func (s *session) Close() {
	_ = s.logger.Sync()
	if s.db != nil {
		_ = s.db.Close()
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "buffbites",
		Short:         "Order a meal from the terminal",
		Long:          `buffbites walks through choosing a restaurant, a meal and a delivery time, then submits the order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), cfgFile)
			if err != nil {
				return err
			}
			defer s.Close()
			return runTUI(cmd.Context(), s)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/buffbites/config.toml)")

	root.AddCommand(newMenuCmd(&cfgFile), newOrderCmd(&cfgFile), newConfigCmd(&cfgFile))
	return root
}

func openSession(ctx context.Context, cfgFile string) (*session, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	loc, err := i18n.New(cfg.UI.Locale)
	if err != nil {
		return nil, fmt.Errorf("locale: %w", err)
	}
	s := &session{cfg: cfg, logger: logger, loc: loc}

	switch cfg.Menu.Source {
	case config.MenuSourceSQLite:
		db, err := openMenuDB(ctx, cfg.Database.Path)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.db = db
		s.catalog = repository.NewMenuCatalog(db)
	default:
		s.catalog = menu.Builtin()
	}
	logger.Debug("session opened",
		zap.String("menu_source", cfg.Menu.Source),
		zap.String("locale", loc.Language().String()),
	)
	return s, nil
}

func openMenuDB(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.RunMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := database.SeedMenu(ctx, db, menu.BuiltinRestaurants()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed menu: %w", err)
	}
	return db, nil
}

func runTUI(ctx context.Context, s *session) error {
	f := flow.New(order.NewController(), flow.WithLogger(s.logger))
	app := tui.New(ctx, f, tui.Deps{
		Catalog:   s.catalog,
		Slots:     s.cfg.Delivery.Slots,
		Localizer: s.loc,
		Currency:  s.cfg.UI.CurrencySymbol,
		Logger:    s.logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
