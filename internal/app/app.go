package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/skinnova/internal/catalog"
	"github.com/five82/skinnova/internal/config"
	"github.com/five82/skinnova/internal/logging"
	"github.com/five82/skinnova/internal/prefs"
	"github.com/five82/skinnova/internal/state"
	"github.com/five82/skinnova/internal/storage"
	"github.com/five82/skinnova/internal/ui"
	"github.com/five82/skinnova/internal/view"
	"github.com/five82/skinnova/internal/widgets"
)

// Options configure the Skinnova application.
type Options struct {
	ConfigPath string
	EnvFile    string // empty uses ./.env
	PrefsPath  string // empty uses default ~/.config/skinnova/prefs.toml
	Catalog    string // overrides the configured catalog source
	ProfileDir string // overrides the configured profile directory
	Page       string // start page; empty uses the last visited page
	Product    string // product slug to open at startup
}

// session holds everything Run wires together before the UI starts.
type session struct {
	cfg     config.Config
	prefs   prefs.Prefs
	log     zerolog.Logger
	closer  io.Closer
	catalog *catalog.Catalog
	store   *state.Store
	screen  *ui.Screen
	render  *widgets.Renderer
	sync    *view.Synchronizer
}

// Run boots the Skinnova storefront until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	s, err := open(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = s.closer.Close() }()

	startPage := opts.Page
	if startPage == "" {
		startPage = s.prefs.LastPage
	}
	page, ok := view.ParsePage(startPage)
	if !ok {
		page = view.PageHome
	}
	sortKey, _ := catalog.ParseSortKey(s.prefs.Sort)

	s.log.Info().
		Str("page", string(page)).
		Int("products", s.catalog.Len()).
		Msg("starting storefront")

	err = ui.Run(ui.Options{
		Context:      ctx,
		Store:        s.store,
		Catalog:      s.catalog,
		Screen:       s.screen,
		Renderer:     s.render,
		Sync:         s.sync,
		Logger:       logging.Component(s.log, "ui"),
		ThemeName:    s.prefs.Theme,
		PrefsPath:    opts.PrefsPath,
		StartPage:    page,
		StartProduct: strings.TrimSpace(opts.Product),
		Sort:         sortKey,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("storefront exited with error")
		return fmt.Errorf("run ui: %w", err)
	}
	s.log.Info().Msg("storefront closed")
	return nil
}

// open loads configuration and builds the store, catalog and synchronizer.
// Only configuration and logging failures are fatal; a missing catalog or an
// unwritable profile degrade instead.
func open(ctx context.Context, opts Options) (*session, error) {
	if err := config.LoadDotenv(opts.EnvFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if source := strings.TrimSpace(opts.Catalog); source != "" {
		cfg.Catalog = source
	}
	if dir := strings.TrimSpace(opts.ProfileDir); dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return nil, fmt.Errorf("profile dir: %w", err)
		}
		cfg.ProfileDir = expanded
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	cat := catalog.Load(ctx, catalog.NewFetcher(), cfg.Catalog, logging.Component(logger, "catalog"))

	var backend storage.Backend
	dir, err := storage.OpenDir(cfg.ProfileDir)
	if err != nil {
		logger.Warn().Err(err).Str("dir", cfg.ProfileDir).Msg("profile storage unavailable, cart will not persist")
		backend = storage.NewMemory()
	} else {
		backend = dir
	}

	store := state.New(cat, backend,
		state.WithLogger(logging.Component(logger, "state")),
		state.WithMaxQuantity(cfg.MaxLineQuantity),
		state.WithPricing(state.Pricing{
			FreeShippingAbove: cfg.FreeShippingAbove,
			ShippingFee:       cfg.ShippingFee,
		}),
	)

	screen := ui.NewScreen(view.PageHome)
	render := &widgets.Renderer{Cursor: screen.Cursor}
	syncer := view.NewSynchronizer(store, cat, screen, render, logging.Component(logger, "view"))
	syncer.Attach(store)

	return &session{
		cfg:     cfg,
		prefs:   userPrefs,
		log:     logger,
		closer:  closer,
		catalog: cat,
		store:   store,
		screen:  screen,
		render:  render,
		sync:    syncer,
	}, nil
}
