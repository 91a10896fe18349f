package app

import (
	"context"
	"fmt"

	"bulletin/internal/config"
	"bulletin/internal/forum"
	"bulletin/internal/localstore"
	"bulletin/internal/logging"
	"bulletin/internal/prefs"
	"bulletin/internal/state"
	"bulletin/internal/ui"
)

// Options configure the bulletin application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/bulletin/prefs.toml
}

// Run boots the bulletin TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logging.Init(cfg.DataDir); err != nil {
		// A missing log file never blocks the UI.
		fmt.Println("logging disabled:", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := forum.NewClient(cfg.APIBaseURL)
	if err != nil {
		return fmt.Errorf("init forum client: %w", err)
	}

	cache, err := localstore.Open(cfg.LocalStorePath())
	if err != nil {
		// Favorites degrade to in-memory only.
		logging.Warn("local store unavailable", "err", err)
		cache = nil
	}
	defer func() {
		if cache != nil {
			_ = cache.Close()
		}
	}()

	// The store seeds persisted favorites before any remote load.
	store := state.New(client, cacheOrNil(cache))

	// Kick off the bulk load; the UI renders the loading state meanwhile
	// and observes the result through snapshots.
	go func() {
		if err := store.LoadAll(ctx); err != nil {
			logging.Error("bulk load failed", "err", err)
		}
	}()

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// cacheOrNil keeps a typed nil *localstore.Store out of the interface.
func cacheOrNil(cache *localstore.Store) state.FavoritesCache {
	if cache == nil {
		return nil
	}
	return cache
}
