package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navmenu/internal/backend"
	"github.com/atomicstack/navmenu/internal/logging/events"
	"github.com/atomicstack/navmenu/internal/menu"
	"github.com/atomicstack/navmenu/internal/ui"
)

const reloadInterval = 250 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Dwell      time.Duration
	LinksFile  string
	Watch      bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (err error) {
	defer func() { events.App.Stop(err) }()

	items, err := LoadItems(cfg.LinksFile)
	if err != nil {
		return err
	}

	var watcher *backend.Watcher
	if cfg.Watch && cfg.LinksFile != "" {
		watcher, err = backend.NewWatcher(cfg.LinksFile, reloadInterval)
		if err != nil {
			return fmt.Errorf("watch links file: %w", err)
		}
		defer func() {
			watcher.Stop()
			watcher.Wait()
		}()
	}

	model := ui.NewModel(items, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Dwell, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// LoadItems reads the links file, or returns the built-in links when path is
// empty.
func LoadItems(path string) ([]menu.Item, error) {
	if path == "" {
		return menu.DefaultItems(), nil
	}
	items, err := menu.LoadFile(path)
	if err != nil {
		events.Links.Error(path, err)
		return nil, err
	}
	events.Links.Loaded(path, len(items))
	return items, nil
}
