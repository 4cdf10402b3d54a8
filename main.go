package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/atomicstack/navmenu/internal/app"
	"github.com/atomicstack/navmenu/internal/config"
	"github.com/atomicstack/navmenu/internal/logging"
	"github.com/atomicstack/navmenu/internal/logging/events"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	runID := uuid.NewString()
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)
	logging.SetAttrs(slog.String("run", runID))

	tty, ok := detectTerminal(os.Stdout, os.Stdin)
	events.App.Start(startupTracePayload(runtimeCfg, runID, tty))
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: navmenu must be run from an interactive terminal")
		os.Exit(1)
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload bundles the resolved configuration for the start trace.
func startupTracePayload(cfg config.Config, runID string, tty terminalInfo) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	return map[string]interface{}{
		"run":    runID,
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"tty":    tty,
	}
}

type terminalInfo struct {
	Source string `json:"source,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// detectTerminal returns the first file attached to a terminal along with its
// size. The menu is a full-screen program, so no terminal means no UI.
func detectTerminal(files ...*os.File) (terminalInfo, bool) {
	for _, f := range files {
		if f == nil {
			continue
		}
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		info := terminalInfo{Source: f.Name()}
		if width, height, err := term.GetSize(fd); err == nil {
			info.Width, info.Height = width, height
		}
		return info, true
	}
	return terminalInfo{}, false
}
