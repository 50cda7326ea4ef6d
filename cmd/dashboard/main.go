package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/study-dashboard/internal/api"
	"github.com/nhle/study-dashboard/internal/app"
	"github.com/nhle/study-dashboard/internal/auth"
	"github.com/nhle/study-dashboard/internal/model"
	"github.com/nhle/study-dashboard/internal/store"
)

func main() {
	configPath := flag.String(
		"config", model.DefaultConfigPath(), "path to config file",
	)
	flag.Parse()

	cfg, err := model.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if cfg.API.BaseURL == "" {
		log.Fatalf(
			"no api.base_url configured; edit %s", *configPath,
		)
	}

	cache, err := store.NewSQLiteStore(cfg.Cache.Path)
	if err != nil {
		log.Fatalf("opening cache at %s: %v", cfg.Cache.Path, err)
	}
	defer cache.Close()

	gateway := api.NewClient(cfg.API.BaseURL, cfg.API.Key)
	gate := auth.NewGate(cfg)

	m := app.New(cfg, gateway, gate, cache)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("running dashboard: %v", err)
	}
}
