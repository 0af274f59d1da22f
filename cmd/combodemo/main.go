package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"combokit"
	"combokit/internal/catalog"
	"combokit/internal/democonf"
	"combokit/internal/eventbus"
	"combokit/tui"
)

func main() {
	var (
		multi      bool
		configPath string
	)
	flag.BoolVar(&multi, "multi", false, "start in multi-select mode")
	flag.StringVar(&configPath, "config", "", "path to the TOML config (defaults to the user config dir)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("combodemo.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if configPath == "" {
		configPath = democonf.DefaultPath()
	}
	cfg, err := democonf.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		cfg = democonf.Default()
	}
	if multi {
		cfg.MultiSelect = true
	}

	bus := eventbus.New()
	defer bus.Close()

	cat := catalog.New(cfg.Items...)
	widget := buildWidget(cfg, cat)

	pager := newPagerOps()
	app := &appModel{widget: widget, cat: cat, bus: bus, pager: pager}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	pager.SetProgram(p)

	// Persist selection and catalog changes as they happen
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.Event) {
		event, ok := e.(eventbus.SelectionChangedEvent)
		if !ok {
			return
		}
		cfg.RecentSelections = event.Labels
		saveConfig(bus, cfg, configPath)
	})
	bus.Subscribe(eventbus.EventItemAdded, func(e eventbus.Event) {
		if _, ok := e.(eventbus.ItemAddedEvent); !ok {
			return
		}
		cfg.Items = cat.Labels()
		saveConfig(bus, cfg, configPath)
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.Event) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			p.Send(configSavedMsg{path: event.Path})
		}
	})

	log.Printf("Starting combodemo...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("combodemo exited normally")
}

func saveConfig(bus eventbus.EventBus, cfg *democonf.Config, path string) {
	if err := democonf.Save(cfg, path); err != nil {
		log.Printf("Failed to save config: %v", err)
		return
	}
	log.Printf("Config saved to %s", path)
	bus.Publish(eventbus.ConfigSavedEvent{Path: path})
}

// buildWidget assembles the combokit widget from the loaded config,
// restoring the previous run's selection where the labels still exist
func buildWidget(cfg *democonf.Config, cat *catalog.Catalog) *tui.Model[catalog.Item] {
	ccfg := combokit.NewConfig[catalog.Item](
		func(i catalog.Item) string { return i.ID },
		func(i catalog.Item) string { return i.Label },
	)

	items := cat.Items()
	var selected []catalog.Item
	for _, item := range items {
		for _, label := range cfg.RecentSelections {
			if item.Label == label {
				selected = append(selected, item)
			}
		}
	}

	var opts []combokit.Option[catalog.Item]
	if cfg.MultiSelect {
		opts = append(opts,
			combokit.WithSelectMode[catalog.Item](combokit.MultiSelect(combokit.LeftToRight)),
			combokit.WithKeepOpenOnSelect[catalog.Item](),
		)
	}
	if len(selected) > 0 {
		opts = append(opts, combokit.WithSelected[catalog.Item](selected...))
	}
	engine := combokit.Init(ccfg, items, opts...)

	return tui.New(ccfg, engine,
		tui.WithPlugins[catalog.Item](combokit.PreserveSelections[catalog.Item]()),
		tui.WithPlaceholder[catalog.Item]("type to search fruits"),
	)
}
