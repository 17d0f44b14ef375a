package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/baturalpk/restdeck/internal/app"
	"github.com/baturalpk/restdeck/internal/config"
	"github.com/baturalpk/restdeck/internal/core/history"
)

var version = "dev"

func main() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	configFlag := flag.String("config", "", "Path to a config file")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("restdeck %s\n", version)
		os.Exit(0)
	}

	var cfg config.Config
	if *configFlag != "" {
		cfg = config.LoadFrom(*configFlag)
	} else {
		cfg = config.Load()
	}

	store, err := history.NewStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	p := tea.NewProgram(
		app.New(cfg, store),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
