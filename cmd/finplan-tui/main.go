package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/finplan/internal/calculation"
	"github.com/rgehrsitz/finplan/internal/config"
	"github.com/rgehrsitz/finplan/internal/domain"
	"github.com/rgehrsitz/finplan/internal/tui"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Println("Usage: finplan-tui [profile-file]")
		os.Exit(1)
	}

	// An optional profile prefills the questionnaire
	var prefill *domain.UserProfile
	if len(os.Args) == 2 {
		profile, err := config.NewInputParser().LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		prefill = profile
	}

	settings, err := config.LoadSettings("")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	assumptions, err := settings.Assumptions()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	engine, err := calculation.NewPlanEngineWithAssumptions(assumptions)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	model := tui.NewModel(tui.Options{Engine: engine, Prefill: prefill})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
