package main

import (
	"context"
	"fmt"

	"edutool/cmd/edutool/calcui"
	"edutool/cmd/edutool/ui"
	"edutool/internal/config"
	"edutool/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// runInteractive starts the keypad TUI. Calculator state lives only as long as the program.
// Edits to the config file while it runs re-theme the keypad.
func runInteractive(cmd *cobra.Command) error {
	sessionID := uuid.NewString()
	log := logging.WithSession(logging.CategoryUI, sessionID)
	log.Info("keypad session started", zap.Stringer("mode", cfg.Mode()))

	model := calcui.New(newCalculator(),
		calcui.WithStyles(ui.ThemedStyles(cfg.Shell.NightMode)),
		calcui.WithLogger(log),
	)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("keypad: %w", err)
		}
		return nil
	})

	watcher, err := config.NewWatcher(resolvedConfigPath(), func(c *config.Config) {
		p.Send(calcui.SettingsMsg{NightMode: c.Shell.NightMode})
	}, logging.Get(logging.CategoryConfig))
	if err != nil {
		log.Warn("config reload disabled", zap.Error(err))
	} else {
		g.Go(func() error { return watcher.Run(ctx) })
	}

	err = g.Wait()
	log.Info("keypad session ended")
	return err
}
