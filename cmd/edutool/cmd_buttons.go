package main

import (
	"fmt"
	"strings"

	"edutool/cmd/edutool/ui"
	"edutool/internal/calculator"

	"github.com/spf13/cobra"
)

// buttonsCmd prints the keypad layout of a mode
var buttonsCmd = &cobra.Command{
	Use:   "buttons",
	Short: "Show the keypad layout of a mode",
	Long: `Prints the buttons of the configured mode (or --mode) in keypad order.

Example:
  edutool buttons --mode waec`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), layoutTable(cfg.Mode()).View(ui.ThemedStyles(cfg.Shell.NightMode)))
		return nil
	},
}

func layoutTable(m calculator.Mode) *ui.SimpleTable {
	t := ui.NewSimpleTable(strings.ToUpper(m.String())+" keypad", nil)
	buttons := calculator.Buttons(m)
	for start := 0; start < len(buttons); start += calculator.KeypadColumns {
		end := start + calculator.KeypadColumns
		if end > len(buttons) {
			end = len(buttons)
		}
		row := make([]string, 0, calculator.KeypadColumns)
		for _, b := range buttons[start:end] {
			row = append(row, b.Label)
		}
		t.AddRow(row...)
	}
	return t
}
