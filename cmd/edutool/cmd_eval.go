package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"edutool/cmd/edutool/ui"
	"edutool/internal/calculator"
	"edutool/internal/expr"
	"edutool/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	evalHistory bool
	evalTree    bool
)

// evalCmd evaluates expressions through a Calculator, as if typed on the keypad
var evalCmd = &cobra.Command{
	Use:   "eval [expression...]",
	Short: "Evaluate keypad expressions",
	Long: `Evaluates each argument as one keypad expression, or each line of stdin when no
argument is given. Trigonometric functions take degrees.

Examples:
  edutool eval "2+3×4"
  edutool eval --mode scientific "sin(30)" "√2.25"
  echo "1÷0" | edutool eval`,
	RunE: runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	timer := logging.StartTimer(logging.CategoryCalc, "eval")
	defer timer.Stop()

	exprs := args
	if len(exprs) == 0 {
		var err error
		exprs, err = readLines(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	calc := newCalculator()
	failed := 0
	for _, e := range exprs {
		if evalTree {
			fmt.Fprintln(out, renderTree(e))
		}
		if !evaluate(calc, e) {
			failed++
		}
		fmt.Fprintf(out, "%s = %s\n", e, calc.Display())
	}

	if evalHistory {
		fmt.Fprint(out, historyTable(calc.History()).View(ui.ThemedStyles(cfg.Shell.NightMode)))
	}

	logging.Get(logging.CategoryCalc).Debug("eval finished",
		zap.Int("expressions", len(exprs)),
		zap.Int("failed", failed),
	)
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(exprs))
	}
	return nil
}

// evaluate types e into a cleared buffer and presses "=". It reports success.
func evaluate(calc *calculator.Calculator, e string) bool {
	calc.Clear()
	calc.Input(e)
	return calc.Calculate() == nil
}

func renderTree(e string) string {
	n, err := expr.Parse(e)
	if err != nil {
		return "tree: " + err.Error()
	}
	return "tree: " + n.String()
}

func historyTable(entries []calculator.Entry) *ui.SimpleTable {
	t := ui.NewSimpleTable("History", []string{"#", "Expression", "Result"})
	for i, e := range entries {
		t.AddRow(strconv.Itoa(i+1), e.Expression, e.Result)
	}
	return t
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
