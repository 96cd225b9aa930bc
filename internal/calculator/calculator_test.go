package calculator

import (
	"fmt"
	"testing"

	"edutool/internal/expr"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// press feeds labels to c and fails on buttons the mode does not have.
func press(t *testing.T, c *Calculator, labels ...string) {
	t.Helper()
	for _, l := range labels {
		err := c.Press(l)
		if err != nil {
			require.ErrorIs(t, err, expr.ErrEvaluation, "press %q", l)
		}
	}
}

func TestNew_Defaults(t *testing.T) {
	c := New()
	assert.Equal(t, "0", c.Display())
	assert.Equal(t, "", c.Equation())
	assert.Equal(t, ModeBasic, c.Mode())
	assert.Empty(t, c.History())
}

func TestInput_ZeroReplacement(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{token: "7", want: "7"},
		{token: "(", want: "("},
		{token: "sin(", want: "sin("},
		{token: "π", want: "π"},
		{token: "^2", want: "^2"},
		{token: ".", want: "0."},
		{token: "+", want: "0+"},
		{token: "-", want: "0-"},
		{token: "×", want: "0×"},
		{token: "÷", want: "0÷"},
		{token: ")", want: "0)"},
	}

	for _, tt := range tests {
		c := New()
		c.Input(tt.token)
		assert.Equal(t, tt.want, c.Display(), "Input(%q)", tt.token)
	}
}

func TestCalculate_Success(t *testing.T) {
	c := New()
	press(t, c, "2", "+", "3", "×", "4", "=")

	assert.Equal(t, "14", c.Display())
	assert.Equal(t, "2+3×4 =", c.Equation())
	if diff := cmp.Diff([]Entry{{Expression: "2+3×4", Result: "14"}}, c.History()); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "2+3×4 = 14", c.History()[0].String())
}

func TestCalculate_ContinueFromResult(t *testing.T) {
	c := New()
	press(t, c, "1", "÷", "3", "=")
	assert.Equal(t, "0.3333333333", c.Display())

	press(t, c, "×", "3", "=")
	assert.Equal(t, "0.9999999999", c.Display())
	assert.Equal(t, "0.3333333333×3 =", c.Equation())
}

// Exponent-form results contain "e", which the evaluator reads as Euler's number,
// so they cannot be continued; only a fresh entry recovers.
func TestCalculate_ExponentResultCannotContinue(t *testing.T) {
	c := New()
	press(t, c, "1", "÷", "1", "0", "0", "0", "0", "0", "0", "0", "=")
	require.Equal(t, "1e-7", c.Display())

	press(t, c, "+", "1", "=")
	assert.Equal(t, ErrorDisplay, c.Display())
	require.Len(t, c.History(), 1)
	assert.Equal(t, "1÷10000000 =", c.Equation())

	press(t, c, "2", "=")
	assert.Equal(t, "2", c.Display())
}

func TestCalculate_ErrorLeavesHistoryAndEcho(t *testing.T) {
	c := New()
	press(t, c, "2", "+", "2", "=")
	before := c.History()

	press(t, c, "5", "÷", "0")
	err := c.Calculate()
	require.ErrorIs(t, err, expr.ErrNotFinite)

	assert.Equal(t, "Error", c.Display())
	assert.Equal(t, "2+2 =", c.Equation())
	if diff := cmp.Diff(before, c.History()); diff != "" {
		t.Errorf("history changed on error (-want +got):\n%s", diff)
	}
}

func TestInput_AfterErrorReplacesBuffer(t *testing.T) {
	c := New()
	press(t, c, "(", "1", ")", ")", "=")
	require.Equal(t, "Error", c.Display())

	press(t, c, "7")
	assert.Equal(t, "7", c.Display())

	press(t, c, ")", ")", "=")
	require.Equal(t, "Error", c.Display())
	press(t, c, "+")
	assert.Equal(t, "+", c.Display(), "operators replace an error too")
}

func TestDelete(t *testing.T) {
	c := New()
	c.Delete()
	assert.Equal(t, "0", c.Display())

	c.SetMode(ModeScientific)
	press(t, c, "π", "×", "2")
	c.Delete()
	assert.Equal(t, "π×", c.Display())
	c.Delete()
	c.Delete()
	assert.Equal(t, "0", c.Display())
}

func TestDelete_OnError(t *testing.T) {
	c := New()
	press(t, c, "5", "÷", "0", "=")
	c.Delete()
	assert.Equal(t, "Erro", c.Display())
}

func TestClear_KeepsHistory(t *testing.T) {
	c := New()
	press(t, c, "9", "-", "1", "=", "C")
	assert.Equal(t, "0", c.Display())
	assert.Equal(t, "", c.Equation())
	assert.Len(t, c.History(), 1)
}

func TestHistory_CapEvictsOldest(t *testing.T) {
	c := New()
	for i := 1; i <= 11; i++ {
		c.Clear()
		c.Input(fmt.Sprint(i))
		require.NoError(t, c.Calculate())
	}

	h := c.History()
	require.Len(t, h, 10)
	assert.Equal(t, "11 = 11", h[0].String())
	assert.Equal(t, "2 = 2", h[9].String())
}

func TestWithHistorySize(t *testing.T) {
	c := New(WithHistorySize(2))
	for _, in := range []string{"1", "2", "3"} {
		c.Clear()
		c.Input(in)
		require.NoError(t, c.Calculate())
	}
	want := []Entry{{Expression: "3", Result: "3"}, {Expression: "2", Result: "2"}}
	if diff := cmp.Diff(want, c.History()); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestPress_Scientific(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		presses []string
		want    string
	}{
		{name: "sine closed by auto balance", mode: ModeScientific, presses: []string{"sin", "3", "0", "="}, want: "0.5"},
		{name: "sine closed by hand", mode: ModeScientific, presses: []string{"sin", "3", "0", ")", "="}, want: "0.5"},
		{name: "bracketed root", mode: ModeScientific, presses: []string{"√", "1", "6", ")", "="}, want: "4"},
		{name: "log", mode: ModeScientific, presses: []string{"log", "1", "0", "0", "="}, want: "2"},
		{name: "power", mode: ModeScientific, presses: []string{"2", "^", "8", "="}, want: "256"},
		{name: "nested trig", mode: ModeScientific, presses: []string{"sin", "cos", "0", ")", "×", "3", "0", "="}, want: "0.5"},
		{name: "waec square", mode: ModeWAEC, presses: []string{"1", "2", "x²", "="}, want: "144"},
		{name: "waec exp", mode: ModeWAEC, presses: []string{"2", "Exp", "3", "="}, want: "2000"},
		{name: "waec pi", mode: ModeWAEC, presses: []string{"π", "="}, want: "3.1415926536"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(WithMode(tt.mode))
			press(t, c, tt.presses...)
			assert.Equal(t, tt.want, c.Display())
		})
	}
}

func TestPress_UnknownButton(t *testing.T) {
	c := New()
	err := c.Press("sin")
	require.ErrorIs(t, err, ErrUnknownButton)
	assert.Equal(t, "0", c.Display())

	c.SetMode(ModeWAEC)
	assert.ErrorIs(t, c.Press("ln"), ErrUnknownButton, "waec has no ln key")
	assert.ErrorIs(t, c.Press("^"), ErrUnknownButton, "waec has no ^ key")
}

func TestSetMode_KeepsBuffer(t *testing.T) {
	c := New()
	press(t, c, "1", "2")
	c.SetMode(ModeScientific)
	assert.Equal(t, "12", c.Display())
	assert.Equal(t, ModeScientific, c.Snapshot().Mode)
}

func TestCalculate_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := New(WithLogger(zap.New(core)))

	press(t, c, "1", "+", "1", "=")
	press(t, c, "÷", "0", "=")

	require.Equal(t, 2, logs.Len())
	ok := logs.FilterMessage("evaluated").All()
	require.Len(t, ok, 1)
	assert.Equal(t, "2", ok[0].ContextMap()["result"])

	failed := logs.FilterMessage("evaluation failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "2÷0", failed[0].ContextMap()["expr"])
}
