package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(bs []Button) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.Label
	}
	return out
}

func TestButtons_LayoutsFillTheGrid(t *testing.T) {
	for _, m := range Modes() {
		bs := Buttons(m)
		assert.Zero(t, len(bs)%KeypadColumns, "%s layout has a ragged last row", m)

		seen := map[string]bool{}
		for _, b := range bs {
			assert.False(t, seen[b.Label], "%s layout repeats %q", m, b.Label)
			seen[b.Label] = true
		}
		for _, must := range []string{"=", "C", "DEL", "0", "9", "."} {
			assert.True(t, seen[must], "%s layout lacks %q", m, must)
		}
	}
}

func TestButtons_Vocabulary(t *testing.T) {
	basic := labels(Buttons(ModeBasic))
	assert.NotContains(t, basic, "sin")
	assert.NotContains(t, basic, "π")

	sci := labels(Buttons(ModeScientific))
	assert.Contains(t, sci, "ln")
	assert.Contains(t, sci, "^")
	assert.NotContains(t, sci, "Exp")

	waec := labels(Buttons(ModeWAEC))
	assert.Contains(t, waec, "x²")
	assert.Contains(t, waec, "Exp")
	assert.NotContains(t, waec, "ln")

	assert.Equal(t, basic, labels(Buttons(Mode("slide-rule"))))
}

func TestButton_Token(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{label: "7", want: "7"},
		{label: "×", want: "×"},
		{label: "sin", want: "sin("},
		{label: "ln", want: "ln("},
		{label: "√", want: "√("},
		{label: "x²", want: "^2"},
		{label: "Exp", want: "*10^"},
		{label: "π", want: "π"},
		{label: "=", want: ""},
		{label: "DEL", want: ""},
	}
	for _, tt := range tests {
		b := Button{Label: tt.label, Kind: kindOf(tt.label)}
		assert.Equal(t, tt.want, b.Token(), "label %q", tt.label)
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" WAEC ")
	require.NoError(t, err)
	assert.Equal(t, ModeWAEC, m)

	_, err = ParseMode("graphing")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestMode_Next(t *testing.T) {
	assert.Equal(t, ModeScientific, ModeBasic.Next())
	assert.Equal(t, ModeWAEC, ModeScientific.Next())
	assert.Equal(t, ModeBasic, ModeWAEC.Next())
}

func TestHistory_Push(t *testing.T) {
	h := NewHistory(0)
	assert.Equal(t, 1, h.Cap())

	h = NewHistory(3)
	for _, r := range []string{"a", "b", "c", "d"} {
		h.Push(Entry{Expression: r, Result: r})
	}
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []string{"d = d", "c = c", "b = b"}, []string{
		h.Entries()[0].String(), h.Entries()[1].String(), h.Entries()[2].String(),
	})

	got := h.Entries()
	got[0].Result = "mutated"
	assert.Equal(t, "d", h.Entries()[0].Result, "Entries must return a copy")
}
