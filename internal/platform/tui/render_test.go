package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-patience/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "A♥ 10")
	s.DrawText(1, 1, "K♠")

	got := RenderScreen(s)
	if got != s.String() {
		t.Errorf("RenderScreen = %q, want %q", got, s.String())
	}
}

func TestRenderScreenColoredRunsKeepText(t *testing.T) {
	s := core.NewScreen(8, 1)
	s.DrawTextColor(0, 0, "Q♥", core.ColorBrightRed)
	s.DrawTextColor(3, 0, "J♣", core.ColorBrightWhite)

	// Styling may add escape codes but never drops or reorders cells.
	got := RenderScreen(s)
	for _, want := range []string{"Q♥", "J♣"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderScreen = %q, missing %q", got, want)
		}
	}
	if strings.Index(got, "Q♥") > strings.Index(got, "J♣") {
		t.Error("runs out of order")
	}
}
