package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-patience/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"q", runes("q"), core.ActionQuit, true},
		{"d draws", runes("d"), core.ActionDraw, false},
		{"space draws", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionDraw, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"p", runes("p"), core.ActionPause, false},
		{"r", runes("r"), core.ActionRestart, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"unbound", runes("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	if !frame.Pointer.Pressed || frame.Pointer.Alt {
		t.Fatalf("left press: got %+v", frame.Pointer)
	}
	if frame.Pointer.X != 3 || frame.Pointer.Y != 8 {
		t.Errorf("press position = (%d,%d), want (3,8)", frame.Pointer.X, frame.Pointer.Y)
	}

	km.MapMouseToFrame(tea.MouseMsg{X: 10, Y: 9, Action: tea.MouseActionMotion}, &frame)
	if !frame.Pointer.Moved || frame.Pointer.X != 10 {
		t.Errorf("motion: got %+v", frame.Pointer)
	}

	km.MapMouseToFrame(tea.MouseMsg{X: 10, Y: 9, Action: tea.MouseActionRelease}, &frame)
	if !frame.Pointer.Released {
		t.Errorf("release not recorded: %+v", frame.Pointer)
	}

	frame.Clear()
	km.MapMouseToFrame(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, &frame)
	if !frame.Pointer.Pressed || !frame.Pointer.Alt {
		t.Errorf("right press should be alternate: %+v", frame.Pointer)
	}

	frame.Clear()
	km.MapMouseToFrame(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, &frame)
	if frame.Pointer.Pressed {
		t.Error("wheel should be ignored")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runes("k"), MenuActionUp},
		{runes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{runes("q"), MenuActionQuit},
		{runes("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runes("d"), &frame) {
		t.Error("d is not a quit key")
	}
	if !frame.Has(core.ActionDraw) {
		t.Error("d should set Draw in the frame")
	}

	if km.MapKeyToFrame(runes("x"), &frame) {
		t.Error("unbound key is not a quit key")
	}
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) {
		t.Error("ctrl+c should report quit")
	}
}
