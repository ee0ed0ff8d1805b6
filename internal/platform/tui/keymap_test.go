package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rhythm/internal/core"
)

func runeKey(s string) tea.KeyMsg {
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
		{"d", runeKey("d"), core.ActionLane0, false},
		{"f", runeKey("f"), core.ActionLane1, false},
		{"j", runeKey("j"), core.ActionLane2, false},
		{"k", runeKey("k"), core.ActionLane3, false},
		{"1", runeKey("1"), core.ActionLane0, false},
		{"4", runeKey("4"), core.ActionLane3, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLane0, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionLane1, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionLane2, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionLane3, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"b", runeKey("b"), core.ActionBack, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tt.name, action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tt.name, quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey("k"), &frame)
	km.MapKeyToFrame(runeKey("d"), &frame)
	km.MapKeyToFrame(runeKey("x"), &frame)

	lanes := frame.Lanes()
	if len(lanes) != 2 || lanes[0] != 3 || lanes[1] != 0 {
		t.Errorf("Lanes() = %v, expected [3 0]", lanes)
	}
	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("MapKeyToFrame(q) should report quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuAction
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{"k", runeKey("k"), MenuActionUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{"j", runeKey("j"), MenuActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{"q", runeKey("q"), MenuActionQuit},
		{"d", runeKey("d"), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
				t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tt.name, got, tt.want)
			}
		})
	}
}
