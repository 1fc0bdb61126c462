package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"winterhouse/internal/core"
)

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"left", core.ActionMoveLeft, false},
		{"a", core.ActionMoveLeft, false},
		{"right", core.ActionMoveRight, false},
		{"d", core.ActionMoveRight, false},
		{"up", core.ActionInteract, false},
		{" ", core.ActionInteract, false},
		{"e", core.ActionInteract, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionPause, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"z", core.ActionNone, false},
	}

	for _, tt := range tests {
		msg := keyMsg(tt.key)
		action, quit := km.MapKey(msg)
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
				tt.key, action, quit, tt.action, tt.quit)
		}
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestIsDirectional(t *testing.T) {
	if !IsDirectional(core.ActionMoveLeft) || !IsDirectional(core.ActionMoveRight) {
		t.Error("Walk actions should be directional")
	}
	if IsDirectional(core.ActionInteract) || IsDirectional(core.ActionPause) {
		t.Error("Edge-triggered actions should not be directional")
	}
}

func TestRenderScreenPreservesRunes(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "hello", core.NewRGB(1, 0, 0))
	s.DrawText(2, 2, "world", core.NewRGB(0, 1, 0))

	out := RenderScreen(s)

	if !strings.Contains(out, "hello") {
		t.Errorf("Output missing first row text: %q", out)
	}
	if !strings.Contains(out, "world") {
		t.Errorf("Output missing last row text: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("Expected 2 newlines for 3 rows, got %d", got)
	}
}

func TestCenterText(t *testing.T) {
	got := centerText("ab", 6)
	if got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}

	// Wider than the target width stays untouched.
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText overflow = %q", got)
	}
}
