package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/core"
)

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyDirections(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight},
		{"wasd w", runeMsg('w'), core.KeyUp},
		{"wasd s", runeMsg('s'), core.KeyDown},
		{"wasd a", runeMsg('a'), core.KeyLeft},
		{"wasd d", runeMsg('d'), core.KeyRight},
		{"vim k", runeMsg('k'), core.KeyUp},
		{"vim j", runeMsg('j'), core.KeyDown},
		{"unbound rune", runeMsg('x'), core.KeyNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestHelpBindings(t *testing.T) {
	km := DefaultKeyMap()

	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should expose bindings")
	}
	if len(km.FullHelp()) != 2 {
		t.Errorf("FullHelp should have 2 rows, got %d", len(km.FullHelp()))
	}
}
