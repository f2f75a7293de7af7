package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-aimlab/internal/games/aim"
)

// KeyMap holds every key binding of the trainer.
// Bindings that do not apply to the current screen are disabled, which
// hides them from the help footer and stops them from matching.
type KeyMap struct {
	Play    key.Binding
	ToMenu  key.Binding
	Finish  key.Binding
	Abort   key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Play: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("enter", "play"),
		),
		ToMenu: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "menu"),
		),
		Finish: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "finish"),
		),
		Abort: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "abort"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "end session"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "keep playing"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// update enables the bindings that apply to the phase.
func (k *KeyMap) update(phase aim.Phase, confirming bool) {
	active := phase == aim.PhaseActive && !confirming

	k.Play.SetEnabled(phase == aim.PhaseMenu)
	k.ToMenu.SetEnabled(phase == aim.PhaseEnded)
	k.Finish.SetEnabled(active)
	k.Abort.SetEnabled(active)
	for _, b := range []*key.Binding{&k.Up, &k.Down, &k.Left, &k.Right, &k.Fire} {
		b.SetEnabled(active)
	}
	k.Confirm.SetEnabled(confirming)
	k.Cancel.SetEnabled(confirming)
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.ToMenu, k.Fire, k.Finish, k.Abort, k.Confirm, k.Cancel, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.ToMenu},
		{k.Up, k.Down, k.Left, k.Right, k.Fire},
		{k.Finish, k.Abort, k.Confirm, k.Cancel},
		{k.Quit},
	}
}
