package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the dashboard.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Toggle the selected assignment complete/incomplete
	Toggle key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Help toggle
	Help key.Binding

	// Sync with the upstream calendar source
	Sync key.Binding

	// Quick filters
	QuickToday key.Binding
	QuickWeek  key.Binding
	QuickTests key.Binding
	ClearQuick key.Binding

	// Filter dimension cycling
	CycleCategory key.Binding
	CycleType     key.Binding
	CycleStatus   key.Binding

	// Sign out
	SignOut key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "toggle complete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Sync: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "sync"),
		),
		QuickToday: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "due today"),
		),
		QuickWeek: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "due this week"),
		),
		QuickTests: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "tests only"),
		),
		ClearQuick: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "show all"),
		),
		CycleCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle subject"),
		),
		CycleType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle type"),
		),
		CycleStatus: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle status"),
		),
		SignOut: key.NewBinding(
			key.WithKeys("Q"),
			key.WithHelp("Q", "sign out"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Toggle, k.Sync, k.Help, k.Quit,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Back, k.Quit},
		{k.QuickToday, k.QuickWeek, k.QuickTests, k.ClearQuick},
		{k.CycleCategory, k.CycleType, k.CycleStatus},
		{k.Sync, k.SignOut, k.Help},
	}
}
