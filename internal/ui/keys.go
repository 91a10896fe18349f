package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Reload     key.Binding
	Escape     key.Binding

	// View switching
	ViewPosts     key.Binding
	ViewFavorites key.Binding
	ViewUsers     key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Open   key.Binding

	// Post actions
	Favorite     key.Binding
	Like         key.Binding
	Dislike      key.Binding
	NewPost      key.Binding
	DeletePost   key.Binding
	PriorityUp   key.Binding
	PriorityDown key.Binding

	// Detail actions
	Comment key.Binding

	// Users actions
	SwitchUser  key.Binding
	EditProfile key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload from server"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back"),
		),
		ViewPosts: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Posts"),
		),
		ViewFavorites: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Favorites"),
		),
		ViewUsers: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Users"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open post"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Toggle favorite"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Like"),
		),
		Dislike: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Dislike"),
		),
		NewPost: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "New post"),
		),
		DeletePost: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Delete post (own posts)"),
		),
		PriorityUp: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "Raise priority (admin)"),
		),
		PriorityDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Lower priority (admin)"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Add comment"),
		),
		SwitchUser: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Act as user"),
		),
		EditProfile: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit profile"),
		),
	}
}

func keyMatches(msg tea.KeyMsg, binding key.Binding) bool {
	return key.Matches(msg, binding)
}
