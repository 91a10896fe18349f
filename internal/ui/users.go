package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleUsersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	users := m.snapshot.Users

	switch {
	case keyMatches(msg, m.keys.Down):
		if m.usersRow < len(users)-1 {
			m.usersRow++
		}
	case keyMatches(msg, m.keys.Up):
		if m.usersRow > 0 {
			m.usersRow--
		}
	case keyMatches(msg, m.keys.Top):
		m.usersRow = 0
	case keyMatches(msg, m.keys.Bottom):
		m.usersRow = len(users) - 1

	case keyMatches(msg, m.keys.SwitchUser):
		if m.usersRow >= 0 && m.usersRow < len(users) {
			m.store.SetCurrentUserID(users[m.usersRow].ID)
			return m, fetchSnapshotCmd(m.store)
		}

	case keyMatches(msg, m.keys.EditProfile):
		if m.snapshot.CurrentUser != nil {
			m = m.openProfileForm()
		}
	}

	return m, nil
}

func (m Model) renderUsers() string {
	styles := m.theme.Styles()
	users := m.snapshot.Users

	if len(users) == 0 {
		return styles.MutedText.Render("No users loaded.")
	}

	var b strings.Builder
	for i, u := range users {
		badge := ""
		if u.IsAdmin {
			badge = styles.SuccessText.Render(" admin")
		}
		current := "  "
		if c := m.snapshot.CurrentUser; c != nil && c.ID == u.ID {
			current = styles.AccentText.Render("> ")
		}
		posts := len(m.snapshot.PostsByUser(u.ID))
		line := fmt.Sprintf("%s%s%s  %s  %s",
			current,
			styles.Text.Render(u.Username),
			badge,
			styles.MutedText.Render(u.Email),
			styles.MutedText.Render(fmt.Sprintf("%d posts", posts)),
		)
		if i == m.usersRow {
			line = styles.Selected.Width(m.width).Render(line)
		}
		b.WriteString(line)
		if i < len(users)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
