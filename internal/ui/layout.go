package ui

import (
	"fmt"
	"strings"
)

// renderMain renders the header, the active view, and the status line.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	if m.mode != inputNone {
		b.WriteString(m.renderForm())
	} else {
		b.WriteString(m.renderContent())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())

	return b.String()
}

func (m Model) renderContent() string {
	switch m.currentView {
	case ViewPosts, ViewFavorites:
		return m.renderPostList()
	case ViewUsers:
		return m.renderUsers()
	case ViewDetail:
		return m.renderDetail()
	default:
		return ""
	}
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	title := "bulletin"
	acting := "nobody"
	if u := m.snapshot.CurrentUser; u != nil {
		acting = u.Username
		if u.IsAdmin {
			acting += " (admin)"
		}
	}
	left := styles.Title.Render(title) + styles.MutedText.Render("  acting as ") + styles.AccentText.Render(acting)
	right := styles.MutedText.Render(fmt.Sprintf("%d posts · %d favorites · %s", len(m.snapshot.Posts), m.snapshot.FavoriteCount(), m.theme.Name))
	return styles.Header.Width(m.width).Render(left + "  " + right)
}

func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	var label string
	switch m.currentView {
	case ViewPosts:
		label = "[1] Posts  2 Favorites  3 Users"
	case ViewFavorites:
		label = "1 Posts  [2] Favorites  3 Users"
	case ViewUsers:
		label = "1 Posts  2 Favorites  [3] Users"
	case ViewDetail:
		label = "esc Back  c Comment  f Favorite  l Like  d Dislike"
	}
	return styles.Footer.Width(m.width).Render(label + "   ? Help")
}

func (m Model) renderStatusLine() string {
	styles := m.theme.Styles()
	switch {
	case m.snapshot.IsLoading:
		return styles.WarningText.Render("loading…")
	case m.snapshot.LastError != "":
		return styles.DangerText.Render("error: " + m.snapshot.LastError + "  (r to reload)")
	case len(m.snapshot.Posts) == 0:
		return styles.MutedText.Render("no posts loaded  (r to reload)")
	default:
		return styles.MutedText.Render("ready")
	}
}
