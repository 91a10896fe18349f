package ui

import "strings"

func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"Views", [][2]string{
			{"1", "Posts"},
			{"2", "Favorites"},
			{"3", "Users"},
			{"enter", "Open post / act as user"},
			{"esc", "Back"},
		}},
		{"Posts", [][2]string{
			{"f", "Toggle favorite"},
			{"l / d", "Like / dislike (toggle)"},
			{"n", "New post"},
			{"x", "Delete post (own posts only)"},
			{"+ / -", "Adjust priority (admin only)"},
		}},
		{"Post detail", [][2]string{
			{"c", "Add local comment"},
			{"j/k", "Scroll"},
		}},
		{"Users", [][2]string{
			{"e", "Edit current user profile"},
		}},
		{"General", [][2]string{
			{"r", "Reload users and posts"},
			{"T", "Cycle theme"},
			{"?", "Toggle this help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("bulletin — keys"))
	b.WriteString("\n")
	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Render(section.title))
		b.WriteString("\n")
		for _, row := range section.rows {
			b.WriteString("  ")
			b.WriteString(styles.Text.Render(padRight(row[0], 8)))
			b.WriteString(styles.MutedText.Render(row[1]))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("press any key to close"))
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
