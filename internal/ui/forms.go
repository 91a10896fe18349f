package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"bulletin/internal/forum"
)

// Inline forms reuse the content area: new post (title, body), local
// comment (body), and profile edit (name, email).

func newInput(placeholder, value string, limit int) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = limit
	input.SetValue(value)
	return input
}

func (m Model) openNewPostForm() Model {
	m.mode = inputNewPost
	m.inputs = []textinput.Model{
		newInput("Title", "", 120),
		newInput("Body", "", 500),
	}
	m.inputFocus = 0
	m.inputs[0].Focus()
	return m
}

func (m Model) openCommentForm() Model {
	m.mode = inputComment
	m.inputs = []textinput.Model{
		newInput("Comment", "", 500),
	}
	m.inputFocus = 0
	m.inputs[0].Focus()
	return m
}

func (m Model) openProfileForm() Model {
	current := m.snapshot.CurrentUser
	if current == nil {
		return m
	}
	m.mode = inputProfile
	m.inputs = []textinput.Model{
		newInput("Name", current.Name, 120),
		newInput("Email", current.Email, 120),
	}
	m.inputFocus = 0
	m.inputs[0].Focus()
	return m
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = inputNone
		m.inputs = nil
		return m, nil

	case "tab", "shift+tab":
		if len(m.inputs) > 1 {
			m.inputs[m.inputFocus].Blur()
			if msg.String() == "tab" {
				m.inputFocus = (m.inputFocus + 1) % len(m.inputs)
			} else {
				m.inputFocus = (m.inputFocus - 1 + len(m.inputs)) % len(m.inputs)
			}
			m.inputs[m.inputFocus].Focus()
		}
		return m, nil

	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.inputs[m.inputFocus], cmd = m.inputs[m.inputFocus].Update(msg)
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	mode := m.mode
	values := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		values[i] = strings.TrimSpace(input.Value())
	}
	m.mode = inputNone
	m.inputs = nil

	current := m.snapshot.CurrentUser

	switch mode {
	case inputNewPost:
		if current == nil || values[0] == "" {
			return m, nil
		}
		post := forum.NewPost{UserID: current.ID, Title: values[0], Body: values[1]}
		return m, addPostCmd(m.ctx, m.store, post)

	case inputComment:
		if current == nil || values[0] == "" {
			return m, nil
		}
		m.store.AddLocalComment(m.detailPostID, current.Name, current.Email, values[0])
		return m, fetchSnapshotCmd(m.store)

	case inputProfile:
		if current == nil {
			return m, nil
		}
		user := *current
		if values[0] != "" {
			user.Name = values[0]
		}
		if values[1] != "" {
			user.Email = values[1]
		}
		return m, updateUserCmd(m.ctx, m.store, user)
	}

	return m, nil
}

func (m Model) renderForm() string {
	styles := m.theme.Styles()

	var title string
	switch m.mode {
	case inputNewPost:
		title = "New post"
	case inputComment:
		title = "Add comment"
	case inputProfile:
		title = "Edit profile"
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")
	for i, input := range m.inputs {
		b.WriteString(input.View())
		if i < len(m.inputs)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("enter Submit · tab Next field · esc Cancel"))
	return b.String()
}
