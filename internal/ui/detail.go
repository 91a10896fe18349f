package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"bulletin/internal/forum"
)

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Comment):
		if m.snapshot.CurrentUser != nil {
			m = m.openCommentForm()
		}
		return m, nil

	case keyMatches(msg, m.keys.Favorite):
		m.store.ToggleFavorite(m.detailPostID)
		return m, fetchSnapshotCmd(m.store)

	case keyMatches(msg, m.keys.Like):
		m.toggleReaction(m.detailPostID, forum.ReactionLike)
		return m, fetchSnapshotCmd(m.store)

	case keyMatches(msg, m.keys.Dislike):
		m.toggleReaction(m.detailPostID, forum.ReactionDislike)
		return m, fetchSnapshotCmd(m.store)
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m *Model) refreshDetailViewport() {
	if !m.ready || m.currentView != ViewDetail {
		return
	}
	m.detailViewport.SetContent(m.detailContent())
}

func (m Model) renderDetail() string {
	return m.detailViewport.View()
}

func (m Model) detailContent() string {
	styles := m.theme.Styles()

	post, ok := m.snapshot.PostByID(m.detailPostID)
	if !ok {
		return styles.MutedText.Render("Post no longer available.")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(post.Title))
	b.WriteString("\n")

	author := "unknown"
	if u, found := m.snapshot.UserByID(post.UserID); found {
		author = fmt.Sprintf("%s <%s>", u.Name, u.Email)
	}
	likes, dislikes := m.snapshot.ReactionCounts(post.ID)
	meta := fmt.Sprintf("by %s · +%d/-%d", author, likes, dislikes)
	if m.snapshot.IsFavorite(post.ID) {
		meta += " · favorited"
	}
	b.WriteString(styles.MutedText.Render(meta))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(post.Body))
	b.WriteString("\n\n")

	comments, cached := m.snapshot.CommentsByPost[post.ID]
	switch {
	case !cached && m.commentsBusy:
		b.WriteString(styles.MutedText.Render("loading comments…"))
	case !cached:
		b.WriteString(styles.MutedText.Render("comments unavailable"))
	case len(comments) == 0:
		b.WriteString(styles.MutedText.Render("no comments"))
	default:
		b.WriteString(styles.AccentText.Render(fmt.Sprintf("Comments (%d)", len(comments))))
		for _, comment := range comments {
			b.WriteString("\n\n")
			b.WriteString(styles.Text.Render(comment.Name))
			b.WriteString(styles.MutedText.Render(" <" + comment.Email + ">"))
			b.WriteString("\n")
			b.WriteString(styles.Text.Render(comment.Body))
		}
	}

	return b.String()
}
