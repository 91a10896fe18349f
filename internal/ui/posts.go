package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"bulletin/internal/forum"
	"bulletin/internal/state"
)

// visiblePosts returns the posts for the active list view: the ranked
// collection for the posts view, the favorite subset for favorites.
func (m Model) visiblePosts() []forum.Post {
	if m.currentView == ViewFavorites {
		return m.snapshot.FavoritePosts()
	}
	return state.RankedPosts(m.snapshot.Posts)
}

func (m Model) selectedPost() (forum.Post, bool) {
	posts := m.visiblePosts()
	if m.selectedRow < 0 || m.selectedRow >= len(posts) {
		return forum.Post{}, false
	}
	return posts[m.selectedRow], true
}

func (m Model) handlePostListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	posts := m.visiblePosts()

	switch {
	case keyMatches(msg, m.keys.Down):
		if m.selectedRow < len(posts)-1 {
			m.selectedRow++
		}
	case keyMatches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case keyMatches(msg, m.keys.Top):
		m.selectedRow = 0
	case keyMatches(msg, m.keys.Bottom):
		m.selectedRow = len(posts) - 1

	case keyMatches(msg, m.keys.Open):
		if post, ok := m.selectedPost(); ok {
			m.returnView = m.currentView
			m.currentView = ViewDetail
			m.detailPostID = post.ID
			m.refreshDetailViewport()
			if _, cached := m.snapshot.CommentsByPost[post.ID]; !cached {
				m.commentsBusy = true
				return m, fetchCommentsCmd(m.ctx, m.store, post.ID)
			}
		}

	case keyMatches(msg, m.keys.Favorite):
		if post, ok := m.selectedPost(); ok {
			m.store.ToggleFavorite(post.ID)
			return m, fetchSnapshotCmd(m.store)
		}

	case keyMatches(msg, m.keys.Like):
		if post, ok := m.selectedPost(); ok {
			m.toggleReaction(post.ID, forum.ReactionLike)
			return m, fetchSnapshotCmd(m.store)
		}

	case keyMatches(msg, m.keys.Dislike):
		if post, ok := m.selectedPost(); ok {
			m.toggleReaction(post.ID, forum.ReactionDislike)
			return m, fetchSnapshotCmd(m.store)
		}

	case keyMatches(msg, m.keys.NewPost):
		if m.snapshot.CurrentUser != nil {
			m = m.openNewPostForm()
		}

	case keyMatches(msg, m.keys.DeletePost):
		if post, ok := m.selectedPost(); ok {
			return m, deletePostCmd(m.ctx, m.store, post.ID)
		}

	case keyMatches(msg, m.keys.PriorityUp):
		if post, ok := m.selectedPost(); ok && m.actingAdmin() {
			m.store.UpdatePostPriority(post.ID, post.Priority+1)
			return m, fetchSnapshotCmd(m.store)
		}

	case keyMatches(msg, m.keys.PriorityDown):
		if post, ok := m.selectedPost(); ok && m.actingAdmin() {
			m.store.UpdatePostPriority(post.ID, post.Priority-1)
			return m, fetchSnapshotCmd(m.store)
		}
	}

	return m, nil
}

// toggleReaction applies the UI toggling convention: reselecting the held
// reaction clears it, anything else replaces it.
func (m Model) toggleReaction(postID int, reaction forum.Reaction) {
	current := m.snapshot.CurrentUser
	if current == nil {
		return
	}
	if m.snapshot.ReactionFor(postID, current.ID) == reaction {
		m.store.SetReaction(postID, "")
		return
	}
	m.store.SetReaction(postID, reaction)
}

func (m Model) actingAdmin() bool {
	return m.snapshot.CurrentUser != nil && m.snapshot.CurrentUser.IsAdmin
}

func (m Model) renderPostList() string {
	styles := m.theme.Styles()
	posts := m.visiblePosts()

	if len(posts) == 0 {
		if m.currentView == ViewFavorites {
			return styles.MutedText.Render("No favorites yet. Press f on a post to add one.")
		}
		return styles.MutedText.Render("No posts.")
	}

	height := m.contentHeight()
	start := 0
	if m.selectedRow >= height {
		start = m.selectedRow - height + 1
	}

	var b strings.Builder
	for i := start; i < len(posts) && i-start < height; i++ {
		post := posts[i]
		line := m.postLine(post)
		if i == m.selectedRow {
			line = styles.Selected.Width(m.width).Render(line)
		}
		b.WriteString(line)
		if i < len(posts)-1 && i-start < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) postLine(post forum.Post) string {
	styles := m.theme.Styles()

	marker := "  "
	if m.snapshot.IsFavorite(post.ID) {
		marker = styles.WarningText.Render("★ ")
	}

	author := "?"
	if u, ok := m.snapshot.UserByID(post.UserID); ok {
		author = u.Username
	}

	likes, dislikes := m.snapshot.ReactionCounts(post.ID)
	counts := ""
	if likes > 0 || dislikes > 0 {
		counts = styles.MutedText.Render(fmt.Sprintf("  +%d/-%d", likes, dislikes))
	}

	prio := ""
	if post.Priority != 0 {
		prio = styles.AccentText.Render(fmt.Sprintf(" p%d", post.Priority))
	}

	title := truncate(post.Title, m.width-30)
	return fmt.Sprintf("%s%s%s  %s%s", marker, styles.Text.Render(title), prio, styles.MutedText.Render("@"+author), counts)
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
