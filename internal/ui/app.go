// Package ui provides the Bubble Tea front end for bulletin. It consumes
// the store exclusively through snapshots and mutators; the remote client
// and the local cache are never touched from here.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"bulletin/internal/forum"
	"bulletin/internal/prefs"
	"bulletin/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewPosts View = iota
	ViewFavorites
	ViewUsers
	ViewDetail
)

// inputMode names the active inline form, if any.
type inputMode int

const (
	inputNone inputMode = iota
	inputNewPost
	inputComment
	inputProfile
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	prefsPath string

	// UI state
	theme       Theme
	keys        keyMap
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Data state
	snapshot state.Snapshot

	// List state
	selectedRow    int
	usersRow       int
	returnView     View // view to return to when leaving detail
	detailPostID   int
	detailViewport viewport.Model
	commentsBusy   bool

	// Inline forms
	mode       inputMode
	inputs     []textinput.Model
	inputFocus int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:         ctx,
		store:       opts.Store,
		prefsPath:   prefsPath,
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		currentView: ViewPosts,
		returnView:  ViewPosts,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(msg.Width, m.contentHeight())
		} else {
			m.detailViewport.Width = msg.Width
			m.detailViewport.Height = m.contentHeight()
		}
		m.ready = true
		m.refreshDetailViewport()
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd()}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		next := state.Snapshot(msg)
		changed := next.Version != m.snapshot.Version
		m.snapshot = next
		if changed {
			m.clampSelection()
			m.refreshDetailViewport()
		}
		return m, nil

	case commentsMsg:
		m.commentsBusy = false
		// The store cached the result; pick it up with a fresh snapshot.
		return m, fetchSnapshotCmd(m.store)

	case mutationMsg:
		// Success and failure both show up in the next snapshot (the
		// store records mutation errors in its error slot).
		return m, fetchSnapshotCmd(m.store)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.mode != inputNone {
		return m.handleFormKey(msg)
	}

	switch {
	case keyMatches(msg, m.keys.Quit):
		return m, tea.Quit

	case keyMatches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case keyMatches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		return m, nil

	case keyMatches(msg, m.keys.Reload):
		return m, reloadCmd(m.ctx, m.store)

	case keyMatches(msg, m.keys.ViewPosts):
		m.currentView = ViewPosts
		m.selectedRow = 0
		return m, nil

	case keyMatches(msg, m.keys.ViewFavorites):
		m.currentView = ViewFavorites
		m.selectedRow = 0
		return m, nil

	case keyMatches(msg, m.keys.ViewUsers):
		m.currentView = ViewUsers
		return m, nil

	case keyMatches(msg, m.keys.Escape):
		if m.currentView == ViewDetail {
			m.currentView = m.returnView
			return m, nil
		}
		m.currentView = ViewPosts
		return m, nil
	}

	switch m.currentView {
	case ViewPosts, ViewFavorites:
		return m.handlePostListKey(msg)
	case ViewUsers:
		return m.handleUsersKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	}

	return m, nil
}

func (m Model) contentHeight() int {
	// Two header lines plus the status line.
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) clampSelection() {
	if n := len(m.visiblePosts()); m.selectedRow >= n {
		m.selectedRow = n - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
	if n := len(m.snapshot.Users); m.usersRow >= n {
		m.usersRow = n - 1
	}
	if m.usersRow < 0 {
		m.usersRow = 0
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type commentsMsg struct {
	postID int
	err    error
}

type mutationMsg struct {
	err error
}

// Commands

const uiTick = 500 * time.Millisecond

func tickCmd() tea.Cmd {
	return tea.Tick(uiTick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func reloadCmd(ctx context.Context, store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return mutationMsg{err: store.LoadAll(ctx)}
	}
}

func fetchCommentsCmd(ctx context.Context, store *state.Store, postID int) tea.Cmd {
	return func() tea.Msg {
		_, err := store.Comments(ctx, postID)
		return commentsMsg{postID: postID, err: err}
	}
}

func addPostCmd(ctx context.Context, store *state.Store, post forum.NewPost) tea.Cmd {
	return func() tea.Msg {
		return mutationMsg{err: store.AddPost(ctx, post)}
	}
}

func deletePostCmd(ctx context.Context, store *state.Store, postID int) tea.Cmd {
	return func() tea.Msg {
		return mutationMsg{err: store.DeletePost(ctx, postID)}
	}
}

func updateUserCmd(ctx context.Context, store *state.Store, user forum.User) tea.Cmd {
	return func() tea.Msg {
		return mutationMsg{err: store.UpdateUser(ctx, user)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
