package state

import (
	"context"
	"sync"
	"time"

	"bulletin/internal/forum"
	"bulletin/internal/logging"
)

// FavoritesCache persists the favorite post ids across restarts.
// Implemented by *localstore.Store.
type FavoritesCache interface {
	GetInts(key string) []int
	SetInts(key string, ids []int) error
}

const favoritesKey = "favoritePostIds"

// Snapshot is an immutable view of store state at a point in time. Version
// increases on every state change, so consumers can re-render exactly when
// the snapshot identity changed.
type Snapshot struct {
	Users           []forum.User
	Posts           []forum.Post
	CommentsByPost  map[int][]forum.Comment
	Reactions       map[int]map[int]forum.Reaction
	FavoritePostIDs []int
	CurrentUser     *forum.User
	IsLoading       bool
	LastError       string
	Version         uint64
}

// Store is the central state container: it owns the entity collections and
// the local-only overlays (favorites, reactions, local comments) and
// reconciles them with the remote source. Every mutator is a single atomic
// transition; remote calls happen outside the lock.
type Store struct {
	api   forum.API
	cache FavoritesCache

	mu        sync.Mutex
	users     []forum.User
	posts     []forum.Post
	comments  map[int][]forum.Comment
	inflight  map[int]chan struct{}
	reactions map[int]map[int]forum.Reaction
	favorites []int
	current   *forum.User
	loading   bool
	lastErr   string
	version   uint64
}

// New builds a Store around the given remote API. The favorites cache may
// be nil, in which case favorites live only in memory. Persisted favorites
// are seeded immediately, before any remote load.
func New(api forum.API, cache FavoritesCache) *Store {
	s := &Store{
		api:       api,
		cache:     cache,
		comments:  make(map[int][]forum.Comment),
		inflight:  make(map[int]chan struct{}),
		reactions: make(map[int]map[int]forum.Reaction),
	}
	if cache != nil {
		s.favorites = append([]int(nil), cache.GetInts(favoritesKey)...)
	}
	return s
}

// LoadAll performs the bulk load: both collections are replaced wholesale
// with the fetched sets. When no current user is set, the first user of the
// fetched slice (arrival order, not id order) becomes current. On failure
// the previous collections are kept and the error message is recorded.
// LoadAll never retries on its own.
func (s *Store) LoadAll(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.version++
	s.mu.Unlock()

	users, err := s.api.FetchUsers(ctx)
	var posts []forum.Post
	if err == nil {
		posts, err = s.api.FetchPosts(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.version++
	if err != nil {
		s.lastErr = err.Error()
		return err
	}
	s.users = users
	s.posts = posts
	if s.current == nil && len(users) > 0 {
		first := users[0]
		s.current = &first
	}
	return nil
}

// SetCurrentUserID switches the acting user by id. An id that matches no
// loaded user clears the current user. Purely local, never a remote call.
func (s *Store) SetCurrentUserID(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	for _, u := range s.users {
		if u.ID == userID {
			picked := u
			s.current = &picked
			break
		}
	}
	s.version++
}

// AddPost creates the post remotely and then prepends it to the in-memory
// list. The server response supplies the identity; when the server omits
// an id a locally-generated one is used instead. There is no optimistic
// pre-insertion before the remote call resolves.
func (s *Store) AddPost(ctx context.Context, post forum.NewPost) error {
	created, err := s.api.CreatePost(ctx, post)
	if err != nil {
		s.recordError(err)
		return err
	}
	id := created.ID
	if id == 0 {
		id = localID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := forum.Post{ID: id, UserID: post.UserID, Title: post.Title, Body: post.Body}
	s.posts = append([]forum.Post{p}, s.posts...)
	s.version++
	return nil
}

// UpdatePostPriority sets the admin ranking hint on a post. Local only.
func (s *Store) UpdatePostPriority(postID, priority int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts[i].Priority = priority
			s.version++
			return
		}
	}
}

// DeletePost removes a post when the current user owns it; otherwise it
// silently no-ops. Ownership and the acting user are captured at call time,
// so switching users while the remote delete is in flight does not change
// the outcome. The local removal (post and any favorite entry) only happens
// after the remote delete succeeds.
func (s *Store) DeletePost(ctx context.Context, postID int) error {
	s.mu.Lock()
	var ownerID int
	found := false
	for _, p := range s.posts {
		if p.ID == postID {
			ownerID = p.UserID
			found = true
			break
		}
	}
	current := s.current
	s.mu.Unlock()

	if !found || current == nil || ownerID != current.ID {
		return nil
	}

	if err := s.api.DeletePost(ctx, postID); err != nil {
		s.recordError(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.posts[:0]
	for _, p := range s.posts {
		if p.ID != postID {
			kept = append(kept, p)
		}
	}
	s.posts = kept
	s.removeFavoriteLocked(postID)
	s.version++
	return nil
}

// ToggleFavorite adds the post id to the front of the favorite set, or
// removes it when already present. Toggling twice restores the previous
// contents and order. The set is persisted on every change.
func (s *Store) ToggleFavorite(postID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.favoriteIndexLocked(postID) >= 0 {
		s.removeFavoriteLocked(postID)
	} else {
		s.favorites = append([]int{postID}, s.favorites...)
		s.persistFavoritesLocked()
	}
	s.version++
}

// SetReaction records the current user's reaction to a post. The empty
// reaction clears the stored pair. Without a current user the call is a
// silent no-op. A (post,user) pair holds at most one value at any time.
func (s *Store) SetReaction(postID int, reaction forum.Reaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	userID := s.current.ID
	if reaction == "" {
		byUser, ok := s.reactions[postID]
		if !ok {
			return
		}
		delete(byUser, userID)
		if len(byUser) == 0 {
			delete(s.reactions, postID)
		}
	} else {
		byUser, ok := s.reactions[postID]
		if !ok {
			byUser = make(map[int]forum.Reaction)
			s.reactions[postID] = byUser
		}
		byUser[userID] = reaction
	}
	s.version++
}

// Comments returns the comments for a post, fetching them remotely the
// first time and serving the cached set afterwards. For a given post id at
// most one successful fetch ever happens; concurrent callers share it.
func (s *Store) Comments(ctx context.Context, postID int) ([]forum.Comment, error) {
	s.mu.Lock()
	if cached, ok := s.comments[postID]; ok {
		out := cloneComments(cached)
		s.mu.Unlock()
		return out, nil
	}
	if ch, ok := s.inflight[postID]; ok {
		s.mu.Unlock()
		select {
		case <-ch:
			// The winning fetch either filled the cache or failed;
			// re-entering serves the cache or retries.
			return s.Comments(ctx, postID)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	ch := make(chan struct{})
	s.inflight[postID] = ch
	s.mu.Unlock()

	fetched, err := s.api.FetchComments(ctx, postID)

	s.mu.Lock()
	delete(s.inflight, postID)
	close(ch)
	if err != nil {
		s.lastErr = err.Error()
		s.version++
		s.mu.Unlock()
		return nil, err
	}
	s.comments[postID] = fetched
	s.version++
	out := cloneComments(fetched)
	s.mu.Unlock()
	return out, nil
}

// AddLocalComment prepends a locally-authored comment to a post's cached
// set. The comment gets a locally-generated id and never reaches the server.
func (s *Store) AddLocalComment(postID int, name, email, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment := forum.Comment{
		ID:     localID(),
		PostID: postID,
		Name:   name,
		Email:  email,
		Body:   body,
	}
	s.comments[postID] = append([]forum.Comment{comment}, s.comments[postID]...)
	s.version++
}

// UpdateUser replaces a user profile, remote first. The local copy keeps
// its derived admin flag regardless of what the caller passed in. When the
// updated user is current, the current pointer follows.
func (s *Store) UpdateUser(ctx context.Context, user forum.User) error {
	if _, err := s.api.UpdateUser(ctx, user); err != nil {
		s.recordError(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == user.ID {
			user.IsAdmin = s.users[i].IsAdmin
			s.users[i] = user
			break
		}
	}
	if s.current != nil && s.current.ID == user.ID {
		updated := user
		s.current = &updated
	}
	s.version++
	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Users:           append([]forum.User(nil), s.users...),
		Posts:           append([]forum.Post(nil), s.posts...),
		CommentsByPost:  make(map[int][]forum.Comment, len(s.comments)),
		Reactions:       make(map[int]map[int]forum.Reaction, len(s.reactions)),
		FavoritePostIDs: append([]int(nil), s.favorites...),
		IsLoading:       s.loading,
		LastError:       s.lastErr,
		Version:         s.version,
	}
	for postID, comments := range s.comments {
		snap.CommentsByPost[postID] = cloneComments(comments)
	}
	for postID, byUser := range s.reactions {
		dup := make(map[int]forum.Reaction, len(byUser))
		for userID, r := range byUser {
			dup[userID] = r
		}
		snap.Reactions[postID] = dup
	}
	if s.current != nil {
		current := *s.current
		snap.CurrentUser = &current
	}
	return snap
}

func (s *Store) recordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err.Error()
	s.version++
}

func (s *Store) favoriteIndexLocked(postID int) int {
	for i, id := range s.favorites {
		if id == postID {
			return i
		}
	}
	return -1
}

func (s *Store) removeFavoriteLocked(postID int) {
	i := s.favoriteIndexLocked(postID)
	if i < 0 {
		return
	}
	s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
	s.persistFavoritesLocked()
}

func (s *Store) persistFavoritesLocked() {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetInts(favoritesKey, s.favorites); err != nil {
		logging.Warn("persist favorites failed", "err", err)
	}
}

func cloneComments(comments []forum.Comment) []forum.Comment {
	if len(comments) == 0 {
		return nil
	}
	dup := make([]forum.Comment, len(comments))
	copy(dup, comments)
	return dup
}

func localID() int {
	return int(time.Now().UnixMilli())
}
