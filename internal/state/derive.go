package state

import (
	"sort"

	"bulletin/internal/forum"
)

// Derivations over snapshots. These are pure functions of the inputs they
// name; nothing here touches the store.

// RankedPosts returns the posts ordered by priority descending, then id
// descending. The input slice is not modified.
func RankedPosts(posts []forum.Post) []forum.Post {
	ranked := append([]forum.Post(nil), posts...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Priority != ranked[j].Priority {
			return ranked[i].Priority > ranked[j].Priority
		}
		return ranked[i].ID > ranked[j].ID
	})
	return ranked
}

// IsFavorite reports whether the post id is in the favorite set.
func (s Snapshot) IsFavorite(postID int) bool {
	for _, id := range s.FavoritePostIDs {
		if id == postID {
			return true
		}
	}
	return false
}

// FavoriteCount returns the size of the favorite set.
func (s Snapshot) FavoriteCount() int {
	return len(s.FavoritePostIDs)
}

// FavoritePosts returns the favorited posts in favorite order, skipping ids
// that no longer resolve to a loaded post.
func (s Snapshot) FavoritePosts() []forum.Post {
	var posts []forum.Post
	for _, id := range s.FavoritePostIDs {
		if p, ok := s.PostByID(id); ok {
			posts = append(posts, p)
		}
	}
	return posts
}

// UserByID looks a user up by id.
func (s Snapshot) UserByID(userID int) (forum.User, bool) {
	for _, u := range s.Users {
		if u.ID == userID {
			return u, true
		}
	}
	return forum.User{}, false
}

// PostByID looks a post up by id.
func (s Snapshot) PostByID(postID int) (forum.Post, bool) {
	for _, p := range s.Posts {
		if p.ID == postID {
			return p, true
		}
	}
	return forum.Post{}, false
}

// PostsByUser returns the posts owned by a user, in collection order.
func (s Snapshot) PostsByUser(userID int) []forum.Post {
	var posts []forum.Post
	for _, p := range s.Posts {
		if p.UserID == userID {
			posts = append(posts, p)
		}
	}
	return posts
}

// ReactionFor returns the reaction a user holds on a post, or the empty
// reaction when none is stored.
func (s Snapshot) ReactionFor(postID, userID int) forum.Reaction {
	return s.Reactions[postID][userID]
}

// ReactionCounts tallies likes and dislikes for a post.
func (s Snapshot) ReactionCounts(postID int) (likes, dislikes int) {
	for _, r := range s.Reactions[postID] {
		switch r {
		case forum.ReactionLike:
			likes++
		case forum.ReactionDislike:
			dislikes++
		}
	}
	return likes, dislikes
}
