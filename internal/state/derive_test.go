package state

import (
	"reflect"
	"testing"

	"bulletin/internal/forum"
)

func TestRankedPosts_PriorityDescThenIDDesc(t *testing.T) {
	posts := []forum.Post{
		{ID: 1, Priority: 0},
		{ID: 2, Priority: 3},
		{ID: 3, Priority: 0},
		{ID: 4, Priority: 3},
	}

	ranked := RankedPosts(posts)

	gotIDs := make([]int, len(ranked))
	for i, p := range ranked {
		gotIDs[i] = p.ID
	}
	if want := []int{4, 2, 3, 1}; !reflect.DeepEqual(gotIDs, want) {
		t.Fatalf("ranked ids = %v, want %v", gotIDs, want)
	}
}

func TestRankedPosts_DoesNotModifyInput(t *testing.T) {
	posts := []forum.Post{{ID: 1}, {ID: 2}}
	RankedPosts(posts)
	if posts[0].ID != 1 {
		t.Fatalf("input slice reordered")
	}
}

func TestFavoritePosts_SkipsUnresolvedIDs(t *testing.T) {
	snap := Snapshot{
		Posts:           []forum.Post{{ID: 3, Title: "kept"}},
		FavoritePostIDs: []int{7, 3},
	}

	got := snap.FavoritePosts()
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("FavoritePosts = %+v, want only post 3", got)
	}
	// The stale id is skipped in display but still counted as stored.
	if snap.FavoriteCount() != 2 {
		t.Fatalf("FavoriteCount = %d, want 2", snap.FavoriteCount())
	}
}

func TestReactionCounts_TalliesBothKinds(t *testing.T) {
	snap := Snapshot{
		Reactions: map[int]map[int]forum.Reaction{
			10: {
				1: forum.ReactionLike,
				2: forum.ReactionLike,
				3: forum.ReactionDislike,
			},
		},
	}

	likes, dislikes := snap.ReactionCounts(10)
	if likes != 2 || dislikes != 1 {
		t.Fatalf("counts = %d likes, %d dislikes, want 2 and 1", likes, dislikes)
	}
}

func TestReactionFor_MissingPairIsEmpty(t *testing.T) {
	var snap Snapshot
	if got := snap.ReactionFor(10, 1); got != "" {
		t.Fatalf("ReactionFor = %q, want empty", got)
	}
}

func TestPostsByUser_PreservesCollectionOrder(t *testing.T) {
	snap := Snapshot{
		Posts: []forum.Post{
			{ID: 5, UserID: 1},
			{ID: 2, UserID: 2},
			{ID: 9, UserID: 1},
		},
	}

	got := snap.PostsByUser(1)
	if len(got) != 2 || got[0].ID != 5 || got[1].ID != 9 {
		t.Fatalf("PostsByUser(1) = %+v, want posts 5 then 9", got)
	}
}
