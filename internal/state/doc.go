// Package state holds the central store for the bulletin client.
//
// # Overview
//
// The Store merges two sources of truth: entity collections fetched from
// the remote forum API (users, posts, per-post comments) and local-only
// overlays that the server never sees (favorites, like/dislike reactions,
// locally-authored comments, the current-user pointer). The UI observes the
// merged result exclusively through Snapshot values and mutates it
// exclusively through Store methods.
//
// # Lifecycles
//
// Three independent lifecycles run over the same state:
//
//   - Bulk load: LoadAll replaces the user and post collections wholesale.
//     It is triggered once at startup and again only on user-initiated
//     reload. Failures set a readable message and keep prior collections.
//   - Entity mutation: each mutator applies synchronously to in-memory
//     state. Mutations that touch the remote source (AddPost, DeletePost,
//     UpdateUser) wait for the remote outcome first, so a rejected call
//     never leaves local state ahead of the server.
//   - Comment lazy-load: Comments fetches a post's comments on first
//     request and serves the cached set for the rest of the store's
//     lifetime. Concurrent first requests share one fetch.
//
// # Snapshots
//
// Snapshot returns a deep copy with a monotonically increasing Version.
// Consumers treat snapshots as replaced, never mutated: comparing Version
// is sufficient to decide whether anything changed. Derivations (ranked
// post order, reaction tallies, favorite lookups) are pure functions in
// derive.go and operate on the snapshot alone.
//
// # Concurrency
//
// A single mutex guards all state, making every mutator one atomic
// transition. Remote calls are made outside the lock, so mutations may
// interleave around a suspended call; DeletePost deliberately captures
// ownership and the acting user before its remote round trip.
//
// # Persistence
//
// Only the favorite set is persisted, through the FavoritesCache seeded at
// construction and rewritten on every favorite change. Everything else is
// process-local; remote writes are best-effort and not assumed durable.
package state
