package forum

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return client
}

func TestFetchUsers_DerivesSingleAdminFromMinID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users" {
			t.Fatalf("path = %q, want %q", r.URL.Path, "/users")
		}
		_, _ = w.Write([]byte(`[{"id":3,"username":"c"},{"id":1,"username":"a"},{"id":5,"username":"e"}]`))
	}))

	users, err := client.FetchUsers(context.Background())
	if err != nil {
		t.Fatalf("FetchUsers returned error: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("len(users) = %d, want 3", len(users))
	}
	// Arrival order is preserved; only the min-id user is admin.
	if users[0].ID != 3 || users[1].ID != 1 || users[2].ID != 5 {
		t.Fatalf("user order = [%d %d %d], want [3 1 5]", users[0].ID, users[1].ID, users[2].ID)
	}
	admins := 0
	for _, u := range users {
		if u.IsAdmin {
			admins++
			if u.ID != 1 {
				t.Fatalf("admin id = %d, want 1", u.ID)
			}
		}
	}
	if admins != 1 {
		t.Fatalf("admin count = %d, want 1", admins)
	}
}

func TestFetchUsers_EmptySet(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))

	users, err := client.FetchUsers(context.Background())
	if err != nil {
		t.Fatalf("FetchUsers returned error: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("len(users) = %d, want 0", len(users))
	}
}

func TestDo_NonSuccessStatusYieldsRequestError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.FetchPosts(context.Background())
	if err == nil {
		t.Fatalf("FetchPosts returned nil error, want RequestError")
	}
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v, want *RequestError", err)
	}
	if reqErr.Status != http.StatusInternalServerError {
		t.Fatalf("Status = %d, want %d", reqErr.Status, http.StatusInternalServerError)
	}
	if reqErr.Path != "/posts" {
		t.Fatalf("Path = %q, want %q", reqErr.Path, "/posts")
	}
}

func TestDo_TransportFailureIsNotRequestError(t *testing.T) {
	client, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = client.FetchPosts(context.Background())
	if err == nil {
		t.Fatalf("FetchPosts returned nil error, want transport error")
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		t.Fatalf("transport failure surfaced as RequestError: %v", err)
	}
}

func TestCreatePost_SendsBodyAndDecodesAssignedID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method = %q, want POST", r.Method)
		}
		if r.URL.Path != "/posts" {
			t.Fatalf("path = %q, want %q", r.URL.Path, "/posts")
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("Content-Type = %q, want application/json", ct)
		}
		var body NewPost
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if body.Title != "T" || body.UserID != 1 {
			t.Fatalf("body = %+v, want title T, userId 1", body)
		}
		_, _ = w.Write([]byte(`{"id":101,"userId":1,"title":"T","body":"B"}`))
	}))

	created, err := client.CreatePost(context.Background(), NewPost{UserID: 1, Title: "T", Body: "B"})
	if err != nil {
		t.Fatalf("CreatePost returned error: %v", err)
	}
	if created.ID != 101 {
		t.Fatalf("created.ID = %d, want 101", created.ID)
	}
}

func TestFetchComments_UsesPerPostPath(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/posts/7/comments" {
			t.Fatalf("path = %q, want %q", r.URL.Path, "/posts/7/comments")
		}
		_, _ = w.Write([]byte(`[{"id":1,"postId":7,"name":"n","email":"e","body":"b"}]`))
	}))

	comments, err := client.FetchComments(context.Background(), 7)
	if err != nil {
		t.Fatalf("FetchComments returned error: %v", err)
	}
	if len(comments) != 1 || comments[0].PostID != 7 {
		t.Fatalf("comments = %+v, want one comment for post 7", comments)
	}
}

func TestDeletePost_UsesDeleteVerb(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
	}))

	if err := client.DeletePost(context.Background(), 9); err != nil {
		t.Fatalf("DeletePost returned error: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Fatalf("method = %q, want DELETE", gotMethod)
	}
	if gotPath != "/posts/9" {
		t.Fatalf("path = %q, want %q", gotPath, "/posts/9")
	}
}

func TestUpdateUser_PutsToUserPath(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Fatalf("method = %q, want PUT", r.Method)
		}
		if r.URL.Path != "/users/4" {
			t.Fatalf("path = %q, want %q", r.URL.Path, "/users/4")
		}
		_, _ = w.Write([]byte(`{"id":4,"name":"New Name"}`))
	}))

	updated, err := client.UpdateUser(context.Background(), User{ID: 4, Name: "New Name"})
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if updated.Name != "New Name" {
		t.Fatalf("updated.Name = %q, want %q", updated.Name, "New Name")
	}
}

func TestDo_MalformedJSONIsDecodeError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))

	_, err := client.FetchPosts(context.Background())
	if err == nil {
		t.Fatalf("FetchPosts returned nil error, want decode error")
	}
}

func TestParseBaseURL_EmptyErrors(t *testing.T) {
	if _, err := NewClient("   "); err == nil {
		t.Fatalf("NewClient returned nil error, want error for empty base url")
	}
}

func TestParseBaseURL_DefaultsScheme(t *testing.T) {
	client, err := NewClient("example.com")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if got := client.baseURL.Scheme; got != "https" {
		t.Fatalf("scheme = %q, want %q", got, "https")
	}
}
