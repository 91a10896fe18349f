package forum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API defines the remote operations the store depends on.
// This interface is implemented by *Client and can be used for testing.
type API interface {
	FetchUsers(ctx context.Context) ([]User, error)
	FetchPosts(ctx context.Context) ([]Post, error)
	CreatePost(ctx context.Context, post NewPost) (Post, error)
	FetchComments(ctx context.Context, postID int) ([]Comment, error)
	CreateComment(ctx context.Context, comment NewComment) (Comment, error)
	DeletePost(ctx context.Context, postID int) error
	UpdateUser(ctx context.Context, user User) (User, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// RequestError reports a completed request that the server answered with a
// non-success status.
type RequestError struct {
	Status int
	Path   string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Status)
}

// Client talks to the forum REST API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "bulletin/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base URL.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchUsers retrieves all users and derives the admin flag: exactly one
// user is admin, the one with the numerically smallest id.
func (c *Client) FetchUsers(ctx context.Context) ([]User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var users []User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	if len(users) > 0 {
		minID := users[0].ID
		for _, u := range users[1:] {
			if u.ID < minID {
				minID = u.ID
			}
		}
		for i := range users {
			users[i].IsAdmin = users[i].ID == minID
		}
	}
	return users, nil
}

// FetchPosts retrieves the complete post collection.
func (c *Client) FetchPosts(ctx context.Context) ([]Post, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var posts []Post
	if err := c.do(ctx, http.MethodGet, "/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost submits a new post and returns it with the server-assigned id.
func (c *Client) CreatePost(ctx context.Context, post NewPost) (Post, error) {
	if c == nil {
		return Post{}, fmt.Errorf("client is nil")
	}
	var created Post
	if err := c.do(ctx, http.MethodPost, "/posts", post, &created); err != nil {
		return Post{}, err
	}
	return created, nil
}

// FetchComments retrieves the comments attached to one post.
func (c *Client) FetchComments(ctx context.Context, postID int) ([]Comment, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var comments []Comment
	path := fmt.Sprintf("/posts/%d/comments", postID)
	if err := c.do(ctx, http.MethodGet, path, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment submits a new comment for the post named in it.
func (c *Client) CreateComment(ctx context.Context, comment NewComment) (Comment, error) {
	if c == nil {
		return Comment{}, fmt.Errorf("client is nil")
	}
	var created Comment
	if err := c.do(ctx, http.MethodPost, "/comments", comment, &created); err != nil {
		return Comment{}, err
	}
	return created, nil
}

// DeletePost removes a post on the server. The response body is ignored.
func (c *Client) DeletePost(ctx context.Context, postID int) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d", postID), nil, nil)
}

// UpdateUser replaces a user profile on the server and returns the stored copy.
func (c *Client) UpdateUser(ctx context.Context, user User) (User, error) {
	if c == nil {
		return User{}, fmt.Errorf("client is nil")
	}
	var updated User
	path := fmt.Sprintf("/users/%d", user.ID)
	if err := c.do(ctx, http.MethodPut, path, user, &updated); err != nil {
		return User{}, err
	}
	return updated, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RequestError{Status: resp.StatusCode, Path: path}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("api base url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
