package forum

// Address is the postal address attached to a user profile.
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite,omitempty"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

// User mirrors the /users resource. IsAdmin is never sent by the server;
// FetchUsers derives it from the loaded set (lowest id wins).
type User struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	Website  string   `json:"website,omitempty"`
	Address  *Address `json:"address,omitempty"`
	IsAdmin  bool     `json:"-"`
}

// Post mirrors the /posts resource. Priority is a local ranking hint the
// admin can set; zero means unranked and is never sent to the server.
type Post struct {
	ID       int    `json:"id"`
	UserID   int    `json:"userId"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Priority int    `json:"-"`
}

// NewPost carries the fields of a post before the server assigns an id.
type NewPost struct {
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Comment mirrors the /posts/{id}/comments resource. Locally-added
// comments get a timestamp-based id instead of a server one.
type Comment struct {
	ID     int    `json:"id"`
	PostID int    `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// NewComment carries the fields of a comment before an id is assigned.
type NewComment struct {
	PostID int    `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// Reaction is a per-(post,user) vote. The empty string means "no reaction"
// and is used to clear a stored value.
type Reaction string

const (
	ReactionLike    Reaction = "like"
	ReactionDislike Reaction = "dislike"
)
