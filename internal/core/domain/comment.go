package domain

// Comment is a remark left on a provider by a circle member. Comments
// are fetched in one batch for the visible page and attached to cards.
type Comment struct {
	// ID is the comment's server-assigned id.
	ID string `json:"id"`

	// ServiceID links to the provider the comment is about.
	ServiceID string `json:"service_id"`

	// UserName is the commenter's display name.
	UserName string `json:"user_name"`

	// Content is the comment text.
	Content string `json:"content"`

	// CreatedAt is the server timestamp, passed through for display.
	CreatedAt string `json:"created_at"`
}
