package domain

// Identity is the signed-in viewer. The Trust Circle API scopes every
// read to the viewer's circle and every mutation to the viewer, so the
// identity travels with each request.
type Identity struct {
	// UserID is the viewer's server-assigned id.
	UserID string

	// Email is the viewer's email address.
	Email string

	// FirstName is the viewer's first name.
	FirstName string

	// LastName is the viewer's last name.
	LastName string
}

// HasUser reports whether a usable identity is present. Actions that
// mutate server state require one.
func (i Identity) HasUser() bool {
	return i.UserID != "" && i.Email != ""
}
