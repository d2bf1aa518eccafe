// Package session holds the persisted login identity: the bearer token plus
// the username and wallet balance the backend returned with it.
package session

// Session is the client-side login state. A zero Token means the user is
// browsing as a guest.
type Session struct {
	Token    string  `json:"token"`
	Username string  `json:"username"`
	Balance  float64 `json:"balance"`
}

// SignedIn reports whether a credential is present.
func (s Session) SignedIn() bool {
	return s.Token != ""
}

// Store persists the session between runs.
type Store interface {
	// Load returns the stored session, or a zero Session when none exists.
	Load() (Session, error)
	Save(Session) error
	Clear() error
}
