package models

// Session is the signed-in state of the client: who the actor is and the
// credential to present to the server.
type Session struct {
	UserID string
	Email  string
	Token  string
}

// AuthState is a single event of the client sign-in/sign-out stream.
// A nil Session means the user signed out.
type AuthState struct {
	Session *Session
}

// SignedIn reports whether the state carries a session.
func (s AuthState) SignedIn() bool {
	return s.Session != nil
}
