package client

// Session holds the current identity and its bearer credential. Screens
// receive it explicitly; logging out clears it deterministically.
type Session struct {
	token string
	user  *User
}

func NewSession() *Session {
	return &Session{}
}

// Begin stores the credential and identity returned by login or signup.
func (s *Session) Begin(token string, user *User) {
	s.token = token
	s.user = user
}

// Token returns the bearer credential, empty when logged out.
func (s *Session) Token() string {
	return s.token
}

// CurrentUser returns the logged-in user, nil when logged out.
func (s *Session) CurrentUser() *User {
	return s.user
}

// Authenticated reports whether a credential is held.
func (s *Session) Authenticated() bool {
	return s.token != ""
}

// Logout clears the credential and identity.
func (s *Session) Logout() {
	s.token = ""
	s.user = nil
}
