// Package auth holds the resolved caller identity and the authorization
// decisions consulted before mutating operations. The identity is decided
// once per request by the JWT middleware; services and handlers only read it.
package auth

// Identity is the authenticated caller: subject id plus role flags.
// A nil *Identity means the request carried no valid credentials.
type Identity struct {
	UserID  uint
	Email   string
	IsAdmin bool
}
