package models

// Credentials are the login inputs sent to the remote service. Identity
// management itself lives on the server; the client only ferries these.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Session is the authenticated client session returned by a successful
// login.
type Session struct {
	// Token is the bearer token attached to every authenticated request.
	Token string `json:"-"`

	// Principal is the opaque identity that scopes all locally queued and
	// cached data. Extracted from the token's subject claim.
	Principal string `json:"principal"`
}
