package ports

// Identity is the decoded claim set carried by a bearer token.
type Identity struct {
	AccountID string
	Role      string
}

// TokenIssuer mints and verifies signed, time-bound bearer tokens. Verify
// returns domain.ErrInvalidToken for malformed input, signature mismatch and
// expiry alike.
type TokenIssuer interface {
	Issue(accountID, role string) (string, error)
	Verify(token string) (Identity, error)
}
