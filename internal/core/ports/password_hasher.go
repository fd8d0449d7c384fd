package ports

// PasswordHasher produces and checks salted, adaptive-cost one-way hashes.
// Implementations must compare in constant time and never expose the
// plaintext beyond the call.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
