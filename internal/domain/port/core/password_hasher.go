package core

// PasswordHasher produces and checks one-way password hashes.
// The plaintext is never stored anywhere.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
