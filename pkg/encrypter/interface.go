package encrypter

// Encrypter hashes and checks account passwords.
// Implementations are safe for concurrent use.
type Encrypter interface {
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, hash string) bool
}

// New creates a bcrypt Encrypter. A cost outside bcrypt's range falls back to DefaultCost.
func New(cost int) Encrypter {
	if cost < MinCost || cost > MaxCost {
		cost = DefaultCost
	}
	return &implEncrypter{cost: cost}
}
