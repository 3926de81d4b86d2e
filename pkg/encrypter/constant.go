package encrypter

import "golang.org/x/crypto/bcrypt"

const (
	MinCost     = bcrypt.MinCost
	MaxCost     = bcrypt.MaxCost
	DefaultCost = 10

	// bcrypt ignores input past this length.
	maxPasswordBytes = 72
)
