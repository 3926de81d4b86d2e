package repository

type CreateOptions struct {
	Email        string
	PasswordHash string
	Name         string
	Role         string
}

type ListOptions struct {
	Limit  int
	Offset int
}
