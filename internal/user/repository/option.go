package repository

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Name  string
	Email string
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-zero fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID    int64
	Email string
}

// UpdateUserOptions holds the full new state of an existing User.
type UpdateUserOptions struct {
	ID    int64
	Name  string
	Email string
}
