package model

// User is a registered ShareIt member. Email is unique across users.
type User struct {
	ID    int64
	Name  string
	Email string
}
