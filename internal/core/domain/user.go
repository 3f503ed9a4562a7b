package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("username already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid username or password")

// User models a registered account. Links holds the ids of the short
// URLs this user created, in creation order.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Links        []string  `json:"links"`
	CreatedAt    time.Time `json:"created_at"`
}
