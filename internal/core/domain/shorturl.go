package domain

import (
	"errors"
	"time"
)

var ErrLinkNotFound = errors.New("short url not found")
var ErrCodeTaken = errors.New("short code already in use")
var ErrForbidden = errors.New("access forbidden")

// ShortURL maps a short alias to its destination. OwnerID references the
// user whose session created the link; every link has exactly one owner.
type ShortURL struct {
	ID        string    `json:"id"`
	ShortCode string    `json:"short"`
	TargetURL string    `json:"full"`
	Clicks    int64     `json:"clicks"`
	CreatedAt time.Time `json:"date"`
	OwnerID   string    `json:"owner"`
}
