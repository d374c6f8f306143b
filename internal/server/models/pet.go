package models

import "time"

// Pet is a registered pet; Image holds the raw (decoded) picture bytes.
type Pet struct {
	ID        int64
	Name      string
	Image     []byte
	UserID    int64
	CreatedAt time.Time
}
