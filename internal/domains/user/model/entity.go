package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity owned by the auth subsystem. Other entities
// reference users, they never own them.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
