package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an application account. Registration and login live outside this
// service; users are resolved by e-mail (payment webhook) or id.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
