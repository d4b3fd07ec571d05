package model

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin is the only role the dashboard cares about.
const RoleAdmin = "admin"

type AdminAccount struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
