package models

import "time"

// Credential is the single persisted login secret for the journal owner.
// Exactly one row exists once the owner has logged in for the first time;
// the hash is an opaque bcrypt digest, never the raw password.
type Credential struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	PasswordHash string    `gorm:"not null" json:"hash"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName overrides the GORM table name.
func (Credential) TableName() string { return "credentials" }
