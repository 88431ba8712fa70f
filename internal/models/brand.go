package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Brand struct {
	ID           gocql.UUID `json:"id" db:"brand_id"`
	Name         string     `json:"name" db:"name"`
	Slug         string     `json:"slug" db:"slug"`
	Description  string     `json:"description,omitempty" db:"description"`
	ContactEmail string     `json:"contact_email,omitempty" db:"contact_email"`
	LogoURL      string     `json:"logo_url,omitempty" db:"logo_url"`
	CreatedAt    *time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}
