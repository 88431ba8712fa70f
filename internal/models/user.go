package models

import "time"

type User struct {
	ID        string     `json:"user_id"`
	Name      string     `json:"name,omitempty"`
	Email     string     `json:"email"`
	Role      string     `json:"role,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Address   *string    `json:"address,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
