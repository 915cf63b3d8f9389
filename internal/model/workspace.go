package model

import "time"

type Workspace struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	ImageURL    *string   `json:"image_url,omitempty"`
	InviteCode  string    `json:"invite_code"`
	OwnerUserID int64     `json:"owner_user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
