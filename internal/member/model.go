package member

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Member is a person in the band roster.
type Member struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"size:150;not null;index" json:"name"`
	RoleInBand     string    `gorm:"size:100;not null" json:"role_in_band"`
	Bio            *string   `gorm:"type:text" json:"bio,omitempty"`
	PhotoURL       *string   `gorm:"size:500" json:"photo_url,omitempty"`
	Instrument     *string   `gorm:"size:100" json:"instrument,omitempty"`
	IsActiveMember bool      `gorm:"not null;index" json:"is_active_member"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type CreateMemberRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=150" example:"Jonny"`
	RoleInBand     string  `json:"role_in_band" binding:"required,min=1,max=100" example:"Lead guitar"`
	Bio            *string `json:"bio"`
	PhotoURL       *string `json:"photo_url" binding:"omitempty,url"`
	Instrument     *string `json:"instrument" binding:"omitempty,max=100" example:"Telecaster"`
	IsActiveMember *bool   `json:"is_active_member"`
}

type UpdateMemberRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=1,max=150"`
	RoleInBand     *string `json:"role_in_band" binding:"omitempty,min=1,max=100"`
	Bio            *string `json:"bio"`
	PhotoURL       *string `json:"photo_url" binding:"omitempty,url"`
	Instrument     *string `json:"instrument" binding:"omitempty,max=100"`
	IsActiveMember *bool   `json:"is_active_member"`
}

func (r UpdateMemberRequest) changes() map[string]any {
	updates := map[string]any{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.RoleInBand != nil {
		updates["role_in_band"] = *r.RoleInBand
	}
	if r.Bio != nil {
		updates["bio"] = *r.Bio
	}
	if r.PhotoURL != nil {
		updates["photo_url"] = *r.PhotoURL
	}
	if r.Instrument != nil {
		updates["instrument"] = *r.Instrument
	}
	if r.IsActiveMember != nil {
		updates["is_active_member"] = *r.IsActiveMember
	}
	return updates
}

type ListFilter struct {
	Name       string
	RoleInBand string
	Instrument string
	Active     *bool
	Page       int
	Limit      int
}

type PaginatedMembers struct {
	Data       []Member `json:"data"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalPages int      `json:"total_pages"`
}
