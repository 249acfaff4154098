package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ClientProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	CompanyName    string `gorm:"type:varchar(100)" json:"company_name"`
	CompanyWebsite string `gorm:"type:text" json:"company_website"`

	Bio        string         `gorm:"type:varchar(500)" json:"bio"`
	AvatarURL  string         `gorm:"type:text" json:"avatar"`
	AvatarMeta datatypes.JSON `json:"avatar_meta,omitempty"`

	// Metrics, system-computed.
	TotalSpent     float64 `gorm:"type:decimal(12,2);default:0" json:"total_spent"`
	ProjectsPosted uint    `gorm:"default:0" json:"projects_posted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *ClientProfile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
