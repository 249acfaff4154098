package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FreelancerProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	Bio        string         `gorm:"type:varchar(1000)" json:"bio"`
	AvatarURL  string         `gorm:"type:text" json:"avatar"`
	AvatarMeta datatypes.JSON `json:"avatar_meta,omitempty"` // final dimensions + size, written by the resize step

	PortfolioURL string `gorm:"type:text" json:"portfolio_url"`
	LinkedinURL  string `gorm:"type:text" json:"linkedin_url"`
	GithubURL    string `gorm:"type:text" json:"github_url"`

	Title           string   `gorm:"type:varchar(100)" json:"title"` // e.g. "Full Stack Developer"
	HourlyRate      *float64 `gorm:"type:decimal(10,2)" json:"hourly_rate"`
	ExperienceYears *int     `json:"experience_years"` // 0..50
	Availability    string   `gorm:"type:varchar(50)" json:"availability"`

	// Metrics. Mutated only by internal business logic, never by client
	// update payloads.
	Rating            float64 `gorm:"default:0" json:"rating"` // 0..5
	TotalSales        float64 `gorm:"type:decimal(12,2);default:0" json:"total_sales"`
	CompletedProjects uint    `gorm:"default:0" json:"completed_projects"`

	IsVerified bool `gorm:"default:false" json:"is_verified"`
	IsActive   bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Skills []FreelancerSkill `gorm:"foreignKey:FreelancerID;constraint:OnDelete:CASCADE" json:"skills,omitempty"`
}

func (p *FreelancerProfile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
