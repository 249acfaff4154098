package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FreelancerSkill links a freelancer to a catalog skill with a graded level.
// A freelancer lists a given skill at most once.
type FreelancerSkill struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FreelancerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_freelancer_skill" json:"freelancer_id"`
	SkillID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_freelancer_skill" json:"skill_id"`

	Level           SkillLevel `gorm:"type:varchar(20);not null" json:"level"`
	YearsExperience int        `gorm:"default:0" json:"years_experience"` // 0..50

	CreatedAt time.Time `json:"created_at"`

	Skill *Skill `gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE" json:"skill,omitempty"`
}

func (fs *FreelancerSkill) BeforeCreate(tx *gorm.DB) (err error) {
	if fs.ID == uuid.Nil {
		fs.ID = uuid.New()
	}
	return
}
