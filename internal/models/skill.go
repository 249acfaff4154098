package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SkillCategory string

const (
	SkillCategoryProgramming SkillCategory = "programming"
	SkillCategoryDesign      SkillCategory = "design"
	SkillCategoryMarketing   SkillCategory = "marketing"
	SkillCategoryWriting     SkillCategory = "writing"
	SkillCategoryOther       SkillCategory = "other"
)

func ParseSkillCategory(s string) (SkillCategory, bool) {
	switch SkillCategory(strings.ToLower(strings.TrimSpace(s))) {
	case SkillCategoryProgramming:
		return SkillCategoryProgramming, true
	case SkillCategoryDesign:
		return SkillCategoryDesign, true
	case SkillCategoryMarketing:
		return SkillCategoryMarketing, true
	case SkillCategoryWriting:
		return SkillCategoryWriting, true
	case SkillCategoryOther:
		return SkillCategoryOther, true
	}
	return "", false
}

// SkillLevel is the single proficiency scale shared by every entity that
// grades a skill.
type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "beginner"
	SkillLevelIntermediate SkillLevel = "intermediate"
	SkillLevelAdvanced     SkillLevel = "advanced"
	SkillLevelExpert       SkillLevel = "expert"
)

func ParseSkillLevel(s string) (SkillLevel, bool) {
	switch SkillLevel(strings.ToLower(strings.TrimSpace(s))) {
	case SkillLevelBeginner:
		return SkillLevelBeginner, true
	case SkillLevelIntermediate:
		return SkillLevelIntermediate, true
	case SkillLevelAdvanced:
		return SkillLevelAdvanced, true
	case SkillLevelExpert:
		return SkillLevelExpert, true
	}
	return "", false
}

// Skill is reference data, administered independently of any freelancer.
type Skill struct {
	ID       uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Category SkillCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	Icon     string        `gorm:"type:varchar(100)" json:"icon"`
	IsActive bool          `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
