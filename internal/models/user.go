package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserType string

const (
	UserTypeFreelancer UserType = "freelancer"
	UserTypeClient     UserType = "client"
	UserTypeAdmin      UserType = "admin"
)

// ParseUserType validates the registration discriminator. The set is closed:
// anything outside it is rejected, not defaulted.
func ParseUserType(s string) (UserType, bool) {
	switch UserType(strings.ToLower(strings.TrimSpace(s))) {
	case UserTypeFreelancer:
		return UserTypeFreelancer, true
	case UserTypeClient:
		return UserTypeClient, true
	case UserTypeAdmin:
		return UserTypeAdmin, true
	}
	return "", false
}

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Username  string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	FirstName string    `gorm:"type:varchar(150)" json:"first_name"`
	LastName  string    `gorm:"type:varchar(150)" json:"last_name"`
	Phone     string    `gorm:"type:varchar(15)" json:"phone,omitempty"`

	PasswordHash string   `gorm:"not null" json:"-"`
	UserType     UserType `gorm:"type:varchar(20);not null;index" json:"user_type"`
	IsVerified   bool     `gorm:"default:false" json:"is_verified"`
	IsActive     bool     `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FreelancerProfile *FreelancerProfile `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"freelancer_profile,omitempty"`
	ClientProfile     *ClientProfile     `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"client_profile,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
