package models

import "gorm.io/gorm"

// ProfileCreator provisions the role-specific profile row for a freshly
// registered user, inside the same transaction that created the user.
type ProfileCreator func(tx *gorm.DB, u *User) error

// ProfileCreators maps each user type to its companion profile. Admin maps to
// nil: admin accounts get no profile row. Adding a user type is one entry here
// plus its creator.
var ProfileCreators = map[UserType]ProfileCreator{
	UserTypeFreelancer: createFreelancerProfile,
	UserTypeClient:     createClientProfile,
	UserTypeAdmin:      nil,
}

func createFreelancerProfile(tx *gorm.DB, u *User) error {
	return tx.Create(&FreelancerProfile{UserID: u.ID, IsActive: true}).Error
}

func createClientProfile(tx *gorm.DB, u *User) error {
	return tx.Create(&ClientProfile{UserID: u.ID}).Error
}
