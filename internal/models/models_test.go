package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserType(t *testing.T) {
	tests := []struct {
		in   string
		want UserType
		ok   bool
	}{
		{"freelancer", UserTypeFreelancer, true},
		{"client", UserTypeClient, true},
		{"admin", UserTypeAdmin, true},
		{" Freelancer ", UserTypeFreelancer, true},
		{"superuser", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		got, ok := ParseUserType(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseSkillLevel(t *testing.T) {
	for _, valid := range []string{"beginner", "intermediate", "advanced", "expert"} {
		_, ok := ParseSkillLevel(valid)
		assert.True(t, ok, valid)
	}
	_, ok := ParseSkillLevel("guru")
	assert.False(t, ok)
}

func TestParseSkillCategory(t *testing.T) {
	for _, valid := range []string{"programming", "design", "marketing", "writing", "other"} {
		_, ok := ParseSkillCategory(valid)
		assert.True(t, ok, valid)
	}
	_, ok := ParseSkillCategory("music")
	assert.False(t, ok)
}

// Every user type must have an entry in the dispatch table; only admin maps
// to no profile.
func TestProfileCreators(t *testing.T) {
	for _, ut := range []UserType{UserTypeFreelancer, UserTypeClient, UserTypeAdmin} {
		_, present := ProfileCreators[ut]
		require.True(t, present, "missing dispatch entry for %s", ut)
	}

	assert.NotNil(t, ProfileCreators[UserTypeFreelancer])
	assert.NotNil(t, ProfileCreators[UserTypeClient])
	assert.Nil(t, ProfileCreators[UserTypeAdmin])
}

func TestUserFullName(t *testing.T) {
	u := User{FirstName: "Ada", LastName: "Lovelace"}
	assert.Equal(t, "Ada Lovelace", u.FullName())

	u = User{FirstName: "Ada"}
	assert.Equal(t, "Ada", u.FullName())

	u = User{}
	assert.Equal(t, "", u.FullName())
}
