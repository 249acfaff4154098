package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string    { return &s }
func floatp(f float64) *float64 { return &f }
func intp(i int) *int          { return &i }

func TestFreelancerUpdatesMapsWritableFields(t *testing.T) {
	req := freelancerUpdateReq{
		Bio:             strp("  Backend developer.  "),
		PortfolioURL:    strp("https://me.dev"),
		Title:           strp("Go Developer"),
		HourlyRate:      floatp(45.50),
		ExperienceYears: intp(7),
		Availability:    strp("part-time"),
	}

	updates, errs := freelancerUpdates(req)
	require.Empty(t, errs)

	assert.Equal(t, "Backend developer.", updates["bio"])
	assert.Equal(t, "https://me.dev", updates["portfolio_url"])
	assert.Equal(t, "Go Developer", updates["title"])
	assert.Equal(t, 45.50, updates["hourly_rate"])
	assert.Equal(t, 7, updates["experience_years"])
	assert.Equal(t, "part-time", updates["availability"])

	// Metric columns never come from a client payload.
	for _, col := range []string{"rating", "total_sales", "completed_projects", "is_verified"} {
		_, present := updates[col]
		assert.False(t, present, col)
	}
}

func TestFreelancerUpdatesSkipsAbsentFields(t *testing.T) {
	updates, errs := freelancerUpdates(freelancerUpdateReq{Title: strp("Designer")})
	require.Empty(t, errs)
	require.Len(t, updates, 1)
	assert.Equal(t, "Designer", updates["title"])
}

func TestFreelancerUpdatesValidation(t *testing.T) {
	longBio := make([]byte, 1001)
	for i := range longBio {
		longBio[i] = 'a'
	}

	req := freelancerUpdateReq{
		Bio:             strp(string(longBio)),
		PortfolioURL:    strp("not-a-url"),
		HourlyRate:      floatp(-1),
		ExperienceYears: intp(51),
	}

	updates, errs := freelancerUpdates(req)
	assert.Empty(t, updates)
	assert.Contains(t, errs, "bio")
	assert.Contains(t, errs, "portfolio_url")
	assert.Contains(t, errs, "hourly_rate")
	assert.Contains(t, errs, "experience_years")
}

func TestFreelancerUpdatesAcceptsMultibyteBioAtLimit(t *testing.T) {
	// 1000 characters, 2000 bytes: the cap is on characters
	bio := strings.Repeat("é", 1000)

	updates, errs := freelancerUpdates(freelancerUpdateReq{Bio: &bio})
	require.Empty(t, errs)
	assert.Equal(t, bio, updates["bio"])
}

func TestFreelancerUpdatesYearsBoundaries(t *testing.T) {
	for _, years := range []int{0, 50} {
		updates, errs := freelancerUpdates(freelancerUpdateReq{ExperienceYears: intp(years)})
		require.Empty(t, errs, "years=%d", years)
		assert.Equal(t, years, updates["experience_years"])
	}
}

func TestClientUpdatesMapsWritableFields(t *testing.T) {
	req := clientUpdateReq{
		CompanyName:    strp(" Acme Corp "),
		CompanyWebsite: strp("https://acme.example"),
		Bio:            strp("We hire a lot."),
	}

	updates, errs := clientUpdates(req)
	require.Empty(t, errs)
	assert.Equal(t, "Acme Corp", updates["company_name"])
	assert.Equal(t, "https://acme.example", updates["company_website"])
	assert.Equal(t, "We hire a lot.", updates["bio"])

	for _, col := range []string{"total_spent", "projects_posted"} {
		_, present := updates[col]
		assert.False(t, present, col)
	}
}

func TestClientUpdatesValidation(t *testing.T) {
	longBio := make([]byte, 501)
	for i := range longBio {
		longBio[i] = 'b'
	}

	updates, errs := clientUpdates(clientUpdateReq{
		CompanyWebsite: strp("ftp://acme.example"),
		Bio:            strp(string(longBio)),
	})
	assert.Empty(t, updates)
	assert.Contains(t, errs, "company_website")
	assert.Contains(t, errs, "bio")
}

func TestClientUpdatesClearsOptionalField(t *testing.T) {
	updates, errs := clientUpdates(clientUpdateReq{CompanyWebsite: strp("")})
	require.Empty(t, errs)
	assert.Equal(t, "", updates["company_website"])
}
