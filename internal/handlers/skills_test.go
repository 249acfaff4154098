package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillListOrderedByCategoryAndName(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "skills" WHERE is_active = \$1 ORDER BY category, name`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "icon", "is_active"}).
			AddRow(uuid.NewString(), "Figma", "design", "", true).
			AddRow(uuid.NewString(), "Go", "programming", "", true))

	app := fiber.New()
	app.Get("/api/skills", NewSkillHandler(db).List)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/skills", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decodeBody(t, resp)
	assert.Equal(t, true, out["success"])
	data := out["data"].([]any)
	require.Len(t, data, 2)
	first := data[0].(map[string]any)
	assert.Equal(t, "Figma", first["name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillListFiltersByCategory(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "skills" WHERE is_active = \$1 AND category = \$2 ORDER BY category, name`).
		WithArgs(true, "programming").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "icon", "is_active"}).
			AddRow(uuid.NewString(), "Go", "programming", "", true))

	app := fiber.New()
	app.Get("/api/skills", NewSkillHandler(db).List)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/skills?category=programming", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillListRejectsUnknownCategory(t *testing.T) {
	db, _ := newMockDB(t)
	app := fiber.New()
	app.Get("/api/skills", NewSkillHandler(db).List)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/skills?category=cooking", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "unknown skill category", decodeBody(t, resp)["message"])
}

func TestSkillCreateValidation(t *testing.T) {
	db, _ := newMockDB(t)
	app := fiber.New()
	app.Post("/api/admin/skills", NewSkillHandler(db).Create)

	resp := postJSON(t, app, "/api/admin/skills", map[string]any{
		"name":     "",
		"category": "cooking",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	fields := decodeBody(t, resp)["errors"].(map[string]any)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "category")
}

func TestAddFreelancerSkillValidation(t *testing.T) {
	db, _ := newMockDB(t)
	h := NewSkillHandler(db)

	app := fiber.New()
	app.Post("/api/freelancers/me/skills", func(c *fiber.Ctx) error {
		c.Locals("userId", uuid.NewString())
		return h.AddFreelancerSkill(c)
	})

	resp := postJSON(t, app, "/api/freelancers/me/skills", map[string]any{
		"skill_id":         "not-a-uuid",
		"level":            "guru",
		"years_experience": 51,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	fields := decodeBody(t, resp)["errors"].(map[string]any)
	assert.Contains(t, fields, "skill_id")
	assert.Contains(t, fields, "level")
	assert.Contains(t, fields, "years_experience")
}

func TestAddFreelancerSkillDuplicateConflict(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewSkillHandler(db)

	userID := uuid.New()
	profileID := uuid.New()
	skillID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "freelancer_profiles" WHERE user_id = \$1`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(profileID, userID))
	mock.ExpectQuery(`SELECT \* FROM "skills" WHERE id = \$1`).
		WithArgs(skillID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "is_active"}).
			AddRow(skillID, "Go", "programming", true))
	// the pair already exists, so no insert is attempted
	mock.ExpectQuery(`SELECT \* FROM "freelancer_skills" WHERE freelancer_id = \$1 AND skill_id = \$2`).
		WithArgs(profileID, skillID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "freelancer_id", "skill_id", "level"}).
			AddRow(uuid.NewString(), profileID, skillID, "expert"))

	app := fiber.New()
	app.Post("/api/freelancers/me/skills", func(c *fiber.Ctx) error {
		c.Locals("userId", userID.String())
		return h.AddFreelancerSkill(c)
	})

	resp := postJSON(t, app, "/api/freelancers/me/skills", map[string]any{
		"skill_id":         skillID.String(),
		"level":            "expert",
		"years_experience": 3,
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	out := decodeBody(t, resp)
	assert.Equal(t, false, out["success"])
	fields := out["errors"].(map[string]any)
	assert.Contains(t, fields, "skill_id")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFreelancerSkillUnauthenticated(t *testing.T) {
	db, _ := newMockDB(t)
	h := NewSkillHandler(db)

	app := fiber.New()
	app.Post("/api/freelancers/me/skills", h.AddFreelancerSkill)

	resp := postJSON(t, app, "/api/freelancers/me/skills", map[string]any{
		"skill_id": uuid.NewString(),
		"level":    "expert",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
