package handlers

import (
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freelancehub/api/internal/apperr"
	"github.com/freelancehub/api/internal/models"
)

// maxSearchSkills caps the skills_list in search results: a summary, not the
// full taxonomy of a freelancer.
const maxSearchSkills = 5

type SearchHandler struct {
	DB *gorm.DB
}

func NewSearchHandler(db *gorm.DB) *SearchHandler {
	return &SearchHandler{DB: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards in user-supplied search text.
func escapeLike(s string) string { return likeEscaper.Replace(s) }

type freelancerRow struct {
	ID                uuid.UUID
	FirstName         string
	LastName          string
	Title             string
	Bio               string
	AvatarURL         string
	HourlyRate        *float64
	Rating            float64
	CompletedProjects uint
	IsVerified        bool
}

// List returns the lightweight search projection: one row per freelancer
// with at most five skill names, a much cheaper shape than the full profile.
func (h *SearchHandler) List(c *fiber.Ctx) error {
	// ===== FILTER =====
	qSearch := c.Query("q")
	minRate := c.QueryFloat("min_rate", 0)
	maxRate := c.QueryFloat("max_rate", 0)
	verifiedOnly := c.QueryBool("verified", false)
	sortParam := c.Query("sort") // rating | rate_low | rate_high | latest

	var category models.SkillCategory
	if raw := c.Query("category"); raw != "" {
		cat, ok := models.ParseSkillCategory(raw)
		if !ok {
			return respondErr(c, apperr.Validation("unknown skill category"))
		}
		category = cat
	}

	base := func() *gorm.DB {
		q := h.DB.
			Table("freelancer_profiles").
			Joins("JOIN users ON users.id = freelancer_profiles.user_id").
			Where("freelancer_profiles.is_active = ?", true).
			Where("users.is_active = ?", true)

		if qSearch != "" {
			needle := "%" + escapeLike(strings.ToLower(qSearch)) + "%"
			q = q.Where("LOWER(freelancer_profiles.title) LIKE ? OR LOWER(freelancer_profiles.bio) LIKE ?", needle, needle)
		}
		if minRate > 0 {
			q = q.Where("freelancer_profiles.hourly_rate >= ?", minRate)
		}
		if maxRate > 0 {
			q = q.Where("freelancer_profiles.hourly_rate <= ?", maxRate)
		}
		if verifiedOnly {
			q = q.Where("freelancer_profiles.is_verified = ?", true)
		}
		if category != "" {
			q = q.Where(`freelancer_profiles.id IN (
				SELECT freelancer_skills.freelancer_id
				FROM freelancer_skills
				JOIN skills ON skills.id = freelancer_skills.skill_id
				WHERE skills.category = ?
			)`, category)
		}
		return q
	}

	q := base().Select(`
		freelancer_profiles.id,
		users.first_name,
		users.last_name,
		freelancer_profiles.title,
		freelancer_profiles.bio,
		freelancer_profiles.avatar_url,
		freelancer_profiles.hourly_rate,
		freelancer_profiles.rating,
		freelancer_profiles.completed_projects,
		freelancer_profiles.is_verified
	`)

	// ===== SORTING =====
	switch sortParam {
	case "rate_low":
		q = q.Order("freelancer_profiles.hourly_rate ASC")
	case "rate_high":
		q = q.Order("freelancer_profiles.hourly_rate DESC")
	case "latest":
		q = q.Order("freelancer_profiles.created_at DESC")
	default:
		q = q.Order("freelancer_profiles.rating DESC")
	}

	// ===== PAGINATION =====
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit

	var rows []freelancerRow
	if err := q.Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return fail500(c, "failed to search freelancers")
	}

	var totalItems int64
	if err := base().Count(&totalItems).Error; err != nil {
		return fail500(c, "failed to count freelancers")
	}

	skillNames, err := h.skillNamesFor(rows)
	if err != nil {
		return fail500(c, "failed to load skills")
	}

	items := make([]fiber.Map, 0, len(rows))
	for _, r := range rows {
		items = append(items, fiber.Map{
			"id":                 r.ID,
			"user_name":          strings.TrimSpace(r.FirstName + " " + r.LastName),
			"title":              r.Title,
			"bio":                r.Bio,
			"avatar":             r.AvatarURL,
			"hourly_rate":        r.HourlyRate,
			"rating":             r.Rating,
			"completed_projects": r.CompletedProjects,
			"skills_list":        skillNames[r.ID],
			"is_verified":        r.IsVerified,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
		"meta": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total_items": totalItems,
			"total_pages": int(math.Ceil(float64(totalItems) / float64(limit))),
		},
	})
}

type skillNameRow struct {
	FreelancerID uuid.UUID
	Name         string
}

// skillNamesFor fetches skill names for the page of freelancers in one query
// and truncates each list to maxSearchSkills.
func (h *SearchHandler) skillNamesFor(rows []freelancerRow) (map[uuid.UUID][]string, error) {
	names := make(map[uuid.UUID][]string, len(rows))
	if len(rows) == 0 {
		return names, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
		names[r.ID] = []string{}
	}

	var linked []skillNameRow
	err := h.DB.
		Table("freelancer_skills").
		Select("freelancer_skills.freelancer_id, skills.name").
		Joins("JOIN skills ON skills.id = freelancer_skills.skill_id").
		Where("freelancer_skills.freelancer_id IN ?", ids).
		Order("freelancer_skills.created_at").
		Scan(&linked).Error
	if err != nil {
		return nil, err
	}

	for _, row := range linked {
		if len(names[row.FreelancerID]) < maxSearchSkills {
			names[row.FreelancerID] = append(names[row.FreelancerID], row.Name)
		}
	}
	return names, nil
}
