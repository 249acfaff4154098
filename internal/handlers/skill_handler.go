package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freelancehub/api/internal/apperr"
	"github.com/freelancehub/api/internal/models"
	"github.com/freelancehub/api/internal/validate"
)

type SkillHandler struct {
	DB *gorm.DB
}

func NewSkillHandler(db *gorm.DB) *SkillHandler {
	return &SkillHandler{DB: db}
}

// List returns active catalog skills ordered by (category, name), optionally
// narrowed to one category.
func (h *SkillHandler) List(c *fiber.Ctx) error {
	q := h.DB.Where("is_active = ?", true)

	if raw := c.Query("category"); raw != "" {
		cat, ok := models.ParseSkillCategory(raw)
		if !ok {
			return respondErr(c, apperr.Validation("unknown skill category"))
		}
		q = q.Where("category = ?", cat)
	}

	var skills []models.Skill
	if err := q.Order("category, name").Find(&skills).Error; err != nil {
		return fail500(c, "failed to load skills")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    skills,
	})
}

type skillReq struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
	IsActive *bool  `json:"is_active"`
}

// Create adds a catalog skill. Admin-only route; every field is writable.
func (h *SkillHandler) Create(c *fiber.Ctx) error {
	var req skillReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	name := strings.TrimSpace(req.Name)

	errs := apperr.FieldErrors{}
	if name == "" {
		errs.Add("name", "name is required")
	} else if err := validate.MaxLen(name, 50); err != nil {
		errs.Add("name", "name must be at most 50 characters")
	}
	category, ok := models.ParseSkillCategory(req.Category)
	if !ok {
		errs.Add("category", "category must be programming, design, marketing, writing or other")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	skill := models.Skill{
		Name:     name,
		Category: category,
		Icon:     strings.TrimSpace(req.Icon),
		IsActive: true,
	}
	if req.IsActive != nil {
		skill.IsActive = *req.IsActive
	}

	if err := h.DB.Create(&skill).Error; err != nil {
		if apperr.IsUniqueViolation(err) {
			return respondErr(c, apperr.ConflictField("name", "skill name already exists"))
		}
		return fail500(c, "failed to create skill")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    skill,
	})
}

// Update patches a catalog skill; is_active=false soft-disables it so it
// stops being offered without breaking existing freelancer links.
func (h *SkillHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondErr(c, apperr.NotFound("skill not found"))
	}

	var req skillReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	var skill models.Skill
	if err := h.DB.First(&skill, "id = ?", id).Error; err != nil {
		return respondErr(c, apperr.NotFound("skill not found"))
	}

	errs := apperr.FieldErrors{}
	updates := map[string]any{}

	if name := strings.TrimSpace(req.Name); name != "" {
		if err := validate.MaxLen(name, 50); err != nil {
			errs.Add("name", "name must be at most 50 characters")
		} else {
			updates["name"] = name
		}
	}
	if req.Category != "" {
		cat, ok := models.ParseSkillCategory(req.Category)
		if !ok {
			errs.Add("category", "unknown skill category")
		} else {
			updates["category"] = cat
		}
	}
	if req.Icon != "" {
		updates["icon"] = strings.TrimSpace(req.Icon)
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&skill).Updates(updates).Error; err != nil {
			if apperr.IsUniqueViolation(err) {
				return respondErr(c, apperr.ConflictField("name", "skill name already exists"))
			}
			return fail500(c, "failed to update skill")
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": skill})
}

type addFreelancerSkillReq struct {
	SkillID         string `json:"skill_id"`
	Level           string `json:"level"`
	YearsExperience int    `json:"years_experience"`
}

// AddFreelancerSkill links the calling freelancer to a catalog skill. A
// given (freelancer, skill) pair exists at most once.
func (h *SkillHandler) AddFreelancerSkill(c *fiber.Ctx) error {
	userID, err := getAuth(c)
	if err != nil {
		return err
	}

	var req addFreelancerSkillReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	errs := apperr.FieldErrors{}

	skillID, err := uuid.Parse(strings.TrimSpace(req.SkillID))
	if err != nil {
		errs.Add("skill_id", "skill_id must be a valid id")
	}
	level, ok := models.ParseSkillLevel(req.Level)
	if !ok {
		errs.Add("level", "level must be beginner, intermediate, advanced or expert")
	}
	if err := validate.YearsRange(req.YearsExperience); err != nil {
		errs.Add("years_experience", err.Error())
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	var profile models.FreelancerProfile
	if err := h.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return respondErr(c, apperr.NotFound("freelancer profile not found"))
	}

	var skill models.Skill
	if err := h.DB.First(&skill, "id = ?", skillID).Error; err != nil {
		return respondErr(c, apperr.NotFound("skill not found"))
	}

	var existing models.FreelancerSkill
	err = h.DB.Where("freelancer_id = ? AND skill_id = ?", profile.ID, skillID).First(&existing).Error
	if err == nil {
		return respondErr(c, apperr.ConflictField("skill_id", "skill already listed"))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fail500(c, "server error")
	}

	link := models.FreelancerSkill{
		FreelancerID:    profile.ID,
		SkillID:         skillID,
		Level:           level,
		YearsExperience: req.YearsExperience,
	}
	if err := h.DB.Create(&link).Error; err != nil {
		// unique index catches the concurrent-insert race the pre-check missed
		if apperr.IsUniqueViolation(err) {
			return respondErr(c, apperr.ConflictField("skill_id", "skill already listed"))
		}
		return fail500(c, "failed to add skill")
	}
	link.Skill = &skill

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    link,
	})
}

// RemoveFreelancerSkill drops one of the caller's skill links.
func (h *SkillHandler) RemoveFreelancerSkill(c *fiber.Ctx) error {
	userID, err := getAuth(c)
	if err != nil {
		return err
	}

	linkID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondErr(c, apperr.NotFound("skill link not found"))
	}

	var profile models.FreelancerProfile
	if err := h.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return respondErr(c, apperr.NotFound("freelancer profile not found"))
	}

	res := h.DB.Where("id = ? AND freelancer_id = ?", linkID, profile.ID).Delete(&models.FreelancerSkill{})
	if res.Error != nil {
		return fail500(c, "failed to remove skill")
	}
	if res.RowsAffected == 0 {
		return respondErr(c, apperr.NotFound("skill link not found"))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "skill removed",
	})
}
