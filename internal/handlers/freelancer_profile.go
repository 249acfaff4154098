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

type FreelancerProfileHandler struct {
	DB            *gorm.DB
	UploadDir     string
	PublicBaseURL string
}

func NewFreelancerProfileHandler(db *gorm.DB, uploadDir, publicBaseURL string) *FreelancerProfileHandler {
	return &FreelancerProfileHandler{DB: db, UploadDir: uploadDir, PublicBaseURL: publicBaseURL}
}

// Get returns the full profile joined with the owner's display fields and
// the complete skill list.
func (h *FreelancerProfileHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondErr(c, apperr.NotFound("profile not found"))
	}

	var p models.FreelancerProfile
	if err := h.DB.Preload("Skills").Preload("Skills.Skill").First(&p, "id = ?", id).Error; err != nil {
		return respondErr(c, apperr.NotFound("profile not found"))
	}

	var u models.User
	if err := h.DB.First(&u, "id = ?", p.UserID).Error; err != nil {
		return fail500(c, "failed to load profile owner")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    freelancerProfilePayload(&p, &u),
	})
}

func freelancerProfilePayload(p *models.FreelancerProfile, u *models.User) fiber.Map {
	return fiber.Map{
		"id":                 p.ID,
		"user_email":         u.Email,
		"user_name":          u.FullName(),
		"bio":                p.Bio,
		"avatar":             p.AvatarURL,
		"portfolio_url":      p.PortfolioURL,
		"linkedin_url":       p.LinkedinURL,
		"github_url":         p.GithubURL,
		"title":              p.Title,
		"hourly_rate":        p.HourlyRate,
		"experience_years":   p.ExperienceYears,
		"availability":       p.Availability,
		"rating":             p.Rating,
		"total_sales":        p.TotalSales,
		"completed_projects": p.CompletedProjects,
		"is_verified":        p.IsVerified,
		"is_active":          p.IsActive,
		"skills":             p.Skills,
		"created_at":         p.CreatedAt,
		"updated_at":         p.UpdatedAt,
	}
}

// freelancerUpdateReq deliberately has no fields for rating, total_sales,
// completed_projects or is_verified: computed values submitted by a client
// fall away at decode time.
type freelancerUpdateReq struct {
	Bio             *string  `json:"bio"`
	PortfolioURL    *string  `json:"portfolio_url"`
	LinkedinURL     *string  `json:"linkedin_url"`
	GithubURL       *string  `json:"github_url"`
	Title           *string  `json:"title"`
	HourlyRate      *float64 `json:"hourly_rate"`
	ExperienceYears *int     `json:"experience_years"`
	Availability    *string  `json:"availability"`
}

// freelancerUpdates maps the partial-update request onto writable columns.
func freelancerUpdates(req freelancerUpdateReq) (map[string]any, apperr.FieldErrors) {
	errs := apperr.FieldErrors{}
	updates := map[string]any{}

	if req.Bio != nil {
		bio := strings.TrimSpace(*req.Bio)
		if err := validate.MaxLen(bio, 1000); err != nil {
			errs.Add("bio", "bio must be at most 1000 characters")
		} else {
			updates["bio"] = bio
		}
	}
	if req.PortfolioURL != nil {
		if err := validate.URL(*req.PortfolioURL); err != nil {
			errs.Add("portfolio_url", err.Error())
		} else {
			updates["portfolio_url"] = strings.TrimSpace(*req.PortfolioURL)
		}
	}
	if req.LinkedinURL != nil {
		if err := validate.URL(*req.LinkedinURL); err != nil {
			errs.Add("linkedin_url", err.Error())
		} else {
			updates["linkedin_url"] = strings.TrimSpace(*req.LinkedinURL)
		}
	}
	if req.GithubURL != nil {
		if err := validate.URL(*req.GithubURL); err != nil {
			errs.Add("github_url", err.Error())
		} else {
			updates["github_url"] = strings.TrimSpace(*req.GithubURL)
		}
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if err := validate.MaxLen(title, 100); err != nil {
			errs.Add("title", "title must be at most 100 characters")
		} else {
			updates["title"] = title
		}
	}
	if req.HourlyRate != nil {
		if err := validate.HourlyRate(*req.HourlyRate); err != nil {
			errs.Add("hourly_rate", err.Error())
		} else {
			updates["hourly_rate"] = *req.HourlyRate
		}
	}
	if req.ExperienceYears != nil {
		if err := validate.YearsRange(*req.ExperienceYears); err != nil {
			errs.Add("experience_years", err.Error())
		} else {
			updates["experience_years"] = *req.ExperienceYears
		}
	}
	if req.Availability != nil {
		avail := strings.TrimSpace(*req.Availability)
		if err := validate.MaxLen(avail, 50); err != nil {
			errs.Add("availability", "availability must be at most 50 characters")
		} else {
			updates["availability"] = avail
		}
	}

	return updates, errs
}

func (h *FreelancerProfileHandler) findMine(userID uuid.UUID) (*models.FreelancerProfile, error) {
	var p models.FreelancerProfile
	if err := h.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("freelancer profile not found")
		}
		return nil, err
	}
	return &p, nil
}

// UpdateMine applies a partial update of the client-writable fields.
func (h *FreelancerProfileHandler) UpdateMine(c *fiber.Ctx) error {
	userID, err := getAuth(c)
	if err != nil {
		return err
	}

	var req freelancerUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	updates, errs := freelancerUpdates(req)
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	p, err := h.findMine(userID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return respondErr(c, err)
		}
		return fail500(c, "failed to load profile")
	}

	if len(updates) > 0 {
		if err := h.DB.Model(p).Updates(updates).Error; err != nil {
			return fail500(c, "failed to update profile")
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": p})
}

// UploadAvatar stores the avatar blob, commits the row pointing at it, and
// then runs the downscale step. The resize happens on every avatar-carrying
// save, not just the first.
func (h *FreelancerProfileHandler) UploadAvatar(c *fiber.Ctx) error {
	userID, err := getAuth(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return respondErr(c, apperr.Validation("avatar is required (multipart field: avatar)"))
	}

	p, err := h.findMine(userID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return respondErr(c, err)
		}
		return fail500(c, "failed to load profile")
	}

	publicURL, diskPath, err := saveAvatarUpload(c, file, h.UploadDir, h.PublicBaseURL, userID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindValidation) {
			return respondErr(c, err)
		}
		return fail500(c, "failed to store avatar")
	}

	if err := h.DB.Model(p).Update("avatar_url", publicURL).Error; err != nil {
		return fail500(c, "failed to update profile")
	}

	// The blob reference is durable; now shrink the stored image in place.
	meta, err := resizeAvatar(diskPath)
	if err != nil {
		logResizeFailure(diskPath, err)
	} else if err := h.DB.Model(p).Update("avatar_meta", meta).Error; err != nil {
		logResizeFailure(diskPath, err)
	}

	p.AvatarURL = publicURL
	return c.JSON(fiber.Map{
		"success": true,
		"message": "avatar uploaded",
		"data":    fiber.Map{"avatar": publicURL},
	})
}
