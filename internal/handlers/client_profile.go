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

type ClientProfileHandler struct {
	DB            *gorm.DB
	UploadDir     string
	PublicBaseURL string
}

func NewClientProfileHandler(db *gorm.DB, uploadDir, publicBaseURL string) *ClientProfileHandler {
	return &ClientProfileHandler{DB: db, UploadDir: uploadDir, PublicBaseURL: publicBaseURL}
}

func (h *ClientProfileHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondErr(c, apperr.NotFound("profile not found"))
	}

	var p models.ClientProfile
	if err := h.DB.First(&p, "id = ?", id).Error; err != nil {
		return respondErr(c, apperr.NotFound("profile not found"))
	}

	var u models.User
	if err := h.DB.First(&u, "id = ?", p.UserID).Error; err != nil {
		return fail500(c, "failed to load profile owner")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":              p.ID,
			"user_email":      u.Email,
			"user_name":       u.FullName(),
			"company_name":    p.CompanyName,
			"company_website": p.CompanyWebsite,
			"bio":             p.Bio,
			"avatar":          p.AvatarURL,
			"total_spent":     p.TotalSpent,
			"projects_posted": p.ProjectsPosted,
			"created_at":      p.CreatedAt,
			"updated_at":      p.UpdatedAt,
		},
	})
}

// clientUpdateReq carries the writable fields only; total_spent and
// projects_posted have no representation here.
type clientUpdateReq struct {
	CompanyName    *string `json:"company_name"`
	CompanyWebsite *string `json:"company_website"`
	Bio            *string `json:"bio"`
}

func clientUpdates(req clientUpdateReq) (map[string]any, apperr.FieldErrors) {
	errs := apperr.FieldErrors{}
	updates := map[string]any{}

	if req.CompanyName != nil {
		name := strings.TrimSpace(*req.CompanyName)
		if err := validate.MaxLen(name, 100); err != nil {
			errs.Add("company_name", "company name must be at most 100 characters")
		} else {
			updates["company_name"] = name
		}
	}
	if req.CompanyWebsite != nil {
		if err := validate.URL(*req.CompanyWebsite); err != nil {
			errs.Add("company_website", err.Error())
		} else {
			updates["company_website"] = strings.TrimSpace(*req.CompanyWebsite)
		}
	}
	if req.Bio != nil {
		bio := strings.TrimSpace(*req.Bio)
		if err := validate.MaxLen(bio, 500); err != nil {
			errs.Add("bio", "bio must be at most 500 characters")
		} else {
			updates["bio"] = bio
		}
	}

	return updates, errs
}

func (h *ClientProfileHandler) findMine(userID uuid.UUID) (*models.ClientProfile, error) {
	var p models.ClientProfile
	if err := h.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("client profile not found")
		}
		return nil, err
	}
	return &p, nil
}

func (h *ClientProfileHandler) UpdateMine(c *fiber.Ctx) error {
	userID, err := getAuth(c)
	if err != nil {
		return err
	}

	var req clientUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	updates, errs := clientUpdates(req)
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

func (h *ClientProfileHandler) UploadAvatar(c *fiber.Ctx) error {
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
