package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/freelancehub/api/internal/apperr"
	"github.com/freelancehub/api/internal/middleware"
	"github.com/freelancehub/api/internal/models"
	"github.com/freelancehub/api/internal/utils"
	"github.com/freelancehub/api/internal/validate"
)

type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret string
	Expires   int
}

// ==== REQUEST STRUCTS ====

type RegisterReq struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	UserType        string `json:"user_type"` // freelancer / client / admin
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

func userPayload(u *models.User) fiber.Map {
	return fiber.Map{
		"id":          u.ID,
		"email":       u.Email,
		"username":    u.Username,
		"first_name":  u.FirstName,
		"last_name":   u.LastName,
		"user_type":   u.UserType,
		"phone":       u.Phone,
		"is_verified": u.IsVerified,
		"created_at":  u.CreatedAt,
	}
}

func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		MaxAge:   h.Expires * 60,
	})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	phone := strings.TrimSpace(req.Phone)

	errs := apperr.FieldErrors{}

	if email == "" {
		errs.Add("email", "email is required")
	} else if err := validate.Email(email); err != nil {
		errs.Add("email", err.Error())
	}
	if username == "" {
		errs.Add("username", "username is required")
	} else if err := validate.Username(username); err != nil {
		errs.Add("username", err.Error())
	}
	if firstName == "" {
		errs.Add("first_name", "first name is required")
	}
	if lastName == "" {
		errs.Add("last_name", "last name is required")
	}

	userType, ok := models.ParseUserType(req.UserType)
	if !ok {
		errs.Add("user_type", "user_type must be freelancer, client or admin")
	}

	if err := validate.Phone(phone); err != nil {
		errs.Add("phone", err.Error())
	}

	if req.Password == "" {
		errs.Add("password", "password is required")
	} else if err := validate.Password(req.Password); err != nil {
		errs.Add("password", err.Error())
	}
	if req.Password != req.PasswordConfirm {
		errs.Add("password_confirm", "passwords do not match")
	}

	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	var existing models.User
	if err := h.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return respondErr(c, apperr.ConflictField("email", "email is already registered"))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fail500(c, "server error")
	}

	if err := h.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		return respondErr(c, apperr.ConflictField("username", "username is already taken"))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fail500(c, "server error")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fail500(c, "failed to process password")
	}

	u := models.User{
		Email:        email,
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        phone,
		PasswordHash: hash,
		UserType:     userType,
		IsActive:     true,
	}

	// User and companion profile land in one transaction: either both rows
	// exist afterwards or neither does.
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&u).Error; err != nil {
			return err
		}
		if create := models.ProfileCreators[u.UserType]; create != nil {
			if err := create(tx, &u); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if apperr.IsUniqueViolation(err) {
			// lost a race against a concurrent registration
			field, msg := duplicateUserField(err)
			return respondErr(c, apperr.ConflictField(field, msg))
		}
		return fail500(c, "failed to register")
	}

	token, err := utils.SignJWT(h.JWTSecret, u.ID.String(), string(u.UserType), h.Expires)
	if err != nil {
		return fail500(c, "failed to create token")
	}
	h.setAuthCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "registered",
		"data": fiber.Map{
			"user": userPayload(&u),
		},
	})
}

// duplicateUserField picks which unique column a racing insert tripped; the
// postgres message names the violated index.
func duplicateUserField(err error) (field, message string) {
	if strings.Contains(strings.ToLower(err.Error()), "username") {
		return "username", "username is already taken"
	}
	return "email", "email is already registered"
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := req.Password

	errs := apperr.FieldErrors{}
	if email == "" {
		errs.Add("email", "email is required")
	}
	if password == "" {
		errs.Add("password", "password is required")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	// One generic message for every credential failure so callers cannot
	// probe which field was wrong.
	var u models.User
	if err := h.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return respondErr(c, apperr.Auth("invalid email or password"))
	}

	if !utils.CheckPassword(u.PasswordHash, password) {
		return respondErr(c, apperr.Auth("invalid email or password"))
	}

	if !u.IsActive {
		return respondErr(c, apperr.Auth("account is inactive"))
	}

	token, err := utils.SignJWT(h.JWTSecret, u.ID.String(), string(u.UserType), h.Expires)
	if err != nil {
		return fail500(c, "failed to create token")
	}
	h.setAuthCookie(c, token)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "logged in",
		"data": fiber.Map{
			"user": userPayload(&u),
		},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "logged out",
	})
}

type ChangePasswordReq struct {
	OldPassword        string `json:"old_password"`
	NewPassword        string `json:"new_password"`
	NewPasswordConfirm string `json:"new_password_confirm"`
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID, err := getAuth(c)
	if err != nil {
		return err
	}

	var req ChangePasswordReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	errs := apperr.FieldErrors{}
	if req.OldPassword == "" {
		errs.Add("old_password", "old password is required")
	}
	if req.NewPassword == "" {
		errs.Add("new_password", "new password is required")
	} else if err := validate.Password(req.NewPassword); err != nil {
		errs.Add("new_password", err.Error())
	}
	if req.NewPassword != req.NewPasswordConfirm {
		errs.Add("new_password_confirm", "new passwords do not match")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	var u models.User
	if err := h.DB.First(&u, "id = ?", userID).Error; err != nil {
		return respondErr(c, apperr.NotFound("user not found"))
	}

	if !utils.CheckPassword(u.PasswordHash, req.OldPassword) {
		errs.Add("old_password", "old password is incorrect")
		return validationFail(c, errs)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fail500(c, "failed to process password")
	}

	if err := h.DB.Model(&u).Update("password_hash", hash).Error; err != nil {
		return fail500(c, "failed to update password")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "password changed",
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := getAuth(c)
	if err != nil {
		return err
	}

	var u models.User
	if err := h.DB.First(&u, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "user not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    userPayload(&u),
	})
}
