package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/freelancehub/api/internal/apperr"
	"github.com/freelancehub/api/internal/images"
)

const maxAvatarBytes = 2 * 1024 * 1024

type avatarMeta struct {
	Width     int   `json:"width"`
	Height    int   `json:"height"`
	SizeBytes int64 `json:"size_bytes"`
}

// saveAvatarUpload validates and stores the uploaded avatar on disk, returning
// the public URL and the path on disk. The caller persists the URL first and
// only then runs the resize step.
func saveAvatarUpload(c *fiber.Ctx, file *multipart.FileHeader, uploadDir, publicBaseURL string, userID uuid.UUID) (publicURL, diskPath string, err error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", "", apperr.Validation("avatar must be jpg/jpeg/png")
	}
	if file.Size > maxAvatarBytes {
		return "", "", apperr.Validation("avatar max size is 2MB")
	}

	dir := filepath.Join(uploadDir, "avatars", userID.String())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("create upload dir: %w", err)
	}

	filename := uuid.New().String() + ext
	diskPath = filepath.Join(dir, filename)

	if err := c.SaveFile(file, diskPath); err != nil {
		return "", "", fmt.Errorf("save file: %w", err)
	}

	base := strings.TrimRight(publicBaseURL, "/")
	publicURL = fmt.Sprintf("%s/uploads/avatars/%s/%s", base, userID.String(), filename)
	if base == "" {
		publicURL = fmt.Sprintf("/uploads/avatars/%s/%s", userID.String(), filename)
	}

	return publicURL, diskPath, nil
}

// resizeAvatar runs after the row holding the avatar URL has committed. It
// downscales the stored file so neither dimension exceeds 300px and reports
// the final metadata. A failure here leaves the oversized original in place;
// the write that stored it stays durable.
func resizeAvatar(diskPath string) (datatypes.JSON, error) {
	w, h, err := images.FitWithin(diskPath, images.MaxAvatarDim)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(diskPath)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(avatarMeta{Width: w, Height: h, SizeBytes: info.Size()})
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func logResizeFailure(diskPath string, err error) {
	log.Printf("avatar resize failed for %s: %v", diskPath, err)
}
