package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"restaurant-api/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	ErrUnsupportedImageType = errors.New("only jpeg, jpg, png and webp images are allowed")
	ErrImageTooLarge        = errors.New("image exceeds the maximum allowed size")
)

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".webp": true,
}

var allowedImageMimes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// saveUploadedImage stores the optional "image" form file under the upload
// directory and returns its public path. Both the file extension and the
// declared MIME type must be on the allowlist. Returns ("", nil) when the
// request carries no image.
func saveUploadedImage(c *gin.Context, prefix string, maxBytes int64) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		// Absent field or non-multipart body — the image is optional.
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] || !allowedImageMimes[file.Header.Get("Content-Type")] {
		return "", ErrUnsupportedImageType
	}
	if file.Size > maxBytes {
		return "", ErrImageTooLarge
	}

	name := fmt.Sprintf("%s-%d-%s%s", prefix, time.Now().UnixMilli(), uuid.NewString(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(config.UploadDir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// uploadErrorStatus maps upload failures onto their HTTP statuses
func uploadErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnsupportedImageType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// parseFormBool follows the frontend's FormData convention: booleans arrive
// as strings and only an explicit "true" counts.
func parseFormBool(v string) bool {
	return v == "true" || v == "True"
}
