package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jobboard/internal/auth"
	"jobboard/internal/config"
	apperrors "jobboard/internal/errors"
	"jobboard/internal/services"
)

// MaxUploadSize limits CV uploads to 5 MB.
const MaxUploadSize = 5 << 20

// UploadHandler handles CV file uploads.
type UploadHandler struct {
	userService services.UserServicer
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(userService services.UserServicer) *UploadHandler {
	return &UploadHandler{userService: userService}
}

var allowedUploadExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// saveUpload validates the file and writes it under the uploads directory
// with a random name. Returns the stored path relative to the server root.
func saveUpload(c *gin.Context, field string, allowed map[string]bool) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "No file provided")
	}

	if file.Size > MaxUploadSize {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "File exceeds the 5MB limit")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowed[ext] {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Unsupported file type")
	}

	uploadsDir := config.Get().UploadsDir
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	storedName := uuid.NewString() + ext
	storedPath := filepath.Join(uploadsDir, storedName)
	if err := c.SaveUploadedFile(file, storedPath); err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return storedPath, nil
}

// UploadFile handles a generic CV document upload.
// @Summary     Upload a file
// @Description Upload a PDF or Word document (max 5MB) and get its stored path
// @Tags        uploads
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file true "Document to upload"
// @Success     201 {object} map[string]string "Stored file path"
// @Failure     400 {object} ErrorResponse "Invalid file"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /upload [post]
func (h *UploadHandler) UploadFile(c *gin.Context) {
	if _, err := getIdentity(c); err != nil {
		respondWithError(c, err)
		return
	}

	storedPath, err := saveUpload(c, "file", allowedUploadExtensions)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"file_path": storedPath})
}

// UploadCV handles replacing the CV on a user's profile.
// @Summary     Upload a profile CV
// @Description Upload a PDF CV (max 5MB) and attach it to the user's profile
// @Tags        uploads
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       id   path     int  true "User ID"
// @Param       file formData file true "CV in PDF format"
// @Success     200 {object} models.User "Updated user"
// @Failure     400 {object} ErrorResponse "Invalid file"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the profile owner"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{id}/cv [put]
func (h *UploadHandler) UploadCV(c *gin.Context) {
	identity, err := getIdentity(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	userID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if !auth.CanUploadCVFor(identity, userID) {
		respondWithError(c, apperrors.ErrForbidden)
		return
	}

	// Profile CVs must be PDF.
	storedPath, err := saveUpload(c, "file", map[string]bool{".pdf": true})
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.UpdateCV(userID, storedPath)
	if err != nil {
		_ = os.Remove(storedPath)
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "file_path": fmt.Sprintf("/%s", filepath.ToSlash(storedPath))})
}
