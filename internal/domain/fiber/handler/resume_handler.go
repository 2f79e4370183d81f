package handler

import (
	"fmt"
	"io"

	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const maxResumeUploadSize = 5 * 1024 * 1024

type ResumeHandler struct {
	uc     *usecase.ResumeUsecase
	logger *zap.Logger
}

func NewResumeHandler(uc *usecase.ResumeUsecase, logger *zap.Logger) *ResumeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResumeHandler{uc: uc, logger: logger}
}

func (h *ResumeHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/upload-resume", h.Upload)
}

// Upload accepts the resume under the "file" or "resume" form field.
func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		file, err = c.FormFile("resume")
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file is required",
		}, err)
	}

	if file.Size > maxResumeUploadSize {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusRequestEntityTooLarge,
			Message: fmt.Sprintf("resume file size is too large (max %dMB)", maxResumeUploadSize/(1024*1024)),
		})
	}

	text := usecase.ResumePlaceholder
	f, err := file.Open()
	if err == nil {
		defer f.Close()
		var data []byte
		data, err = io.ReadAll(f)
		if err == nil {
			text = h.uc.Extract(file.Filename, file.Header.Get("Content-Type"), data)
		}
	}
	if err != nil {
		h.logger.Warn("cannot read uploaded resume", zap.String("filename", file.Filename), zap.Error(err))
	}

	return c.JSON(dto.UploadResumeResponse{Text: text})
}
