package usecase

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fadilmartias/job-tracker/internal/util"
	"go.uber.org/zap"
)

const (
	MaxResumeTextRunes = 3000
	ResumePlaceholder  = "Resume PDF uploaded successfully. (Text extraction skipped due to file format)."
)

// ResumeUsecase turns uploaded files into bounded plain text.
type ResumeUsecase struct {
	extractPDF func([]byte) (string, error)
	logger     *zap.Logger
}

func NewResumeUsecase(extractPDF func([]byte) (string, error), logger *zap.Logger) *ResumeUsecase {
	if extractPDF == nil {
		extractPDF = util.ExtractPDFText
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResumeUsecase{extractPDF: extractPDF, logger: logger}
}

// Extract never fails. When the text cannot be recovered it returns
// ResumePlaceholder so the user can carry on.
func (uc *ResumeUsecase) Extract(filename, mimeType string, data []byte) string {
	var text string
	if isPDF(filename, mimeType) {
		extracted, err := uc.extractPDF(data)
		if err != nil {
			uc.logger.Warn("pdf extraction failed, using placeholder",
				zap.String("filename", filename),
				zap.Error(err),
			)
			return ResumePlaceholder
		}
		text = extracted
	} else {
		if !utf8.Valid(data) {
			uc.logger.Warn("resume is not valid utf-8, using placeholder", zap.String("filename", filename))
			return ResumePlaceholder
		}
		text = string(data)
	}

	return util.TruncateRunes(util.CollapseNewlines(text), MaxResumeTextRunes)
}

func isPDF(filename, mimeType string) bool {
	if strings.EqualFold(strings.TrimSpace(mimeType), "application/pdf") {
		return true
	}
	return strings.EqualFold(filepath.Ext(filename), ".pdf")
}
