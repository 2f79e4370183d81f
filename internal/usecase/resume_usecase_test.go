package usecase

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestResumeUsecase_PlainText(t *testing.T) {
	uc := NewResumeUsecase(func([]byte) (string, error) {
		t.Fatal("pdf extractor must not run for text files")
		return "", nil
	}, nil)

	got := uc.Extract("cv.txt", "text/plain", []byte("Go developer\nKubernetes\r\nPostgres"))
	assert.Equal(t, "Go developer Kubernetes Postgres", got)
}

func TestResumeUsecase_PDF(t *testing.T) {
	uc := NewResumeUsecase(func(data []byte) (string, error) {
		return "Page one\n\nPage two", nil
	}, nil)

	assert.Equal(t, "Page one  Page two", uc.Extract("cv.PDF", "", []byte("%PDF")))
	assert.Equal(t, "Page one  Page two", uc.Extract("upload", "application/pdf", []byte("%PDF")))
}

func TestResumeUsecase_PDFFailureUsesPlaceholder(t *testing.T) {
	uc := NewResumeUsecase(func([]byte) (string, error) {
		return "", errors.New("broken xref")
	}, nil)
	assert.Equal(t, ResumePlaceholder, uc.Extract("cv.pdf", "application/pdf", []byte("junk")))
}

func TestResumeUsecase_InvalidUTF8UsesPlaceholder(t *testing.T) {
	uc := NewResumeUsecase(nil, nil)
	assert.Equal(t, ResumePlaceholder, uc.Extract("cv.doc", "application/msword", []byte{0xff, 0xfe, 0x00}))
}

func TestResumeUsecase_BoundsLength(t *testing.T) {
	uc := NewResumeUsecase(nil, nil)
	got := uc.Extract("cv.txt", "text/plain", []byte(strings.Repeat("ab\n", 2000)))
	assert.Equal(t, MaxResumeTextRunes, utf8.RuneCountInString(got))
	assert.NotContains(t, got, "\n")
}
