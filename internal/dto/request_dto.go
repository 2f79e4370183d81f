package dto

import "github.com/fadilmartias/job-tracker/internal/model"

type MatchRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

type RankRequest struct {
	ResumeText string               `json:"resumeText"`
	Filters    model.FilterCriteria `json:"filters"`
}

type ChatRequest struct {
	Message string `json:"message"`
}
