package dto

import "github.com/fadilmartias/job-tracker/internal/model"

type UploadResumeResponse struct {
	Text string `json:"text"`
}

type RankResponse struct {
	Jobs  []model.ScoredJob `json:"jobs"`
	Total int               `json:"total"`
}

type TrackResponse struct {
	Success  bool `json:"success"`
	Recorded bool `json:"recorded"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// ApplicationView flattens an application and adds the derived stage
// progress used by the dashboard timeline.
func ApplicationView(app model.Application) map[string]any {
	view := app.ToMap()
	view["progress"] = model.Progress(app.Status)
	view["reached"] = model.ReachedStages(app.Status)
	return view
}
