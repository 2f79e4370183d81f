package handler

import (
	"encoding/json"

	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
)

type TrackerHandler struct {
	uc *usecase.TrackerUsecase
}

func NewTrackerHandler(uc *usecase.TrackerUsecase) *TrackerHandler {
	return &TrackerHandler{uc: uc}
}

func (h *TrackerHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/track", h.Track)
	app.Get("/api/applications", h.Applications)
}

// Track records the answer to the "did you apply?" prompt. Fields beyond the
// job reference and status are stored as they were sent.
func (h *TrackerHandler) Track(c *fiber.Ctx) error {
	body := c.Body()
	if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsObject() {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "request body must be a JSON object",
		})
	}

	intent, err := model.ParseIntent(gjson.GetBytes(body, "status").String())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid application status",
		}, util.NewFormError(err.Error(), map[string]string{
			"status": "must be one of Applied, Earlier, No",
		}))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "request body must be a JSON object",
		}, err)
	}
	extra := make(map[string]json.RawMessage)
	for k, v := range fields {
		if _, reserved := model.ReservedFields[k]; !reserved {
			extra[k] = v
		}
	}

	ref := model.JobRef{
		JobID:    gjson.GetBytes(body, "jobId").String(),
		JobTitle: gjson.GetBytes(body, "jobTitle").String(),
		Company:  gjson.GetBytes(body, "company").String(),
	}

	app, err := h.uc.Record(c.UserContext(), ref, intent, extra)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusServiceUnavailable,
			Message: "application could not be saved",
		}, err)
	}

	return c.JSON(dto.TrackResponse{Success: true, Recorded: app != nil})
}

func (h *TrackerHandler) Applications(c *fiber.Ctx) error {
	apps, err := h.uc.ListAll(c.UserContext())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusServiceUnavailable,
			Message: "failed to load applications",
		}, err)
	}

	views := make([]map[string]any, 0, len(apps))
	for _, app := range apps {
		views = append(views, dto.ApplicationView(app))
	}
	return c.JSON(views)
}
