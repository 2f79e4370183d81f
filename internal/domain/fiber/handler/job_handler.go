package handler

import (
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	jobs usecase.JobSource
}

func NewJobHandler(jobs usecase.JobSource) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.Root)
	app.Get("/api/jobs", h.Jobs)
}

func (h *JobHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "Active", "message": "Job Tracker API is running!"})
}

func (h *JobHandler) Jobs(c *fiber.Ctx) error {
	jobs, err := h.jobs.GetJobs(c.UserContext())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusServiceUnavailable,
			Message: "failed to load jobs",
		}, err)
	}
	return c.JSON(jobs)
}
