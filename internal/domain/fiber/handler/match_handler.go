package handler

import (
	"time"

	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/middleware"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/gofiber/fiber/v2"
)

type MatchHandler struct {
	uc   *usecase.MatchUsecase
	jobs usecase.JobSource
}

func NewMatchHandler(uc *usecase.MatchUsecase, jobs usecase.JobSource) *MatchHandler {
	return &MatchHandler{uc: uc, jobs: jobs}
}

func (h *MatchHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/match", middleware.RateLimiter("match", 120, 1*time.Minute), h.Match)
	app.Post("/api/rank", middleware.RateLimiter("rank", 10, 1*time.Minute), h.Rank)
}

// Match scores one resume/description pair. Oracle failures still answer 200
// with the fallback result.
func (h *MatchHandler) Match(c *fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid match request",
		}, err)
	}
	return c.JSON(h.uc.MatchOne(c.UserContext(), req.ResumeText, req.JobDescription))
}

func (h *MatchHandler) Rank(c *fiber.Ctx) error {
	var req dto.RankRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid rank request",
		}, err)
	}

	jobs, err := h.jobs.GetJobs(c.UserContext())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusServiceUnavailable,
			Message: "failed to load jobs",
		}, err)
	}

	ranked := h.uc.Rank(c.UserContext(), req.ResumeText, jobs, req.Filters)
	return c.JSON(dto.RankResponse{Jobs: ranked, Total: len(jobs)})
}
