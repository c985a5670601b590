package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobconnect/internal/app"
	"jobconnect/internal/model"
	"jobconnect/internal/transport/http/middleware"
	"jobconnect/internal/transport/http/response"
)

type JobHandler struct {
	jobService *app.JobService
	media      Media
}

type ListJobsQuery struct {
	Type       string `form:"type,default=All" binding:"oneof=Full-time Internship All"`
	CategoryID uint   `form:"category_id"`
	Start      int64  `form:"start,default=-1"`
	Offset     int    `form:"offset" binding:"omitempty,min=0"`
	Limit      int    `form:"limit,default=20" binding:"min=1,max=100"`
}

type CreateJobRequest struct {
	CategoryID    uint   `json:"category_id" binding:"required"`
	Title         string `json:"title" binding:"required,max=100"`
	Type          string `json:"type" binding:"omitempty,oneof=Full-time Internship"`
	MinimumSalary uint   `json:"minimum_salary" binding:"required,gt=0"`
	MaximumSalary uint   `json:"maximum_salary" binding:"required,gt=0"`
	Description   string `json:"description" binding:"required"`
	IsAvailable   *bool  `json:"is_available"`
}

// UpdateJobRequest is a patch: absent fields keep their stored values,
// present fields always overwrite, including explicit false.
type UpdateJobRequest struct {
	ID            uint    `json:"id" binding:"required,gt=0"`
	CategoryID    *uint   `json:"category_id" binding:"omitempty,gt=0"`
	Title         *string `json:"title" binding:"omitempty,max=100"`
	Type          *string `json:"type" binding:"omitempty,oneof=Full-time Internship"`
	MinimumSalary *uint   `json:"minimum_salary" binding:"omitempty,gt=0"`
	MaximumSalary *uint   `json:"maximum_salary" binding:"omitempty,gt=0"`
	Description   *string `json:"description"`
	IsAvailable   *bool   `json:"is_available"`
}

type AppliersQuery struct {
	Offset int `form:"offset" binding:"omitempty,min=0"`
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
}

func NewJobHandler(jobService *app.JobService, media Media) *JobHandler {
	return &JobHandler{jobService: jobService, media: media}
}

func (h *JobHandler) List(c *gin.Context) {
	var query ListJobsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, "invalid query parameters")
		return
	}

	list, err := h.jobService.List(model.JobFilter{
		Type:       query.Type,
		CategoryID: query.CategoryID,
		Start:      query.Start,
		Offset:     query.Offset,
		Limit:      query.Limit,
	})
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "list jobs failed")
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *JobHandler) Details(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	withDetails := true
	if raw := c.Query("details"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.Detail(c, http.StatusUnprocessableEntity, "invalid details flag")
			return
		}
		withDetails = parsed
	}

	details, err := h.jobService.Get(id, withDetails)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrJobNotFound):
			response.Detail(c, http.StatusNotFound, jobNotFoundMessage(id))
		default:
			response.Detail(c, http.StatusInternalServerError, "get job failed")
		}
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *JobHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Detail(c, http.StatusUnauthorized, "Bearer token required")
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	payload, err := h.jobService.Create(user, app.CreateJobInput{
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Type:          req.Type,
		MinimumSalary: req.MinimumSalary,
		MaximumSalary: req.MaximumSalary,
		Description:   req.Description,
		IsAvailable:   isAvailable,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrCategoryNotFound):
			response.Detail(c, http.StatusUnprocessableEntity, categoryNotFoundMessage(req.CategoryID))
		default:
			response.Detail(c, http.StatusInternalServerError, "create job failed")
		}
		return
	}

	c.JSON(http.StatusOK, payload)
}

func (h *JobHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Detail(c, http.StatusUnauthorized, "Bearer token required")
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}

	payload, err := h.jobService.Update(user, app.UpdateJobInput{
		ID:            req.ID,
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Type:          req.Type,
		MinimumSalary: req.MinimumSalary,
		MaximumSalary: req.MaximumSalary,
		Description:   req.Description,
		IsAvailable:   req.IsAvailable,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrNotJobOwner):
			response.Detail(c, http.StatusForbidden, "You can only update a job that you posted")
		case errors.Is(err, app.ErrCategoryNotFound):
			response.Detail(c, http.StatusUnprocessableEntity, categoryNotFoundMessage(*req.CategoryID))
		default:
			response.Detail(c, http.StatusInternalServerError, "update job failed")
		}
		return
	}

	c.JSON(http.StatusOK, payload)
}

func (h *JobHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Detail(c, http.StatusUnauthorized, "Bearer token required")
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(user, id); err != nil {
		switch {
		case errors.Is(err, app.ErrJobNotFound):
			response.Detail(c, http.StatusNotFound, jobNotFoundMessage(id))
		case errors.Is(err, app.ErrNotJobOwner):
			response.Detail(c, http.StatusForbidden, "You can only delete a job that you posted")
		default:
			response.Detail(c, http.StatusInternalServerError, "delete job failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": fmt.Sprintf("Job with id %d deleted successfully", id)})
}

func (h *JobHandler) Appliers(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Detail(c, http.StatusUnauthorized, "Bearer token required")
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var query AppliersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, "invalid query parameters")
		return
	}

	appliers, err := h.jobService.Appliers(user, id, query.Offset, query.Limit)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrJobNotFound):
			response.Detail(c, http.StatusNotFound, jobNotFoundMessage(id))
		case errors.Is(err, app.ErrNotJobOwner):
			response.Detail(c, http.StatusForbidden, "You can only view appliers of a job that you posted")
		default:
			response.Detail(c, http.StatusInternalServerError, "list appliers failed")
		}
		return
	}

	applicants := make([]PublicProfile, 0, len(appliers.Applicants))
	for i := range appliers.Applicants {
		applicants = append(applicants, newPublicProfile(&appliers.Applicants[i], h.media))
	}
	c.JSON(http.StatusOK, gin.H{"total": appliers.Total, "applicants": applicants})
}

func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.Detail(c, http.StatusUnprocessableEntity, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func jobNotFoundMessage(id uint) string {
	return fmt.Sprintf("Job with id %d does not exist", id)
}

func categoryNotFoundMessage(id uint) string {
	return fmt.Sprintf("Category with id %d does not exist", id)
}
