package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobconnect/internal/app"
	"jobconnect/internal/transport/http/middleware"
	"jobconnect/internal/transport/http/response"
)

type UserHandler struct {
	userService *app.UserService
	jobService  *app.JobService
	media       Media
}

type AppliedQuery struct {
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}

func NewUserHandler(userService *app.UserService, jobService *app.JobService, media Media) *UserHandler {
	return &UserHandler{userService: userService, jobService: jobService, media: media}
}

// Company serves the public profile of any user, company or individual.
func (h *UserHandler) Company(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.userService.Company(id)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			response.Detail(c, http.StatusNotFound, fmt.Sprintf("User with id %d does not exist", id))
		default:
			response.Detail(c, http.StatusInternalServerError, "get company details failed")
		}
		return
	}

	c.JSON(http.StatusOK, newPublicProfile(user, h.media))
}

func (h *UserHandler) CurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Detail(c, http.StatusUnauthorized, "Bearer token required")
		return
	}

	c.JSON(http.StatusOK, newPrivateProfile(user, h.media))
}

func (h *UserHandler) Apply(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Detail(c, http.StatusUnauthorized, "Bearer token required")
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.jobService.Apply(user, id); err != nil {
		switch {
		case errors.Is(err, app.ErrJobNotFound):
			response.Detail(c, http.StatusNotFound, jobNotFoundMessage(id))
		default:
			response.Detail(c, http.StatusInternalServerError, "apply for job failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Successfully applied for the job"})
}

func (h *UserHandler) Unapply(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Detail(c, http.StatusUnauthorized, "Bearer token required")
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.jobService.Unapply(user, id); err != nil {
		switch {
		case errors.Is(err, app.ErrJobNotFound):
			response.Detail(c, http.StatusNotFound, jobNotFoundMessage(id))
		default:
			response.Detail(c, http.StatusInternalServerError, "unapply from job failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Successfully unapplied from the job"})
}

func (h *UserHandler) Applied(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Detail(c, http.StatusUnauthorized, "Bearer token required")
		return
	}

	var query AppliedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, "invalid query parameters")
		return
	}

	list, err := h.jobService.Applied(user, query.Limit)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "list applied jobs failed")
		return
	}

	c.JSON(http.StatusOK, list)
}
