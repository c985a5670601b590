package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobconnect/internal/app"
	"jobconnect/internal/transport/http/response"
)

type CategoryHandler struct {
	categoryService *app.CategoryService
}

func NewCategoryHandler(categoryService *app.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.categoryService.List()
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "list categories failed")
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *CategoryHandler) Details(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	record, err := h.categoryService.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrCategoryNotFound):
			response.Detail(c, http.StatusNotFound, categoryNotFoundMessage(id))
		default:
			response.Detail(c, http.StatusInternalServerError, "get category failed")
		}
		return
	}

	c.JSON(http.StatusOK, record)
}
