package handler

import (
	"errors"
	"net/http"

	"github.com/BloggingApp/user-service/internal/dto"
	"github.com/BloggingApp/user-service/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) pagesHome(c *gin.Context) {
	page, err := h.services.Page.Home(c.Request.Context(), h.requestOrigin(c))
	if err != nil {
		h.renderError(c)
		return
	}

	c.HTML(http.StatusOK, "index.html", page)
}

func (h *Handler) pagesUser(c *gin.Context) {
	page, err := h.services.Page.Profile(c.Request.Context(), h.requestOrigin(c), c.Query("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.HTML(http.StatusNotFound, "not_found.html", dto.ErrorPage{
				Title:   h.cfg.Title + " / User not found",
				Message: "User not found",
			})
			return
		}

		h.renderError(c)
		return
	}

	c.HTML(http.StatusOK, "user.html", page)
}

func (h *Handler) renderError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", dto.ErrorPage{
		Title:   h.cfg.Title,
		Message: errPageUnavailable.Error(),
	})
}
