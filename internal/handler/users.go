package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/BloggingApp/user-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) usersGetAll(c *gin.Context) {
	users, err := h.services.User.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.GetUsersResponse{Users: users})
}

// usersGetByID serves both /api/users/user?id=<id> and /api/users/<id>.
// An id that is missing or not an integer cannot match a row, so it answers
// the same way as an unknown id.
func (h *Handler) usersGetByID(c *gin.Context) {
	idString := c.Param("id")
	if idString == "" {
		idString = c.Query("id")
	}

	id, err := strconv.ParseInt(strings.TrimSpace(idString), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, dto.GetUserResponse{})
		return
	}

	user, err := h.services.User.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.GetUserResponse{User: user})
}
