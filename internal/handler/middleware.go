package handler

import (
	"net/http"
	"time"

	"github.com/BloggingApp/user-service/internal/dto"
	"github.com/BloggingApp/user-service/internal/requestid"
	"github.com/BloggingApp/user-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestid.Header)
	if id == "" {
		id = uuid.NewString()
	}

	c.Request = c.Request.WithContext(requestid.WithID(c.Request.Context(), id))
	c.Header(requestid.Header, id)

	c.Next()
}

func (h *Handler) loggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	h.logger.Info("request",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("latency", time.Since(start)),
		zap.String("request_id", requestid.FromContext(c.Request.Context())),
	)
}

func (h *Handler) recoveryHandler(c *gin.Context, err any) {
	h.logger.Sugar().Errorf("recovered from panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewBasicResponse(false, service.ErrInternal.Error()))
}
