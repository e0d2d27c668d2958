package handler

import (
	"net/http"

	"github.com/birthdaybliss/bliss-backend/internal/common"
	"github.com/birthdaybliss/bliss-backend/internal/domain"
	"github.com/birthdaybliss/bliss-backend/internal/middleware"
	"github.com/birthdaybliss/bliss-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// MemoryHandler handles memory wall guestbook endpoints
type MemoryHandler struct {
	service service.MemoryService
}

// NewMemoryHandler creates a new MemoryHandler
func NewMemoryHandler(svc service.MemoryService) *MemoryHandler {
	return &MemoryHandler{service: svc}
}

// Append godoc
// @Summary      Leave a birthday message
// @Description  Appends one guestbook entry to a birthday page
// @Tags         memories
// @Accept       json
// @Produce      json
// @Param        id       path  string                      true  "Birthday page ID"
// @Param        request  body  domain.CreateMemoryRequest  true  "Guestbook entry"
// @Success      201  {object}  common.Response{data=domain.MemoryResponse}
// @Failure      400  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Router       /birthdays/{id}/memories [post]
func (h *MemoryHandler) Append(c *gin.Context) {
	var req domain.CreateMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.Append(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		common.FailFromError(c, err, "Could not post the message")
		return
	}

	middleware.CountMemoryAppended()
	common.Created(c, resp)
}

// List godoc
// @Summary      List birthday messages
// @Description  Returns all guestbook entries for a page in chronological order
// @Tags         memories
// @Produce      json
// @Param        id  path  string  true  "Birthday page ID"
// @Success      200  {object}  common.Response{data=[]domain.MemoryResponse}
// @Failure      500  {object}  common.Response
// @Router       /birthdays/{id}/memories [get]
func (h *MemoryHandler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.FailFromError(c, err, "Could not load messages")
		return
	}

	total, err := h.service.Count(c.Request.Context(), c.Param("id"))
	if err != nil {
		total = int64(len(resp))
	}
	common.SuccessWithMeta(c, resp, &common.Meta{Total: total})
}
