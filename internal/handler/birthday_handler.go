package handler

import (
	"net/http"

	"github.com/birthdaybliss/bliss-backend/internal/common"
	"github.com/birthdaybliss/bliss-backend/internal/domain"
	"github.com/birthdaybliss/bliss-backend/internal/middleware"
	"github.com/birthdaybliss/bliss-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// BirthdayHandler handles birthday page record endpoints
type BirthdayHandler struct {
	service service.BirthdayService
}

// NewBirthdayHandler creates a new BirthdayHandler
func NewBirthdayHandler(svc service.BirthdayService) *BirthdayHandler {
	return &BirthdayHandler{service: svc}
}

// Create godoc
// @Summary      Create a birthday page
// @Description  Validates and persists a new birthday page record
// @Tags         birthdays
// @Accept       json
// @Produce      json
// @Param        request  body  domain.CreateBirthdayRequest  true  "Birthday page payload"
// @Success      201  {object}  common.Response{data=domain.BirthdayResponse}
// @Failure      400  {object}  common.Response
// @Failure      500  {object}  common.Response
// @Router       /birthdays [post]
func (h *BirthdayHandler) Create(c *gin.Context) {
	var req domain.CreateBirthdayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		common.FailFromError(c, err, "Could not create the birthday page")
		return
	}

	middleware.CountBirthdayCreated()
	common.Created(c, resp)
}

// Get godoc
// @Summary      Get a birthday page record
// @Description  Point lookup of a birthday page by id
// @Tags         birthdays
// @Produce      json
// @Param        id  path  string  true  "Birthday page ID"
// @Success      200  {object}  common.Response{data=domain.BirthdayResponse}
// @Failure      404  {object}  common.Response
// @Router       /birthdays/{id} [get]
func (h *BirthdayHandler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.FailFromError(c, err, "Birthday page not found")
		return
	}
	common.Success(c, resp)
}
