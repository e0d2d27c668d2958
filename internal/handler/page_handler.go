package handler

import (
	"encoding/json"
	"io"
	"time"

	"github.com/birthdaybliss/bliss-backend/internal/common"
	"github.com/birthdaybliss/bliss-backend/internal/service"
	"github.com/birthdaybliss/bliss-backend/pkg/countdown"
	"github.com/gin-gonic/gin"
)

// PageHandler handles the view-selected display endpoints
type PageHandler struct {
	pages service.PageService
	tts   service.TTSService
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(pages service.PageService, tts service.TTSService) *PageHandler {
	return &PageHandler{pages: pages, tts: tts}
}

// GetPage godoc
// @Summary      Get the rendered page document
// @Description  Classifies the page date against now and returns the matching view payload
// @Tags         pages
// @Produce      json
// @Param        id  path  string  true  "Birthday page ID"
// @Success      200  {object}  common.Response{data=service.PageDocument}
// @Failure      404  {object}  common.Response
// @Router       /birthdays/{id}/page [get]
func (h *PageHandler) GetPage(c *gin.Context) {
	doc, err := h.pages.BuildPage(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.FailFromError(c, err, "Birthday celebration not found. The link may be invalid or expired.")
		return
	}
	common.Success(c, doc)
}

// GetCountdown godoc
// @Summary      Get a countdown snapshot
// @Description  One-shot remaining time until the birthday instant
// @Tags         pages
// @Produce      json
// @Param        id  path  string  true  "Birthday page ID"
// @Success      200  {object}  common.Response{data=countdown.Remaining}
// @Failure      404  {object}  common.Response
// @Router       /birthdays/{id}/countdown [get]
func (h *PageHandler) GetCountdown(c *gin.Context) {
	remaining, _, err := h.pages.Countdown(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.FailFromError(c, err, "Birthday page not found")
		return
	}
	common.Success(c, remaining)
}

// StreamCountdown godoc
// @Summary      Stream countdown ticks
// @Description  Server-sent events with one remaining-time snapshot per second until arrival
// @Tags         pages
// @Produce      text/event-stream
// @Param        id  path  string  true  "Birthday page ID"
// @Success      200
// @Failure      404  {object}  common.Response
// @Router       /birthdays/{id}/countdown/stream [get]
func (h *PageHandler) StreamCountdown(c *gin.Context) {
	_, target, err := h.pages.Countdown(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.FailFromError(c, err, "Birthday page not found")
		return
	}

	ticker := countdown.NewTicker(target, time.Second, nil)
	defer ticker.Stop()

	// the request context cancels the ticker when the client disconnects
	ticks := ticker.Run(c.Request.Context())

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		r, ok := <-ticks
		if !ok {
			return false
		}
		data, err := json.Marshal(r)
		if err != nil {
			return false
		}
		c.SSEvent("tick", string(data))
		return !r.Arrived
	})
}

// GetShareLinks godoc
// @Summary      Get share links
// @Description  Share URL plus WhatsApp, Telegram and Google Calendar variants
// @Tags         pages
// @Produce      json
// @Param        id  path  string  true  "Birthday page ID"
// @Success      200  {object}  common.Response{data=service.ShareLinks}
// @Failure      404  {object}  common.Response
// @Router       /birthdays/{id}/share [get]
func (h *PageHandler) GetShareLinks(c *gin.Context) {
	links, err := h.pages.Share(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.FailFromError(c, err, "Birthday page not found")
		return
	}
	common.Success(c, links)
}

// SpeakMessage godoc
// @Summary      Read the birthday message aloud
// @Description  Synthesizes speech for the page message via the AI collaborator
// @Tags         pages
// @Produce      json
// @Param        id  path  string  true  "Birthday page ID"
// @Success      200  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Failure      502  {object}  common.Response
// @Router       /birthdays/{id}/message/audio [post]
func (h *PageHandler) SpeakMessage(c *gin.Context) {
	audio, err := h.tts.SpeakMessage(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.FailFromError(c, err, "Sorry, couldn't read the message right now")
		return
	}
	common.Success(c, gin.H{"audio_data_uri": audio})
}
