package handlers

import (
	"net/http"

	"github.com/andresuchdata/printfloor/internal/api/middleware"
	"github.com/andresuchdata/printfloor/internal/domain"
	"github.com/andresuchdata/printfloor/internal/service"
	"github.com/gin-gonic/gin"
)

type DowntimeHandler struct {
	downtime *service.DowntimeService
}

func NewDowntimeHandler(downtime *service.DowntimeService) *DowntimeHandler {
	return &DowntimeHandler{downtime: downtime}
}

type editDowntimeRequest struct {
	Hours  float64 `json:"hours"`
	Reason string  `json:"reason"`
}

// ListDowntime returns the log, filtered by ?date= when given.
func (h *DowntimeHandler) ListDowntime(c *gin.Context) {
	var (
		records []domain.DowntimeRecord
		err     error
	)
	if date := c.Query("date"); date != "" {
		records, err = h.downtime.ListByDate(c.Request.Context(), date)
	} else {
		records, err = h.downtime.List(c.Request.Context())
	}
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, records)
}

func (h *DowntimeHandler) Categories(c *gin.Context) {
	respond(c, http.StatusOK, domain.DowntimeCategories)
}

func (h *DowntimeHandler) LogDowntime(c *gin.Context) {
	var entry service.DowntimeEntry
	if !bind(c, &entry) {
		return
	}
	role, name := middleware.Actor(c)
	record, err := h.downtime.Log(c.Request.Context(), role, name, entry)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, record)
}

func (h *DowntimeHandler) EditDowntime(c *gin.Context) {
	var req editDowntimeRequest
	if !bind(c, &req) {
		return
	}
	record, err := h.downtime.Edit(c.Request.Context(), c.Param("id"), req.Hours, req.Reason)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, record)
}

func (h *DowntimeHandler) Acknowledge(c *gin.Context) {
	role, name := middleware.Actor(c)
	record, err := h.downtime.Acknowledge(c.Request.Context(), c.Param("id"), role, name)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, record)
}

func (h *DowntimeHandler) DeleteDowntime(c *gin.Context) {
	if err := h.downtime.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"id": c.Param("id")})
}
