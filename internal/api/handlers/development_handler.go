package handlers

import (
	"net/http"

	"github.com/andresuchdata/printfloor/internal/api/middleware"
	"github.com/andresuchdata/printfloor/internal/development"
	"github.com/gin-gonic/gin"
)

type DevelopmentHandler struct {
	workflow *development.Workflow
}

func NewDevelopmentHandler(workflow *development.Workflow) *DevelopmentHandler {
	return &DevelopmentHandler{workflow: workflow}
}

func (h *DevelopmentHandler) ListItems(c *gin.Context) {
	items, err := h.workflow.Items(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, items)
}

func (h *DevelopmentHandler) SubmitRequest(c *gin.Context) {
	var req development.Request
	if !bind(c, &req) {
		return
	}
	item, err := h.workflow.SubmitRequest(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, item)
}

// Approve marks the item approved and returns it with the order created
// for it.
func (h *DevelopmentHandler) Approve(c *gin.Context) {
	role, _ := middleware.Actor(c)
	item, order, err := h.workflow.Approve(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"item": item, "order": order})
}

func (h *DevelopmentHandler) Reject(c *gin.Context) {
	role, _ := middleware.Actor(c)
	item, err := h.workflow.Reject(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, item)
}

func (h *DevelopmentHandler) Artwork(c *gin.Context) {
	item, err := h.workflow.Artwork(c.Request.Context(), c.Query("customer"), c.Query("style"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, item)
}
