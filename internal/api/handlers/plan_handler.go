package handlers

import (
	"net/http"

	"github.com/andresuchdata/printfloor/internal/service"
	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	plans *service.PlanService
}

func NewPlanHandler(plans *service.PlanService) *PlanHandler {
	return &PlanHandler{plans: plans}
}

type createPlanRequest struct {
	OrderID string `json:"order_id"`
	service.PlanInput
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	customer, style := c.Query("customer"), c.Query("style")
	if customer != "" && style != "" {
		plans, err := h.plans.SearchPlans(c.Request.Context(), customer, style)
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, plans)
		return
	}

	plans, err := h.plans.ListPlans(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, plans)
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req createPlanRequest
	if !bind(c, &req) {
		return
	}
	plan, err := h.plans.CreatePlan(c.Request.Context(), req.OrderID, req.PlanInput)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, plan)
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	var in service.PlanInput
	if !bind(c, &in) {
		return
	}
	plan, err := h.plans.UpdatePlan(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, plan)
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.plans.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

func (h *PlanHandler) Customers(c *gin.Context) {
	customers, err := h.plans.PlanCustomers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, customers)
}

func (h *PlanHandler) Styles(c *gin.Context) {
	styles, err := h.plans.PlanStyles(c.Request.Context(), c.Query("customer"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, styles)
}
