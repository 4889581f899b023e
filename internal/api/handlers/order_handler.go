package handlers

import (
	"net/http"

	"github.com/andresuchdata/printfloor/internal/service"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// ListOrders returns every order, or those matching ?customer=&style= when
// both are given.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	customer, style := c.Query("customer"), c.Query("style")
	if customer != "" && style != "" {
		orders, err := h.orders.SearchOrders(c.Request.Context(), customer, style)
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, orders)
		return
	}

	orders, err := h.orders.ListOrders(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, orders)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var in service.OrderInput
	if !bind(c, &in) {
		return
	}
	order, err := h.orders.CreateOrder(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, order)
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var in service.OrderInput
	if !bind(c, &in) {
		return
	}
	order, err := h.orders.UpdateOrder(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.orders.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

func (h *OrderHandler) Customers(c *gin.Context) {
	customers, err := h.orders.Customers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, customers)
}

func (h *OrderHandler) Styles(c *gin.Context) {
	styles, err := h.orders.Styles(c.Request.Context(), c.Query("customer"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, styles)
}
