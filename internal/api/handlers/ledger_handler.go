package handlers

import (
	"net/http"

	"github.com/andresuchdata/printfloor/internal/api/middleware"
	"github.com/andresuchdata/printfloor/internal/domain"
	"github.com/andresuchdata/printfloor/internal/ledger"
	"github.com/andresuchdata/printfloor/internal/report"
	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	ledger *ledger.Ledger
}

func NewLedgerHandler(l *ledger.Ledger) *LedgerHandler {
	return &LedgerHandler{ledger: l}
}

type gridResponse struct {
	Slots    []domain.HourlyProduction `json:"slots"`
	Fields   []domain.CounterField     `json:"fields"`
	EditMode bool                      `json:"edit_mode"`
	Totals   domain.HourlyProduction   `json:"totals"`
}

type setCounterRequest struct {
	Value string `json:"value"`
}

type setLabelRequest struct {
	Label string `json:"label"`
}

type editModeRequest struct {
	On bool `json:"on"`
}

type submitRequest struct {
	PlanID      string `json:"plan_id"`
	DailyTarget int    `json:"daily_target"`
}

type outputResponse struct {
	domain.DailyOutputRecord
	Efficiency int `json:"efficiency"`
}

func (h *LedgerHandler) grid(c *gin.Context, status int) {
	slots := h.ledger.Grid()
	totals := domain.SumHourly(slots)
	totals.TimeSlot = "Total"
	respond(c, status, gridResponse{
		Slots:    slots,
		Fields:   domain.CounterFields,
		EditMode: h.ledger.EditMode(),
		Totals:   totals,
	})
}

func (h *LedgerHandler) GetGrid(c *gin.Context) {
	h.grid(c, http.StatusOK)
}

func (h *LedgerHandler) SetCounter(c *gin.Context) {
	slot, ok := intParam(c, "slot")
	if !ok {
		return
	}
	var req setCounterRequest
	if !bind(c, &req) {
		return
	}
	if err := h.ledger.SetCounter(slot, domain.CounterField(c.Param("field")), req.Value); err != nil {
		fail(c, err)
		return
	}
	h.grid(c, http.StatusOK)
}

func (h *LedgerHandler) SetSlotLabel(c *gin.Context) {
	slot, ok := intParam(c, "slot")
	if !ok {
		return
	}
	var req setLabelRequest
	if !bind(c, &req) {
		return
	}
	role, _ := middleware.Actor(c)
	if err := h.ledger.SetSlotLabel(role, slot, req.Label); err != nil {
		fail(c, err)
		return
	}
	h.grid(c, http.StatusOK)
}

func (h *LedgerHandler) SetEditMode(c *gin.Context) {
	var req editModeRequest
	if !bind(c, &req) {
		return
	}
	role, _ := middleware.Actor(c)
	if err := h.ledger.SetEditMode(role, req.On); err != nil {
		fail(c, err)
		return
	}
	h.grid(c, http.StatusOK)
}

func (h *LedgerHandler) Submit(c *gin.Context) {
	var req submitRequest
	if !bind(c, &req) {
		return
	}
	record, err := h.ledger.Submit(c.Request.Context(), req.PlanID, req.DailyTarget)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, outputResponse{DailyOutputRecord: record, Efficiency: report.Efficiency(record)})
}

func (h *LedgerHandler) ListOutputs(c *gin.Context) {
	records, err := h.ledger.Outputs(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]outputResponse, 0, len(records))
	for _, r := range records {
		out = append(out, outputResponse{DailyOutputRecord: r, Efficiency: report.Efficiency(r)})
	}
	respond(c, http.StatusOK, out)
}
