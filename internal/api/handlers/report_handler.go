package handlers

import (
	"bytes"
	"net/http"

	"github.com/andresuchdata/printfloor/internal/report"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	engine *report.Engine
}

func NewReportHandler(engine *report.Engine) *ReportHandler {
	return &ReportHandler{engine: engine}
}

// Summary returns the per-order summary, as CSV with ?format=csv.
func (h *ReportHandler) Summary(c *gin.Context) {
	rows, err := h.engine.Summary(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if wantsCSV(c) {
		var buf bytes.Buffer
		if err := report.WriteSummaryCSV(&buf, rows); err != nil {
			fail(c, err)
			return
		}
		sendCSV(c, "production_summary.csv", buf.Bytes())
		return
	}
	respond(c, http.StatusOK, rows)
}

// Matrix returns the date pivot, as CSV with ?format=csv.
func (h *ReportHandler) Matrix(c *gin.Context) {
	m, err := h.engine.Matrix(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if wantsCSV(c) {
		var buf bytes.Buffer
		if err := report.WriteMatrixCSV(&buf, m); err != nil {
			fail(c, err)
			return
		}
		sendCSV(c, "production_matrix.csv", buf.Bytes())
		return
	}
	respond(c, http.StatusOK, m)
}

// FloorSheet returns the daily sheet of ?plan_id= on ?date=. A sheet with
// found=false is a valid answer, not an error.
func (h *ReportHandler) FloorSheet(c *gin.Context) {
	date, planID := c.Query("date"), c.Query("plan_id")
	if date == "" || planID == "" {
		respondError(c, http.StatusBadRequest, "BAD_REQUEST", "date and plan_id are required")
		return
	}
	sheet, err := h.engine.DailyFloorSheet(c.Request.Context(), date, planID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, sheet)
}

func (h *ReportHandler) PlansForDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		respondError(c, http.StatusBadRequest, "BAD_REQUEST", "date is required")
		return
	}
	plans, err := h.engine.PlansForDate(c.Request.Context(), date)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, plans)
}

func sendCSV(c *gin.Context, filename string, body []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}
