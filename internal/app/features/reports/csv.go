// internal/app/features/reports/csv.go
package reports

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/impacthub/internal/app/system/jsonutil"
	"github.com/dalemusser/impacthub/internal/domain/models"
	"go.uber.org/zap"
)

// ServeSummaryCSV handles GET /api/reports/summary.csv and streams the
// summary as CSV: one row per active SDG plus a totals row. The columns are
// derived purely from the Summary shape, so the export stays in lockstep
// with the JSON contract.
func (h *Handler) ServeSummaryCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), reportsMedTimeout)
	defer cancel()

	summary, err := h.Reports.BuildSummary(ctx)
	if err != nil {
		h.Log.Error("build summary for CSV failed", zap.Error(err))
		jsonutil.WriteServerError(w)
		return
	}

	filename := fmt.Sprintf("sdg-summary-%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"SDG", "Code", "Title", "Projects", "Publications", "Departments", "Researchers"})
	for _, row := range summary.Sdgs {
		_ = cw.Write([]string{
			strconv.Itoa(row.ID),
			row.Code,
			row.Title,
			strconv.Itoa(row.ProjectCount),
			strconv.Itoa(row.PublicationCount),
			strconv.Itoa(row.DepartmentCount),
			strconv.Itoa(row.ResearcherCount),
		})
	}
	_ = cw.Write([]string{
		"", "", "Totals",
		strconv.Itoa(summary.Totals.Projects),
		strconv.Itoa(summary.Totals.Publications),
		strconv.Itoa(summary.Totals.Departments),
		strconv.Itoa(summary.Totals.Researchers),
	})
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.Log.Error("write summary CSV failed", zap.Error(err))
	}
}

// ServeSdgDetailCSV handles GET /api/reports/sdg/{sdgID}.csv and streams
// every record linked to the SDG with its resolved participants.
func (h *Handler) ServeSdgDetailCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), reportsMedTimeout)
	defer cancel()

	sdgID, ok := parseSdgID(r)
	if !ok {
		jsonutil.WriteNotFound(w, "SDG not found.")
		return
	}
	detail, err := h.Reports.BuildSdgDetail(ctx, sdgID)
	if err != nil {
		h.Log.Error("build SDG detail for CSV failed", zap.Int("sdg_id", sdgID), zap.Error(err))
		jsonutil.WriteServerError(w)
		return
	}
	if detail == nil {
		jsonutil.WriteNotFound(w, "SDG not found.")
		return
	}

	filename := fmt.Sprintf("sdg-%d-records-%s.csv", sdgID, time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Type", "Title", "Year", "Department", "Researchers"})
	writeRows := func(rows []models.ResolvedRecord) {
		for _, rec := range rows {
			department := ""
			if rec.Department != nil {
				department = rec.Department.Name
			}
			names := make([]string, 0, len(rec.Researchers))
			for _, res := range rec.Researchers {
				names = append(names, res.Name)
			}
			_ = cw.Write([]string{
				rec.Type,
				rec.Title,
				strconv.Itoa(rec.Year),
				department,
				strings.Join(names, "; "),
			})
		}
	}
	writeRows(detail.Projects)
	writeRows(detail.Publications)
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.Log.Error("write SDG detail CSV failed", zap.Int("sdg_id", sdgID), zap.Error(err))
	}
}
