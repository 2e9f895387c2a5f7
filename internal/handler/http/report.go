package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/balance"
	"github.com/pontolabs/ponto-backend-go/internal/domain/user"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
	"github.com/pontolabs/ponto-backend-go/internal/service/export"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	balanceService balance.BalanceService
	userService    user.UserService
	exportService  export.ExportService
}

func NewReportHandler(
	balanceService balance.BalanceService,
	userService user.UserService,
	exportService export.ExportService,
) ReportHandler {
	return &ReportHandlerImpl{
		balanceService: balanceService,
		userService:    userService,
		exportService:  exportService,
	}
}

// Monthly implements ReportHandler. It renders the monthly report as a file
// download in the requested format.
func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}
	if format != "xlsx" && format != "pdf" {
		response.BadRequest(w, "format must be xlsx or pdf", nil)
		return
	}

	month, year, err := reportPeriod(r)
	if err != nil {
		response.BadRequest(w, "month and year must be numbers", nil)
		return
	}

	subjectID, err := reportSubject(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.balanceService.ComputeMonthlyStatistics(r.Context(), subjectID, month, year)
	if err != nil {
		slog.Error("Monthly report statistics error", "error", err)
		response.HandleError(w, err)
		return
	}

	subject, err := h.userService.Get(r.Context(), subjectID)
	if err != nil {
		slog.Error("Monthly report user lookup error", "error", err)
		response.HandleError(w, err)
		return
	}

	report := export.MonthlyReport{User: subject, Stats: stats}
	filename := fmt.Sprintf("attendance-%s-%04d-%02d", subject.Registration, year, month)

	var data []byte
	var contentType string
	switch format {
	case "xlsx":
		data, err = h.exportService.RenderXLSX(report)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename += ".xlsx"
	case "pdf":
		data, err = h.exportService.RenderPDF(report)
		contentType = "application/pdf"
		filename += ".pdf"
	}
	if err != nil {
		slog.Error("Monthly report render error", "error", err, "format", format)
		response.InternalServerError(w, "Failed to render report")
		return
	}

	slog.Info("Monthly report rendered", "format", format, "month", month, "year", year)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
