package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/domain/balance"
	"github.com/pontolabs/ponto-backend-go/internal/domain/record"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	MonthlyStatistics(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	balanceService balance.BalanceService
}

func NewDashboardHandler(balanceService balance.BalanceService) DashboardHandler {
	return &DashboardHandlerImpl{balanceService: balanceService}
}

// reportPeriod resolves the month/year query parameters, defaulting to the
// current month.
func reportPeriod(r *http.Request) (month, year int, err error) {
	now := time.Now().UTC()
	month, year = int(now.Month()), now.Year()

	if v := r.URL.Query().Get("month"); v != "" {
		month, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, err
		}
	}
	if v := r.URL.Query().Get("year"); v != "" {
		year, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, err
		}
	}
	return month, year, nil
}

// reportSubject resolves which user's data is requested: the authenticated
// user by default, or any user when an admin passes user_id.
func reportSubject(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	actorID, ok := claims["user_id"].(string)
	if !ok || actorID == "" {
		return "", auth.ErrInvalidToken
	}
	isAdmin, _ := claims["is_admin"].(bool)

	subjectID := r.URL.Query().Get("user_id")
	if subjectID == "" || subjectID == actorID {
		return actorID, nil
	}
	if !isAdmin {
		return "", record.ErrUnauthorized
	}
	return subjectID, nil
}

// MonthlyStatistics implements DashboardHandler.
func (h *DashboardHandlerImpl) MonthlyStatistics(w http.ResponseWriter, r *http.Request) {
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
		slog.Error("Monthly statistics service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance.ToMonthlyStatsResponse(stats))
}
