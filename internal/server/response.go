package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/quantfeed/stock-data/internal/model"
)

// Info carries the error slot of the uniform envelope; empty on success.
type Info struct {
	Error string `json:"error"`
}

// Pagination describes one page of a filtered result set.
type Pagination struct {
	Count int `json:"count"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// ObservationDTO is the wire shape of one observation.
type ObservationDTO struct {
	Symbol     string          `json:"symbol"`
	Date       string          `json:"date"`
	OpenPrice  decimal.Decimal `json:"open_price"`
	ClosePrice decimal.Decimal `json:"close_price"`
	Volume     int64           `json:"volume"`
}

func toDTO(obs model.Observation) ObservationDTO {
	return ObservationDTO{
		Symbol:     obs.Symbol,
		Date:       obs.DateString(),
		OpenPrice:  obs.OpenPrice,
		ClosePrice: obs.ClosePrice,
		Volume:     obs.Volume,
	}
}

// ListResponse is the envelope of GET /api/financial_data.
type ListResponse struct {
	Data       []ObservationDTO `json:"data,omitempty"`
	Pagination *Pagination      `json:"pagination,omitempty"`
	Info       Info             `json:"info"`
}

// StatsData is the payload of GET /api/statistics. Averages are null when the
// range holds no observations.
type StatsData struct {
	StartDate      string           `json:"start_date"`
	EndDate        string           `json:"end_date"`
	Symbol         string           `json:"symbol"`
	AvgDailyOpen   *decimal.Decimal `json:"average_daily_open_price"`
	AvgDailyClose  *decimal.Decimal `json:"average_daily_close_price"`
	AvgDailyVolume *decimal.Decimal `json:"average_daily_volume"`
}

// StatsResponse is the envelope of GET /api/statistics.
type StatsResponse struct {
	Data *StatsData `json:"data,omitempty"`
	Info Info       `json:"info"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Default().Error("failed to encode response", "error", err)
	}
}

func writeListError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ListResponse{Info: Info{Error: message}})
}

func writeStatsError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, StatsResponse{Info: Info{Error: message}})
}
