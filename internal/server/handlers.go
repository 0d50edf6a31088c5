package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/quantfeed/stock-data/internal/model"
	"github.com/quantfeed/stock-data/internal/query"
	"github.com/quantfeed/stock-data/internal/store"
)

// handleFinancialData lists observations for optional symbol and date-range
// filters, paginated, sorted by date ascending.
func (s *Server) handleFinancialData(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		writeListError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	page, err := s.parsePage(r)
	if err != nil {
		writeListError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	sort := []query.SortField{{Field: "date", Direction: query.Asc}}

	data, total, pages, err := s.reader.List(r.Context(), filter, sort, page)
	if err != nil {
		status, message := readErrorStatus(err)
		s.logger.Error("financial data query failed", "error", err)
		writeListError(w, status, message)
		return
	}

	dtos := make([]ObservationDTO, 0, len(data))
	for _, obs := range data {
		dtos = append(dtos, toDTO(obs))
	}

	writeJSON(w, http.StatusOK, ListResponse{
		Data: dtos,
		Pagination: &Pagination{
			Count: total,
			Page:  page.Page,
			Limit: page.Limit,
			Pages: pages,
		},
		Info: Info{Error: ""},
	})
}

// handleStatistics aggregates average open price, close price, and volume for
// a mandatory symbol and date range.
func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	filter, err := parseStatsFilter(r)
	if err != nil {
		writeStatsError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	stats, err := s.reader.Stats(r.Context(), filter)
	if err != nil {
		status, message := readErrorStatus(err)
		s.logger.Error("statistics query failed", "error", err)
		writeStatsError(w, status, message)
		return
	}

	data := &StatsData{
		StartDate: filter.StartDate.Format(model.DateFormat),
		EndDate:   filter.EndDate.Format(model.DateFormat),
		Symbol:    filter.Symbol,
	}
	if stats.AvgOpenPrice.Valid {
		data.AvgDailyOpen = &stats.AvgOpenPrice.Decimal
	}
	if stats.AvgClosePrice.Valid {
		data.AvgDailyClose = &stats.AvgClosePrice.Decimal
	}
	if stats.AvgVolume.Valid {
		data.AvgDailyVolume = &stats.AvgVolume.Decimal
	}

	writeJSON(w, http.StatusOK, StatsResponse{Data: data, Info: Info{Error: ""}})
}

// handleLivez is the liveness probe.
func (s *Server) handleLivez(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, "OK")
}

// handleHealthz is the readiness probe; it fails when the store is
// unreachable.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := s.pinger.Ping(r.Context()); err != nil {
		s.logger.Error("readiness probe failed", "error", err)
		writeStatsError(w, http.StatusServiceUnavailable, "database is unreachable")
		return
	}
	writeJSON(w, http.StatusOK, "OK")
}

func parseListFilter(r *http.Request) (store.ListFilter, error) {
	q := r.URL.Query()

	var filter store.ListFilter
	filter.Symbol = q.Get("symbol")

	start, err := parseDateParam(q.Get("start_date"), "start_date")
	if err != nil {
		return store.ListFilter{}, err
	}
	filter.StartDate = start

	end, err := parseDateParam(q.Get("end_date"), "end_date")
	if err != nil {
		return store.ListFilter{}, err
	}
	filter.EndDate = end

	if err := filter.Validate(); err != nil {
		return store.ListFilter{}, err
	}
	return filter, nil
}

func parseStatsFilter(r *http.Request) (store.StatsFilter, error) {
	q := r.URL.Query()

	symbol := q.Get("symbol")
	if symbol == "" {
		return store.StatsFilter{}, errors.New("symbol: field required")
	}

	start, err := parseDateParam(q.Get("start_date"), "start_date")
	if err != nil {
		return store.StatsFilter{}, err
	}
	if start == nil {
		return store.StatsFilter{}, errors.New("start_date: field required")
	}

	end, err := parseDateParam(q.Get("end_date"), "end_date")
	if err != nil {
		return store.StatsFilter{}, err
	}
	if end == nil {
		return store.StatsFilter{}, errors.New("end_date: field required")
	}

	filter := store.StatsFilter{Symbol: symbol, StartDate: *start, EndDate: *end}
	if err := filter.Validate(); err != nil {
		return store.StatsFilter{}, err
	}
	return filter, nil
}

func parseDateParam(raw, name string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := model.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid date %q, expected YYYY-MM-DD", name, raw)
	}
	return &t, nil
}

func (s *Server) parsePage(r *http.Request) (query.Page, error) {
	q := r.URL.Query()

	page := 1
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return query.Page{}, fmt.Errorf("page: must be an integer >= 1")
		}
		page = n
	}

	limit := s.cfg.DefaultLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > s.cfg.MaxLimit {
			return query.Page{}, fmt.Errorf("limit: must be an integer between 1 and %d", s.cfg.MaxLimit)
		}
		limit = n
	}

	return query.Page{Page: page, Limit: limit}, nil
}

// readErrorStatus maps a read-path failure onto the response taxonomy:
// request-shape and contract errors are 422, persistence failures are 500.
func readErrorStatus(err error) (int, string) {
	var fieldErr *query.InvalidFilterFieldError
	var opErr *query.InvalidFilterOperatorError
	if errors.As(err, &fieldErr) || errors.As(err, &opErr) || errors.Is(err, store.ErrInvalidDateRange) {
		return http.StatusUnprocessableEntity, err.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}
