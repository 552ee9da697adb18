package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"

	"github.com/tkumagai/tabiplan"
	"github.com/tkumagai/tabiplan/renderer"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, map[string]string{"error": err.Error()})
}

func dayParam(r *http.Request) (int, error) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil || day < 0 {
		return 0, errors.New("day must be a non-negative integer")
	}
	return day, nil
}

func (s *Server) handleDays(w http.ResponseWriter, r *http.Request) {
	it := s.planner.Itinerary()
	type dayInfo struct {
		Day   int    `json:"day"`
		Date  string `json:"date,omitempty"`
		Cards int    `json:"cards"`
	}
	days := []dayInfo{}
	for _, d := range it.Days() {
		info := dayInfo{Day: d, Cards: len(it.ActiveCards(d))}
		if d > 0 {
			info.Date = it.DayDate(d).String()
		}
		days = append(days, info)
	}
	respondJSON(w, http.StatusOK, days)
}

func (s *Server) handleDayCards(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	cards := s.planner.Itinerary().ActiveCards(day)
	if cards == nil {
		cards = []tabiplan.TravelCard{}
	}
	respondJSON(w, http.StatusOK, cards)
}

func (s *Server) handleDayTotal(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	total := s.planner.Itinerary().DayTotal(day)
	respondJSON(w, http.StatusOK, map[string]any{
		"day":      day,
		"amount":   total.Amount(),
		"currency": total.Currency(),
		"display":  total.String(),
	})
}

// handleDayView renders the markdown day view to HTML.
func (s *Server) handleDayView(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	source := renderer.Day(s.planner.Itinerary(), day, nil)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := goldmark.Convert([]byte(source), w); err != nil {
		respondError(w, http.StatusInternalServerError, err)
	}
}

func (s *Server) handleAddCard(w http.ResponseWriter, r *http.Request) {
	var req tabiplan.NewCard
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	id, err := s.planner.AddCard(r.Context(), req)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.planner.ToggleDeleted(id); err != nil {
		if errors.Is(err, tabiplan.ErrNotFound) {
			respondError(w, http.StatusNotFound, err)
			return
		}
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		Item   string          `json:"item"`
		Amount decimal.Decimal `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.planner.AddExpense(id, req.Item, req.Amount); err != nil {
		if errors.Is(err, tabiplan.ErrNotFound) {
			respondError(w, http.StatusNotFound, err)
			return
		}
		respondError(w, http.StatusUnprocessableEntity, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}
