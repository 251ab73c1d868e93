package http

import (
	"net/http"
	"strconv"

	"github.com/GoodPie/aihl-media-app/internal/apperr"
	"github.com/GoodPie/aihl-media-app/internal/event"
)

func (s *Server) ListEventsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := event.ListFilter{
			GameID:    q.Get("gameId"),
			EventType: q.Get("eventType"),
		}
		if limitStr := q.Get("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit < 0 {
				respondError(w, apperr.Validation("limit %q is not a valid number", limitStr))
				return
			}
			filter.Limit = limit
		}

		events, err := s.Events.List(filter)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, events)
	}
}

// CreateEventHandler creates an event, or generates text only when called
// with ?action=generate-text.
func (s *Server) CreateEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("action") == "generate-text" {
			var params event.GenerateTextParams
			if err := decodeJSON(r, &params); err != nil {
				respondError(w, err)
				return
			}
			result, err := s.Events.GenerateText(params)
			if err != nil {
				respondError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, result)
			return
		}

		var params event.CreateParams
		if err := decodeJSON(r, &params); err != nil {
			respondError(w, err)
			return
		}
		ev, err := s.Events.Create(params)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, ev)
	}
}

func (s *Server) GetEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ev, err := s.Events.Get(r.PathValue("eventID"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, ev)
	}
}

func (s *Server) UpdateEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]any
		if err := decodeJSON(r, &fields); err != nil {
			respondError(w, err)
			return
		}
		ev, err := s.Events.Update(r.PathValue("eventID"), fields)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, ev)
	}
}

func (s *Server) DeleteEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Events.Delete(r.PathValue("eventID")); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "event deleted"})
	}
}
