package http

import (
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/GoodPie/aihl-media-app/internal/apperr"
	"github.com/GoodPie/aihl-media-app/internal/game"
)

func (s *Server) ListGamesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := game.ListFilter{
			Status: game.Status(q.Get("status")),
			TeamID: q.Get("teamId"),
			Date:   q.Get("date"),
		}
		if limitStr := q.Get("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit < 0 {
				respondError(w, apperr.Validation("limit %q is not a valid number", limitStr))
				return
			}
			filter.Limit = limit
		}

		games, err := s.Games.List(filter)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, games)
	}
}

func (s *Server) CreateGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params game.CreateParams
		if err := decodeJSON(r, &params); err != nil {
			respondError(w, err)
			return
		}
		g, err := s.Games.Create(params)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, g)
	}
}

func (s *Server) GetGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := s.Games.Get(r.PathValue("gameID"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, g)
	}
}

func (s *Server) UpdateGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]any
		if err := decodeJSON(r, &fields); err != nil {
			respondError(w, err)
			return
		}
		g, err := s.Games.Update(r.PathValue("gameID"), fields)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, g)
	}
}

func (s *Server) DeleteGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Games.Delete(r.PathValue("gameID")); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "game deleted"})
	}
}

func (s *Server) StartGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := s.Games.Start(r.PathValue("gameID"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, g)
	}
}

func (s *Server) StopGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := s.Games.Stop(r.PathValue("gameID"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, g)
	}
}

func (s *Server) UpdateScoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var update game.ScoreUpdate
		if err := decodeJSON(r, &update); err != nil {
			respondError(w, err)
			return
		}
		g, err := s.Games.UpdateScore(r.PathValue("gameID"), update)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, g)
	}
}

func (s *Server) UpdateTimeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			CurrentGameTime string `json:"currentGameTime"`
		}
		if err := decodeJSON(r, &body); err != nil {
			respondError(w, err)
			return
		}
		g, err := s.Games.UpdateTime(r.PathValue("gameID"), body.CurrentGameTime)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, g)
	}
}

func (s *Server) NextPeriodHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := s.Games.AdvancePeriod(r.PathValue("gameID"))
		if err != nil {
			respondError(w, err)
			return
		}
		log.Info("Period advanced via API", "gameID", g.ID, "period", g.CurrentPeriod)
		respondJSON(w, http.StatusOK, g)
	}
}
