package http

import (
	"net/http"

	"github.com/GoodPie/aihl-media-app/internal/apperr"
	"github.com/GoodPie/aihl-media-app/internal/league"
)

func (s *Server) ListTeamsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := s.League.ListTeams()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, teams)
	}
}

func (s *Server) CreateTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var team league.Team
		if err := decodeJSON(r, &team); err != nil {
			respondError(w, err)
			return
		}
		if team.Name == "" {
			respondError(w, apperr.Validation("teamName is required"))
			return
		}
		if err := s.League.CreateTeam(&team); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, team)
	}
}

func (s *Server) GetTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := r.PathValue("teamID")
		team, err := s.League.GetTeam(teamID)
		if err != nil {
			respondError(w, err)
			return
		}
		if team == nil {
			respondError(w, apperr.NotFound("team %s not found", teamID))
			return
		}
		respondJSON(w, http.StatusOK, team)
	}
}

func (s *Server) UpdateTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := r.PathValue("teamID")
		var fields map[string]any
		if err := decodeJSON(r, &fields); err != nil {
			respondError(w, err)
			return
		}
		if err := s.League.UpdateTeam(teamID, fields); err != nil {
			respondError(w, err)
			return
		}
		team, err := s.League.GetTeam(teamID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, team)
	}
}

func (s *Server) DeleteTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.League.DeleteTeam(r.PathValue("teamID")); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "team deleted"})
	}
}

func (s *Server) ListTeamPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := r.PathValue("teamID")
		team, err := s.League.GetTeam(teamID)
		if err != nil {
			respondError(w, err)
			return
		}
		if team == nil {
			respondError(w, apperr.NotFound("team %s not found", teamID))
			return
		}
		players, err := s.League.ListPlayers(teamID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, players)
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.League.ListPlayers(r.URL.Query().Get("teamId"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, players)
	}
}

func (s *Server) CreatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var player league.Player
		if err := decodeJSON(r, &player); err != nil {
			respondError(w, err)
			return
		}
		if player.Name == "" || player.TeamID == "" {
			respondError(w, apperr.Validation("playerName and teamId are required"))
			return
		}
		team, err := s.League.GetTeam(player.TeamID)
		if err != nil {
			respondError(w, err)
			return
		}
		if team == nil {
			respondError(w, apperr.Reference("team %s does not exist", player.TeamID))
			return
		}
		if err := s.League.CreatePlayer(&player); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, player)
	}
}

func (s *Server) GetPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.PathValue("playerID")
		player, err := s.League.GetPlayer(playerID)
		if err != nil {
			respondError(w, err)
			return
		}
		if player == nil {
			respondError(w, apperr.NotFound("player %s not found", playerID))
			return
		}
		respondJSON(w, http.StatusOK, player)
	}
}

func (s *Server) UpdatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.PathValue("playerID")
		var fields map[string]any
		if err := decodeJSON(r, &fields); err != nil {
			respondError(w, err)
			return
		}
		if teamID, ok := fields["teamId"].(string); ok {
			team, err := s.League.GetTeam(teamID)
			if err != nil {
				respondError(w, err)
				return
			}
			if team == nil {
				respondError(w, apperr.Reference("team %s does not exist", teamID))
				return
			}
		}
		if err := s.League.UpdatePlayer(playerID, fields); err != nil {
			respondError(w, err)
			return
		}
		player, err := s.League.GetPlayer(playerID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, player)
	}
}

func (s *Server) DeletePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.League.DeletePlayer(r.PathValue("playerID")); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "player deleted"})
	}
}
