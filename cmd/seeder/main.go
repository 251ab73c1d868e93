package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/GoodPie/aihl-media-app/internal/database"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":           "aihl-media.db",
		"MIGRATIONS_DIR":    "migrations",
		"TURSO_PRIMARY_URL": "",
		"TURSO_AUTH_TOKEN":  "",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

type seedTeam struct {
	id       string
	name     string
	division string
	roster   [][2]string // name, jersey number
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer teardown()

	now := time.Now().Unix()

	teams := []seedTeam{
		{id: "team-perth", name: "Perth Thunder", division: "AIHL", roster: [][2]string{
			{"Jamie Woodman", "17"}, {"Sam Wilkinson", "9"}, {"Declan Hay", "31"},
		}},
		{id: "team-melbourne", name: "Melbourne Ice", division: "AIHL", roster: [][2]string{
			{"Austin McKenzie", "12"}, {"Lliam Webster", "27"},
		}},
	}
	for _, team := range teams {
		_, err := db.Exec(
			"INSERT OR IGNORE INTO teams (id, name, division, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			team.id, team.name, team.division, now, now,
		)
		if err != nil {
			log.Fatalf("Failed to insert team %s: %s", team.name, err)
		}
		for _, player := range team.roster {
			_, err := db.Exec(
				"INSERT OR IGNORE INTO players (id, team_id, name, jersey_number, position, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
				uuid.NewString(), team.id, player[0], player[1], "forward", now, now,
			)
			if err != nil {
				log.Fatalf("Failed to insert player %s: %s", player[0], err)
			}
		}
	}
	log.Info("Ensured teams and rosters exist.")

	_, err = db.Exec(
		"INSERT OR IGNORE INTO template_categories (id, name, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		"cat-game-events", "Game events", "Announcements for in-game events", now, now,
	)
	if err != nil {
		log.Fatalf("Failed to insert template category: %s", err)
	}

	templates := []struct {
		id, eventType, name, text string
		isDefault                 bool
	}{
		{"tpl-goal", "GOAL", "Standard goal", "GOAL! {{team}} score! {{playerName}} (#{{playerNumber}}) with {{timeRemaining}} left in the {{period}}. {{homeTeam}} {{homeScore}} - {{awayScore}} {{awayTeam}}", true},
		{"tpl-goal-short", "GOAL", "Short goal", "{{playerName}} scores! {{homeScore}}-{{awayScore}}", false},
		{"tpl-penalty", "PENALTY", "Standard penalty", "Penalty on {{playerName}} ({{team}}): {{penaltyType}}, {{penaltyDuration}}.", true},
		{"tpl-period-start", "PERIOD_START", "Period start", "The {{period}} is underway at {{venue}}!", true},
		{"tpl-game-start", "GAME_START", "Game start", "Puck drop! {{homeTeam}} host {{awayTeam}} at {{venue}}.", true},
		{"tpl-game-end", "GAME_END", "Game end", "Final score: {{homeTeam}} {{homeScore}} - {{awayScore}} {{awayTeam}}.", true},
	}
	for _, tpl := range templates {
		_, err := db.Exec(
			"INSERT OR IGNORE INTO templates (id, category_id, event_type, name, text, is_default, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			tpl.id, "cat-game-events", tpl.eventType, tpl.name, tpl.text, tpl.isDefault, now, now,
		)
		if err != nil {
			log.Fatalf("Failed to insert template %s: %s", tpl.id, err)
		}
	}
	log.Info("Ensured templates exist.", "count", len(templates))

	variables := []struct{ name, category, description string }{
		{"playerName", "player", "Full name of the player involved in the event"},
		{"playerNumber", "player", "Jersey number of the player"},
		{"team", "team", "Name of the team the event belongs to"},
		{"homeTeam", "team", "Name of the home team"},
		{"awayTeam", "team", "Name of the away team"},
		{"homeScore", "score", "Home side's score after the event"},
		{"awayScore", "score", "Away side's score after the event"},
		{"scoreStatus", "score", "lead, trail or tied from the home side's view"},
		{"timeRemaining", "clock", "Remaining time on the game clock"},
		{"period", "clock", "Broadcast label for the current period"},
		{"penaltyType", "penalty", "Infraction called"},
		{"penaltyDuration", "penalty", "Length of the penalty"},
		{"venue", "game", "Venue the game is played at"},
	}
	for _, v := range variables {
		_, err := db.Exec(
			"INSERT OR IGNORE INTO template_variables (name, category, description, created_at) VALUES (?, ?, ?, ?)",
			v.name, v.category, v.description, now,
		)
		if err != nil {
			log.Fatalf("Failed to insert variable %s: %s", v.name, err)
		}
	}
	log.Info("Ensured template variables exist.", "count", len(variables))

	gameDate := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	_, err = db.Exec(
		`INSERT OR IGNORE INTO games (id, status, game_date, venue, home_team_id, away_team_id, home_team_name, away_team_name, created_at, updated_at)
		VALUES (?, 'scheduled', ?, 'Perth Ice Arena', 'team-perth', 'team-melbourne', 'Perth Thunder', 'Melbourne Ice', ?, ?)`,
		"game-seed-1", gameDate, now, now,
	)
	if err != nil {
		log.Fatalf("Failed to insert game: %s", err)
	}
	log.Info("Seeding complete.", "gameDate", gameDate)
}
