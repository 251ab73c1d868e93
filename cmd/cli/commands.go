package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/GoodPie/aihl-media-app/internal/auth"
)

var (
	gameStatus string
	gameID     string
)

func init() {
	gamesCmd.Flags().StringVar(&gameStatus, "status", "", "Filter games by status (scheduled, in_progress, completed, cancelled)")
	eventsCmd.Flags().StringVar(&gameID, "game", "", "Filter events by game id")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(tokenCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/status")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the teams in the league",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/teams")
	},
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List games, optionally filtered by status",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/games"
		if gameStatus != "" {
			endpoint += "?status=" + url.QueryEscape(gameStatus)
		}
		return performGetRequest(endpoint)
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List game events, optionally filtered by game",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/events"
		if gameID != "" {
			endpoint += "?gameId=" + url.QueryEscape(gameID)
		}
		return performGetRequest(endpoint)
	},
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the text templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/templates")
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token [user]",
	Short: "Mint a bearer token using the JWT_SECRET environment variable",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			return fmt.Errorf("JWT_SECRET is not set")
		}
		user := "cli"
		if len(args) > 0 {
			user = args[0]
		}
		svc := auth.NewService(secret, 24*time.Hour)
		signed, err := svc.GenerateToken(user, auth.RoleOperator, 0)
		if err != nil {
			return err
		}
		fmt.Println(signed)
		return nil
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
