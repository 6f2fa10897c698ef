package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(tournamentsCmd)
	rootCmd.AddCommand(membersCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(rankingCmd)
	rootCmd.AddCommand(financeCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var tournamentsCmd = &cobra.Command{
	Use:   "tournaments",
	Short: "List all tournaments",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tournaments")
	},
}

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "List the members of a tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(withTournament("/members"))
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the matches of a tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(withTournament("/matches"))
	},
}

var rankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Show the qualification ranking of a tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(withTournament("/ranking"))
	},
}

var financeCmd = &cobra.Command{
	Use:   "finance",
	Short: "Show the fee totals of a tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(withTournament("/finance"))
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func withTournament(endpoint string) string {
	if tournamentID == "" {
		return endpoint
	}
	return endpoint + "?tournament=" + url.QueryEscape(tournamentID)
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-User-ID", userID)
	req.Header.Set("X-User-Name", userName)

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
