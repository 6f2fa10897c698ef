package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host         string
	tournamentID string
	userID       string
	userName     string
)

var rootCmd = &cobra.Command{
	Use:   "beachpro-cli",
	Short: "A CLI to interact with the beachpro server",
	Long: `A command-line interface for making requests to the various endpoints
of the beachpro tournament application.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.PersistentFlags().StringVar(&tournamentID, "tournament", "", "The tournament id to operate on")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "cli", "The user id to act as")
	rootCmd.PersistentFlags().StringVar(&userName, "name", "CLI", "The display name to act as")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
