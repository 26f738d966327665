package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"career-match/internal/service"
)

var tokenCmd = &cobra.Command{
	Use:   "token <user-id>",
	Short: "Issue an access token for the assessments API (uses JWT_SECRET)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ttl, _ := cmd.Flags().GetDuration("ttl")
		tokens := service.NewTokenService(os.Getenv("JWT_SECRET"), ttl)
		if !tokens.Enabled() {
			log.Fatal("JWT_SECRET is not set")
		}
		token, err := tokens.IssueAccessToken(args[0])
		if err != nil {
			log.Fatalf("issuing token: %s", err)
		}
		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().Duration("ttl", time.Hour, "token lifetime")
}
