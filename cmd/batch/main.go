package main

import (
	"context"
	"fmt"
	"log"
	"wealthplan/cmd"
	"wealthplan/internal/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/lib/pq"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wealthplan-batch",
		Short: "Runs the nightly scoring and recommendation batch",
	}
	rootCmd.AddCommand(runCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runCmd() *cobra.Command {
	var userIDArgs []string

	c := &cobra.Command{
		Use:   "run",
		Short: "Score portfolios and generate recommendation sessions",
		Long:  "Scores every user's portfolio against their active criteria version and generates a fresh recommendation session per user. With no --user flags the whole user base is processed.",
		RunE: func(c *cobra.Command, args []string) error {
			userIDs := []uuid.UUID{}
			for _, arg := range userIDArgs {
				id, err := uuid.Parse(arg)
				if err != nil {
					return fmt.Errorf("invalid user id %q: %w", arg, err)
				}
				userIDs = append(userIDs, id)
			}

			apiHandler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(apiHandler)

			ctx := context.WithValue(c.Context(), logger.ContextKey, zap.S())
			result, err := apiHandler.BatchOrchestrator.ProcessBatch(ctx, userIDs)
			if err != nil {
				return err
			}

			fmt.Printf("processed %d users: %d success, %d skipped, %d failed\n", result.UsersProcessed, result.UsersSuccess, result.UsersSkipped, result.UsersFailed)
			fmt.Printf("scored %d assets (mean %.2f, stdev %.2f), generated %d recommendation items\n", result.TotalScored, result.MeanScore, result.ScoreStdev, result.TotalGenerated)
			for _, u := range result.PerUser {
				if u.State != "COMPLETED" {
					fmt.Printf("  user %s: %s (%s) correlation=%s\n", u.UserAccountID, u.State, u.SkipReason, u.CorrelationID)
				}
			}

			return nil
		},
	}
	c.Flags().StringArrayVar(&userIDArgs, "user", nil, "user account id to process; repeatable. empty means all users")

	return c
}
