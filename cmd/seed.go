package main

import (
	"context"
	"fmt"
	"time"

	"campaigner/internal/config"
	"campaigner/pkg/demo"
	"campaigner/pkg/domain"
	"campaigner/pkg/logger"
	"campaigner/pkg/storage"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedDemoCommand constructs the 'seed-demo' subcommand that writes a
// labelled sample account for a user. The data is derived from the user id,
// so seeding the same user twice writes the same figures again.
func seedDemoCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed-demo",
		Short: "Writes demo audiences, campaigns, analytics and subscribers for a user",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			user, _ := cmd.Flags().GetString("user")
			subscribers, _ := cmd.Flags().GetInt("subscribers")

			id, err := uuid.Parse(user)
			if err != nil {
				logger.Fatal(ctx, "invalid user id", zap.String("user", user), zap.Error(err))
			}
			userID := domain.UserID(id)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			ds := demo.New(demo.SeedFor(userID.String())).Dataset(userID, time.Now(), subscribers)

			var res demo.SeedResult
			err = strg.WithTx(ctx, func(tx storage.AllStorage) error {
				res, err = demo.Seed(ctx, tx, ds)

				return err
			})
			if err != nil {
				logger.Fatal(ctx, "could not seed demo data", zap.Error(err))
			}

			fmt.Printf("seeded %d audiences, %d campaigns, %d analytics rows, %d subscribers\n", //nolint: forbidigo
				res.Audiences, res.Campaigns, res.Records, res.Subscribers)
		},
	}

	cmd.Flags().String("user", "", "User ID (UUID) to seed")
	cmd.Flags().Int("subscribers", 50, "Number of demo subscribers")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
