package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/yigitates17/Article-App/internal/database"
)

var dbStatsCmd = &cobra.Command{
	Use:   "db-stats",
	Short: "Show database statistics",
	Long:  `Display the number of users, articles and authors stored in the database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		db, err := database.New(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close() //nolint: errcheck

		stats, err := db.GetStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get database stats: %w", err)
		}

		fmt.Println("Database Statistics:")
		fmt.Printf("Users: %s\n", humanize.Comma(stats.Users))
		fmt.Printf("Articles: %s\n", humanize.Comma(stats.Articles))
		fmt.Printf("Authors: %s\n", humanize.Comma(stats.Authors))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbStatsCmd)
}
