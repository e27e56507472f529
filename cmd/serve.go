package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/yigitates17/Article-App/internal/api"
	"github.com/yigitates17/Article-App/internal/database"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the blog server",
	Long:  `Start the HTTP server. The database schema is migrated on startup.`,
	Example: `articleapp serve --config config.yml
articleapp serve -c /path/to/config.yml --log-level debug
`,
	Run: startServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func startServer(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close() //nolint:errcheck

	server, err := api.New(cfg, db, log.GetLevel() == log.DebugLevel)
	if err != nil {
		log.Fatalf("failed to create API server: %v", err)
	}

	log.Info("articleapp started successfully")
	if err := server.Run(cmd.Context()); err != nil {
		log.Error("API server error", "error", err)
		return
	}
	log.Info("shut down gracefully")
}
