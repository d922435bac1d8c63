package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/yukikurage/project-board/internal/config"
	"github.com/yukikurage/project-board/internal/database"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		log.Fatal(err)
	}
}

// newRootCmd creates the top-level command. Environment configuration is
// loaded first; the persistent flags override it.
func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "project-board",
		Short:         "Project board web application",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, "database driver (mysql, postgres, sqlite)")
	flags.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "sqlite database file")
	flags.StringVar(&cfg.DBLogLevel, "db-log-level", cfg.DBLogLevel, "gorm log level (silent, error, warn, info)")

	root.AddCommand(
		newServeCmd(cfg),
		newMigrateCmd(cfg),
		newUserCmd(cfg),
		newProjectCmd(cfg),
		newMemberCmd(cfg),
	)

	return root
}

// openDB connects and migrates the configured database
func openDB(cfg *config.Config) (*gorm.DB, error) {
	if err := database.Connect(cfg); err != nil {
		return nil, err
	}
	if err := database.Migrate(); err != nil {
		return nil, err
	}
	return database.GetDB(), nil
}

func newMigrateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := openDB(cfg)
			return err
		},
	}
}
