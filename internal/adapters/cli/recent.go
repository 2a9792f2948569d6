package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stationforge/station-planner/internal/adapters/persistence"
	"github.com/stationforge/station-planner/internal/infrastructure/database"
)

// NewRecentCommand creates the recent command group
func NewRecentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Manage the recently opened documents list",
	}

	cmd.AddCommand(newRecentListCommand())
	cmd.AddCommand(newRecentForgetCommand())

	return cmd
}

func newRecentListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recently opened station files",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeFn, err := openWorkspace()
			if err != nil {
				return err
			}
			defer closeFn()

			docs, err := repo.Recent(context.Background(), limit)
			if err != nil {
				return err
			}

			if len(docs) == 0 {
				fmt.Println("No recent documents.")
				return nil
			}
			for _, d := range docs {
				fmt.Printf("%-20s %s  (%s)\n", d.Name, d.Path,
					d.LastOpened.Local().Format(time.DateTime))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of entries to show")

	return cmd
}

func newRecentForgetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "forget <path>",
		Short: "Remove a path from the recent documents list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeFn, err := openWorkspace()
			if err != nil {
				return err
			}
			defer closeFn()

			return repo.Forget(context.Background(), args[0])
		},
	}
}

func openWorkspace() (*persistence.GormWorkspaceRepository, func(), error) {
	cfg := loadCLIConfig()
	db, err := database.NewConnection(cfg.Workspace.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workspace database: %w", err)
	}
	return persistence.NewGormWorkspaceRepository(db), func() { _ = database.Close(db) }, nil
}
