package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stationforge/station-planner/internal/domain/station"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a station file",
		Long: `Check that a station file parses, that its record version is
supported, and that every module id resolves against the game data.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadCLIConfig()

			_, st, err := openDocument(cfg, args[0])
			if err != nil {
				var tooNew *station.VersionTooNewError
				if errors.As(err, &tooNew) {
					return fmt.Errorf("file was written by a newer release (record version %s, supported up to %s)",
						tooNew.Version, station.RecordVersion)
				}
				return err
			}

			modules := 0
			for _, g := range st.Groups() {
				modules += g.Len()
			}
			fmt.Printf("✓ %s is valid (%d groups, %d module entries)\n",
				st.Name(), st.Len(), modules)
			return nil
		},
	}

	return cmd
}
