package commands

import (
	"github.com/spf13/cobra"

	"lumenharbor.dev/nous/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
nous ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			return app.Run(e.client, e.journalDraft(), e.cfg.Country, app.Options{})
		},
	}

	topLevel.AddCommand(cmd)
}
