package commands

import (
	"github.com/spf13/cobra"

	"lumenharbor.dev/nous/pkg/tui/app"
)

func addThought(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "thought",
		Short: "walk through a guided thought record",
		Example: `
nous thought
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			return app.Run(e.client, e.journalDraft(), e.cfg.Country, app.Options{
				InitialPage: app.PageThought,
			})
		},
	}

	topLevel.AddCommand(cmd)
}
