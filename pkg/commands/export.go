package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"lumenharbor.dev/nous/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "download your data as plain text",
		Example: `
nous export
nous export --output nous.txt
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s := export.Export{
				Client: e.client,
				Output: output,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout.")
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
