package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"lumenharbor.dev/nous/pkg/runner/journal"
	"lumenharbor.dev/nous/pkg/tui/app"
)

func addJournal(topLevel *cobra.Command) {
	var tags []string

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "free-write journaling",
		Example: `
nous journal
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			return app.Run(e.client, e.journalDraft(), e.cfg.Country, app.Options{
				InitialPage: app.PageJournal,
			})
		},
	}

	appendCmd := &cobra.Command{
		Use:   "append [text]",
		Short: "append an entry; with no text, sends the saved draft",
		Example: `
nous journal append "slept badly but the walk helped"
nous journal append --tags "sleep"
nous journal append
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s := journal.Append{
				Client: e.client,
				Text:   strings.Join(args, " "),
				Tags:   tags,
				Draft:  e.journalDraft(),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	appendCmd.Flags().StringSliceVar(&tags, "tags", nil,
		`Comma separated tags, example: --tags="sleep,work".`)
	base.AddOutputArg(appendCmd, oo)

	cmd.AddCommand(appendCmd)
	topLevel.AddCommand(cmd)
}
