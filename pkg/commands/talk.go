package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"lumenharbor.dev/nous/pkg/runner/talk"
	"lumenharbor.dev/nous/pkg/tui/app"
)

func addTalk(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "talk [message]",
		Short: "talk with the assistant; with no message, opens the chat page",
		Example: `
nous talk
nous talk "I keep replaying the meeting in my head"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return app.Run(e.client, e.journalDraft(), e.cfg.Country, app.Options{
					InitialPage: app.PageTalk,
				})
			}
			s := talk.Talk{
				Client:  e.client,
				Message: strings.Join(args, " "),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
