package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"lumenharbor.dev/nous/pkg/commands/options"
	"lumenharbor.dev/nous/pkg/runner/mood"
)

func addMood(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}
	lo := &options.LimitOptions{}

	cmd := &cobra.Command{
		Use:   "mood",
		Short: "log and review mood entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	log := &cobra.Command{
		Use:   "log [1-10]",
		Short: "log a mood entry, then show the refreshed recent list",
		Example: `
nous mood log 7
nous mood log 3 --note "rough morning" --tags "sleep,work"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one mood value")
			}
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return errors.New("mood must be a number from 1 to 10")
				}
				mo.Mood = v
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s := mood.Log{
				Client: e.client,
				Mood:   mo.Mood,
				Note:   mo.Note,
				Tags:   mo.Tags,
				Limit:  lo.Limit,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	options.AddMoodArgs(log, mo)
	options.AddLimitArg(log, lo)
	base.AddOutputArg(log, oo)

	recent := &cobra.Command{
		Use:   "recent",
		Short: "list recent mood entries",
		Example: `
nous mood recent
nous mood recent --limit 14
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s := mood.Recent{
				Client: e.client,
				Limit:  lo.Limit,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	options.AddLimitArg(recent, lo)
	base.AddOutputArg(recent, oo)

	cmd.AddCommand(log, recent)
	topLevel.AddCommand(cmd)
}
