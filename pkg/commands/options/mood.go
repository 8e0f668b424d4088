package options

import (
	"github.com/spf13/cobra"
)

// MoodOptions
type MoodOptions struct {
	Mood int
	Note string
	Tags []string
}

func AddMoodArgs(cmd *cobra.Command, o *MoodOptions) {
	cmd.Flags().IntVar(&o.Mood, "mood", 5,
		"Mood on a 1-10 scale.")
	cmd.Flags().StringVar(&o.Note, "note", "",
		"A short note about right now.")
	cmd.Flags().StringSliceVar(&o.Tags, "tags", nil,
		`Comma separated tags, example: --tags="work,sleep".`)
}

// LimitOptions
type LimitOptions struct {
	Limit int
}

func AddLimitArg(cmd *cobra.Command, o *LimitOptions) {
	cmd.Flags().IntVar(&o.Limit, "limit", 7,
		"How many recent entries to show.")
}
