package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"lumenharbor.dev/nous/pkg/api"
	"lumenharbor.dev/nous/pkg/config"
	"lumenharbor.dev/nous/pkg/draft"
	"lumenharbor.dev/nous/pkg/mode"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "nous",
		Short: base.Wrap80("A companion for the NOUS assistant: mood, journal, talk, and support, from the terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addMood(topLevel)
	addJournal(topLevel)
	addTalk(topLevel)
	addThought(topLevel)
	addSafety(topLevel)
	addExport(topLevel)
	addMode(topLevel)
	addVersion(topLevel)
}

// env is the composition root shared by every command: config, client, and
// the local draft store with the experience mode installed over it.
type env struct {
	cfg    *config.Config
	client *api.Client
	store  draft.Store
}

func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	s := draft.Open(cfg.Path)
	mode.Install(s)
	return &env{
		cfg:    cfg,
		client: api.New(cfg.Server),
		store:  s,
	}, nil
}

func (e *env) journalDraft() *draft.Cell[string] {
	return draft.NewCell[string](e.store, draft.JournalFreeWriteKey, "")
}
