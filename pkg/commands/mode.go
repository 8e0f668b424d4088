package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lumenharbor.dev/nous/pkg/mode"
)

func addMode(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mode [gentle|structured]",
		Short: "show or set the experience mode",
		Example: `
nous mode
nous mode structured
`,
		ValidArgs: []string{string(mode.Gentle), string(mode.Structured)},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one mode")
			}
			if len(args) == 1 && !mode.Mode(args[0]).Valid() {
				return fmt.Errorf("unknown mode %q, want gentle or structured", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := loadEnv()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				mode.Set(mode.Mode(args[0]))
			}
			fmt.Println(mode.Current())
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
