package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"lumenharbor.dev/nous/pkg/commands/options"
	"lumenharbor.dev/nous/pkg/runner/safety"
	"lumenharbor.dev/nous/pkg/tui/app"
)

func addSafety(topLevel *cobra.Command) {
	co := &options.CountryOptions{}
	po := &options.PlanOptions{}

	cmd := &cobra.Command{
		Use:   "safety",
		Short: "open the safety sheet: crisis resources and your safety plan",
		Example: `
nous safety
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			return app.Run(e.client, e.journalDraft(), e.cfg.Country, app.Options{
				OpenSheet: true,
			})
		},
	}

	resources := &cobra.Command{
		Use:   "resources",
		Short: "print crisis resources",
		Example: `
nous safety resources
nous safety resources --country GB
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			country := co.Country
			if country == "" {
				country = e.cfg.Country
			}
			s := safety.Resources{
				Client:  e.client,
				Country: country,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	options.AddCountryArg(resources, co)
	base.AddOutputArg(resources, oo)

	plan := &cobra.Command{
		Use:   "plan",
		Short: "print your safety plan",
		Example: `
nous safety plan
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s := safety.Plan{Client: e.client}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	planSet := &cobra.Command{
		Use:   "set",
		Short: "update safety plan fields; unset flags are left as they are",
		Example: `
nous safety plan set --warning-signs "staying up too late, skipping meals"
nous safety plan set --people "Sam, Priya" --coping "walk, music"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s := safety.SavePlan{
				Client:               e.client,
				WarningSigns:         options.Changed(cmd, "warning-signs", po.WarningSigns),
				CopingStrategies:     options.Changed(cmd, "coping", po.CopingStrategies),
				People:               options.Changed(cmd, "people", po.People),
				Places:               options.Changed(cmd, "places", po.Places),
				ProfessionalContacts: options.Changed(cmd, "professionals", po.ProfessionalContacts),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	options.AddPlanArgs(planSet, po)
	base.AddOutputArg(planSet, oo)

	show := &cobra.Command{
		Use:   "show",
		Short: "print resources and plan together",
		Example: `
nous safety show
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			country := co.Country
			if country == "" {
				country = e.cfg.Country
			}
			s := safety.Show{
				Client:  e.client,
				Country: country,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	options.AddCountryArg(show, co)
	base.AddOutputArg(show, oo)

	plan.AddCommand(planSet)
	cmd.AddCommand(resources, plan, show)
	topLevel.AddCommand(cmd)
}
