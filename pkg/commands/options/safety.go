package options

import (
	"github.com/spf13/cobra"
)

// CountryOptions
type CountryOptions struct {
	Country string
}

func AddCountryArg(cmd *cobra.Command, o *CountryOptions) {
	cmd.Flags().StringVar(&o.Country, "country", "",
		"Country code for crisis resources (defaults to the configured one).")
}

// PlanOptions carries safety-plan field updates. Only flags the user set are
// applied; the rest of the plan is left untouched.
type PlanOptions struct {
	WarningSigns         string
	CopingStrategies     string
	People               string
	Places               string
	ProfessionalContacts string
}

func AddPlanArgs(cmd *cobra.Command, o *PlanOptions) {
	cmd.Flags().StringVar(&o.WarningSigns, "warning-signs", "",
		"What it looks like when things start to slip.")
	cmd.Flags().StringVar(&o.CopingStrategies, "coping", "",
		"What helps you through.")
	cmd.Flags().StringVar(&o.People, "people", "",
		"People you can reach out to.")
	cmd.Flags().StringVar(&o.Places, "places", "",
		"Places that help you feel safe.")
	cmd.Flags().StringVar(&o.ProfessionalContacts, "professionals", "",
		"Professional contacts.")
}

// Changed returns a pointer to value when the named flag was set, else nil.
func Changed(cmd *cobra.Command, name string, value string) *string {
	if cmd.Flags().Changed(name) {
		return &value
	}
	return nil
}
