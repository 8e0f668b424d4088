package safety

import (
	"context"
	"errors"

	"lumenharbor.dev/nous/pkg/api"
	"lumenharbor.dev/nous/pkg/printers"
)

// Resource display is capped regardless of how many the backend returns.
const maxResources = 6

// Show prints crisis resources and the safety plan. The two fetches are
// independent: a failure in one section prints an inline message there and
// never hides the other section.
type Show struct {
	Client  *api.Client
	Country string
}

func (n *Show) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not show, no client")
	}
	country := n.Country
	if country == "" {
		country = "US"
	}

	pp := printers.PrettyPrint{}

	pp.Title("Crisis resources")
	resources, err := n.Client.CrisisResources(ctx, country)
	if err != nil {
		pp.Status("Could not load resources right now.")
	} else {
		if len(resources) > maxResources {
			resources = resources[:maxResources]
		}
		pp.Resources(resources)
	}

	pp.Title("Safety plan")
	plan, err := n.Client.SafetyPlan(ctx)
	if err != nil {
		pp.Status("Could not load your plan right now.")
		return nil
	}
	pp.Plan(plan)
	return nil
}

// Resources prints crisis resources only.
type Resources struct {
	Client  *api.Client
	Country string
}

func (n *Resources) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not show resources, no client")
	}
	country := n.Country
	if country == "" {
		country = "US"
	}
	resources, err := n.Client.CrisisResources(ctx, country)
	if err != nil {
		return err
	}
	if len(resources) > maxResources {
		resources = resources[:maxResources]
	}
	pp := printers.PrettyPrint{}
	pp.Title("Crisis resources")
	pp.Resources(resources)
	return nil
}

// Plan prints the safety plan only.
type Plan struct {
	Client *api.Client
}

func (n *Plan) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not show plan, no client")
	}
	plan, err := n.Client.SafetyPlan(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Safety plan")
	pp.Plan(plan)
	return nil
}

// SavePlan fetches the current plan, applies the provided field updates, and
// saves the result. Nil fields are left untouched.
type SavePlan struct {
	Client               *api.Client
	WarningSigns         *string
	CopingStrategies     *string
	People               *string
	Places               *string
	ProfessionalContacts *string
}

func (n *SavePlan) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not save plan, no client")
	}
	plan, err := n.Client.SafetyPlan(ctx)
	if err != nil {
		return err
	}
	if n.WarningSigns != nil {
		plan.WarningSigns = *n.WarningSigns
	}
	if n.CopingStrategies != nil {
		plan.CopingStrategies = *n.CopingStrategies
	}
	if n.People != nil {
		plan.People = *n.People
	}
	if n.Places != nil {
		plan.Places = *n.Places
	}
	if n.ProfessionalContacts != nil {
		plan.ProfessionalContacts = *n.ProfessionalContacts
	}
	if err := n.Client.SaveSafetyPlan(ctx, plan); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Status("Plan saved.")
	return nil
}
