package mood

import (
	"context"
	"errors"
	"fmt"

	"lumenharbor.dev/nous/pkg/api"
	"lumenharbor.dev/nous/pkg/printers"
)

// Log records a mood entry and then refreshes the recent list. The refresh
// is strictly ordered after the save resolves, never issued concurrently.
type Log struct {
	Client *api.Client
	Mood   int
	Note   string
	Tags   []string
	Limit  int
}

func (n *Log) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not log mood, no client")
	}
	if n.Mood < 1 || n.Mood > 10 {
		return fmt.Errorf("mood must be between 1 and 10, got %d", n.Mood)
	}

	if err := n.Client.LogMood(ctx, n.Mood, n.Note, n.Tags); err != nil {
		return err
	}

	limit := n.Limit
	if limit <= 0 {
		limit = 7
	}

	pp := printers.PrettyPrint{}
	pp.Title("Logged. Recent moods")
	items, err := n.Client.RecentMoods(ctx, limit)
	if err != nil {
		// The save already landed; a failed refresh is not fatal.
		pp.Status("Could not refresh the recent list right now.")
		return nil
	}
	pp.Moods(items)
	return nil
}

// Recent lists the most recent mood entries.
type Recent struct {
	Client *api.Client
	Limit  int
}

func (n *Recent) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not list moods, no client")
	}
	limit := n.Limit
	if limit <= 0 {
		limit = 7
	}
	items, err := n.Client.RecentMoods(ctx, limit)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Recent moods")
	pp.Moods(items)
	return nil
}
