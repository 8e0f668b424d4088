package journal

import (
	"context"
	"errors"
	"strings"

	"lumenharbor.dev/nous/pkg/api"
	"lumenharbor.dev/nous/pkg/draft"
	"lumenharbor.dev/nous/pkg/printers"
)

// Append sends a free-write entry to the backend. When Text is empty the
// locally persisted draft is used. The draft is cleared only after the
// remote save succeeds.
type Append struct {
	Client *api.Client
	Text   string
	Tags   []string
	Draft  *draft.Cell[string]
}

func (n *Append) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not append, no client")
	}

	text := n.Text
	fromDraft := false
	if strings.TrimSpace(text) == "" && n.Draft != nil {
		text = n.Draft.Get()
		fromDraft = true
	}
	if strings.TrimSpace(text) == "" {
		return errors.New("nothing to save")
	}

	if err := n.Client.AppendJournal(ctx, text, n.Tags); err != nil {
		return err
	}
	if fromDraft {
		n.Draft.Reset()
	}

	pp := printers.PrettyPrint{}
	pp.Status("Saved.")
	return nil
}
