package export

import (
	"context"
	"errors"
	"fmt"
	"os"

	"lumenharbor.dev/nous/pkg/api"
)

// Export fetches the plain-text export and writes it to Output, or stdout
// when Output is empty.
type Export struct {
	Client *api.Client
	Output string
}

func (n *Export) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not export, no client")
	}
	text, err := n.Client.ExportText(ctx)
	if err != nil {
		return err
	}
	if n.Output == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(n.Output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Printf("wrote %s\n", n.Output)
	return nil
}
