package talk

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"lumenharbor.dev/nous/pkg/api"
)

// Talk sends one chat message and prints the reply.
type Talk struct {
	Client  *api.Client
	Message string
}

func (n *Talk) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not talk, no client")
	}
	if strings.TrimSpace(n.Message) == "" {
		return errors.New("nothing to say")
	}
	reply, err := n.Client.Chat(ctx, n.Message)
	if err != nil {
		return err
	}
	fmt.Println(wordwrap.String(reply, 72))
	return nil
}
