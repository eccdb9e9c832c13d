package cli

import (
	"context"
	"encoding/json"
	"fmt"

	clientsync "github.com/iudanet/pdfsync/internal/client/sync"
	"github.com/iudanet/pdfsync/internal/models"
)

func (c *Cli) runPull(ctx context.Context) error {
	result, err := c.syncService.Refresh(ctx, c.cfg.SignatureURL)
	if err != nil {
		return fmt.Errorf("pull failed: %w", err)
	}
	if result.Err != nil {
		return fmt.Errorf("pull failed: %w", result.Err)
	}

	c.io.Printf("%s Signatures loaded from server\n", c.io.Mark(true))
	c.io.Printf("Signatures: %s\n", result.Snapshot.String())
	return nil
}

func (c *Cli) runPush(ctx context.Context) error {
	result, err := c.syncService.Reconcile(ctx, c.cfg.SignatureURL, c.cfg.CSRFToken)
	if err != nil {
		return fmt.Errorf("push failed: %w", err)
	}

	switch result.State {
	case clientsync.StateNoChange:
		c.io.Printf("%s Nothing to push\n", c.io.Mark(true))
	case clientsync.StateRefreshed:
		c.io.Printf("%s Signatures synchronized with server\n", c.io.Mark(true))
		c.io.Printf("Signatures: %s\n", result.Snapshot.String())
	case clientsync.StateSubmitFailed:
		if result.Err != nil {
			return fmt.Errorf("push failed: %w", result.Err)
		}
		return fmt.Errorf("push rejected by server with status %d", result.StatusCode)
	case clientsync.StateRefreshFailed:
		c.io.Printf("%s Server accepted the signatures but reading them back failed: %v\n", c.io.Mark(false), result.Err)
		c.io.Println("Local changes are kept and will be sent again.")
	default:
		c.io.Printf("Finished in state %s\n", result.State)
	}
	return nil
}

// runSign записывает подписи в текущий слот, как это делает viewer при редактировании
func (c *Cli) runSign(ctx context.Context, args []string) error {
	var raw string
	if len(args) > 0 {
		raw = args[0]
	} else {
		input, err := c.io.ReadInput("Signatures JSON: ")
		if err != nil {
			return fmt.Errorf("failed to read signatures: %w", err)
		}
		raw = input
	}

	if !json.Valid([]byte(raw)) {
		return fmt.Errorf("signatures must be valid JSON")
	}

	if err := c.cache.StoreCurrentSignatures(ctx, models.NewSignatureSnapshot(raw)); err != nil {
		return fmt.Errorf("failed to store signatures: %w", err)
	}

	c.io.Printf("%s Signatures stored locally\n", c.io.Mark(true))
	c.io.Println("Run 'pdfsync push' or 'pdfsync watch' to send them.")
	return nil
}
