package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Signature Cache ===")
	c.io.Println()

	entry, err := c.cache.LoadSignatures(ctx)
	if err != nil {
		return fmt.Errorf("failed to load signatures: %w", err)
	}

	c.io.Printf("Previous: %s\n", entry.Previous.String())
	c.io.Printf("Current:  %s\n", entry.Current.String())
	c.io.Println()

	if entry.Diverged() {
		c.io.Printf("%s Local signatures differ from the last server state\n", c.io.Mark(false))
		c.io.Println("Run 'pdfsync push' to send them.")
	} else {
		c.io.Printf("%s Signatures synchronized with server\n", c.io.Mark(true))
	}

	if c.cfg.PDFID == "" {
		return nil
	}

	page, err := c.apiClient.FetchCurrentPage(ctx, c.currentPageURL())
	if err != nil {
		// Не прерываем выполнение, просто сообщаем
		c.io.Printf("\nWarning: Failed to get current page: %v\n", err)
		return nil
	}
	c.io.Println()
	c.io.Printf("Document %s: page %d\n", c.cfg.PDFID, page)

	return nil
}
