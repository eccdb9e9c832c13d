package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/iudanet/pdfsync/internal/client/save"
	"github.com/iudanet/pdfsync/internal/client/viewer"
)

func (c *Cli) runPage(ctx context.Context, args []string) error {
	if err := c.requirePDFID(); err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("usage: pdfsync page <n>")
	}
	page, err := strconv.Atoi(args[0])
	if err != nil || page < 1 {
		return fmt.Errorf("invalid page number: %s", args[0])
	}

	if err := c.apiClient.UpdatePage(ctx, c.cfg.UpdateURL, c.cfg.CSRFToken, c.cfg.PDFID, page); err != nil {
		return err
	}

	c.io.Printf("%s Page %d sent\n", c.io.Mark(true), page)
	return nil
}

func (c *Cli) runUpload(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: pdfsync upload <file> [name]")
	}
	path := args[0]
	name := filepath.Base(path)
	if len(args) > 1 {
		name = args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	resp, err := c.apiClient.CreatePDF(ctx, c.cfg.CSRFToken, name, data)
	if err != nil {
		return err
	}

	c.io.Printf("%s Document created\n", c.io.Mark(true))
	c.io.Printf("ID:     %s\n", resp.ID)
	c.io.Printf("Name:   %s\n", resp.Name)
	c.io.Printf("Pages:  %d\n", resp.NumberOfPages)
	c.io.Printf("Digest: %s\n", resp.Digest)
	return nil
}

func (c *Cli) runSave(ctx context.Context, args []string) error {
	if err := c.requirePDFID(); err != nil {
		return err
	}
	path, err := c.documentPath(args)
	if err != nil {
		return err
	}

	v, err := viewer.NewFileViewer(path, 1, nil, c.logger)
	if err != nil {
		return err
	}

	coordinator := save.NewCoordinator(c.apiClient, v, c.logger)
	outcome := coordinator.Save(ctx, save.Request{
		PDFID:     c.cfg.PDFID,
		UpdateURL: c.cfg.UpdateURL,
		CSRFToken: c.cfg.CSRFToken,
		TabTitle:  c.cfg.TabTitle,
	})
	coordinator.Wait()

	if outcome != save.OutcomeSaved {
		return fmt.Errorf("save %s", outcome)
	}
	// Загрузка неудачна: координатор вернул маркер несохранённых правок
	if v.HasUnsavedEdits() {
		return fmt.Errorf("upload failed, title is %q", v.Title())
	}

	c.io.Printf("%s Document uploaded\n", c.io.Mark(true))
	return nil
}

func (c *Cli) documentPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if c.cfg.PDFPath != "" {
		return c.cfg.PDFPath, nil
	}
	return "", fmt.Errorf("document path is required")
}
