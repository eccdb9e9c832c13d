package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/iudanet/pdfsync/internal/client/session"
	"github.com/iudanet/pdfsync/internal/client/viewer"
)

// runWatch запускает сессию viewer до отмены контекста или команды quit.
// Команды со stdin: "page N", "save", "quit".
func (c *Cli) runWatch(ctx context.Context, args []string) error {
	if err := c.requirePDFID(); err != nil {
		return err
	}
	path, err := c.documentPath(args)
	if err != nil {
		return err
	}

	startPage, err := c.apiClient.FetchCurrentPage(ctx, c.currentPageURL())
	if err != nil {
		c.logger.Warn("Failed to get current page, starting at page 1", "error", err)
		startPage = 1
	}

	v, err := viewer.NewFileViewer(path, startPage, func(title string) {
		c.io.Printf("Title: %s\n", title)
	}, c.logger)
	if err != nil {
		return err
	}

	s := session.New(session.Config{
		PDFID:        c.cfg.PDFID,
		SignatureURL: c.cfg.SignatureURL,
		UpdateURL:    c.cfg.UpdateURL,
		CSRFToken:    c.cfg.CSRFToken,
		TabTitle:     c.cfg.TabTitle,
		StartPage:    startPage,
		Interval:     c.cfg.Interval,
		AutoSave:     c.cfg.AutoSave,
	}, v, c.apiClient, c.syncService, c.logger)

	if err := s.Start(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go c.readCommands(cancel, v, s)

	c.io.Printf("Watching %s (page %d). Commands: page N, save, quit\n", path, startPage)
	return s.Run(ctx)
}

// readCommands читает команды пользователя до ошибки ввода или quit
func (c *Cli) readCommands(cancel context.CancelFunc, v *viewer.FileViewer, s *session.Session) {
	for {
		line, err := c.io.ReadInput("")
		if err != nil {
			return
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "page":
			if len(fields) < 2 {
				c.io.Println("usage: page N")
				continue
			}
			page, err := strconv.Atoi(fields[1])
			if err != nil {
				c.io.Printf("invalid page number: %s\n", fields[1])
				continue
			}
			v.GoToPage(page)
		case "save":
			s.RequestSave()
		case "quit", "exit":
			cancel()
			return
		default:
			c.io.Printf("unknown command: %s\n", fields[0])
		}
	}
}
