package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/iudanet/pdfsync/internal/client/api"
	"github.com/iudanet/pdfsync/internal/client/iocli"
	"github.com/iudanet/pdfsync/internal/client/storage"
	clientsync "github.com/iudanet/pdfsync/internal/client/sync"
	"github.com/iudanet/pdfsync/internal/config"
	"github.com/iudanet/pdfsync/internal/validation"
	pkgapi "github.com/iudanet/pdfsync/pkg/api"
)

type Cli struct {
	io          iocli.IO
	apiClient   api.ClientAPI
	cache       storage.SignatureCache
	syncService clientsync.Service
	cfg         *config.Client
	logger      *slog.Logger
}

func New(
	io iocli.IO,
	apiClient api.ClientAPI,
	cache storage.SignatureCache,
	syncService clientsync.Service,
	cfg *config.Client,
	logger *slog.Logger,
) *Cli {
	return &Cli{
		io:          io,
		apiClient:   apiClient,
		cache:       cache,
		syncService: syncService,
		cfg:         cfg,
		logger:      logger,
	}
}

// Run выполняет команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "status":
		return c.runStatus(ctx)
	case "pull":
		return c.runPull(ctx)
	case "push":
		return c.runPush(ctx)
	case "sign":
		return c.runSign(ctx, args)
	case "page":
		return c.runPage(ctx, args)
	case "upload":
		return c.runUpload(ctx, args)
	case "save":
		return c.runSave(ctx, args)
	case "watch":
		return c.runWatch(ctx, args)
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}
}

// currentPageURL строит адрес текущей страницы документа
func (c *Cli) currentPageURL() string {
	return fmt.Sprintf(pkgapi.PathCurrentPage, url.PathEscape(c.cfg.PDFID))
}

func (c *Cli) requirePDFID() error {
	if c.cfg.PDFID == "" {
		return fmt.Errorf("pdf id is required, use --pdf-id or pdf_id in config")
	}
	if err := validation.ValidatePDFID(c.cfg.PDFID); err != nil {
		return fmt.Errorf("invalid pdf id: %w", err)
	}
	return nil
}

func PrintUsage(out iocli.IO) {
	out.Println("PdfSync Client")
	out.Println()
	out.Println("Usage:")
	out.Println("  pdfsync [OPTIONS] COMMAND")
	out.Println()
	out.Println("Options:")
	out.Println("  --version             Show version information")
	out.Println("  --config PATH         YAML configuration file")
	out.Println("  --server URL          Server URL (default: http://localhost:8080)")
	out.Println("  --csrf-token TOKEN    Value sent in the X-CSRFToken header")
	out.Println("  --pdf-id ID           Document identifier")
	out.Println("  --cache bolt|redis    Local signature cache backend (default: bolt)")
	out.Println("  --db PATH             Path to the bolt cache (default: pdfsync-client.db)")
	out.Println("  --redis-addr ADDR     Redis address for the redis cache")
	out.Println("  --interval DURATION   Watch tick interval (default: 1s)")
	out.Println("  --auto-save           Save automatically when the document changes")
	out.Println("  --title TITLE         Tab title of the document")
	out.Println()
	out.Println("Commands:")
	out.Println("  status                Show cached signatures and the server page")
	out.Println("  pull                  Replace cached signatures with the server state")
	out.Println("  push                  Send changed signatures to the server once")
	out.Println("  sign [JSON]           Store signatures as edited by the viewer")
	out.Println("  page <n>              Send the current page")
	out.Println("  upload <file> [name]  Create a new document on the server")
	out.Println("  save <file>           Upload the document with its annotations")
	out.Println("  watch [file]          Run a viewer session until interrupted")
	out.Println()
	out.Println("Examples:")
	out.Println("  pdfsync upload report.pdf")
	out.Println("  pdfsync --pdf-id 1b2c watch report.pdf")
	out.Println("  pdfsync sign '{\"sig-1\":{\"data\":\"...\"}}' && pdfsync push")
}
