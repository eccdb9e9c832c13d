package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/pdfsync/internal/client/api"
	"github.com/iudanet/pdfsync/internal/client/cli"
	"github.com/iudanet/pdfsync/internal/client/iocli"
	"github.com/iudanet/pdfsync/internal/client/storage"
	"github.com/iudanet/pdfsync/internal/client/storage/boltdb"
	"github.com/iudanet/pdfsync/internal/client/storage/redis"
	clientsync "github.com/iudanet/pdfsync/internal/client/sync"
	"github.com/iudanet/pdfsync/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// cacheCloser кэш подписей, которому нужно закрыть соединение
type cacheCloser interface {
	storage.SignatureCache
	Close() error
}

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to YAML configuration file")
	serverURL := flag.String("server", "", "Server URL")
	csrfToken := flag.String("csrf-token", "", "CSRF token sent with every POST")
	pdfID := flag.String("pdf-id", "", "Document identifier")
	cacheBackend := flag.String("cache", "", "Signature cache backend: bolt or redis")
	dbPath := flag.String("db", "", "Path to local bolt database")
	redisAddr := flag.String("redis-addr", "", "Redis address for the redis cache")
	interval := flag.Duration("interval", 0, "Watch tick interval")
	autoSave := flag.Bool("auto-save", false, "Save the document automatically when it changes")
	title := flag.String("title", "", "Tab title of the document")
	verbose := flag.Bool("verbose", false, "Enable debug logging")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		os.Exit(1)
	}

	cfg, err := config.LoadClient(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Флаги, заданные явно, имеют приоритет над файлом
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "server":
			cfg.ServerURL = *serverURL
		case "csrf-token":
			cfg.CSRFToken = *csrfToken
		case "pdf-id":
			cfg.PDFID = *pdfID
		case "cache":
			cfg.Cache.Backend = *cacheBackend
		case "db":
			cfg.Cache.DBPath = *dbPath
		case "redis-addr":
			cfg.Cache.RedisAddr = *redisAddr
		case "interval":
			cfg.Interval = *interval
		case "auto-save":
			cfg.AutoSave = *autoSave
		case "title":
			cfg.TabTitle = *title
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Контекст отменяется по Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache, err := openCache(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open signature cache: %v\n", err)
		os.Exit(1)
	}

	// Создаем API клиент
	apiClient := api.NewClient(cfg.ServerURL)
	syncService := clientsync.NewService(apiClient, cache, logger)

	c := cli.New(stdio, apiClient, cache, syncService, cfg, logger)
	runErr := c.Run(ctx, args[0], args[1:])

	if err := cache.Close(); err != nil {
		logger.Error("failed to close signature cache", "error", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func openCache(ctx context.Context, cfg *config.Client) (cacheCloser, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if cfg.Cache.Backend == config.CacheRedis {
		redisStorage, err := redis.New(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisPrefix)
		if err != nil {
			return nil, err
		}
		return redisStorage, nil
	}

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.Cache.DBPath)
	if err != nil {
		return nil, err
	}
	return boltStorage, nil
}

func printVersion() {
	fmt.Printf("PdfSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
