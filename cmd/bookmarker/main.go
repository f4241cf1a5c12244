package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/enesy/bookmarker"
	"github.com/enesy/bookmarker/capture"
	"github.com/enesy/bookmarker/extract"
	"github.com/enesy/bookmarker/fs"
	"github.com/enesy/bookmarker/gemini"
	"github.com/enesy/bookmarker/htmltomarkdown"
	bmhttp "github.com/enesy/bookmarker/http"
	"github.com/enesy/bookmarker/postgres"
	"github.com/enesy/bookmarker/rod"
	bmslog "github.com/enesy/bookmarker/slog"
	"github.com/enesy/bookmarker/sqlite"
	"github.com/enesy/bookmarker/sync"
	"github.com/enesy/bookmarker/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Cloud connection string and user id; sync stays disabled when the
	// DSN is empty.
	CloudDSN string
	UserID   string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services exposed for end-to-end testing.
	BookmarkService bookmarker.BookmarkService
	NoteService     bookmarker.NoteService
	FolderService   bookmarker.FolderService
}

// NewMain returns a new instance of Main with defaults from the environment.
func NewMain() *Main {
	return &Main{
		DBPath:   defaultDBPath(),
		CloudDSN: os.Getenv("BOOKMARKER_CLOUD_DSN"),
		UserID:   os.Getenv("BOOKMARKER_USER"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if os.Getenv("BOOKMARKER_DEBUG") != "" {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bookmarker"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'bookmarker --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open local store
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set BOOKMARKER_DB to use a different database path")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.BookmarkService = sqlite.NewBookmarkService(m.DB)
	m.NoteService = sqlite.NewNoteService(m.DB)
	m.FolderService = sqlite.NewFolderService(m.DB)
	deps.DB = m.DB
	deps.Bookmarks = m.BookmarkService
	deps.Notes = m.NoteService
	deps.Folders = m.FolderService
	deps.Prefs = sqlite.NewPreferenceService(m.DB)

	// Cloud sync is optional: without a DSN every sync surface is inert
	// and the identity is treated as signed out.
	if m.CloudDSN != "" {
		cloudDB := postgres.NewDB(m.CloudDSN)
		if err := cloudDB.Open(ctx); err != nil {
			fmt.Fprintln(stderr, "Hint: Check BOOKMARKER_CLOUD_DSN points at a reachable database")
			return fmt.Errorf("failed to connect to cloud store: %w", err)
		}
		defer cloudDB.Close()

		reconciler := sync.NewService(postgres.NewCloudStore(cloudDB),
			m.BookmarkService, m.NoteService, m.FolderService, logger)
		deps.Sync = bmslog.NewLoggingSyncService(reconciler, logger)
		deps.Auth = staticAuth(m.UserID)
	} else {
		deps.Sync = disabledSync{}
		deps.Auth = staticAuth("")
	}

	// Two fetchers: plain for JSON endpoints, browser-flavored for pages.
	api := bmhttp.NewFetcher()
	defer api.Close()
	var pages bookmarker.Fetcher
	if cli.Browser {
		browser, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		pages = browser
	} else {
		pages = bmhttp.NewFetcher(bmhttp.WithUserAgent(bmhttp.BrowserUserAgent))
	}
	defer pages.Close()

	extractor := extract.NewService(api, pages,
		extract.WithYouTubeAPIKey(os.Getenv("BOOKMARKER_YOUTUBE_API_KEY")))

	var article bookmarker.ArticleExtractor = extract.NewHeuristicExtractor()
	if cli.Read.Readability {
		article = trafilatura.NewExtractor()
	}

	deps.Previews = extractor
	deps.Reader = extract.NewReader(pages, article)
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Capture = capture.NewService(
		bmslog.NewLoggingExtractor(extractor, logger),
		m.BookmarkService, m.FolderService, deps.Prefs, deps.Auth, deps.Sync, logger)

	if cmd == "summarize" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Summarizer = gemini.NewSummarizer(client)
	}

	if cmd == "export" {
		deps.Exporter = fs.NewExporter(cli.Export.Dir)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("BOOKMARKER_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "bookmarker.db"
	}
	dir := filepath.Join(home, ".bookmarker")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "bookmarker.db")
}

var (
	_ bookmarker.AuthService = staticAuth("")
	_ bookmarker.SyncService = disabledSync{}
)

// staticAuth is a fixed-identity AuthService for the CLI; identity comes
// from the environment rather than a provider handshake.
type staticAuth string

func (a staticAuth) CurrentUserID(context.Context) (string, error) {
	return string(a), nil
}

// disabledSync satisfies bookmarker.SyncService when no cloud store is
// configured. Everything is a no-op, matching the signed-out contract.
type disabledSync struct{}

func (disabledSync) MirrorBookmark(context.Context, string, *bookmarker.Bookmark) error { return nil }
func (disabledSync) MirrorNote(context.Context, string, *bookmarker.Note) error         { return nil }
func (disabledSync) MirrorFolder(context.Context, string, *bookmarker.Folder) error     { return nil }
func (disabledSync) DeleteRemoteBookmark(context.Context, string, int64) error          { return nil }
func (disabledSync) DeleteRemoteNote(context.Context, string, int64) error              { return nil }
func (disabledSync) DeleteRemoteFolder(context.Context, string, int64) error            { return nil }
func (disabledSync) PullFromCloud(context.Context, string) error {
	return errSyncDisabled
}
func (disabledSync) PerformFullRestore(context.Context, string) error {
	return errSyncDisabled
}
func (disabledSync) SyncNow(context.Context, string) error {
	return errSyncDisabled
}
func (disabledSync) Status() bookmarker.SyncStatus { return bookmarker.SyncIdle }

var errSyncDisabled = bookmarker.Errorf(bookmarker.EUNAVAILABLE,
	"cloud sync is not configured. Set BOOKMARKER_CLOUD_DSN and BOOKMARKER_USER")
