// Command inkling turns a single exported document into a newsletter:
// it extracts editions delimited by Heading 1, emails them to a contact
// list, and builds the static web archive.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/inkling"
	"github.com/fwojciec/inkling/bluemonday"
	"github.com/fwojciec/inkling/fs"
	"github.com/fwojciec/inkling/goquery"
	"github.com/fwojciec/inkling/htmltomarkdown"
	inkhttp "github.com/fwojciec/inkling/http"
	"github.com/fwojciec/inkling/mail"
	"github.com/fwojciec/inkling/send"
	"github.com/fwojciec/inkling/site"
	inkslog "github.com/fwojciec/inkling/slog"
	"github.com/fwojciec/inkling/sqlite"
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

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ContactService inkling.ContactService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("inkling"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'inkling --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Config = configFromEnv()

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set INKLING_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ContactService = sqlite.NewContactService(m.DB)
	deps.DB = m.DB
	deps.Contacts = m.ContactService

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// Wire the document pipeline for commands that read the source document
	if cmd == "send" || cmd == "test-send" || cmd == "build" || cmd == "titles" {
		if err := deps.Config.Validate(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set INKLING_DOC_URL to the exported HTML URL of the source document")
			return err
		}

		fetcher := inkhttp.NewFetcher(
			inkhttp.WithToken(os.Getenv("INKLING_TOKEN")),
			inkhttp.WithAuthHosts(deps.Config.AuthHosts),
		)
		sanitizer := bluemonday.NewSanitizer()

		deps.Source = inkslog.NewLoggingSource(inkhttp.NewSource(fetcher, deps.Config.DocumentURL), logger)
		deps.Extractor = goquery.NewExtractor(sanitizer)

		assets := inkslog.NewLoggingAssetFetcher(fetcher, logger)

		if cmd == "send" || cmd == "test-send" {
			sender, err := mailSenderFromEnv()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Set INKLING_SMTP_HOST, INKLING_FROM, and friends to configure delivery")
				return err
			}

			deps.Sender = &send.Sender{
				Source:    deps.Source,
				Extractor: deps.Extractor,
				Sanitizer: sanitizer,
				Renderer:  htmltomarkdown.NewRenderer(),
				Assets:    assets,
				Email:     inkslog.NewLoggingEmailSender(sender, logger),
				Contacts:  deps.Contacts,
				Limiter:   send.NewIntervalLimiter(deps.Config.SendInterval),
				Config:    deps.Config,
			}
		}

		if cmd == "build" {
			baseDir, name := filepath.Split(filepath.Clean(cli.Build.Out))
			if baseDir == "" {
				baseDir = "."
			}
			deps.Builder = &site.Builder{
				Source:    deps.Source,
				Extractor: deps.Extractor,
				Sanitizer: sanitizer,
				Assets:    assets,
				Writer:    fs.NewSiteStore(baseDir, name),
				Config:    deps.Config,
			}
		}
	}

	return kongCtx.Run(deps)
}

// configFromEnv reads pipeline configuration from INKLING_* variables,
// falling back to defaults.
func configFromEnv() inkling.Config {
	cfg := inkling.DefaultConfig()
	cfg.DocumentURL = os.Getenv("INKLING_DOC_URL")
	if v := os.Getenv("INKLING_SITE_TITLE"); v != "" {
		cfg.SiteTitle = v
	}
	cfg.BaseURL = os.Getenv("INKLING_BASE_URL")
	if v := os.Getenv("INKLING_BROWSER_BANNER"); v == "false" {
		cfg.ShowBrowserBanner = false
	}
	if v := os.Getenv("INKLING_ALLOW_SUBSCRIBE"); v == "true" {
		cfg.AllowSubscribe = true
		cfg.SubscribeURL = os.Getenv("INKLING_SUBSCRIBE_URL")
	}
	return cfg
}

// mailSenderFromEnv builds the SMTP sender from INKLING_SMTP_* variables.
func mailSenderFromEnv() (*mail.Sender, error) {
	host := os.Getenv("INKLING_SMTP_HOST")
	if host == "" {
		return nil, inkling.Errorf(inkling.EINVALID, "INKLING_SMTP_HOST not set")
	}
	from := os.Getenv("INKLING_FROM")
	if from == "" {
		return nil, inkling.Errorf(inkling.EINVALID, "INKLING_FROM not set")
	}
	port := 587
	if v := os.Getenv("INKLING_SMTP_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, inkling.Errorf(inkling.EINVALID, "INKLING_SMTP_PORT %q is not a number", v)
		}
		port = p
	}

	var opts []mail.Option
	if user := os.Getenv("INKLING_SMTP_USER"); user != "" {
		opts = append(opts, mail.WithAuth(user, os.Getenv("INKLING_SMTP_PASS")))
	}
	return mail.NewSender(host, port, from, opts...)
}

func defaultDBPath() string {
	if path := os.Getenv("INKLING_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "inkling.db"
	}
	dir := filepath.Join(home, ".inkling")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "inkling.db")
}
