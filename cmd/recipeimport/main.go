package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/recipeimport"
	"github.com/fwojciec/recipeimport/extract"
	"github.com/fwojciec/recipeimport/gemini"
	"github.com/fwojciec/recipeimport/goquery"
	"github.com/fwojciec/recipeimport/htmltomarkdown"
	recipehttp "github.com/fwojciec/recipeimport/http"
	"github.com/fwojciec/recipeimport/openai"
	"github.com/fwojciec/recipeimport/readability"
	recslog "github.com/fwojciec/recipeimport/slog"
	"github.com/fwojciec/recipeimport/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Environment variables. Nil reads the process environment.
	Environ map[string]string

	// Input for commands reading HTML from stdin.
	Stdin io.Reader

	// Services for end-to-end testing. Nil values are built from config.
	Completer    recipeimport.Completer
	Fetcher      recipeimport.Fetcher
	TokenCounter recipeimport.TokenCounter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("recipeimport"),
		kong.Description("Extract structured recipes from HTML pages with an LLM."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'recipeimport --help' to see available commands")
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
	command := kongCtx.Selected().Name

	cfg, err := LoadConfig(m.Environ)
	if err != nil {
		return err
	}
	cfg = cli.apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", errorText(err))
		return err
	}

	deps.Logger = newLogger(stderr, cfg, cli.Verbose, command == "serve")
	deps.Model = cfg.Model
	deps.Credential = cfg.Credential()
	deps.Addr = cfg.Addr
	deps.NewNormalizer = normalizerFactory(cli.Content)

	fetcher := m.Fetcher
	if fetcher == nil {
		f := recipehttp.NewFetcher()
		defer f.Close()
		fetcher = f
	}
	deps.Fetcher = recslog.NewLoggingFetcher(fetcher, deps.Logger)

	completer := m.Completer
	if completer == nil {
		completer = newCompleter(cfg.Provider)
	}
	deps.Completer = recslog.NewLoggingCompleter(completer, deps.Logger)

	if command == "tokens" {
		deps.TokenCounter = m.TokenCounter
		if deps.TokenCounter == nil {
			model := gemini.DefaultModel
			if cfg.Provider == ProviderGemini && cfg.Model != "" {
				model = cfg.Model
			}
			tc, err := gemini.NewTokenCounter(model)
			if err != nil {
				fmt.Fprintf(stderr, "error: %s\n", errorText(err))
				return err
			}
			deps.TokenCounter = tc
		}
	}

	return kongCtx.Run(deps)
}

// apply overrides cfg with any flags set on the command line.
func (c *CLI) apply(cfg Config) Config {
	if c.Provider != "" {
		cfg.Provider = c.Provider
	}
	if c.Model != "" {
		cfg.Model = c.Model
	}
	if c.APIKey != "" {
		if cfg.Provider == ProviderGemini {
			cfg.GeminiKey = c.APIKey
		} else {
			cfg.OpenAIKey = c.APIKey
		}
	}
	if c.Serve.Addr != "" {
		cfg.Addr = c.Serve.Addr
	}
	if c.Verbose {
		cfg.LogLevel = "debug"
	}
	return cfg
}

// newLogger logs warnings and above for one-shot commands and info for
// the server unless configured otherwise.
func newLogger(w io.Writer, cfg Config, verbose, server bool) *slog.Logger {
	def := slog.LevelWarn
	if server {
		def = slog.LevelInfo
	}
	level := cfg.Level(def)
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newCompleter(provider string) recipeimport.Completer {
	if provider == ProviderGemini {
		return gemini.NewCompleter()
	}
	return openai.NewCompleter()
}

// normalizerFactory returns a constructor for the HTML normalizer using the
// given main-content extraction mode.
func normalizerFactory(content string) func(pageURL string) recipeimport.Normalizer {
	return func(pageURL string) recipeimport.Normalizer {
		n := &extract.Normalizer{
			Sanitizer: goquery.NewSanitizer(),
			Converter: htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(domainOf(pageURL))),
			Fallback:  goquery.NewTextConverter(),
		}
		switch content {
		case "meta":
			n.Extractor = goquery.NewMetaExtractor()
		case "trafilatura":
			n.Extractor = trafilatura.NewExtractor(trafilatura.WithPageURL(pageURL))
		case "readability":
			n.Extractor = readability.NewExtractor(readability.WithPageURL(pageURL))
		}
		return n
	}
}

// domainOf returns the scheme and host of rawURL, or "" if it has none.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
