package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/recipeimport"
	"github.com/fwojciec/recipeimport/extract"
	recslog "github.com/fwojciec/recipeimport/slog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher      recipeimport.Fetcher
	Completer    recipeimport.Completer
	TokenCounter recipeimport.TokenCounter

	// NewNormalizer builds the HTML normalizer. pageURL is the address the
	// HTML came from, or "" for pasted input.
	NewNormalizer func(pageURL string) recipeimport.Normalizer

	// Model overrides the provider's default model when set.
	Model string
	// Credential is the API key used when none is given per request.
	Credential string
	// Addr is the listen address for the serve command.
	Addr string
}

// Importer returns an Importer for strategy that normalizes with normalizer.
func (d *Dependencies) Importer(strategy recipeimport.Strategy, normalizer recipeimport.Normalizer) (recipeimport.Importer, error) {
	client := &extract.Client{Completer: d.Completer, Model: d.Model}
	importer, err := extract.NewImporter(strategy, normalizer, client)
	if err != nil {
		return nil, err
	}
	if d.Logger != nil {
		importer = recslog.NewLoggingImporter(importer, strategy, d.Logger)
	}
	return importer, nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Provider string `help:"LLM provider: openai or gemini (default from RECIPEIMPORT_PROVIDER, else openai)"`
	Model    string `help:"Model name (default from RECIPEIMPORT_MODEL, else the provider default)"`
	APIKey   string `name:"api-key" help:"Provider API key (default from OPENAI_API_KEY or GEMINI_API_KEY)"`
	Content  string `default:"meta" enum:"none,meta,trafilatura,readability" help:"Main-content extraction before conversion: ${enum}"`
	Verbose  bool   `short:"v" help:"Enable debug logging"`

	Import   ImportCmd   `cmd:"" help:"Import a recipe from an HTML page"`
	Markdown MarkdownCmd `cmd:"" help:"Print the markdown sent to the model"`
	Schema   SchemaCmd   `cmd:"" help:"Print the JSON schema of a schema variant"`
	Tokens   TokensCmd   `cmd:"" help:"Count tokens of the markdown sent to the model"`
	Serve    ServeCmd    `cmd:"" help:"Serve the web import form"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File     string `arg:"" optional:"" help:"HTML file to read ('-' or empty for stdin)"`
	URL      string `name:"url" short:"u" help:"Fetch the HTML from this URL instead of a file"`
	Strategy string `short:"s" default:"single" enum:"single,parallel" help:"Extraction strategy: ${enum}"`
	Format   string `short:"f" default:"text" enum:"text,json" help:"Output format: ${enum}"`
}

// MarkdownCmd is the "markdown" subcommand.
type MarkdownCmd struct {
	File string `arg:"" optional:"" help:"HTML file to read ('-' or empty for stdin)"`
	URL  string `name:"url" short:"u" help:"Fetch the HTML from this URL instead of a file"`
}

// SchemaCmd is the "schema" subcommand.
type SchemaCmd struct {
	Variant string `arg:"" optional:"" default:"full" help:"Schema variant: full, metadata, ingredients or methods"`
}

// TokensCmd is the "tokens" subcommand.
type TokensCmd struct {
	File string `arg:"" optional:"" help:"HTML file to read ('-' or empty for stdin)"`
	URL  string `name:"url" short:"u" help:"Fetch the HTML from this URL instead of a file"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (default from RECIPEIMPORT_ADDR, else :8080)"`
}
