// oneshot asks a hosted language model one question and prints the answer
// along with the response metadata (finish reason, safety checks, candidate
// count).
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fogfish/opts"
	_ "github.com/joho/godotenv/autoload"
	"github.com/mattn/go-isatty"
	"github.com/phsym/zeroslog"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/oneshot-dev/oneshot"
	"github.com/oneshot-dev/oneshot/internal/render"
	"github.com/oneshot-dev/oneshot/pkg/slogx"
	"github.com/oneshot-dev/oneshot/provider"
	"github.com/oneshot-dev/oneshot/provider/gemini"
	"github.com/oneshot-dev/oneshot/provider/openai"
	"github.com/oneshot-dev/oneshot/provider/providers"
)

// Exit codes per failure kind. Success is 0, anything unclassified is 1.
const (
	exitFailure             = 1
	exitMissingCredential   = 2
	exitProviderUnavailable = 3
	exitNoUsableModel       = 4
	exitGenerationFailed    = 5
)

var log zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Stamp}
	log = zerolog.New(output).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	slog.SetDefault(slog.New(
		zeroslog.NewHandler(log, &zeroslog.HandlerOptions{Level: slog.LevelInfo}),
	))
}

func main() {
	providers.Register("gemini", func(ctx context.Context, apiKey string) (provider.Provider, error) {
		return gemini.New(ctx, apiKey)
	})
	providers.Register("openai", func(_ context.Context, apiKey string) (provider.Provider, error) {
		return openai.New(apiKey)
	})

	var cli CLI
	kong.Parse(&cli,
		kong.Name("oneshot"),
		kong.Description("Ask a hosted language model one question and print the answer."),
		kong.UsageOnError(),
	)
	os.Exit(run(&cli))
}

func run(cli *CLI) int {
	if cli.Verbose {
		log = log.Level(zerolog.DebugLevel)
		slog.SetDefault(slog.New(
			zeroslog.NewHandler(log, &zeroslog.HandlerOptions{Level: slog.LevelDebug}),
		))
	}

	ctx := context.Background()

	prov, err := providers.New(ctx, cli.Provider, resolveAPIKey(cli.Provider, cli.APIKey))
	if err != nil {
		fail(err)
		return exitCode(err)
	}

	options := []opts.Option[oneshot.Client]{
		oneshot.WithTimeout(cli.Timeout),
		oneshot.WithLogger(log),
	}
	if cli.Prompt != nil {
		options = append(options, oneshot.WithPrompt(*cli.Prompt))
	}
	if len(cli.Models) > 0 {
		options = append(options, oneshot.WithPreferredModels(cli.Models...))
	}
	if cli.Strict {
		options = append(options, oneshot.WithStrict())
	}

	client, err := oneshot.New(prov, options...)
	if err != nil {
		fail(err)
		return exitFailure
	}

	tty := isatty.IsTerminal(os.Stdout.Fd())
	renderOpts := render.Options{JSON: cli.JSON, Color: tty, Markdown: tty}

	if cli.List {
		catalog, err := client.Catalog(ctx)
		if err != nil {
			fail(err)
			return exitCode(err)
		}
		if err := render.Catalog(os.Stdout, catalog, renderOpts); err != nil {
			fail(err)
			return exitFailure
		}
		return 0
	}

	report, err := client.Run(ctx)
	if err != nil {
		fail(err)
		return exitCode(err)
	}
	slog.Debug("run complete", slogx.Stringer("run", report.RunID))

	if err := render.Report(os.Stdout, report, renderOpts); err != nil {
		fail(err)
		return exitFailure
	}
	return 0
}

func fail(err error) {
	args := []any{slogx.Error(err)}
	if detail := providerDetail(err); detail != "" {
		args = append(args, slog.String("detail", detail))
	}
	slog.Error("run failed", args...)
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, provider.ErrMissingCredential):
		return exitMissingCredential
	case errors.Is(err, provider.ErrProviderUnavailable):
		return exitProviderUnavailable
	case errors.Is(err, provider.ErrNoUsableModel), errors.Is(err, provider.ErrNoPreferredModel):
		return exitNoUsableModel
	case errors.Is(err, provider.ErrGenerationFailed):
		return exitGenerationFailed
	default:
		return exitFailure
	}
}

// providerDetail digs a human-readable message out of a JSON error body when
// the backend embedded one in the error text.
func providerDetail(err error) string {
	msg := err.Error()
	start := strings.IndexByte(msg, '{')
	if start < 0 {
		return ""
	}
	body := msg[start:]
	if !gjson.Valid(body) {
		return ""
	}
	if detail := gjson.Get(body, "error.message"); detail.Exists() {
		return detail.String()
	}
	if detail := gjson.Get(body, "error.status"); detail.Exists() {
		return detail.String()
	}
	return ""
}
