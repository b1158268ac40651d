package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"ytnotes/internal/services"
	"ytnotes/internal/shared"
	"ytnotes/internal/tasks"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	engine     tasks.NotesEngine
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Engine     tasks.NotesEngine
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration.
//
// When no engine is supplied, one is assembled from the config: the
// transcript, Gemini and playlist clients share one HTTP client, and
// transcript fetches are paced by a single rate limiter so batch workers
// do not overwhelm the proxy.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	if opts.Engine == nil {
		limits := opts.Config.Limits
		limiter := rate.NewLimiter(rate.Limit(limits.RatePerSecond), 1)
		transcripts := services.NewTranscriptService(opts.Config.Credentials.YouTube.TranscriptURL, opts.HTTPClient, limiter)
		summarizer := services.NewGeminiService(opts.Config.Credentials.Gemini, limits.MaxTranscriptChars, opts.HTTPClient)
		playlists := services.NewPlaylistService("", opts.Config.Credentials.YouTube.APIKey, opts.HTTPClient)
		opts.Engine = tasks.NewPipelineEngine(transcripts, summarizer, playlists, limits, opts.Logger)
	}

	return &Runner{
		config:     opts.Config,
		engine:     opts.Engine,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, videoCommand, batchCommand, playlistCommand, configCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
