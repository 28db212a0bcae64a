// Package app builds the services from configuration. Both binaries start
// here.
package app

import (
	"context"
	"errors"
	"time"

	"deep-summarizer/assistant"
	"deep-summarizer/briefing"
	"deep-summarizer/categorizer"
	"deep-summarizer/config"
	"deep-summarizer/docstore"
	"deep-summarizer/extractor"
	"deep-summarizer/feeder"
	"deep-summarizer/httpclient"
	"deep-summarizer/llm"
	"deep-summarizer/logger"
	"deep-summarizer/renderer"
	"deep-summarizer/services"
	"deep-summarizer/spotify"
	"deep-summarizer/summarizer"
	"deep-summarizer/usage"
	"deep-summarizer/youtube"
)

type App struct {
	Config config.AppConfig
	Ledger *usage.Ledger

	Summaries *services.SummaryService
	Editions  *services.EditionService
	Documents *services.SaveService
	Assistant *services.AssistantService
	Speech    *services.SpeechService

	closers []func() error
}

// New wires every service. Missing provider or Notion credentials do not
// fail startup: the affected operations report the missing setting when
// they are called.
func New(ctx context.Context, cfg config.AppConfig) (*App, error) {
	a := &App{Config: cfg}

	store, closeStore, err := usage.OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, closeStore)
	a.Ledger = usage.NewLedger(store)

	client, err := llm.NewFromConfig(ctx, cfg)
	if err != nil {
		if !errors.Is(err, config.ErrMissingSetting) {
			a.Close()
			return nil, err
		}
		logger.WarnWithFields("llm provider not configured", logger.Fields{"error": err.Error()})
		client = llm.Unavailable{Err: err}
	}
	speaker, err := llm.NewSpeakerFromConfig(cfg)
	if err != nil {
		speaker = llm.Unavailable{Err: err}
	}

	ex, err := newExtractor(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	var docs docstore.Store
	if err := config.Require("NOTION_API_KEY", cfg.Secrets.NotionAPIKey); err != nil {
		logger.WarnWithFields("notion not configured", logger.Fields{"error": err.Error()})
		docs = docstore.UnavailableStore{Err: err}
	} else {
		docs = docstore.NewNotionStore(cfg.Secrets.NotionAPIKey, httpclient.New(httpclient.Config{Timeout: 30 * time.Second}))
	}
	writer := docstore.NewWriter(docs, cfg.Notion)

	persona := cfg.Reader.Persona
	composer := briefing.New(client, feeder.New(),
		briefing.WithPersona(persona),
		briefing.WithPublication(cfg.Briefing.Publication),
		briefing.WithModel(cfg.LLM.Model),
	)

	a.Summaries = services.NewSummaryService(ex, summarizer.New(client, persona, cfg.LLM.Model, cfg.LLM.ChunkModel), a.Ledger)
	a.Editions = services.NewEditionService(composer, writer, a.Ledger, cfg.Briefing)
	a.Documents = services.NewSaveService(writer, categorizer.New(client), a.Ledger)
	a.Assistant = services.NewAssistantService(assistant.New(client, persona, cfg.LLM.Model), a.Ledger)
	a.Speech = services.NewSpeechService(speaker, a.Ledger)
	return a, nil
}

func newExtractor(ctx context.Context, cfg config.AppConfig) (*extractor.Extractor, error) {
	timeout := time.Duration(cfg.Extraction.TimeoutSeconds) * time.Second
	opts := []extractor.Option{extractor.WithHTTPClient(httpclient.NewBrowser(timeout))}

	if key := cfg.Secrets.YouTubeAPIKey; key != "" {
		searcher, err := youtube.NewDataAPISearcher(ctx, key)
		if err != nil {
			return nil, err
		}
		opts = append(opts, extractor.WithSearcher(searcher))
	}
	// without credentials the client still resolves titles through oEmbed
	opts = append(opts, extractor.WithPodcasts(spotify.NewClient(spotify.Config{
		ClientID:     cfg.Secrets.SpotifyClientID,
		ClientSecret: cfg.Secrets.SpotifyClientSecret,
		Timeout:      timeout,
	})))
	if cfg.Extraction.RenderFallback {
		opts = append(opts, extractor.WithRenderer(renderer.New(cfg.Extraction.ChromePath, timeout)))
	}
	return extractor.New(opts...), nil
}

// Close releases the usage store.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
