package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"deep-summarizer/briefing"
	"deep-summarizer/config"
	"deep-summarizer/docstore"
	"deep-summarizer/logger"
	"deep-summarizer/models"
	"deep-summarizer/usage"
)

// EditionComposer is satisfied by *briefing.Composer.
type EditionComposer interface {
	Compose(ctx context.Context, date time.Time) (*briefing.ComposeResult, error)
}

type EditionResult struct {
	Edition    *models.Edition `json:"edition"`
	Markdown   string          `json:"markdown,omitempty"`
	EditionURL string          `json:"editionUrl,omitempty"`
	Title      string          `json:"editionTitle"`
	Date       string          `json:"date"`
	Preview    bool            `json:"preview"`
}

type EditionService struct {
	composer EditionComposer
	writer   *docstore.Writer
	ledger   *usage.Ledger
	cfg      config.BriefingConfig
	loc      *time.Location
	now      func() time.Time
}

func NewEditionService(composer EditionComposer, writer *docstore.Writer, ledger *usage.Ledger, cfg config.BriefingConfig) *EditionService {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.WarnWithFields("unknown briefing timezone, using UTC", logger.Fields{"timezone": cfg.Timezone})
		loc = time.UTC
	}
	return &EditionService{composer: composer, writer: writer, ledger: ledger, cfg: cfg, loc: loc, now: time.Now}
}

// Run composes today's edition. A preview returns it without writing;
// otherwise it replaces the stored edition for today and mirrors it to the
// front page on a best-effort basis.
func (s *EditionService) Run(ctx context.Context, preview bool) (*EditionResult, error) {
	if !preview {
		if err := s.writer.RequireEditions(); err != nil {
			return nil, err
		}
	}

	today := s.now().In(s.loc)
	composed, err := s.composer.Compose(ctx, today)
	if composed != nil && composed.Usage.Total() > 0 {
		s.ledger.RecordTokens(ctx, usage.EndpointBriefing, composed.Usage)
	}
	if err != nil {
		return nil, err
	}

	edition := composed.Edition
	res := &EditionResult{
		Edition: edition,
		Title:   edition.Title,
		Date:    edition.DateKey(),
		Preview: preview,
	}
	if preview {
		res.Markdown = briefing.RenderMarkdown(edition)
		return res, nil
	}

	blocks := docstore.EditionBlocks(edition, s.links())
	ref, err := s.writer.UpsertDailyEdition(ctx, edition.Title, edition.DateKey(), blocks)
	if err != nil {
		return nil, err
	}
	res.EditionURL = ref.URL

	if err := s.writer.UpdateFrontPage(ctx, blocks); err != nil {
		logger.ErrorWithFields("front page update failed", logger.Fields{"error": err.Error()})
	}
	return res, nil
}

// FrontPageURL is the public URL of the front page, or "".
func (s *EditionService) FrontPageURL() string {
	if id := s.writer.FrontPageID(); id != "" {
		return docstore.PageURL(id)
	}
	return ""
}

func (s *EditionService) links() docstore.EditionLinks {
	runNow := strings.TrimSpace(s.cfg.RunNowURL)
	links := docstore.EditionLinks{
		RunNowURL:   runNow,
		EditionsURL: s.writer.EditionsURL(),
		FrontPageID: s.writer.FrontPageID(),
	}
	if base := AppBaseURL(runNow); base != "" {
		links.ClarifyURL = base + "/clarify"
	}
	return links
}

var briefingPath = regexp.MustCompile(`(/api(/v1)?)?/daily-briefing/?$`)

// AppBaseURL derives the app's base URL from the run-now link by dropping
// the query and the daily-briefing path.
func AppBaseURL(runNowURL string) string {
	if runNowURL == "" {
		return ""
	}
	base, _, _ := strings.Cut(runNowURL, "?")
	base = briefingPath.ReplaceAllString(base, "")
	return strings.TrimSuffix(base, "/")
}
