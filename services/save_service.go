package services

import (
	"context"
	"strings"

	"deep-summarizer/categorizer"
	"deep-summarizer/docstore"
	"deep-summarizer/llm"
	"deep-summarizer/models"
	"deep-summarizer/usage"
)

// ContentCategorizer is satisfied by *categorizer.Categorizer.
type ContentCategorizer interface {
	Categorize(ctx context.Context, in categorizer.Input) (*models.CategorizationResult, llm.TokenUsage, error)
}

type SaveInput struct {
	Title       string
	Area        string
	TopicTags   []string
	ContentType string
	SourceURL   string
	Content     docstore.SummaryContent

	// AppendTo is a page id or URL. With FollowUp set, the follow-up is
	// appended to that page instead of creating a new one.
	AppendTo string
	FollowUp *models.FollowUp
}

type SaveResult struct {
	PageID         string                       `json:"pageId"`
	URL            string                       `json:"url"`
	Appended       bool                         `json:"appended,omitempty"`
	Categorization *models.CategorizationResult `json:"categorization,omitempty"`
}

type SaveService struct {
	writer      *docstore.Writer
	categorizer ContentCategorizer
	ledger      *usage.Ledger
}

func NewSaveService(writer *docstore.Writer, cat ContentCategorizer, ledger *usage.Ledger) *SaveService {
	return &SaveService{writer: writer, categorizer: cat, ledger: ledger}
}

// Save appends a follow-up or creates a knowledge base document. Missing
// area, tags or content type are filled in by the categorizer.
func (s *SaveService) Save(ctx context.Context, in SaveInput) (*SaveResult, error) {
	if in.AppendTo != "" && in.FollowUp != nil && strings.TrimSpace(in.FollowUp.Answer) != "" {
		pageID, ok := docstore.ParsePageID(in.AppendTo)
		if !ok {
			return nil, invalid("appendToPageId is not a page id or page URL")
		}
		ref, err := s.writer.AppendFollowUp(ctx, pageID, *in.FollowUp)
		if err != nil {
			return nil, err
		}
		return &SaveResult{PageID: ref.ID, URL: ref.URL, Appended: true}, nil
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = "Untitled"
	}
	area := strings.TrimSpace(in.Area)
	contentType := strings.TrimSpace(in.ContentType)
	tags := in.TopicTags

	var categorized *models.CategorizationResult
	if area == "" || len(tags) == 0 || contentType == "" {
		hint := title
		if hint == "Untitled" {
			hint = in.SourceURL
		}
		res, tokens, err := s.categorizer.Categorize(ctx, categorizer.Input{
			TitleOrSourceHint: hint,
			Summary:           in.Content.Summary,
			Bullets:           in.Content.Bullets,
			FounderTakeaways:  in.Content.FounderTakeaways,
		})
		if tokens.Total() > 0 {
			s.ledger.RecordTokens(ctx, usage.EndpointCategorize, tokens)
		}
		if err != nil {
			return nil, err
		}
		categorized = res
		if area == "" {
			area = res.Area
		}
		if len(tags) == 0 {
			tags = res.TopicTags
		}
		if contentType == "" {
			contentType = res.ContentType
		}
	}
	final := categorizer.Validate(area, tags, contentType)

	ref, err := s.writer.CreateDocument(ctx, docstore.PageProperties{
		Title:       title,
		Area:        final.Area,
		ContentType: final.ContentType,
		TopicTags:   final.TopicTags,
		SourceURL:   strings.TrimSpace(in.SourceURL),
	}, docstore.SummaryBlocks(in.Content))
	if err != nil {
		return nil, err
	}
	return &SaveResult{PageID: ref.ID, URL: ref.URL, Categorization: categorized}, nil
}
