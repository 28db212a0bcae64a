package docstore

import (
	"context"
	"fmt"
	"strings"

	"deep-summarizer/config"
	"deep-summarizer/logger"
	"deep-summarizer/models"
)

const (
	titleLimit    = 2000
	topicTagLimit = 10
)

// Writer implements the document operations on top of a Store.
type Writer struct {
	store       Store
	databaseID  string
	editionsID  string
	frontPageID string
}

func NewWriter(store Store, cfg config.NotionConfig) *Writer {
	return &Writer{
		store:       store,
		databaseID:  strings.ReplaceAll(strings.TrimSpace(cfg.DatabaseID), "-", ""),
		editionsID:  strings.ReplaceAll(strings.TrimSpace(cfg.NewspaperDatabaseID), "-", ""),
		frontPageID: strings.ReplaceAll(strings.TrimSpace(cfg.FrontPageID), "-", ""),
	}
}

// EditionsURL links to the editions database, or "" when it is not set.
func (w *Writer) EditionsURL() string {
	if w.editionsID == "" {
		return ""
	}
	return "https://www.notion.so/" + w.editionsID
}

// RequireEditions reports whether the editions database is configured.
func (w *Writer) RequireEditions() error {
	return config.Require("NOTION_NEWSPAPER_DATABASE_ID", w.editionsID)
}

// FrontPageID returns the configured front page, or "".
func (w *Writer) FrontPageID() string { return w.frontPageID }

// CreateDocument adds a page to the knowledge base database.
func (w *Writer) CreateDocument(ctx context.Context, props PageProperties, blocks []Block) (PageRef, error) {
	if err := config.Require("NOTION_DATABASE_ID", w.databaseID); err != nil {
		return PageRef{}, err
	}
	props.Title = clampTitle(props.Title)
	if len(props.TopicTags) > topicTagLimit {
		props.TopicTags = props.TopicTags[:topicTagLimit]
	}
	return w.createPage(ctx, w.databaseID, props, blocks)
}

// UpsertDailyEdition writes the edition for date ("2006-01-02"). An existing
// page for that date has its title and content replaced; further duplicates
// are archived.
func (w *Writer) UpsertDailyEdition(ctx context.Context, title, date string, blocks []Block) (PageRef, error) {
	if err := w.RequireEditions(); err != nil {
		return PageRef{}, err
	}
	props := PageProperties{Title: clampTitle(title), Date: date, Icon: "📰"}

	existing, err := w.store.FindPagesByDate(ctx, w.editionsID, date)
	if err != nil {
		return PageRef{}, fmt.Errorf("failed to look up edition for %s: %w", date, err)
	}
	if len(existing) == 0 {
		return w.createPage(ctx, w.editionsID, props, blocks)
	}

	page := existing[0]
	if err := w.store.UpdatePage(ctx, page.ID, props); err != nil {
		return PageRef{}, fmt.Errorf("failed to update edition: %w", err)
	}
	if err := w.ReplaceAllContent(ctx, page.ID, blocks); err != nil {
		return PageRef{}, err
	}
	for _, dup := range existing[1:] {
		if err := w.store.ArchivePage(ctx, dup.ID); err != nil {
			logger.WarnWithFields("failed to archive duplicate edition", logger.Fields{"page_id": dup.ID, "error": err.Error()})
		}
	}
	if page.URL == "" {
		page.URL = PageURL(page.ID)
	}
	return page, nil
}

// AppendFollowUp adds a follow-up to pageID. With a SectionHint matching a
// heading, the blocks go after the last block of that heading's section;
// otherwise they go at the end of the page.
func (w *Writer) AppendFollowUp(ctx context.Context, pageID string, f models.FollowUp) (PageRef, error) {
	pageID = strings.ReplaceAll(pageID, "-", "")
	blocks := FollowUpBlocks(f)

	after := ""
	if hint := strings.TrimSpace(f.SectionHint); hint != "" {
		children, err := w.store.ListChildren(ctx, pageID)
		if err != nil {
			return PageRef{}, fmt.Errorf("failed to list page blocks: %w", err)
		}
		after = sectionEnd(children, hint)
	}

	if _, err := w.appendBatches(ctx, pageID, after, blocks); err != nil {
		return PageRef{}, err
	}
	return PageRef{ID: pageID, URL: PageURL(pageID)}, nil
}

// sectionEnd returns the id of the last block under the first heading that
// matches hint, or "" when no heading matches.
func sectionEnd(children []ChildRef, hint string) string {
	hint = strings.ToLower(hint)
	for i, c := range children {
		level := HeadingLevel(c.Kind)
		if level == 0 {
			continue
		}
		heading := strings.ToLower(strings.TrimSpace(c.Text))
		if heading == "" || !(strings.Contains(heading, hint) || strings.Contains(hint, heading)) {
			continue
		}

		end := i
		for j := i + 1; j < len(children); j++ {
			if l := HeadingLevel(children[j].Kind); l > 0 && l <= level {
				break
			}
			end = j
		}
		return children[end].ID
	}
	return ""
}

// ReplaceAllContent deletes every child of pageID and appends blocks. Delete
// failures are logged and skipped. The replacement is not atomic.
func (w *Writer) ReplaceAllContent(ctx context.Context, pageID string, blocks []Block) error {
	children, err := w.store.ListChildren(ctx, pageID)
	if err != nil {
		return fmt.Errorf("failed to list page blocks: %w", err)
	}
	for _, c := range children {
		if err := w.store.DeleteBlock(ctx, c.ID); err != nil {
			logger.WarnWithFields("failed to delete block", logger.Fields{"block_id": c.ID, "error": err.Error()})
		}
	}
	_, err = w.appendBatches(ctx, pageID, "", blocks)
	return err
}

// UpdateFrontPage mirrors blocks onto the front page. It is a no-op when no
// front page is configured.
func (w *Writer) UpdateFrontPage(ctx context.Context, blocks []Block) error {
	if w.frontPageID == "" {
		return nil
	}
	return w.ReplaceAllContent(ctx, w.frontPageID, blocks)
}

func (w *Writer) createPage(ctx context.Context, databaseID string, props PageProperties, blocks []Block) (PageRef, error) {
	first, rest := blocks, []Block(nil)
	if len(blocks) > BatchSize {
		first, rest = blocks[:BatchSize], blocks[BatchSize:]
	}
	page, err := w.store.CreatePage(ctx, databaseID, props, first)
	if err != nil {
		return PageRef{}, fmt.Errorf("failed to create page: %w", err)
	}
	if len(rest) > 0 {
		if _, err := w.appendBatches(ctx, page.ID, "", rest); err != nil {
			return page, err
		}
	}
	if page.URL == "" {
		page.URL = PageURL(page.ID)
	}
	return page, nil
}

// appendBatches appends blocks BatchSize at a time, keeping order when an
// anchor block is given.
func (w *Writer) appendBatches(ctx context.Context, blockID, after string, blocks []Block) ([]string, error) {
	var ids []string
	for start := 0; start < len(blocks); start += BatchSize {
		end := min(start+BatchSize, len(blocks))
		newIDs, err := w.store.AppendChildren(ctx, blockID, after, blocks[start:end])
		if err != nil {
			return ids, fmt.Errorf("failed to append blocks: %w", err)
		}
		ids = append(ids, newIDs...)
		if after != "" && len(newIDs) > 0 {
			after = newIDs[len(newIDs)-1]
		}
	}
	return ids, nil
}

func clampTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Untitled"
	}
	r := []rune(title)
	if len(r) > titleLimit {
		return string(r[:titleLimit])
	}
	return title
}
