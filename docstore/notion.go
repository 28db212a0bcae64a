package docstore

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jomei/notionapi"
)

// NotionStore is the Store backed by the Notion API.
type NotionStore struct {
	client *notionapi.Client
}

// NewNotionStore returns a store authenticated with token. A nil httpClient
// uses the library default.
func NewNotionStore(token string, httpClient *http.Client) *NotionStore {
	var opts []notionapi.ClientOption
	if httpClient != nil {
		opts = append(opts, notionapi.WithHTTPClient(httpClient))
	}
	return &NotionStore{client: notionapi.NewClient(notionapi.Token(token), opts...)}
}

func (s *NotionStore) CreatePage(ctx context.Context, databaseID string, props PageProperties, blocks []Block) (PageRef, error) {
	req := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(databaseID),
		},
		Properties: toProperties(props),
		Children:   toNotionBlocks(blocks),
	}
	if props.Icon != "" {
		req.Icon = emojiIcon(props.Icon)
	}

	page, err := s.client.Page.Create(ctx, req)
	if err != nil {
		return PageRef{}, err
	}
	return PageRef{ID: page.ID.String(), URL: page.URL}, nil
}

func (s *NotionStore) UpdatePage(ctx context.Context, pageID string, props PageProperties) error {
	_, err := s.client.Page.Update(ctx, notionapi.PageID(pageID), &notionapi.PageUpdateRequest{
		Properties: toProperties(props),
	})
	return err
}

func (s *NotionStore) ArchivePage(ctx context.Context, pageID string) error {
	_, err := s.client.Page.Update(ctx, notionapi.PageID(pageID), &notionapi.PageUpdateRequest{
		Properties: notionapi.Properties{},
		Archived:   true,
	})
	return err
}

func (s *NotionStore) FindPagesByDate(ctx context.Context, databaseID, date string) ([]PageRef, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid edition date %q: %w", date, err)
	}
	equals := notionapi.Date(day)

	req := &notionapi.DatabaseQueryRequest{
		Filter: &notionapi.PropertyFilter{
			Property: "Date",
			Date:     &notionapi.DateFilterCondition{Equals: &equals},
		},
		PageSize: BatchSize,
	}

	var out []PageRef
	for {
		resp, err := s.client.Database.Query(ctx, notionapi.DatabaseID(databaseID), req)
		if err != nil {
			return nil, err
		}
		for _, p := range resp.Results {
			out = append(out, PageRef{ID: p.ID.String(), URL: p.URL})
		}
		if !resp.HasMore {
			return out, nil
		}
		req.StartCursor = notionapi.Cursor(resp.NextCursor)
	}
}

func (s *NotionStore) ListChildren(ctx context.Context, blockID string) ([]ChildRef, error) {
	var (
		out    []ChildRef
		cursor notionapi.Cursor
	)
	for {
		resp, err := s.client.Block.GetChildren(ctx, notionapi.BlockID(blockID), &notionapi.Pagination{
			StartCursor: cursor,
			PageSize:    BatchSize,
		})
		if err != nil {
			return nil, err
		}
		for _, b := range resp.Results {
			out = append(out, childRef(b))
		}
		if !resp.HasMore {
			return out, nil
		}
		cursor = notionapi.Cursor(resp.NextCursor)
	}
}

func (s *NotionStore) AppendChildren(ctx context.Context, blockID, afterID string, blocks []Block) ([]string, error) {
	req := &notionapi.AppendBlockChildrenRequest{Children: toNotionBlocks(blocks)}
	if afterID != "" {
		req.After = notionapi.BlockID(afterID)
	}
	resp, err := s.client.Block.AppendChildren(ctx, notionapi.BlockID(blockID), req)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(resp.Results))
	for _, b := range resp.Results {
		ids = append(ids, string(b.GetID()))
	}
	return ids, nil
}

func (s *NotionStore) DeleteBlock(ctx context.Context, blockID string) error {
	_, err := s.client.Block.Delete(ctx, notionapi.BlockID(blockID))
	return err
}

func toProperties(p PageProperties) notionapi.Properties {
	props := notionapi.Properties{}
	if p.Title != "" {
		props["Name"] = notionapi.TitleProperty{Title: richText([]Span{{Text: p.Title}})}
	}
	if p.Date != "" {
		if day, err := time.Parse("2006-01-02", p.Date); err == nil {
			start := notionapi.Date(day)
			props["Date"] = notionapi.DateProperty{Date: &notionapi.DateObject{Start: &start}}
		}
	}
	if p.Area != "" {
		props["Area"] = notionapi.SelectProperty{Select: notionapi.Option{Name: p.Area}}
	}
	if p.ContentType != "" {
		props["Content Type"] = notionapi.SelectProperty{Select: notionapi.Option{Name: p.ContentType}}
	}
	if p.SourceURL != "" {
		props["Source URL"] = notionapi.URLProperty{URL: p.SourceURL}
	}
	if len(p.TopicTags) > 0 {
		opts := make([]notionapi.Option, 0, len(p.TopicTags))
		for _, t := range p.TopicTags {
			opts = append(opts, notionapi.Option{Name: t})
		}
		props["Topic Tags"] = notionapi.MultiSelectProperty{MultiSelect: opts}
	}
	return props
}

func emojiIcon(e string) *notionapi.Icon {
	emoji := notionapi.Emoji(e)
	return &notionapi.Icon{Type: "emoji", Emoji: &emoji}
}

func richText(spans []Span) []notionapi.RichText {
	out := make([]notionapi.RichText, 0, len(spans))
	for _, s := range spans {
		t := &notionapi.Text{Content: s.Text}
		if s.URL != "" {
			t.Link = &notionapi.Link{Url: s.URL}
		}
		out = append(out, notionapi.RichText{Type: notionapi.ObjectTypeText, Text: t, PlainText: s.Text})
	}
	return out
}

func basic(t notionapi.BlockType) notionapi.BasicBlock {
	return notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: t}
}

func toNotionBlocks(blocks []Block) []notionapi.Block {
	out := make([]notionapi.Block, 0, len(blocks))
	for _, b := range blocks {
		rt := richText(b.Spans)
		switch b.Kind {
		case KindHeading1:
			out = append(out, &notionapi.Heading1Block{BasicBlock: basic(notionapi.BlockTypeHeading1), Heading1: notionapi.Heading{RichText: rt}})
		case KindHeading2:
			out = append(out, &notionapi.Heading2Block{BasicBlock: basic(notionapi.BlockTypeHeading2), Heading2: notionapi.Heading{RichText: rt}})
		case KindHeading3:
			out = append(out, &notionapi.Heading3Block{BasicBlock: basic(notionapi.BlockTypeHeading3), Heading3: notionapi.Heading{RichText: rt}})
		case KindBullet:
			out = append(out, &notionapi.BulletedListItemBlock{BasicBlock: basic(notionapi.BlockTypeBulletedListItem), BulletedListItem: notionapi.ListItem{RichText: rt}})
		case KindCallout:
			out = append(out, &notionapi.CalloutBlock{BasicBlock: basic(notionapi.BlockTypeCallout), Callout: notionapi.Callout{
				RichText: rt,
				Icon:     emojiIcon(b.Icon),
				Color:    "gray_background",
			}})
		case KindDivider:
			out = append(out, &notionapi.DividerBlock{BasicBlock: basic(notionapi.BlockTypeDivider), Divider: notionapi.Divider{}})
		case KindEmbed:
			out = append(out, &notionapi.EmbedBlock{BasicBlock: basic(notionapi.BlockTypeEmbed), Embed: notionapi.Embed{URL: b.URL}})
		default:
			out = append(out, &notionapi.ParagraphBlock{BasicBlock: basic(notionapi.BlockTypeParagraph), Paragraph: notionapi.Paragraph{RichText: rt}})
		}
	}
	return out
}

func plainText(rt []notionapi.RichText) string {
	var s string
	for _, r := range rt {
		if r.PlainText != "" {
			s += r.PlainText
		} else if r.Text != nil {
			s += r.Text.Content
		}
	}
	return s
}

func childRef(b notionapi.Block) ChildRef {
	ref := ChildRef{ID: string(b.GetID()), Kind: BlockKind(b.GetType())}
	switch v := b.(type) {
	case *notionapi.Heading1Block:
		ref.Text = plainText(v.Heading1.RichText)
	case *notionapi.Heading2Block:
		ref.Text = plainText(v.Heading2.RichText)
	case *notionapi.Heading3Block:
		ref.Text = plainText(v.Heading3.RichText)
	case *notionapi.ParagraphBlock:
		ref.Text = plainText(v.Paragraph.RichText)
	}
	return ref
}
