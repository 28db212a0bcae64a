package docstore

import "context"

// BatchSize is the most blocks the store accepts in one call.
const BatchSize = 100

// PageRef identifies a stored page.
type PageRef struct {
	ID  string `json:"pageId"`
	URL string `json:"url"`
}

// ChildRef is a child block as listed back from the store.
type ChildRef struct {
	ID   string
	Kind BlockKind
	Text string
}

// PageProperties are the database columns written with a page. Empty values
// are left out.
type PageProperties struct {
	Title       string
	Date        string
	Area        string
	ContentType string
	SourceURL   string
	TopicTags   []string
	Icon        string
}

// Store is the CRUD surface the Writer needs from the document store.
type Store interface {
	CreatePage(ctx context.Context, databaseID string, props PageProperties, blocks []Block) (PageRef, error)
	UpdatePage(ctx context.Context, pageID string, props PageProperties) error
	ArchivePage(ctx context.Context, pageID string) error
	// FindPagesByDate returns the pages of databaseID whose Date equals date
	// ("2006-01-02").
	FindPagesByDate(ctx context.Context, databaseID, date string) ([]PageRef, error)
	ListChildren(ctx context.Context, blockID string) ([]ChildRef, error)
	// AppendChildren appends blocks under blockID, after the child afterID
	// when it is set, and returns the ids of the new blocks.
	AppendChildren(ctx context.Context, blockID, afterID string, blocks []Block) ([]string, error)
	DeleteBlock(ctx context.Context, blockID string) error
}

// UnavailableStore fails every call with Err.
type UnavailableStore struct {
	Err error
}

func (u UnavailableStore) CreatePage(context.Context, string, PageProperties, []Block) (PageRef, error) {
	return PageRef{}, u.Err
}

func (u UnavailableStore) UpdatePage(context.Context, string, PageProperties) error { return u.Err }

func (u UnavailableStore) ArchivePage(context.Context, string) error { return u.Err }

func (u UnavailableStore) FindPagesByDate(context.Context, string, string) ([]PageRef, error) {
	return nil, u.Err
}

func (u UnavailableStore) ListChildren(context.Context, string) ([]ChildRef, error) {
	return nil, u.Err
}

func (u UnavailableStore) AppendChildren(context.Context, string, string, []Block) ([]string, error) {
	return nil, u.Err
}

func (u UnavailableStore) DeleteBlock(context.Context, string) error { return u.Err }
