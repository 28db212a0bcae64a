package docstore

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store used for preview runs and tests.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int
	pages  []*MemoryPage
	// DeleteErr, when set, is returned by every DeleteBlock call.
	DeleteErr error
}

type MemoryPage struct {
	ID         string
	DatabaseID string
	Props      PageProperties
	Archived   bool
	Children   []MemoryBlock
}

type MemoryBlock struct {
	ID    string
	Block Block
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) id() string {
	m.nextID++
	return fmt.Sprintf("%032x", m.nextID)
}

func (m *MemoryStore) page(id string) (*MemoryPage, error) {
	for _, p := range m.pages {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("page %s not found", id)
}

// AddPage registers an existing page, such as a front page, and returns it.
func (m *MemoryStore) AddPage(id string, blocks ...Block) *MemoryPage {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := &MemoryPage{ID: id}
	for _, b := range blocks {
		p.Children = append(p.Children, MemoryBlock{ID: m.id(), Block: b})
	}
	m.pages = append(m.pages, p)
	return p
}

// Pages returns the live pages of databaseID.
func (m *MemoryStore) Pages(databaseID string) []*MemoryPage {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*MemoryPage
	for _, p := range m.pages {
		if p.DatabaseID == databaseID && !p.Archived {
			out = append(out, p)
		}
	}
	return out
}

// Page returns the page with id, or nil.
func (m *MemoryStore) Page(id string) *MemoryPage {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, _ := m.page(id)
	return p
}

func (m *MemoryStore) CreatePage(_ context.Context, databaseID string, props PageProperties, blocks []Block) (PageRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := &MemoryPage{ID: m.id(), DatabaseID: databaseID, Props: props}
	for _, b := range blocks {
		p.Children = append(p.Children, MemoryBlock{ID: m.id(), Block: b})
	}
	m.pages = append(m.pages, p)
	return PageRef{ID: p.ID, URL: PageURL(p.ID)}, nil
}

func (m *MemoryStore) UpdatePage(_ context.Context, pageID string, props PageProperties) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, err := m.page(pageID)
	if err != nil {
		return err
	}
	p.Props = props
	return nil
}

func (m *MemoryStore) ArchivePage(_ context.Context, pageID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, err := m.page(pageID)
	if err != nil {
		return err
	}
	p.Archived = true
	return nil
}

func (m *MemoryStore) FindPagesByDate(_ context.Context, databaseID, date string) ([]PageRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []PageRef
	for _, p := range m.pages {
		if p.DatabaseID == databaseID && !p.Archived && p.Props.Date == date {
			out = append(out, PageRef{ID: p.ID, URL: PageURL(p.ID)})
		}
	}
	return out, nil
}

func (m *MemoryStore) ListChildren(_ context.Context, blockID string) ([]ChildRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, err := m.page(blockID)
	if err != nil {
		return nil, err
	}
	out := make([]ChildRef, 0, len(p.Children))
	for _, c := range p.Children {
		out = append(out, ChildRef{ID: c.ID, Kind: c.Block.Kind, Text: c.Block.Text()})
	}
	return out, nil
}

func (m *MemoryStore) AppendChildren(_ context.Context, blockID, afterID string, blocks []Block) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, err := m.page(blockID)
	if err != nil {
		return nil, err
	}

	at := len(p.Children)
	if afterID != "" {
		at = -1
		for i, c := range p.Children {
			if c.ID == afterID {
				at = i + 1
				break
			}
		}
		if at < 0 {
			return nil, fmt.Errorf("block %s not found", afterID)
		}
	}

	added := make([]MemoryBlock, 0, len(blocks))
	ids := make([]string, 0, len(blocks))
	for _, b := range blocks {
		mb := MemoryBlock{ID: m.id(), Block: b}
		added = append(added, mb)
		ids = append(ids, mb.ID)
	}
	children := append([]MemoryBlock{}, p.Children[:at]...)
	children = append(children, added...)
	p.Children = append(children, p.Children[at:]...)
	return ids, nil
}

func (m *MemoryStore) DeleteBlock(_ context.Context, blockID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for _, p := range m.pages {
		for i, c := range p.Children {
			if c.ID == blockID {
				p.Children = append(p.Children[:i], p.Children[i+1:]...)
				return nil
			}
		}
	}
	return fmt.Errorf("block %s not found", blockID)
}
