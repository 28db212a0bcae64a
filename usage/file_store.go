package usage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"deep-summarizer/models"
)

// ErrStoreClosed is returned after Close.
var ErrStoreClosed = errors.New("usage store closed")

type fileDocument struct {
	Entries []models.UsageEntry `json:"entries"`
}

type fileOp struct {
	entry *models.UsageEntry
	reply chan fileResult
}

type fileResult struct {
	entries []models.UsageEntry
	err     error
}

// FileStore keeps entries in a JSON document {"entries": [...]}. One goroutine
// owns the file; every write replaces it through a temp file and rename, so
// concurrent records are never lost and readers never see a partial file.
type FileStore struct {
	path string
	ops  chan fileOp
	done chan struct{}
}

func NewFileStore(path string) *FileStore {
	s := &FileStore{
		path: path,
		ops:  make(chan fileOp),
		done: make(chan struct{}),
	}
	go s.loop()
	return s
}

func (s *FileStore) loop() {
	defer close(s.done)

	var (
		doc    fileDocument
		loaded bool
	)
	for op := range s.ops {
		if !loaded {
			doc = s.load()
			loaded = true
		}

		if op.entry == nil {
			out := make([]models.UsageEntry, len(doc.Entries))
			copy(out, doc.Entries)
			op.reply <- fileResult{entries: out}
			continue
		}

		next := fileDocument{Entries: append(doc.Entries[:len(doc.Entries):len(doc.Entries)], *op.entry)}
		if err := s.save(next); err != nil {
			op.reply <- fileResult{err: err}
			continue
		}
		doc = next
		op.reply <- fileResult{}
	}
}

// load treats a missing or corrupt file as empty.
func (s *FileStore) load() fileDocument {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fileDocument{}
	}
	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fileDocument{}
	}
	return doc
}

func (s *FileStore) save(doc fileDocument) error {
	if doc.Entries == nil {
		doc.Entries = []models.UsageEntry{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create usage dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".usage-*.json")
	if err != nil {
		return fmt.Errorf("create temp usage file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write usage file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace usage file: %w", err)
	}
	return nil
}

func (s *FileStore) do(ctx context.Context, op fileOp) (fileResult, error) {
	op.reply = make(chan fileResult, 1)
	select {
	case <-s.done:
		return fileResult{}, ErrStoreClosed
	case s.ops <- op:
	case <-ctx.Done():
		return fileResult{}, ctx.Err()
	}
	res := <-op.reply
	return res, res.err
}

func (s *FileStore) Append(ctx context.Context, entry models.UsageEntry) error {
	_, err := s.do(ctx, fileOp{entry: &entry})
	return err
}

func (s *FileStore) List(ctx context.Context) ([]models.UsageEntry, error) {
	res, err := s.do(ctx, fileOp{})
	return res.entries, err
}

// Close stops the owner goroutine. It must not be called concurrently with
// Append or List.
func (s *FileStore) Close() error {
	close(s.ops)
	<-s.done
	return nil
}
