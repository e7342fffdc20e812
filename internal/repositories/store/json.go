package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/JoseBG93/notes-Assistant/internal/filex"
	"github.com/JoseBG93/notes-Assistant/internal/logging"
	"github.com/JoseBG93/notes-Assistant/internal/metrics"
)

const (
	userCounterKey = "user_id_counter"
	noteCounterKey = "note_id_counter"

	filePerm = 0o644
)

var _ Store = (*JSONStore)(nil)

var defaultContents = map[Collection][]byte{
	Users:    []byte("{}"),
	Notes:    []byte("{}"),
	Counters: []byte("{\n  \"user_id_counter\": 0,\n  \"note_id_counter\": 0\n}"),
}

// JSONStore is the Store implementation over JSON files in one directory.
type JSONStore struct {
	mu  sync.Mutex
	fs  afero.Fs
	dir string
	log logging.Logger
}

// Option configures a JSONStore.
type Option func(*JSONStore)

// WithLogger sets the logger used for warnings about unreadable data.
func WithLogger(l logging.Logger) Option {
	return func(s *JSONStore) {
		s.log = l
	}
}

// New opens the store in dir on fs, creating the directory and any missing
// collection file with its empty default.
func New(fs afero.Fs, dir string, opts ...Option) (*JSONStore, error) {
	s := &JSONStore{fs: fs, log: logging.Nop()}
	for _, o := range opts {
		o(s)
	}

	d, err := filex.EnsureDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	s.dir = d

	for _, c := range []Collection{Users, Notes, Counters} {
		path := s.path(c)
		ok, err := filex.Exists(fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if ok {
			continue
		}
		if err := filex.WriteFileAtomic(fs, path, defaultContents[c], filePerm); err != nil {
			return nil, fmt.Errorf("failed to initialise %s: %w", path, err)
		}
	}

	return s, nil
}

// NewOS opens the store in dir on the operating system's filesystem.
func NewOS(dir string, opts ...Option) (*JSONStore, error) {
	return New(afero.NewOsFs(), dir, opts...)
}

// Dir is the resolved data directory.
func (s *JSONStore) Dir() string {
	return s.dir
}

func (s *JSONStore) path(c Collection) string {
	return filepath.Join(s.dir, c.FileName())
}

func (s *JSONStore) Load(ctx context.Context, c Collection) (map[string]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.load(ctx, c)
	observe(c, "load", nil)
	return records, nil
}

func (s *JSONStore) Save(ctx context.Context, c Collection, records map[string]json.RawMessage) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { observe(c, "save", err) }()

	return s.save(ctx, c, records)
}

// load reads a collection. It never fails: a missing or malformed file is
// reported and treated as empty. Callers hold s.mu.
func (s *JSONStore) load(ctx context.Context, c Collection) map[string]json.RawMessage {
	path := s.path(c)

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		s.log.Warn(ctx, "collection unreadable, using empty", "collection", c, "path", path, "error", err)
		return map[string]json.RawMessage{}
	}

	var records map[string]json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn(ctx, "collection malformed, using empty", "collection", c, "path", path, "error", err)
		return map[string]json.RawMessage{}
	}
	if records == nil {
		records = map[string]json.RawMessage{}
	}

	s.log.Debug(ctx, "collection loaded", "collection", c, "records", len(records))
	return records
}

// save rewrites a collection file with two-space indentation. Callers hold s.mu.
func (s *JSONStore) save(ctx context.Context, c Collection, records map[string]json.RawMessage) error {
	if records == nil {
		records = map[string]json.RawMessage{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c, err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("failed to indent %s: %w", c, err)
	}

	start := time.Now()
	if err := filex.WriteFileAtomic(s.fs, s.path(c), buf.Bytes(), filePerm); err != nil {
		s.log.Error(ctx, "collection write failed", "collection", c, "error", err)
		return fmt.Errorf("failed to write %s: %w", c, err)
	}
	metrics.ObserveWrite(start)

	s.log.Debug(ctx, "collection saved", "collection", c, "records", len(records))
	return nil
}

func observe(c Collection, op string, err error) {
	metrics.ObserveOp(string(c), op, err)
}
