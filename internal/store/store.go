// Package store persists a library of diagrams as a single JSON document.
// Writes replace the whole document atomically (temp file + rename), so a
// crashed writer never leaves readers with a half-written library.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/alnah/go-mermaidfix/internal/fileutil"
	"github.com/alnah/go-mermaidfix/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrNotFound    = errors.New("diagram not found")
	ErrEmptyName   = errors.New("diagram name cannot be empty")
	ErrEmptySource = errors.New("diagram source cannot be empty")
	ErrCorrupt     = errors.New("library file is corrupt")
)

// File permissions for the library document.
const filePermissions = 0o644

// Diagram is one stored diagram.
type Diagram struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// document is the on-disk shape of the library.
type document struct {
	Diagrams []Diagram `json:"diagrams"`
}

// Library provides CRUD access to the diagram document at a fixed path.
// The mutex serializes writers within this process; the atomic file replace
// is what protects readers in other processes.
type Library struct {
	path string
	mu   sync.Mutex

	// now is swapped in tests for deterministic timestamps.
	now func() time.Time
}

// Open returns a Library backed by the JSON document at path. The file is
// created on first save; opening a missing file is not an error.
func Open(path string) *Library {
	return &Library{path: path, now: time.Now}
}

// Path returns the location of the backing document.
func (l *Library) Path() string {
	return l.path
}

// List returns every stored diagram in document order.
func (l *Library) List() ([]Diagram, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	doc, err := l.load()
	if err != nil {
		return nil, err
	}
	return doc.Diagrams, nil
}

// Get returns the diagram with the given id.
func (l *Library) Get(id string) (*Diagram, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	doc, err := l.load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Diagrams {
		if doc.Diagrams[i].ID == id {
			d := doc.Diagrams[i]
			return &d, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Save stores d, assigning an identifier from the name when d.ID is empty and
// updating in place when a diagram with d.ID already exists. The source gets
// one more defensive fence strip at this boundary; the stored text is
// otherwise verbatim. Returns the stored diagram.
func (l *Library) Save(d Diagram) (*Diagram, error) {
	if d.Name == "" {
		return nil, ErrEmptyName
	}
	d.Source = pipeline.StripFence(d.Source)
	if d.Source == "" {
		return nil, ErrEmptySource
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	doc, err := l.load()
	if err != nil {
		return nil, err
	}

	now := l.now().UTC()
	d.UpdatedAt = now

	if d.ID == "" {
		d.ID = allocateID(doc, d.Name)
	}

	for i := range doc.Diagrams {
		if doc.Diagrams[i].ID == d.ID {
			d.CreatedAt = doc.Diagrams[i].CreatedAt
			doc.Diagrams[i] = d
			if err := l.write(doc); err != nil {
				return nil, err
			}
			return &d, nil
		}
	}

	d.CreatedAt = now
	doc.Diagrams = append(doc.Diagrams, d)
	if err := l.write(doc); err != nil {
		return nil, err
	}
	return &d, nil
}

// Delete removes the diagram with the given id.
func (l *Library) Delete(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	doc, err := l.load()
	if err != nil {
		return err
	}
	for i := range doc.Diagrams {
		if doc.Diagrams[i].ID == id {
			doc.Diagrams = append(doc.Diagrams[:i], doc.Diagrams[i+1:]...)
			return l.write(doc)
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// load reads the document, treating a missing file as an empty library.
func (l *Library) load() (*document, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &document{}, nil
		}
		return nil, fmt.Errorf("reading library: %w", err)
	}
	if len(data) == 0 {
		return &document{}, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &doc, nil
}

// write replaces the document atomically.
func (l *Library) write(doc *document) error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating library directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding library: %w", err)
	}
	return fileutil.WriteFileAtomic(l.path, append(data, '\n'), filePermissions)
}

// allocateID derives an identifier from the diagram name, suffixing _2, _3,
// ... until it is free. Uses the same slug rules as node identifiers.
func allocateID(doc *document, name string) string {
	base := pipeline.Slugify(name)
	if base == "" {
		base = "diagram"
	}

	used := make(map[string]bool, len(doc.Diagrams))
	for _, d := range doc.Diagrams {
		used[d.ID] = true
	}

	id := base
	for n := 2; used[id]; n++ {
		id = base + "_" + strconv.Itoa(n)
	}
	return id
}
