package suite

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Collection holds suites loaded from files, in load order.
type Collection struct {
	mu      sync.RWMutex
	suites  map[string]*Suite
	order   []string
	sources []string
}

// NewCollection creates an empty Collection.
func NewCollection() *Collection {
	return &Collection{
		suites: make(map[string]*Suite),
	}
}

// Parse decodes a suite document. JSON documents are accepted
// as YAML. Unknown fields are rejected. A suite without a name
// is named after source.
func Parse(data []byte, source string) (*Suite, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Suite
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse suite %s: empty document", source)
		}
		return nil, fmt.Errorf("parse suite %s: %w", source, err)
	}
	if s.Name == "" {
		base := filepath.Base(source)
		s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	s.Source = source
	return &s, nil
}

// ParseFile reads and decodes one suite file.
func ParseFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFile loads one suite file. Suite names must be unique
// within the collection.
func (c *Collection) LoadFile(path string) error {
	s, err := ParseFile(path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.suites[s.Name]; ok {
		return fmt.Errorf(
			"suite %q in %s already loaded from %s",
			s.Name, path, prev.Source,
		)
	}
	c.suites[s.Name] = s
	c.order = append(c.order, s.Name)
	c.sources = append(c.sources, path)
	return nil
}

// LoadDir loads all .yaml, .yml and .json files from a
// directory, in name order. Subdirectories are skipped.
func (c *Collection) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read suite directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !IsSuiteFile(entry.Name()) {
			continue
		}
		if err := c.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Load loads each path as a file or a directory.
func (c *Collection) Load(paths ...string) error {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if info.IsDir() {
			err = c.LoadDir(path)
		} else {
			err = c.LoadFile(path)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// IsSuiteFile reports whether name has a suite file extension.
func IsSuiteFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// Get retrieves a suite by name.
func (c *Collection) Get(name string) (*Suite, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.suites[name]
	return s, ok
}

// All returns the loaded suites in load order.
func (c *Collection) All() []*Suite {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]*Suite, 0, len(c.order))
	for _, name := range c.order {
		result = append(result, c.suites[name])
	}
	return result
}

// Count returns the number of loaded suites.
func (c *Collection) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.suites)
}

// Sources returns the list of loaded file paths.
func (c *Collection) Sources() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]string, len(c.sources))
	copy(result, c.sources)
	return result
}
