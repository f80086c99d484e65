package records

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileStore keeps the table in a plain text file, one "<name> <score>" line
// per entry. Names must not contain whitespace: there is no escaping.
type FileStore struct {
	Path string
}

// NewFileStore creates a store for path. A leading ~ is expanded.
func NewFileStore(path string) *FileStore {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &FileStore{Path: path}
}

// Load reads and parses the file.
func (s *FileStore) Load() ([]Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("records: cannot open %s: %w", s.Path, err)
	}
	defer f.Close()

	var entries []Record
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		rec, err := ParseLine(text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", s.Path, line, err)
		}
		entries = append(entries, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("records: cannot read %s: %w", s.Path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrMalformed, s.Path)
	}
	return entries, nil
}

// Save writes entries as newline-separated lines, without a trailing newline.
func (s *FileStore) Save(entries []Record) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("records: cannot create directory for %s: %w", s.Path, err)
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = FormatLine(e)
	}

	if err := os.WriteFile(s.Path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("records: cannot write %s: %w", s.Path, err)
	}
	return nil
}

// ParseLine parses a "<name> <score>" line.
func ParseLine(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Record{}, fmt.Errorf("%w: expected 2 fields, got %d", ErrMalformed, len(fields))
	}
	score, err := strconv.Atoi(fields[1])
	if err != nil {
		return Record{}, fmt.Errorf("%w: bad score %q", ErrMalformed, fields[1])
	}
	return Record{Name: fields[0], Score: score}, nil
}

// FormatLine renders a record as "<name> <score>".
func FormatLine(r Record) string {
	return r.Name + " " + strconv.Itoa(r.Score)
}

var _ Store = (*FileStore)(nil)
