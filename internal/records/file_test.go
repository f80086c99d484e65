package records

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "record_table.txt")
	store := NewFileStore(path)

	require.NoError(t, store.Save(DefaultEntries()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.NotEqual(t, byte('\n'), data[len(data)-1], "no trailing newline")
	assert.Equal(t, "Nick 5000\n", string(data[:10]))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultEntries(), loaded)
}

func TestFileStoreLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name      string
		content   *string
		malformed bool
	}{
		{"missing", nil, false},
		{"empty", ptr(""), true},
		{"three fields", ptr("Mary Ann 10"), true},
		{"bad score", ptr("Mary ten"), true},
		{"one bad line", ptr("Nick 5000\nbroken"), true},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+string(rune('a'+i)))
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o644))
			}
			_, err := NewFileStore(path).Load()
			require.Error(t, err)
			assert.Equal(t, tt.malformed, errors.Is(err, ErrMalformed))
		})
	}
}

func TestFileStoreFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record_table.txt")
	require.NoError(t, os.WriteFile(path, []byte("garbage line here"), 0o644))

	tbl := Load(NewFileStore(path), quietLogger())
	assert.Equal(t, DefaultEntries(), tbl.Entries())
}

func TestFileStoreSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.txt")
	require.NoError(t, os.WriteFile(path, []byte("Mike 30\n\nJay 20\n"), 0o644))

	loaded, err := NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, []Record{{"Mike", 30}, {"Jay", 20}}, loaded)
}

func TestParseLine(t *testing.T) {
	rec, err := ParseLine("Clementine 1950")
	require.NoError(t, err)
	assert.Equal(t, Record{"Clementine", 1950}, rec)
	assert.Equal(t, "Clementine 1950", FormatLine(rec))

	_, err = ParseLine("")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestNewFileStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store := NewFileStore("~/r.txt")
	assert.Equal(t, filepath.Join(home, "r.txt"), store.Path)
}

func ptr(s string) *string { return &s }
