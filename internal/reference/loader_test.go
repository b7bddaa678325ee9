package reference

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/fibfinder/internal/errors"
)

// writeReference writes lines into a temporary reference file.
func writeReference(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reference.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

// sequenceLines returns well-formed records for indices 0..max.
func sequenceLines(max int) []string {
	lines := make([]string, 0, max+1)
	prev, curr := big.NewInt(0), big.NewInt(1)
	for i := 0; i <= max; i++ {
		lines = append(lines, fmt.Sprintf("%d %s", i, prev))
		next := new(big.Int).Add(prev, curr)
		prev, curr = curr, next
	}
	return lines
}

func TestLookup_ReadsLineAtOffset(t *testing.T) {
	t.Parallel()
	path := writeReference(t, "0 0", "1 1", "2 1", "3 2", "4 3", "5 5")

	value, err := GetReference(path, big.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, "5", value.String())
}

func TestLookup_UsesOffsetNotLabel(t *testing.T) {
	t.Parallel()
	path := writeReference(t, "9 100", "9 200", "9 300")

	value, err := GetReference(path, big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, "200", value.String())
}

func TestLookup_LargeValues(t *testing.T) {
	t.Parallel()
	path := writeReference(t, sequenceLines(1001)...)

	value, err := GetReference(path, big.NewInt(1001))
	require.NoError(t, err)
	assert.Len(t, value.String(), 209)

	value, err = GetReference(path, big.NewInt(100))
	require.NoError(t, err)
	assert.Equal(t, "354224848179261915075", value.String())
}

func TestLookup_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lines    []string
		path     string
		index    int64
		maxIndex int64
		kind     apperrors.ReferenceKind
		sentinel error
	}{
		{
			name:     "beyond default maximum",
			lines:    sequenceLines(3),
			index:    1002,
			kind:     apperrors.KindOutOfRange,
			sentinel: apperrors.ErrOutOfRange,
		},
		{
			name:     "beyond configured maximum",
			lines:    sequenceLines(20),
			index:    11,
			maxIndex: 10,
			kind:     apperrors.KindOutOfRange,
			sentinel: apperrors.ErrOutOfRange,
		},
		{
			name:     "negative index",
			lines:    sequenceLines(3),
			index:    -1,
			kind:     apperrors.KindOutOfRange,
			sentinel: apperrors.ErrOutOfRange,
		},
		{
			name:     "three tokens",
			lines:    []string{"0 0", "1 1 1"},
			index:    1,
			kind:     apperrors.KindMalformedEntry,
			sentinel: apperrors.ErrMalformedEntry,
		},
		{
			name:     "single token",
			lines:    []string{"0"},
			index:    0,
			kind:     apperrors.KindMalformedEntry,
			sentinel: apperrors.ErrMalformedEntry,
		},
		{
			name:     "double space",
			lines:    []string{"0  0"},
			index:    0,
			kind:     apperrors.KindMalformedEntry,
			sentinel: apperrors.ErrMalformedEntry,
		},
		{
			name:     "non integer value",
			lines:    []string{"0 zero"},
			index:    0,
			kind:     apperrors.KindMalformedEntry,
			sentinel: apperrors.ErrMalformedEntry,
		},
		{
			name:     "file too short",
			lines:    sequenceLines(3),
			index:    10,
			kind:     apperrors.KindNotFound,
			sentinel: apperrors.ErrNotFound,
		},
		{
			name:     "missing file",
			path:     filepath.Join(os.TempDir(), "fibfinder-does-not-exist", "reference.txt"),
			index:    1,
			kind:     apperrors.KindUnreadable,
			sentinel: apperrors.ErrReferenceUnreadable,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := tt.path
			if path == "" {
				path = writeReference(t, tt.lines...)
			}
			loader := &Loader{Path: path, MaxIndex: tt.maxIndex}

			value, err := loader.Lookup(big.NewInt(tt.index))
			require.Error(t, err)
			assert.Nil(t, value)
			assert.True(t, errors.Is(err, tt.sentinel), "errors.Is(%v, %v)", err, tt.sentinel)

			kind, ok := apperrors.ReferenceKindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestLookup_TrailingSpaceAccepted(t *testing.T) {
	t.Parallel()
	path := writeReference(t, "0 0 ", "1 1\r")

	value, err := GetReference(path, big.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, "0", value.String())

	value, err = GetReference(path, big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, "1", value.String())
}

func TestLookup_LineTooLong(t *testing.T) {
	t.Parallel()
	path := writeReference(t, "0 "+strings.Repeat("9", 200))
	loader := &Loader{Path: path, MaxLineBytes: 64}

	_, err := loader.Lookup(big.NewInt(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrReferenceUnreadable)
}

func TestLookup_Directory(t *testing.T) {
	t.Parallel()
	_, err := GetReference(t.TempDir(), big.NewInt(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrReferenceUnreadable)
}
