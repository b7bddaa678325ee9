package reference

import (
	"bufio"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	apperrors "github.com/agbru/fibfinder/internal/errors"
)

//go:generate mockgen -source=loader.go -destination=mocks/mock_source.go -package=mocks

const (
	// DefaultMaxIndex is the largest index a reference file is expected to
	// cover. Lookups beyond it fail with KindOutOfRange without opening the
	// file.
	DefaultMaxIndex int64 = 1001

	// DefaultMaxLineBytes bounds the length of a single reference line.
	// F(1001) has 209 digits, so the default leaves ample headroom.
	DefaultMaxLineBytes = 64 * 1024
)

// Source provides ground-truth Fibonacci values.
type Source interface {
	// Lookup returns the reference value for index. Failures are reported
	// as *apperrors.ReferenceError.
	Lookup(index *big.Int) (*big.Int, error)
}

// Loader reads reference values from a plain-text file holding one
// "<lineIndex> <fibonacciValue>" record per line. The value for index i is
// taken from the line at 0-based offset i.
type Loader struct {
	// Path is the reference file.
	Path string
	// MaxIndex is the largest index accepted. Zero selects DefaultMaxIndex.
	MaxIndex int64
	// MaxLineBytes bounds a single line. Zero selects DefaultMaxLineBytes.
	MaxLineBytes int
}

// NewLoader returns a Loader for path using the default limits.
func NewLoader(path string) *Loader {
	return &Loader{Path: path, MaxIndex: DefaultMaxIndex, MaxLineBytes: DefaultMaxLineBytes}
}

// GetReference looks up index in the file at path with the default limits.
func GetReference(path string, index *big.Int) (*big.Int, error) {
	return NewLoader(path).Lookup(index)
}

// Lookup skips exactly index lines of the file and parses the second token
// of the next one.
func (l *Loader) Lookup(index *big.Int) (*big.Int, error) {
	maxIndex := l.MaxIndex
	if maxIndex <= 0 {
		maxIndex = DefaultMaxIndex
	}
	if index.Sign() < 0 || index.Cmp(big.NewInt(maxIndex)) > 0 {
		return nil, apperrors.NewReferenceError(apperrors.KindOutOfRange, l.Path, index, nil)
	}

	f, err := os.Open(l.Path)
	if err != nil {
		return nil, apperrors.NewReferenceError(apperrors.KindUnreadable, l.Path, index, err)
	}
	defer f.Close()

	line, err := l.readLine(f, index.Int64())
	if err != nil {
		kind := apperrors.KindUnreadable
		if errors.Is(err, errShortFile) {
			kind = apperrors.KindNotFound
			err = nil
		}
		return nil, apperrors.NewReferenceError(kind, l.Path, index, err)
	}

	value, err := parseEntry(line)
	if err != nil {
		return nil, apperrors.NewReferenceError(apperrors.KindMalformedEntry, l.Path, index, err)
	}
	return value, nil
}

var errShortFile = errors.New("file ends before the requested line")

// readLine returns the line at 0-based offset target.
func (l *Loader) readLine(f *os.File, target int64) (string, error) {
	maxLine := l.MaxLineBytes
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}

	initial := 4096
	if maxLine < initial {
		initial = maxLine
	}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, initial), maxLine)
	for lineNo := int64(0); scanner.Scan(); lineNo++ {
		if lineNo == target {
			return scanner.Text(), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", errShortFile
}

// parseEntry splits a record on single spaces, dropping trailing empty
// tokens, and parses the second of exactly two tokens as a base-10 integer.
func parseEntry(line string) (*big.Int, error) {
	tokens := strings.Split(line, " ")
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) != 2 {
		return nil, errors.New("expected \"<index> <value>\"")
	}
	value, ok := new(big.Int).SetString(tokens[1], 10)
	if !ok {
		return nil, fmt.Errorf("value %q is not a base-10 integer", tokens[1])
	}
	return value, nil
}
