// Command generate-reference writes a reference file of Fibonacci numbers,
// one "<index> <value>" line per index starting at 0, for use with
// `fibfinder all n reference_file`.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/agbru/fibfinder/internal/reference"
)

func main() {
	maxIndex := flag.Uint64("max", uint64(reference.DefaultMaxIndex), "Largest index written.")
	output := flag.String("o", "", "Output file (default stdout).")
	flag.Parse()

	if err := run(*output, *maxIndex); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run writes the reference lines to path, or to stdout when path is empty.
// The file is closed before returning and a close failure is reported.
func run(path string, maxIndex uint64) (err error) {
	if path == "" {
		return writeReference(os.Stdout, maxIndex)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return writeReference(f, maxIndex)
}

// writeReference writes the lines for indices 0 through maxIndex.
func writeReference(out io.Writer, maxIndex uint64) error {
	w := bufio.NewWriter(out)
	a, b := big.NewInt(0), big.NewInt(1)
	for i := uint64(0); i <= maxIndex; i++ {
		if _, err := fmt.Fprintf(w, "%d %s\n", i, a); err != nil {
			return err
		}
		a.Add(a, b)
		a, b = b, a
	}
	return w.Flush()
}
