package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles cmd/fibfinder into a temporary directory.
// go test runs with the package directory as CWD, so the module root is two
// levels up.
func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping e2e build in short mode")
	}
	binName := "fibfinder"
	if runtime.GOOS == "windows" {
		binName = "fibfinder.exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/fibfinder")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build fibfinder: %v", err)
	}
	return binPath
}

// TestCLI_E2E verifies the built binary functions correctly
func TestCLI_E2E(t *testing.T) {
	binPath := buildBinary(t)

	refPath := filepath.Join(t.TempDir(), "reference.txt")
	if err := os.WriteFile(refPath, []byte("0 0\n1 1\n2 1\n3 2\n4 3\n5 5\n6 8\n7 13\n8 21\n9 34\n10 55\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Naive Iterative",
			args:     []string{"naive", "iterative", "10"},
			wantOut:  "The 10th fibonacci number is: 55",
			wantCode: 0,
		},
		{
			name:     "Dynamic Direct",
			args:     []string{"dynamic", "direct", "100"},
			wantOut:  "The 100th fibonacci number is: 354224848179261915075",
			wantCode: 0,
		},
		{
			name:     "Naive Overflow Wraps",
			args:     []string{"naive", "recursive", "93"},
			wantOut:  "-6246583658587674878",
			wantCode: 0,
		},
		{
			name:     "Benchmark Without Reference",
			args:     []string{"all", "10"},
			wantOut:  "Dynamic (Arbitrary) Solutions:",
			wantCode: 0,
		},
		{
			name:     "Benchmark With Reference",
			args:     []string{"all", "10", refPath},
			wantOut:  "Percent Error:\t\t0.00000",
			wantCode: 0,
		},
		{
			name:     "Benchmark Reference Fallback",
			args:     []string{"all", "11", refPath},
			wantOut:  "Benchmarking without reference file",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Invalid Mode",
			args:     []string{"fast", "10"},
			wantOut:  "input mode should be either",
			wantCode: 1,
		},
		{
			name:     "Non Integer Index",
			args:     []string{"all", "ten"},
			wantOut:  "input number should be an integer",
			wantCode: 1,
		},
		{
			name:     "Missing Reference File",
			args:     []string{"all", "10", filepath.Join(t.TempDir(), "missing.txt")},
			wantOut:  "not a valid reference file",
			wantCode: 1,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "fibfinder",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()

			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("Command failed unexpectedly: %v\nOutput: %s", err, outStr)
				}
			} else if exitErr, ok := err.(*exec.ExitError); !ok || exitErr.ExitCode() != tt.wantCode {
				t.Errorf("Expected exit code %d, got %v\nOutput: %s", tt.wantCode, err, outStr)
			}

			if tt.wantOut != "" {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
					t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
				}
			}
		})
	}
}
