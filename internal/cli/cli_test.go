package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SeamusWaldron/cubesolve"
)

func writeScramble(t *testing.T, dir, moves string) string {
	t.Helper()
	parsed, err := cubesolve.ParseMoves(moves)
	if err != nil {
		t.Fatal(err)
	}
	c := cubesolve.NewCube()
	c.ApplyMoves(parsed)

	path := filepath.Join(dir, "scramble.txt")
	if err := os.WriteFile(path, []byte(c.String()), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSolveCommandMissingArgs(t *testing.T) {
	rootCmd.SetArgs([]string{"solve"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("solve without arguments must fail with usage")
	}
}

func TestSolveCommandWritesSolution(t *testing.T) {
	dir := t.TempDir()
	input := writeScramble(t, dir, "F")
	output := filepath.Join(dir, "solution.txt")

	rootCmd.SetArgs([]string{"solve", input, output, "--budget", "7000"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("solve: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output file: %v", err)
	}
	if string(data) != "FFF" {
		t.Errorf("solution = %q, want FFF", string(data))
	}
}

func TestSolveCommandBudgetExceededWritesNoOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeScramble(t, dir, "RUFLDBRUFLDBRUFLDB")
	output := filepath.Join(dir, "solution.txt")

	rootCmd.SetArgs([]string{"solve", input, output, "--budget", "1"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected budget-exceeded error")
	}

	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("no output file may exist after a failed solve")
	}
}

func TestSolveCommandRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(input, []byte("not a cube\n"), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "solution.txt")

	rootCmd.SetArgs([]string{"solve", input, output, "--budget", "7000"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected format error")
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("no output file may exist for malformed input")
	}
}
