package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/yourusername/phonafind/internal/phoneme"
)

func newTestCommand(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	flags := NewFlags()
	cmd := CreateRootCommand(flags)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return Run(cmd, args, flags)
	}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	return cmd, &out
}

func TestOneShotConsonantLookup(t *testing.T) {
	cmd, out := newTestCommand(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cmd.SetArgs([]string{"--config", cfgPath, "--class", "consonant", "1", "2"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"The common place of articulation is: Labial",
		"The common manner of articulation is: Stop",
		"No common voicing.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q; got:\n%s", want, got)
		}
	}
}

func TestOneShotVowelLookup(t *testing.T) {
	cmd, out := newTestCommand(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cmd.SetArgs([]string{"--config", cfgPath, "--class", "vowel", "5", "9"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "The common simple/complex vowel is: Diphthong") {
		t.Errorf("output missing diphthong line; got:\n%s", got)
	}
	if !strings.Contains(got, "The common roundedness of the lips is: Rounded") {
		t.Errorf("output missing roundedness line; got:\n%s", got)
	}
}

func TestOneShotRequiresClass(t *testing.T) {
	cmd, _ := newTestCommand(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cmd.SetArgs([]string{"--config", cfgPath, "1", "2"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error when codes are given without --class")
	}
}

func TestOneShotRejectsUnknownClass(t *testing.T) {
	cmd, _ := newTestCommand(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cmd.SetArgs([]string{"--config", cfgPath, "--class", "semivowel", "1"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected invalid class error")
	}
}

func TestClassWithoutCodesIsAnError(t *testing.T) {
	cmd, _ := newTestCommand(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cmd.SetArgs([]string{"--config", cfgPath, "--class", "vowel"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for --class without codes")
	}
}

func TestChartFlagPrintsChart(t *testing.T) {
	cmd, out := newTestCommand(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cmd.SetArgs([]string{"--config", cfgPath, "--chart"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	got := out.String()
	for _, want := range []string{"CONSONANTS", "VOWELS", "25: h", "15: ɑ"} {
		if !strings.Contains(got, want) {
			t.Errorf("chart missing %q; got:\n%s", want, got)
		}
	}
}

func TestFormatResultsQuietSkipsMisses(t *testing.T) {
	results, err := phoneme.CommonFeatures(phoneme.Consonant, []phoneme.Code{1, 2})
	if err != nil {
		t.Fatalf("common features: %v", err)
	}
	got := FormatResults(results, true)
	if strings.Contains(got, "voicing") {
		t.Errorf("quiet output mentions voicing:\n%s", got)
	}
	if !strings.Contains(got, "Labial") {
		t.Errorf("quiet output missing resolved line:\n%s", got)
	}
}

func TestFormatResultsReportsOutOfRange(t *testing.T) {
	results, err := phoneme.CommonFeatures(phoneme.Vowel, []phoneme.Code{99})
	if err != nil {
		t.Fatalf("common features: %v", err)
	}
	got := FormatResults(results, false)
	if !strings.Contains(got, "out of range") {
		t.Errorf("output missing out-of-range report:\n%s", got)
	}
	if FormatResults(results, true) != "No common features found.\n" {
		t.Errorf("quiet all-miss output = %q", FormatResults(results, true))
	}
}
