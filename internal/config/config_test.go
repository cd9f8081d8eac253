package config

import (
	"errors"
	"strings"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AtomicNumber != 0 || !cfg.ShowOrbits || !cfg.VSync {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("size = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"valid", []string{"-z", "26", "-orbits=false", "-snapshot", "fe.png"}, false},
		{"upper bound", []string{"-z=118"}, false},
		{"too large is left to ResolveAtomicNumber", []string{"-z=119"}, false},
		{"negative is left to ResolveAtomicNumber", []string{"-z=-1"}, false},
		{"not a number", []string{"-z=iron"}, true},
		{"bad size", []string{"-width=0"}, true},
		{"stray arg", []string{"26"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%v) err = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
		})
	}

	cfg, _ := Parse([]string{"-z", "26", "-orbits=false", "-snapshot", "fe.png"})
	if cfg.AtomicNumber != 26 || cfg.ShowOrbits || cfg.Snapshot != "fe.png" {
		t.Errorf("got %+v", cfg)
	}
}

func TestValidateAtomicNumber(t *testing.T) {
	if err := ValidateAtomicNumber(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("0: %v", err)
	}
	if err := ValidateAtomicNumber(1); err != nil {
		t.Errorf("1: %v", err)
	}
}

func TestPromptRetries(t *testing.T) {
	in := strings.NewReader("abc\n0\n200\n\n  18 \n")
	var out strings.Builder

	z, err := PromptAtomicNumber(in, &out)
	if err != nil {
		t.Fatal(err)
	}
	if z != 18 {
		t.Errorf("z = %d, want 18", z)
	}
	if got := strings.Count(out.String(), "Invalid input"); got != 4 {
		t.Errorf("%d retry messages, want 4:\n%s", got, out.String())
	}
	if got := strings.Count(out.String(), "Enter atomic number"); got != 5 {
		t.Errorf("%d prompts, want 5", got)
	}
}

func TestPromptEOF(t *testing.T) {
	var out strings.Builder
	_, err := PromptAtomicNumber(strings.NewReader("x\n"), &out)
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("err = %v, want ErrNoInput", err)
	}
}

func TestResolveAtomicNumber(t *testing.T) {
	tests := []struct {
		name       string
		flag       int
		input      string
		want       int
		wantPrompt bool
		wantErr    error
	}{
		{"valid flag", 26, "", 26, false, nil},
		{"no flag prompts", 0, "8\n", 8, true, nil},
		{"too large re-asks", 200, "abc\n6\n", 6, true, nil},
		{"negative re-asks", -1, "79\n", 79, true, nil},
		{"out of range then EOF", 119, "", 0, true, ErrNoInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			cfg := Config{AtomicNumber: tt.flag}

			z, err := cfg.ResolveAtomicNumber(strings.NewReader(tt.input), &out)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if z != tt.want {
				t.Errorf("z = %d, want %d", z, tt.want)
			}
			if prompted := strings.Contains(out.String(), "Enter atomic number"); prompted != tt.wantPrompt {
				t.Errorf("prompted = %v, want %v; output:\n%s", prompted, tt.wantPrompt, out.String())
			}
			if tt.flag < 0 || tt.flag > 118 {
				if !strings.Contains(out.String(), "Invalid -z") {
					t.Errorf("rejected flag not reported:\n%s", out.String())
				}
			}
		})
	}
}
