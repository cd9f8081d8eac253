// Package config reads the viewer's command-line flags and the interactive
// atomic number prompt.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"atomviz/internal/atom"
)

var (
	ErrOutOfRange = errors.New("atomic number out of range")
	ErrNoInput    = errors.New("no atomic number entered")
)

type Config struct {
	// AtomicNumber is 0 when it should be asked for interactively. Parse
	// does not range check it; see ResolveAtomicNumber.
	AtomicNumber int

	Width, Height int
	ShowOrbits    bool
	VSync         bool

	// ShaderDir overrides the embedded shader sources when set.
	ShaderDir string
	// Snapshot, when set, is a PNG path to write a wireframe to instead of
	// opening a window.
	Snapshot string
}

// Parse reads flags from args (without the program name).
func Parse(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("atomviz", flag.ContinueOnError)
	fs.IntVar(&cfg.AtomicNumber, "z", 0, "atomic number (1-118); 0 prompts on stdin")
	fs.IntVar(&cfg.Width, "width", 1280, "window width")
	fs.IntVar(&cfg.Height, "height", 720, "window height")
	fs.BoolVar(&cfg.ShowOrbits, "orbits", true, "draw orbit paths")
	fs.BoolVar(&cfg.VSync, "vsync", true, "wait for vertical sync")
	fs.StringVar(&cfg.ShaderDir, "shaders", "", "directory with sphere/orbit .vert and .frag files")
	fs.StringVar(&cfg.Snapshot, "snapshot", "", "write a PNG wireframe to this path and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

func ValidateAtomicNumber(z int) error {
	if z < atom.MinAtomicNumber || z > atom.MaxAtomicNumber {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrOutOfRange, z, atom.MinAtomicNumber, atom.MaxAtomicNumber)
	}
	return nil
}

// ResolveAtomicNumber returns the -z value when it is valid. Otherwise it
// reports the rejected value on w and falls back to PromptAtomicNumber.
func (c Config) ResolveAtomicNumber(r io.Reader, w io.Writer) (int, error) {
	if c.AtomicNumber == 0 {
		return PromptAtomicNumber(r, w)
	}
	if err := ValidateAtomicNumber(c.AtomicNumber); err != nil {
		fmt.Fprintf(w, "Invalid -z: %v.\n", err)
		return PromptAtomicNumber(r, w)
	}
	return c.AtomicNumber, nil
}

// PromptAtomicNumber asks on w until a line read from r holds a valid atomic
// number. It only gives up when r is exhausted.
func PromptAtomicNumber(r io.Reader, w io.Writer) (int, error) {
	sc := bufio.NewScanner(r)
	for {
		fmt.Fprintf(w, "Enter atomic number (%d-%d): ", atom.MinAtomicNumber, atom.MaxAtomicNumber)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("reading atomic number: %w", err)
			}
			return 0, ErrNoInput
		}

		z, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err == nil {
			err = ValidateAtomicNumber(z)
		}
		if err != nil {
			fmt.Fprintf(w, "Invalid input. Please enter a number between %d and %d.\n", atom.MinAtomicNumber, atom.MaxAtomicNumber)
			continue
		}
		return z, nil
	}
}
