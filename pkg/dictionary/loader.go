package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// LoadOptions controls which lines of a word list file are kept.
type LoadOptions struct {
	// LowercaseOnly keeps only lines made of the letters a to z.
	LowercaseOnly bool
	// MaxWords stops reading after that many kept words; 0 reads all.
	MaxWords int
}

// LoaderStats describes the outcome of a load.
type LoaderStats struct {
	Lines   int
	Kept    int
	Skipped int
}

// Load reads one word per line from r, keeping the order of the input.
func Load(r io.Reader, opts LoadOptions) (*WordList, LoaderStats, error) {
	var stats LoaderStats
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimRight(scanner.Text(), "\r")
		if !opts.LowercaseOnly {
			line = strings.TrimSpace(line)
		}
		if line == "" || (opts.LowercaseOnly && !isLowerWord(line)) {
			stats.Skipped++
			continue
		}
		words = append(words, line)
		if opts.MaxWords > 0 && len(words) >= opts.MaxWords {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to read word list: %w", err)
	}
	stats.Kept = len(words)
	if len(words) == 0 {
		return nil, stats, ErrEmptyWordList
	}
	return NewWordList(words), stats, nil
}

// LoadFile validates and loads a word list file.
func LoadFile(path string, opts LoadOptions) (*WordList, error) {
	if err := ValidateFileFormat(path, FormatText); err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	wl, stats, err := Load(file, opts)
	if err != nil {
		return nil, fmt.Errorf("word list %s: %w", path, err)
	}
	log.Debugf("Loaded %d words from %s (%d lines, %d skipped)", stats.Kept, path, stats.Lines, stats.Skipped)
	return wl, nil
}

func isLowerWord(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
