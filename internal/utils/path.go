package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// SystemWordLists are checked when no configured word list exists.
var SystemWordLists = []string{
	"/usr/share/dict/words",
	"/usr/dict/words",
}

// FileCandidates returns the locations tried for path, in order:
// 1. the path as given (absolute, or relative to the working directory)
// 2. relative to each of dirs
// 3. relative to the executable directory
func FileCandidates(path string, dirs ...string) []string {
	if path == "" {
		return nil
	}
	candidates := []string{path}
	if filepath.IsAbs(path) {
		return candidates
	}
	for _, dir := range dirs {
		if dir != "" {
			candidates = append(candidates, filepath.Join(dir, path))
		}
	}
	if execDir, err := GetExecutableDir(); err == nil {
		candidates = append(candidates, filepath.Join(execDir, path))
	}
	return candidates
}

// WordListCandidates adds the system word lists to the candidates of path.
func WordListCandidates(path, configDir string) []string {
	return append(FileCandidates(path, configDir), SystemWordLists...)
}

// FindWordList returns the first word list candidate that is a regular file.
func FindWordList(path, configDir string) (string, error) {
	found, err := firstFile(path, WordListCandidates(path, configDir))
	if err != nil {
		return "", fmt.Errorf("word list %q: %w", path, err)
	}
	return found, nil
}

// FindTheory resolves a theory file against the config directory. An
// empty path selects the built-in theory and resolves to "".
func FindTheory(path, configDir string) (string, error) {
	if path == "" {
		return "", nil
	}
	found, err := firstFile(path, FileCandidates(path, configDir))
	if err != nil {
		return "", fmt.Errorf("theory %q: %w", path, err)
	}
	return found, nil
}

func firstFile(path string, candidates []string) (string, error) {
	for _, candidate := range candidates {
		if IsFile(candidate) {
			if candidate != path {
				log.Debugf("Using %s for %q", candidate, path)
			}
			return candidate, nil
		}
		log.Debugf("Candidate not found: %s", candidate)
	}
	return "", os.ErrNotExist
}
