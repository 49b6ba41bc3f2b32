package sources

import (
	"fmt"
	"path/filepath"
	"sort"

	"macropanel/internal/errors"
)

// FindSource locates a raw extract by glob pattern inside the data directory.
// Some extracts carry publication timestamps in their names (the oil-price and
// HPI files); when several match, the lexicographically last one wins, which
// for timestamped names is the most recent publication.
func FindSource(dataDir, pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dataDir, pattern))
	if err != nil {
		return "", errors.NewStorageError(fmt.Sprintf("bad source pattern %q", pattern), err)
	}
	if len(matches) == 0 {
		return "", errors.NewStorageError(
			fmt.Sprintf("no source matching %q in %s", pattern, dataDir), nil).
			WithContext("pattern", pattern).
			WithContext("data_dir", dataDir)
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}
