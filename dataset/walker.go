package dataset

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/RyanBlaney/ritmo-radar/logging"
)

// Document is one beatmap file paired with its label token. The label is
// the name of the directory directly under the dataset root.
type Document struct {
	Path  string
	Label string
}

// DiscoverDocuments walks a dataset root laid out as <root>/<label>/*.osu
// and returns every beatmap document with its label. Files sitting
// directly under the root have no label directory and are skipped with a
// warning.
func DiscoverDocuments(root string) ([]Document, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "dataset_walker",
		"root":      root,
	})

	var docs []Document
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".osu") {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		label, _, found := strings.Cut(rel, string(filepath.Separator))
		if !found {
			logger.Warn("skipping beatmap outside a label directory", logging.Fields{
				"path": path,
			})
			return nil
		}

		docs = append(docs, Document{Path: path, Label: label})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dataset: walking %s: %w", root, err)
	}

	logger.Info("discovered beatmap documents", logging.Fields{
		"count": len(docs),
	})
	return docs, nil
}
