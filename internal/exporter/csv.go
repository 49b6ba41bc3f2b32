package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"macropanel/internal/errors"
)

// Writer exports run outputs into a single output directory.
type Writer struct {
	outputDir string
}

// NewWriter creates a writer rooted at the output directory.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes a CSV file into the output directory and returns its path.
func (w *Writer) WriteCSV(fileName string, options WriteOptions) (string, error) {
	fullPath := filepath.Join(w.outputDir, fileName)

	slog.Info("writing CSV file",
		slog.String("path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", errors.NewStorageError(fmt.Sprintf("create output directory %s", w.outputDir), err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", errors.NewStorageError(fmt.Sprintf("create %s", fullPath), err)
	}
	defer file.Close()

	// BOM helps Excel recognize UTF-8.
	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return "", errors.NewStorageError(fmt.Sprintf("write BOM to %s", fullPath), err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return "", errors.NewStorageError(fmt.Sprintf("write headers to %s", fullPath), err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return "", errors.NewStorageError(fmt.Sprintf("write record %d to %s", i, fullPath), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", errors.NewStorageError(fmt.Sprintf("flush %s", fullPath), err)
	}
	return fullPath, nil
}

// WriteSimpleCSV writes a CSV file with headers and records.
func (w *Writer) WriteSimpleCSV(fileName string, headers []string, records [][]string) (string, error) {
	return w.WriteCSV(fileName, WriteOptions{
		Headers:   headers,
		Records:   records,
		BOMPrefix: true,
	})
}

// writeText writes a plain-text file into the output directory.
func (w *Writer) writeText(fileName, content string) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", errors.NewStorageError(fmt.Sprintf("create output directory %s", w.outputDir), err)
	}
	fullPath := filepath.Join(w.outputDir, fileName)
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", errors.NewStorageError(fmt.Sprintf("write %s", fullPath), err)
	}
	return fullPath, nil
}
