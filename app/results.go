package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	CORSResultsFile     = "cors_vulnerabilities.txt"
	EndpointResultsFile = "discovered_endpoints.txt"
)

// ResultWriter appends findings to flat text files inside the output
// directory, one URL per line. Files are created lazily on first finding.
type ResultWriter struct {
	outputDir string
}

// NewResultWriter creates the output directory. Call it only after flag and
// dependency validation succeeded.
func NewResultWriter(outputDir string) (*ResultWriter, error) {
	err := os.MkdirAll(outputDir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("cannot create output directory %s: %w", outputDir, err)
	}

	return &ResultWriter{outputDir: outputDir}, nil
}

func (w *ResultWriter) AppendURL(filename, url string) error {
	path := filepath.Join(w.outputDir, filename)

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open result file %s: %w", path, err)
	}
	defer file.Close()

	_, err = fmt.Fprintln(file, url)
	if err != nil {
		return fmt.Errorf("cannot write to result file %s: %w", path, err)
	}

	return nil
}
