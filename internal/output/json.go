package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/codeatlas-io/codeatlas/internal/extract"
	"github.com/codeatlas-io/codeatlas/internal/runner"
)

// Document is the serialized form of one extraction run.
type Document struct {
	ID          string       `json:"id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Root        string       `json:"root,omitempty"`
	Files       []FileReport `json:"files"`
}

// FileReport carries either a file's extraction or its error, never both.
type FileReport struct {
	Path       string                  `json:"path"`
	Language   string                  `json:"language,omitempty"`
	Error      string                  `json:"error,omitempty"`
	Extraction *extract.FileExtraction `json:"extraction,omitempty"`
}

// NewDocument converts a result batch into a document ready to serialize.
func NewDocument(root string, results []runner.FileResult) *Document {
	doc := &Document{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Root:        root,
		Files:       make([]FileReport, 0, len(results)),
	}

	for _, res := range results {
		report := FileReport{
			Path:     res.Path,
			Language: res.Language,
		}
		if res.Err != nil {
			report.Error = res.Err.Error()
		} else {
			report.Extraction = res.Extraction
		}
		doc.Files = append(doc.Files, report)
	}

	return doc
}

// WriteJSON encodes the document as indented JSON.
func WriteJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
