package runner

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/codeatlas-io/codeatlas/internal/extract"
	"github.com/codeatlas-io/codeatlas/internal/scanner"
)

// FileResult is the outcome of extracting one file. Err is per-file: a file
// that fails to read, parse, or extract never aborts the batch.
type FileResult struct {
	Path       string
	Language   string
	Extraction *extract.FileExtraction
	Err        error
}

// Stats summarizes a completed run.
type Stats struct {
	Files   int
	Failed  int
	Classes int
	Methods int
	Fields  int
}

// ProgressReporter receives batch progress callbacks. Implementations must
// tolerate concurrent calls to OnFileDone.
type ProgressReporter interface {
	OnRunStart(totalFiles int)
	OnFileDone(path string, err error)
	OnRunComplete(stats Stats)
}

// NopReporter discards all progress events.
type NopReporter struct{}

func (NopReporter) OnRunStart(int)           {}
func (NopReporter) OnFileDone(string, error) {}
func (NopReporter) OnRunComplete(Stats)      {}

// Runner orchestrates extraction over a batch of files with bounded
// parallelism. The extraction core is stateless between calls, so files are
// processed concurrently without coordination.
type Runner struct {
	workers  int
	progress ProgressReporter

	// IncludeClassMethods controls whether methods nested inside classes are
	// kept in the results. Set before Run; defaults to true.
	IncludeClassMethods bool

	mu         sync.Mutex
	extractors map[string]*extract.Extractor
}

// New returns a runner with the given worker limit. workers < 1 means 1.
func New(workers int, progress ProgressReporter) *Runner {
	if workers < 1 {
		workers = 1
	}
	if progress == nil {
		progress = NopReporter{}
	}
	return &Runner{
		workers:             workers,
		progress:            progress,
		IncludeClassMethods: true,
		extractors:          make(map[string]*extract.Extractor),
	}
}

// Run extracts every file and returns results in input order. The context
// cancels outstanding work; already finished results are kept.
func (r *Runner) Run(ctx context.Context, files []string) []FileResult {
	results := make([]FileResult, len(files))
	r.progress.OnRunStart(len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				results[i] = FileResult{Path: path, Err: ctx.Err()}
				return nil
			default:
			}

			results[i] = r.extractFile(path)
			r.progress.OnFileDone(path, results[i].Err)
			return nil
		})
	}

	// Workers never return errors; failures are carried per file.
	_ = g.Wait()

	r.progress.OnRunComplete(Summarize(results))
	return results
}

// extractFile reads, parses, and extracts a single file. Panics from
// pathological input (deeply nested or generated syntax) are converted into
// the file's error so the rest of the batch proceeds.
func (r *Runner) extractFile(path string) (result FileResult) {
	result.Path = path

	defer func() {
		if rec := recover(); rec != nil {
			result.Extraction = nil
			result.Err = fmt.Errorf("extraction panic in %s: %v", path, rec)
		}
	}()

	lang, ok := scanner.DetectLanguage(path)
	if !ok {
		result.Err = fmt.Errorf("no language for %s", path)
		return result
	}
	result.Language = lang

	ex, err := r.extractorFor(lang)
	if err != nil {
		result.Err = err
		return result
	}

	source, err := os.ReadFile(path)
	if err != nil {
		result.Err = fmt.Errorf("read %s: %w", path, err)
		return result
	}

	fx, err := ex.ExtractSource(path, source)
	if err != nil {
		result.Err = err
		return result
	}

	if !r.IncludeClassMethods {
		topLevel := fx.Methods[:0]
		for _, m := range fx.Methods {
			if m.ParentClass == "" {
				topLevel = append(topLevel, m)
			}
		}
		fx.Methods = topLevel
	}

	result.Extraction = fx
	return result
}

// extractorFor returns a shared extractor for the language. Extractors hold
// no per-call state, so one instance per language serves all workers.
func (r *Runner) extractorFor(lang string) (*extract.Extractor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ex, ok := r.extractors[lang]; ok {
		return ex, nil
	}
	ex, err := extract.New(lang)
	if err != nil {
		return nil, err
	}
	r.extractors[lang] = ex
	return ex, nil
}

// Summarize totals a result set.
func Summarize(results []FileResult) Stats {
	stats := Stats{Files: len(results)}
	for _, res := range results {
		if res.Err != nil {
			stats.Failed++
			continue
		}
		if res.Extraction != nil {
			stats.Classes += len(res.Extraction.Classes)
			stats.Methods += len(res.Extraction.Methods)
			stats.Fields += len(res.Extraction.Fields)
		}
	}
	return stats
}
