// Package pipeline runs the per-report processing chain (fetch, extract,
// reflow, tokenize, count) and assembles the combined frequency table
// for a batch of reports.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/ntworthk/COTM-2023-04/internal/models"
	"github.com/ntworthk/COTM-2023-04/internal/services/fetch"
	"github.com/ntworthk/COTM-2023-04/internal/services/freq"
	"github.com/ntworthk/COTM-2023-04/internal/services/pdf"
	"github.com/ntworthk/COTM-2023-04/internal/services/text"
)

// Stage names the pipeline stage a failure happened in.
type Stage string

const (
	StageFetch   Stage = "fetch"
	StageExtract Stage = "extract"
)

// DocumentError ties a failure to the report and stage it came from, so
// a six-report batch never fails with a bare "unexpected EOF".
type DocumentError struct {
	ReportID string
	Stage    Stage
	Err      error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("report %s: %s: %v", e.ReportID, e.Stage, e.Err)
}

// Unwrap exposes the underlying error to errors.Is / errors.As.
func (e *DocumentError) Unwrap() error { return e.Err }

// Policy decides what the batch does when one report fails.
type Policy string

const (
	// PolicyAbort stops the whole batch at the first failing report.
	PolicyAbort Policy = "abort"
	// PolicyContinue skips the failing report with a warning and keeps going.
	PolicyContinue Policy = "continue"
)

// Resolver turns a source reference into a readable local file.
//
// Go Pattern: interfaces are defined where they are consumed, not where
// they are implemented. The fetch.Loader satisfies this without knowing
// the pipeline exists, and tests swap in fakes.
type Resolver interface {
	Resolve(ctx context.Context, ref string) (*fetch.Local, error)
}

// Extractor pulls per-page text out of a PDF on disk.
type Extractor interface {
	ExtractPages(path string) ([]pdf.Page, error)
}

// Result is the outcome for one report: its frequency rows, or the
// error that stopped it.
type Result struct {
	ReportID string
	Rows     []models.WordCount
	Err      error
}

// Options configure a Runner beyond its collaborators.
type Options struct {
	Width    int    // reflow width in runes; 0 means text.DefaultWidth
	Parallel int    // reports processed concurrently; 0 or 1 is sequential
	Policy   Policy // zero value means PolicyAbort
	Tokenize text.Options
}

// Runner executes the batch.
type Runner struct {
	resolver  Resolver
	extractor Extractor
	opts      Options
}

// New creates a Runner.
func New(resolver Resolver, extractor Extractor, opts Options) *Runner {
	if opts.Policy == "" {
		opts.Policy = PolicyAbort
	}
	return &Runner{
		resolver:  resolver,
		extractor: extractor,
		opts:      opts,
	}
}

// Run processes every report and assembles the combined table, with the
// rows grouped by report in input order regardless of parallelism.
// Under PolicyAbort the first failure cancels outstanding work and is
// returned; under PolicyContinue failing reports are skipped with a
// warning and everyone else still lands in the table.
func (r *Runner) Run(ctx context.Context, reports []models.Report) (*models.Table, error) {
	results := make([]Result, len(reports))

	if r.opts.Parallel <= 1 {
		for i, rep := range reports {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = r.processOne(ctx, rep)
			if err := results[i].Err; err != nil && r.opts.Policy == PolicyAbort {
				return nil, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.opts.Parallel)
		for i, rep := range reports {
			g.Go(func() error {
				results[i] = r.processOne(gctx, rep)
				if err := results[i].Err; err != nil && r.opts.Policy == PolicyAbort {
					return err
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	table := &models.Table{}
	for _, res := range results {
		if res.Err != nil {
			log.Printf("⚠️  Skipping report %s: %v", res.ReportID, res.Err)
			continue
		}
		table.Append(res.Rows...)
	}
	return table, nil
}

// processOne runs the full chain for a single report. Every error is
// wrapped as a DocumentError naming the report and the stage.
func (r *Runner) processOne(ctx context.Context, rep models.Report) Result {
	log.Printf("📄 Processing report %s (%s)", rep.ID, rep.Source)

	local, err := r.resolver.Resolve(ctx, rep.Source)
	if err != nil {
		return Result{ReportID: rep.ID, Err: &DocumentError{ReportID: rep.ID, Stage: StageFetch, Err: err}}
	}
	defer local.Cleanup()

	pages, err := r.extractor.ExtractPages(local.Path)
	if err != nil {
		return Result{ReportID: rep.ID, Err: &DocumentError{ReportID: rep.ID, Stage: StageExtract, Err: err}}
	}

	pageTexts := make([]string, len(pages))
	for i, page := range pages {
		pageTexts[i] = page.Text
	}

	lines := text.Reflow(pageTexts, r.opts.Width)
	tokens := text.Tokenize(lines, r.opts.Tokenize)
	if len(tokens) == 0 {
		log.Printf("⚠️  Report %s produced no tokens and contributes no rows", rep.ID)
		return Result{ReportID: rep.ID}
	}

	rows := freq.Count(rep.ID, tokens)
	log.Printf("✅ Report %s: %d pages, %d tokens, %d distinct words", rep.ID, len(pages), len(tokens), len(rows))
	return Result{ReportID: rep.ID, Rows: rows}
}
