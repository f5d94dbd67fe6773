// Package main is the entry point for the cotm analysis tool. It pulls
// down a batch of regulatory interim report PDFs, builds the combined
// word-frequency table, and writes the CSV plus three charts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ntworthk/COTM-2023-04/internal/analysis"
	"github.com/ntworthk/COTM-2023-04/internal/config"
	"github.com/ntworthk/COTM-2023-04/internal/models"
	"github.com/ntworthk/COTM-2023-04/internal/pipeline"
	"github.com/ntworthk/COTM-2023-04/internal/services/chart"
	"github.com/ntworthk/COTM-2023-04/internal/services/fetch"
	"github.com/ntworthk/COTM-2023-04/internal/services/pdf"
	"github.com/ntworthk/COTM-2023-04/internal/wordlists"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.LstdFlags)
	log.Printf("🚀 COTM 2023-04 word-frequency analysis %s starting...", Version)

	// Step 1: Load configuration (.env + environment), apply flag overrides
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	flag.StringVar(&cfg.ManifestPath, "manifest", cfg.ManifestPath, "YAML manifest of reports (empty = built-in DPSI interim reports)")
	flag.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory for the CSV and charts")
	flag.IntVar(&cfg.SegmentWidth, "width", cfg.SegmentWidth, "reflow width in runes")
	flag.IntVar(&cfg.Parallel, "parallel", cfg.Parallel, "reports processed concurrently")
	flag.BoolVar(&cfg.ContinueOnError, "continue-on-error", cfg.ContinueOnError, "skip failing reports instead of aborting the batch")
	flag.DurationVar(&cfg.FetchTimeout, "fetch-timeout", cfg.FetchTimeout, "per-attempt download timeout")
	flag.IntVar(&cfg.FetchRetries, "fetch-retries", cfg.FetchRetries, "re-attempts after a failed download")
	flag.BoolVar(&cfg.KeepDownloads, "keep-downloads", cfg.KeepDownloads, "keep downloaded PDFs in the temp directory")
	flag.IntVar(&cfg.TopWords, "top", cfg.TopWords, "words per report in the top-words chart")
	flag.StringVar(&cfg.TrendTerm, "term", cfg.TrendTerm, "single term for the trend chart")
	flag.StringVar(&cfg.StopwordsPath, "stopwords", cfg.StopwordsPath, "YAML stopword override (terms: [...])")
	flag.StringVar(&cfg.SkipwordsPath, "skipwords", cfg.SkipwordsPath, "YAML skip-word override (terms: [...])")
	flag.Func("qualifiers", "comma-separated qualifier words", func(v string) error {
		cfg.Qualifiers = nil
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				cfg.Qualifiers = append(cfg.Qualifiers, part)
			}
		}
		return nil
	})
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	// Step 2: Resolve the report manifest
	reports := config.DefaultReports()
	if cfg.ManifestPath != "" {
		reports, err = config.LoadManifest(cfg.ManifestPath)
		if err != nil {
			log.Fatalf("❌ Failed to load manifest: %v", err)
		}
	}
	log.Printf("📋 %d reports to process (width=%d, parallel=%d)", len(reports), cfg.SegmentWidth, cfg.Parallel)

	// Step 3: Word lists (embedded defaults, optional YAML overrides)
	lists := wordlists.Defaults()
	if cfg.StopwordsPath != "" {
		if lists.Stopwords, err = wordlists.FromYAMLFile(cfg.StopwordsPath); err != nil {
			log.Fatalf("❌ Failed to load stopwords: %v", err)
		}
		log.Printf("📚 Stopwords overridden from %s (%d terms)", cfg.StopwordsPath, lists.Stopwords.Len())
	}
	if cfg.SkipwordsPath != "" {
		if lists.SkipWords, err = wordlists.FromYAMLFile(cfg.SkipwordsPath); err != nil {
			log.Fatalf("❌ Failed to load skip words: %v", err)
		}
		log.Printf("📚 Skip words overridden from %s (%d terms)", cfg.SkipwordsPath, lists.SkipWords.Len())
	}

	// Step 4: Run the batch
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loader := fetch.New(cfg.FetchTimeout, cfg.FetchRetries, cfg.KeepDownloads)
	policy := pipeline.PolicyAbort
	if cfg.ContinueOnError {
		policy = pipeline.PolicyContinue
	}
	runner := pipeline.New(loader, pdf.New(), pipeline.Options{
		Width:    cfg.SegmentWidth,
		Parallel: cfg.Parallel,
		Policy:   policy,
	})

	table, err := runner.Run(ctx, reports)
	if err != nil {
		log.Fatalf("❌ Batch failed: %v", err)
	}
	if len(table.Rows) == 0 {
		log.Fatalf("❌ No words counted across %d reports; nothing to write", len(reports))
	}

	// Step 5: Write the frequency table
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		log.Fatalf("❌ Failed to create output directory: %v", err)
	}
	csvPath := filepath.Join(cfg.OutDir, "words.csv")
	if err := writeCSV(table, csvPath); err != nil {
		log.Fatalf("❌ Failed to write %s: %v", csvPath, err)
	}
	log.Printf("📊 Wrote %s (%d rows, %d reports)", csvPath, len(table.Rows), len(table.Reports()))

	// Step 6: Render the chart views
	topRows := analysis.TopWords(table, lists, cfg.TopWords)
	for i := range topRows {
		topRows[i].Label = fmt.Sprintf("%s (%s)", topRows[i].Label, topRows[i].ReportID)
	}
	renderChart(topRows, chart.Options{
		Title:  "Most common words in each interim report",
		XLabel: "share of filtered words",
	}, filepath.Join(cfg.OutDir, "top_words.png"))

	qualifierRows := analysis.KeywordShare(table, wordlists.NewSet(cfg.Qualifiers...))
	renderChart(qualifierRows, chart.Options{
		Title:  fmt.Sprintf("Share of words that are %s", quoteList(cfg.Qualifiers)),
		XLabel: "share of all words",
	}, filepath.Join(cfg.OutDir, "qualifier_words.png"))

	trendRows := analysis.TermShare(table, cfg.TrendTerm)
	renderChart(trendRows, chart.Options{
		Title:  fmt.Sprintf("Share of words that are %q", cfg.TrendTerm),
		XLabel: "share of all words",
	}, filepath.Join(cfg.OutDir, "self_reference.png"))

	log.Println("✅ Analysis complete")
}

// renderChart draws one view. An empty view is worth a warning but must
// not fail the run; a report set can legitimately not contain the term.
func renderChart(rows []models.ChartRow, opts chart.Options, path string) {
	if len(rows) == 0 {
		log.Printf("⚠️  No rows for %s; chart skipped", path)
		return
	}
	if err := chart.RenderBars(rows, opts, path); err != nil {
		log.Fatalf("❌ Failed to render %s: %v", path, err)
	}
	log.Printf("📊 Wrote %s", path)
}

// writeCSV writes the combined frequency table to path.
func writeCSV(table *models.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := table.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// quoteList renders a word list for a chart title: "may", "can" or "could".
func quoteList(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = fmt.Sprintf("%q", w)
	}
	if len(quoted) <= 1 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
