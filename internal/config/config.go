// Package config handles application configuration.
//
// Go Pattern: configuration via environment variables with sensible
// defaults, loaded into a plain struct. Flags defined in main override
// individual fields afterwards, so the precedence is flags > env > defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ntworthk/COTM-2023-04/internal/models"
	"github.com/ntworthk/COTM-2023-04/internal/services/text"
)

// Config holds all application configuration.
type Config struct {
	// Inputs
	ManifestPath string // YAML manifest of reports; empty means the built-in set
	OutDir       string // directory for the CSV and chart artifacts

	// Pipeline
	SegmentWidth    int // reflow width in runes
	Parallel        int // reports processed concurrently; 1 = sequential
	ContinueOnError bool

	// Fetching
	FetchTimeout  time.Duration // per-attempt HTTP timeout
	FetchRetries  int           // re-attempts after a failed download
	KeepDownloads bool          // leave temp PDFs on disk for debugging

	// Analysis views
	TopWords   int      // words per report in the top-words chart
	Qualifiers []string // keyword set for the qualifier-share chart
	TrendTerm  string   // single term for the trend chart

	// Word list overrides (YAML files of the form `terms: [...]`)
	StopwordsPath string
	SkipwordsPath string
}

// Load reads configuration from the environment with defaults. A .env
// file in the working directory is applied first if present, so local
// runs don't need exported variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ManifestPath: getEnv("COTM_MANIFEST", ""),
		OutDir:       getEnv("COTM_OUT_DIR", "out"),

		SegmentWidth:    getEnvInt("COTM_SEGMENT_WIDTH", text.DefaultWidth),
		Parallel:        getEnvInt("COTM_PARALLEL", 1),
		ContinueOnError: getEnvBool("COTM_CONTINUE_ON_ERROR", false),

		FetchTimeout:  getEnvDuration("COTM_FETCH_TIMEOUT", 60*time.Second),
		FetchRetries:  getEnvInt("COTM_FETCH_RETRIES", 2),
		KeepDownloads: getEnvBool("COTM_KEEP_DOWNLOADS", false),

		TopWords:   getEnvInt("COTM_TOP_WORDS", 2),
		Qualifiers: splitList(getEnv("COTM_QUALIFIERS", "may,can,could")),
		TrendTerm:  getEnv("COTM_TREND_TERM", "accc"),

		StopwordsPath: getEnv("COTM_STOPWORDS", ""),
		SkipwordsPath: getEnv("COTM_SKIPWORDS", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot run with. It is
// called again after flag overrides, since flags can break a config
// that loaded cleanly.
func (c *Config) Validate() error {
	if c.OutDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	if c.SegmentWidth <= 0 {
		return fmt.Errorf("segment width must be positive, got %d", c.SegmentWidth)
	}
	if c.Parallel < 1 {
		return fmt.Errorf("parallelism must be at least 1, got %d", c.Parallel)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %s", c.FetchTimeout)
	}
	if c.FetchRetries < 0 {
		return fmt.Errorf("fetch retries must not be negative, got %d", c.FetchRetries)
	}
	if c.TopWords < 1 {
		return fmt.Errorf("top words per report must be at least 1, got %d", c.TopWords)
	}
	if len(c.Qualifiers) == 0 {
		return fmt.Errorf("qualifier word set must not be empty")
	}
	if strings.TrimSpace(c.TrendTerm) == "" {
		return fmt.Errorf("trend term must not be empty")
	}
	return nil
}

// Manifest is the YAML document listing the reports to analyze.
// Order matters: it becomes the chart order.
type Manifest struct {
	Reports []models.Report `yaml:"reports"`
}

// LoadManifest reads a manifest file and validates it: at least one
// report, no empty IDs or sources, no duplicate IDs.
func LoadManifest(path string) ([]models.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if len(m.Reports) == 0 {
		return nil, fmt.Errorf("manifest %s lists no reports", path)
	}

	seen := make(map[string]struct{}, len(m.Reports))
	for i, rep := range m.Reports {
		if strings.TrimSpace(rep.ID) == "" {
			return nil, fmt.Errorf("manifest %s: report %d has an empty id", path, i+1)
		}
		if strings.TrimSpace(rep.Source) == "" {
			return nil, fmt.Errorf("manifest %s: report %q has an empty source", path, rep.ID)
		}
		if _, dup := seen[rep.ID]; dup {
			return nil, fmt.Errorf("manifest %s: duplicate report id %q", path, rep.ID)
		}
		seen[rep.ID] = struct{}{}
	}
	return m.Reports, nil
}

// DefaultReports returns the built-in manifest: the six Digital
// Platform Services Inquiry interim reports, September 2020 through
// March 2023, in publication order.
func DefaultReports() []models.Report {
	base := "https://www.accc.gov.au/system/files/"
	return []models.Report{
		{ID: "Sep 2020", Source: base + "Digital%20platform%20services%20inquiry%20-%20September%202020%20interim%20report.pdf"},
		{ID: "Mar 2021", Source: base + "Digital%20platform%20services%20inquiry%20-%20March%202021%20interim%20report.pdf"},
		{ID: "Sep 2021", Source: base + "Digital%20platform%20services%20inquiry%20-%20September%202021%20interim%20report.pdf"},
		{ID: "Mar 2022", Source: base + "Digital%20platform%20services%20inquiry%20-%20March%202022%20interim%20report.pdf"},
		{ID: "Sep 2022", Source: base + "Digital%20platform%20services%20inquiry%20-%20September%202022%20interim%20report.pdf"},
		{ID: "Mar 2023", Source: base + "Digital%20platform%20services%20inquiry%20-%20March%202023%20interim%20report.pdf"},
	}
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvInt reads an integer environment variable with a fallback.
func getEnvInt(key string, fallback int) int {
	str := getEnv(key, "")
	if str == "" {
		return fallback
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return fallback
	}
	return val
}

// getEnvBool reads a boolean environment variable with a fallback.
func getEnvBool(key string, fallback bool) bool {
	str := getEnv(key, "")
	if str == "" {
		return fallback
	}
	val, err := strconv.ParseBool(str)
	if err != nil {
		return fallback
	}
	return val
}

// getEnvDuration reads a duration environment variable ("90s", "2m")
// with a fallback.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	str := getEnv(key, "")
	if str == "" {
		return fallback
	}
	val, err := time.ParseDuration(str)
	if err != nil {
		return fallback
	}
	return val
}

// splitList splits a comma-separated value, trimming blanks.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
