// =============================================================================
// Compute Sales - Pipeline
// =============================================================================
//
// This module runs one complete computation, from input files to the
// rendered report text.
//
// PIPELINE:
//   1. Load the price catalogue          (fatal on failure)
//   2. Load the sales record             (fatal on failure)
//   3. Build the price table             (empty table is fatal)
//   4. Evaluate every sale
//   5. Sum the grand total
//   6. Render the report
//
// Steps 3 and 4 never fail: malformed records become warnings in the shared
// diagnostics collector. Writing the report is left to the caller, because
// a failed write must not change the outcome of the run.
//
// =============================================================================

package compute

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ginjaninja78/computesales/internal/catalogue"
	"github.com/ginjaninja78/computesales/internal/diagnostics"
	"github.com/ginjaninja78/computesales/internal/loader"
	"github.com/ginjaninja78/computesales/internal/report"
	"github.com/ginjaninja78/computesales/internal/sales"
	"github.com/ginjaninja78/computesales/internal/types"
)

// ErrEmptyCatalogue is returned when no catalogue entry survived validation.
var ErrEmptyCatalogue = errors.New("no valid products in catalogue")

// EmptyCatalogueMessage is shown to the user for ErrEmptyCatalogue.
const EmptyCatalogueMessage = "No valid products in catalogue. Cannot compute sales."

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result is the outcome of a successful run.
type Result struct {
	// RunID identifies the run in log output.
	RunID string

	// Report holds the per-sale totals, grand total, warnings and timing.
	Report types.Report

	// Text is the rendered report.
	Text string

	// Products is the number of entries in the price table.
	Products int

	// PricedItems is the number of line items that contributed to a total.
	PricedItems int
}

// =============================================================================
// COMPUTER
// =============================================================================

// Computer runs the pipeline for one catalogue and one sales record.
type Computer struct {
	cataloguePath string
	salesPath     string
	layout        report.Options
	logger        zerolog.Logger
	now           func() time.Time
}

// Option customizes a Computer.
type Option func(*Computer)

// WithLayout sets the report layout.
func WithLayout(opts report.Options) Option {
	return func(c *Computer) { c.layout = opts }
}

// WithLogger sets the logger used for run progress.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Computer) { c.logger = logger }
}

// WithClock replaces the clock used to measure elapsed time.
func WithClock(now func() time.Time) Option {
	return func(c *Computer) { c.now = now }
}

// New creates a Computer for the given input files.
func New(cataloguePath, salesPath string, opts ...Option) *Computer {
	c := &Computer{
		cataloguePath: cataloguePath,
		salesPath:     salesPath,
		layout:        report.DefaultOptions(),
		logger:        zerolog.Nop(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes the pipeline.
//
// The returned error is either a *loader.LoadError or ErrEmptyCatalogue;
// both mean no report was produced.
func (c *Computer) Run() (*Result, error) {
	start := c.now()
	runID := uuid.NewString()
	logger := c.logger.With().Str("run_id", runID).Logger()

	rawCatalogue, err := loader.LoadCatalogue(c.cataloguePath)
	if err != nil {
		logger.Error().Err(err).Str("path", c.cataloguePath).Msg("catalogue load failed")
		return nil, err
	}

	rawSales, err := loader.LoadSales(c.salesPath)
	if err != nil {
		logger.Error().Err(err).Str("path", c.salesPath).Msg("sales load failed")
		return nil, err
	}

	diags := diagnostics.New(&logger)

	prices := catalogue.Build(rawCatalogue, diags)
	if len(prices) == 0 {
		logger.Error().Int("warnings", diags.Len()).Msg("price table is empty")
		return nil, ErrEmptyCatalogue
	}
	logger.Info().Int("products", len(prices)).Msg("price table built")

	summary := sales.ComputeAll(rawSales, prices, diags)
	grandTotal := sales.GrandTotal(summary.Results)
	elapsed := c.now().Sub(start)

	rep := types.Report{
		Sales:      summary.Results,
		GrandTotal: grandTotal,
		Elapsed:    elapsed,
		Warnings:   diags.Messages(),
	}

	logger.Info().
		Int("sales", len(summary.Results)).
		Int("priced_items", summary.PricedItems).
		Int("warnings", diags.Len()).
		Str("grand_total", report.FormatMoney(grandTotal)).
		Dur("elapsed", elapsed).
		Msg("sales computed")

	return &Result{
		RunID:       runID,
		Report:      rep,
		Text:        report.Format(rep, c.layout),
		Products:    len(prices),
		PricedItems: summary.PricedItems,
	}, nil
}

// Describe renders a fatal run error the way it is shown to the user.
func Describe(err error) string {
	var loadErr *loader.LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Error()
	}
	if errors.Is(err, ErrEmptyCatalogue) {
		return EmptyCatalogueMessage
	}
	return fmt.Sprintf("Error: %v", err)
}
