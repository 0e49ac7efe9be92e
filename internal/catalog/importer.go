// Package catalog implements the ingestion pipeline that turns price-sheet
// text into persisted catalog entries: category resolution, duplicate
// detection, pricing derivation, and the run orchestration tying them
// together.
package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"

	"github.com/horeca-one/catalogd/internal/common"
	"github.com/horeca-one/catalogd/internal/model"
	"github.com/horeca-one/catalogd/internal/pricing"
	"github.com/horeca-one/catalogd/internal/service"
	"github.com/horeca-one/catalogd/internal/sheet"
)

// placeholderImage is served for imported products whose sheet row does not
// name a usable asset. Real images are assigned later by the storefront
// tooling, never by the importer.
const placeholderImage = "https://res.cloudinary.com/demo/image/upload/v1312461204/sample.jpg"

// Summary is the read-only result of one import run.
type Summary struct {
	Skipped           map[SkipReason]int
	Added             int
	CategoriesTouched int
	CategoriesCreated int
}

// TotalSkipped sums the per-reason skip counts.
func (s Summary) TotalSkipped() int {
	total := 0
	for _, n := range s.Skipped {
		total += n
	}
	return total
}

// Config holds options for an import run.
type Config struct {
	// ProgressWriter receives the progress bar; nil disables it.
	ProgressWriter io.Writer
	// DryRun parses and classifies rows without writing to the store.
	DryRun bool
}

// Importer orchestrates one catalog import run.
type Importer struct {
	storage service.Storage
	parser  *sheet.Parser
	config  Config
}

// NewImporter creates an importer backed by the given store.
func NewImporter(storage service.Storage, config Config) *Importer {
	return &Importer{
		storage: storage,
		parser:  sheet.NewParser(),
		config:  config,
	}
}

// Run processes one sheet in source order. Rows are handled strictly
// sequentially: the dedup sets and the category cache are read-after-write
// state, and each accepted row must be visible to every later row. A store
// failure on one row skips that row and continues; only a failure to load
// the initial catalog snapshot aborts the run.
func (imp *Importer) Run(ctx context.Context, sourceText string) (*Summary, error) {
	rows, err := imp.parser.Parse(sourceText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sheet: %w", err)
	}

	records := make([]model.SourceRecord, 0, len(rows))
	for _, row := range rows {
		if rec, ok := sheet.Normalize(row); ok {
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return nil, common.ErrEmptySheet
	}

	slog.Info("starting import run",
		"rows", len(rows),
		"records", len(records),
		"dry_run", imp.config.DryRun)

	deduper, err := NewDeduper(ctx, imp.storage)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded catalog snapshot", "known_products", deduper.KnownProducts())

	resolver := NewCategoryResolver(imp.storage)

	summary := &Summary{Skipped: make(map[SkipReason]int)}
	bar := imp.newProgressBar(len(records))

	for _, rec := range records {
		imp.importRecord(ctx, rec, deduper, resolver, summary)
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	summary.CategoriesTouched = resolver.Touched()
	summary.CategoriesCreated = resolver.Created()

	common.LogInfo("import run complete", common.Fields{
		"added":              summary.Added,
		"skipped":            summary.TotalSkipped(),
		"categories_touched": summary.CategoriesTouched,
		"categories_created": summary.CategoriesCreated,
	})

	return summary, nil
}

// importRecord decides the fate of one record. Decision order is fixed
// policy: SKU duplicate, then name duplicate, then missing category, then
// persistence. An accepted record is committed to the dedup sets before the
// next row is examined.
func (imp *Importer) importRecord(ctx context.Context, rec model.SourceRecord, deduper *Deduper, resolver *CategoryResolver, summary *Summary) {
	if reason, dup := deduper.Check(rec.SKU, rec.Name); dup {
		slog.Debug("skipping duplicate", "sku", rec.SKU, "name", rec.Name, "reason", reason)
		summary.Skipped[reason]++
		return
	}

	if rec.CategoryLabel == "" {
		slog.Debug("skipping record without category", "sku", rec.SKU, "name", rec.Name)
		summary.Skipped[SkipNoCategory]++
		return
	}

	var categoryID string
	if imp.config.DryRun {
		categoryID = "dry-run"
	} else {
		var err error
		categoryID, err = resolver.Resolve(ctx, rec.CategoryLabel)
		if err != nil {
			slog.Warn("skipping record, category resolution failed",
				"sku", rec.SKU, "category", rec.CategoryLabel, "error", err)
			summary.Skipped[SkipNoCategory]++
			return
		}
	}

	product := buildProduct(rec, categoryID, summary.Added)

	if !imp.config.DryRun {
		if _, err := imp.storage.CreateProduct(ctx, product); err != nil {
			common.LogError(err, "skipping record, store rejected write",
				common.Fields{"sku": rec.SKU, "name": rec.Name})
			summary.Skipped[SkipStoreError]++
			return
		}
	}

	deduper.Commit(rec.SKU, rec.Name)
	summary.Added++
	slog.Debug("added product", "sku", rec.SKU, "name", rec.Name, "gross_rate", rec.GrossRate)
}

// buildProduct assembles the persisted entity from a normalized record.
// order is the count of records accepted before this one in the run.
func buildProduct(rec model.SourceRecord, categoryID string, order int) *model.Product {
	image := rec.ImageHint
	if image == "" {
		image = placeholderImage
	}

	description := rec.Name
	if rec.Brand != "" {
		description = fmt.Sprintf("%s - %s", rec.Brand, rec.Name)
	}

	return &model.Product{
		SKU:         rec.SKU,
		Name:        rec.Name,
		Description: description,
		Slug:        sheet.Slugify(rec.Name),
		HSN:         rec.HSN,
		Unit:        rec.Unit,
		Brand:       rec.Brand,
		CategoryID:  categoryID,
		Image:       image,
		Status:      model.StatusShow,
		TaxableRate: rec.TaxableRate,
		TaxPercent:  rec.TaxPercent,
		Prices: model.Prices{
			OriginalPrice: rec.GrossRate,
			Price:         rec.GrossRate,
			Discount:      0,
		},
		Pricing: pricing.Derive(rec.GrossRate),
		Stock:   model.DefaultStock,
		Order:   order,
	}
}

func (imp *Importer) newProgressBar(total int) *progressbar.ProgressBar {
	if imp.config.ProgressWriter == nil || total == 0 {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(imp.config.ProgressWriter),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing products..."),
	)
}
