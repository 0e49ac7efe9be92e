package catalog

import (
	"context"
	"fmt"

	"github.com/horeca-one/catalogd/internal/service"
	"github.com/horeca-one/catalogd/internal/sheet"
)

// SkipReason says why a record was not imported. The reasons share one
// terminal outcome but stay distinguishable for reporting.
type SkipReason string

const (
	// SkipDuplicateSKU means the SKU is already in the catalog or earlier in this run.
	SkipDuplicateSKU SkipReason = "duplicate_sku"
	// SkipDuplicateName means the normalized name collides with an existing product.
	SkipDuplicateName SkipReason = "duplicate_name"
	// SkipNoCategory means the row has no category label or its category could not be resolved.
	SkipNoCategory SkipReason = "no_category"
	// SkipStoreError means the store rejected the product write.
	SkipStoreError SkipReason = "store_error"
)

// Deduper tracks which SKUs and normalized names are already committed,
// both pre-existing and accepted earlier in the same run. It is not safe for
// concurrent use; the pipeline processes rows strictly in order.
type Deduper struct {
	knownSKUs     map[string]struct{}
	knownNameKeys map[string]struct{}
}

// NewDeduper snapshots the current catalog into the two dedup sets.
func NewDeduper(ctx context.Context, storage service.Storage) (*Deduper, error) {
	keys, err := storage.ListProductKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing product keys: %w", err)
	}

	d := &Deduper{
		knownSKUs:     make(map[string]struct{}, len(keys)),
		knownNameKeys: make(map[string]struct{}, len(keys)),
	}
	for _, key := range keys {
		if key.SKU != "" {
			d.knownSKUs[key.SKU] = struct{}{}
		}
		d.knownNameKeys[sheet.NormalizeKey(key.Name)] = struct{}{}
	}
	return d, nil
}

// Check classifies a candidate without mutating state. SKU collisions take
// priority over name collisions; a same-SKU row is never re-evaluated for
// name duplication.
func (d *Deduper) Check(sku, name string) (SkipReason, bool) {
	if _, ok := d.knownSKUs[sku]; ok {
		return SkipDuplicateSKU, true
	}
	if _, ok := d.knownNameKeys[sheet.NormalizeKey(name)]; ok {
		return SkipDuplicateName, true
	}
	return "", false
}

// Commit records an accepted product so that later rows in the same run see
// it as a duplicate.
func (d *Deduper) Commit(sku, name string) {
	d.knownSKUs[sku] = struct{}{}
	d.knownNameKeys[sheet.NormalizeKey(name)] = struct{}{}
}

// KnownProducts reports how many dedup name keys were seeded or committed.
func (d *Deduper) KnownProducts() int {
	return len(d.knownNameKeys)
}
