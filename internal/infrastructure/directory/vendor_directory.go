// Package directory resolves preferred vendors per trade with a short-lived
// in-memory cache in front of the vendor repository.
package directory

import (
	"context"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/repository"
	domainservice "github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/service"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
)

// CachedVendorDirectory answers trade lookups from cache, falling back to
// the repository. Vendor data changes rarely; a few minutes of staleness is
// acceptable for assignment.
type CachedVendorDirectory struct {
	vendors repository.VendorRepository
	cache   *gocache.Cache
}

// NewCachedVendorDirectory creates the directory.
func NewCachedVendorDirectory(vendors repository.VendorRepository) *CachedVendorDirectory {
	return &CachedVendorDirectory{
		vendors: vendors,
		cache:   gocache.New(constants.VendorDirectoryCacheTTL, 2*constants.VendorDirectoryCacheTTL),
	}
}

var _ domainservice.VendorDirectory = (*CachedVendorDirectory)(nil)

// PreferredVendor returns the first active vendor for the trade, nil when
// none is registered. The nil result is cached too, so repeated reports for
// an uncovered trade do not hammer the database.
func (d *CachedVendorDirectory) PreferredVendor(ctx context.Context, trade string) (*models.Vendor, error) {
	key := strings.ToLower(strings.TrimSpace(trade))

	if cached, found := d.cache.Get(key); found {
		if cached == nil {
			return nil, nil
		}
		vendor := cached.(models.Vendor)
		return &vendor, nil
	}

	candidates, err := d.vendors.ListByTrade(ctx, key)
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		d.cache.Set(key, nil, gocache.DefaultExpiration)
		return nil, nil
	}

	vendor := candidates[0]
	d.cache.Set(key, vendor, gocache.DefaultExpiration)
	return &vendor, nil
}

// Invalidate drops the cached entry for a trade, e.g. after vendor updates.
func (d *CachedVendorDirectory) Invalidate(trade string) {
	d.cache.Delete(strings.ToLower(strings.TrimSpace(trade)))
}
