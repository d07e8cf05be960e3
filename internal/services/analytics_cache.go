package services

import (
	"sort"
	"sync"

	"finance-dashboard/internal/models"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
)

const defaultCacheEntries = 256

var fieldSeparator = []byte{0}

// analyticsCache memoizes engine results by a content hash of their inputs.
// Entries are evicted oldest first once maxEntries is reached.
type analyticsCache struct {
	mu         sync.Mutex
	entries    map[uint64]any
	order      []uint64
	maxEntries int
}

func newAnalyticsCache(maxEntries int) *analyticsCache {
	if maxEntries <= 0 {
		maxEntries = defaultCacheEntries
	}
	return &analyticsCache{
		entries:    make(map[uint64]any, maxEntries),
		maxEntries: maxEntries,
	}
}

func (c *analyticsCache) get(key uint64) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.entries[key]
	return value, ok
}

func (c *analyticsCache) put(key uint64, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = value
		return
	}

	for len(c.order) >= c.maxEntries {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = value
	c.order = append(c.order, key)
}

func (c *analyticsCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// contentKey hashes an operation, its parameters and every field of the
// transactions that the engine reads. Two calls with equal content share a key
// regardless of slice identity.
func contentKey(operation string, transactions []models.Transaction, params ...string) uint64 {
	digest := xxhash.New()

	_, _ = digest.WriteString(operation)
	_, _ = digest.Write(fieldSeparator)
	for _, param := range params {
		_, _ = digest.WriteString(param)
		_, _ = digest.Write(fieldSeparator)
	}

	for i := range transactions {
		txn := &transactions[i]
		for _, field := range []string{
			txn.ID.String(),
			txn.Date,
			txn.Amount.String(),
			txn.Type,
			txn.Category,
			txn.Account,
		} {
			_, _ = digest.WriteString(field)
			_, _ = digest.Write(fieldSeparator)
		}
	}

	return digest.Sum64()
}

// budgetParams renders budgets as sorted category=limit pairs for contentKey
func budgetParams(budgets map[string]decimal.Decimal) []string {
	params := make([]string, 0, len(budgets))
	for category, limit := range budgets {
		params = append(params, category+"="+limit.String())
	}
	sort.Strings(params)
	return params
}
