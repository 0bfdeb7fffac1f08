package analyzer

import (
	"crypto/sha256"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dshills/scipdup/internal/selector"
	"github.com/dshills/scipdup/pkg/types"
)

// defaultCacheSize bounds the result cache in server mode. Reports are
// small; the limit exists to cap retained raw-content hashes, not memory.
const defaultCacheSize = 128

// cacheKey identifies an analysis by input content and filter, so a file
// edited in place never serves a stale report.
type cacheKey [32]byte

// resultCache memoizes completed reports for server mode, where the same
// index file is commonly analyzed repeatedly. Reports are immutable after
// construction, so entries are shared without copying.
type resultCache struct {
	cache *lru.Cache[cacheKey, *types.Report]
}

func newResultCache(size int) *resultCache {
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[cacheKey, *types.Report](size)
	if err != nil {
		// Only reachable with a non-positive size, which is guarded above
		panic(fmt.Sprintf("failed to create LRU cache: %v", err))
	}
	return &resultCache{cache: cache}
}

func (c *resultCache) get(key cacheKey) (*types.Report, bool) {
	return c.cache.Get(key)
}

func (c *resultCache) add(key cacheKey, report *types.Report) {
	c.cache.Add(key, report)
}

// computeCacheKey hashes the raw input bytes together with a deterministic
// rendering of the filter configuration. List elements are NUL-terminated
// so element boundaries stay unambiguous; a NUL never occurs inside a
// pattern or path fragment.
func computeCacheKey(raw []byte, filter selector.Filter) cacheKey {
	h := sha256.New()
	h.Write(raw)

	var data strings.Builder
	data.WriteString("|patterns:")
	for _, p := range filter.Patterns {
		data.WriteString(p)
		data.WriteByte(0)
	}
	data.WriteString("|exclude:")
	for _, e := range filter.ExcludeSubstrings {
		data.WriteString(e)
		data.WriteByte(0)
	}
	data.WriteString(fmt.Sprintf("|fn:%t|local:%t", filter.FunctionsOnly, filter.ExcludeLocal))
	h.Write([]byte(data.String()))

	var key cacheKey
	copy(key[:], h.Sum(nil))
	return key
}
