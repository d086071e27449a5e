package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"trygap/internal/config"
)

// Current schema version - increment when CachedResult changes.
const cacheSchemaVersion uint16 = 1

// Digest is a SHA-256 cache key.
type Digest [sha256.Size]byte

// ResultCache keeps formatting results on disk, keyed by the source and the
// settings it was formatted with. A nil cache stores nothing.
// Thread-safe for concurrent access.
type ResultCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedResult is the stored outcome of formatting one input.
type CachedResult struct {
	Schema  uint16
	Changed bool
	// Output is empty when the input was already formatted.
	Output []byte
}

// OpenResultCache opens the cache under the user cache directory.
func OpenResultCache(app string) (*ResultCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenResultCacheAt(filepath.Join(base, app))
}

// OpenResultCacheAt opens a cache rooted at dir.
func OpenResultCacheAt(dir string) (*ResultCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ResultCache{dir: dir}, nil
}

// CacheKey digests src together with every setting that changes output.
func CacheKey(src []byte, cfg config.Config, engine string) Digest {
	h := sha256.New()
	var buf [8]byte
	write := func(n int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(n))
		_, _ = h.Write(buf[:])
	}
	flag := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	_, _ = h.Write([]byte(engine))
	write(cfg.PrintWidth)
	write(cfg.TabWidth)
	write(flag(cfg.UseTabs))
	write(flag(cfg.TryCatchSpacing))
	write(int(cfg.GapStrategy))
	write(len(src))
	_, _ = h.Write(src)
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

func (c *ResultCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "results", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a result.
func (c *ResultCache) Put(key Digest, res *CachedResult) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	stored := *res
	stored.Schema = cacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(&stored); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a result. Entries written with another schema are misses.
func (c *ResultCache) Get(key Digest, out *CachedResult) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return out.Schema == cacheSchemaVersion, nil
}

// DropAll removes every cached result.
func (c *ResultCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "results"))
}
