package labels

import (
	"bytes"
	"crypto/sha1"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"github.com/hscells/runmap"
	"github.com/peterbourgon/diskv"
	"github.com/pkg/errors"
	"log"
	"os"
	"path"
	"path/filepath"
)

// ErrCacheMiss is returned when a labels file has not been cached.
var ErrCacheMiss = errors.New("cache miss")

// BlockTransform determines how diskv should partition folders.
func BlockTransform(blockSize int) func(string) []string {
	return func(s string) []string {
		var (
			sliceSize = len(s) / blockSize
			pathSlice = make([]string, sliceSize)
		)
		for i := 0; i < sliceSize; i++ {
			from, to := i*blockSize, (i*blockSize)+blockSize
			pathSlice[i] = s[from:to]
		}
		return pathSlice
	}
}

// Cache stores parsed labels tables on disk, so that very large labels files only need to be parsed once.
//
// Entries are keyed on the absolute path, size, and modification time of the labels file, so editing a labels file
// invalidates its entry.
type Cache struct {
	dv *diskv.Diskv
}

// DefaultCacheDir is the directory tables are cached in when no other directory is given.
func DefaultCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return path.Join(cacheDir, "runmap", "labels"), nil
}

// NewCache creates a cache rooted at dir.
func NewCache(dir string) *Cache {
	return &Cache{
		dv: diskv.New(diskv.Options{
			BasePath:     dir,
			Transform:    BlockTransform(8),
			CacheSizeMax: 4096 * 1024,
			Compression:  diskv.NewGzipCompression(),
		}),
	}
}

// Load reads the labels file name, using the cached copy if there is one and populating the cache if not.
func (c *Cache) Load(name string) (*Table, error) {
	key, err := cacheKey(name)
	if err != nil {
		return nil, err
	}

	t, err := c.Get(key)
	if err == nil {
		log.Printf("loaded %d labels from cache", t.Len())
		return t, nil
	}
	if err != ErrCacheMiss {
		log.Printf("ignoring labels cache entry: %v", err)
	}

	t, err = Load(name)
	if err != nil {
		return nil, err
	}

	if err := c.Set(key, t); err != nil {
		log.Printf("could not cache labels: %v", err)
	}
	return t, nil
}

// Get retrieves the table stored under key.
func (c *Cache) Get(key string) (*Table, error) {
	if !c.dv.Has(key) {
		return nil, ErrCacheMiss
	}
	b, err := c.dv.Read(key)
	if err != nil {
		return nil, err
	}
	var ids []string
	err = gob.NewDecoder(bytes.NewReader(b)).Decode(&ids)
	if err != nil {
		return nil, errors.Wrap(err, "decoding cached labels")
	}
	return NewTable(ids), nil
}

// Set stores the table under key.
func (c *Cache) Set(key string, t *Table) error {
	var buff bytes.Buffer
	err := gob.NewEncoder(&buff).Encode(t.IDs)
	if err != nil {
		return err
	}
	return c.dv.Write(key, buff.Bytes())
}

func cacheKey(name string) (string, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", errors.Wrapf(runmap.ErrFileAccess, "%v", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.Wrapf(runmap.ErrFileAccess, "%v", err)
	}
	h := sha1.Sum([]byte(fmt.Sprintf("%s|%d|%d", abs, info.Size(), info.ModTime().UnixNano())))
	return hex.EncodeToString(h[:]), nil
}
