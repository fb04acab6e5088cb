package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"exprc/internal/diag"
	"exprc/internal/ir"
	"exprc/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 cache key.
type Digest [32]byte

// DiskCache хранит результат lowering по хешу содержимого файла.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is what one cache entry stores.
type DiskPayload struct {
	Schema      uint16
	Path        string
	ContentHash Digest
	IR          []*ir.Record
	Diagnostics []diag.Diagnostic
}

// OpenDiskCache opens the cache in dir, or in $XDG_CACHE_HOME/<app>
// (~/.cache/<app>) when dir is empty.
func OpenDiskCache(app, dir string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, app)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог "ir" для удобства очистки
	return filepath.Join(c.dir, "ir", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после успешного Rename временного файла уже нет
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload. A missing entry or one written by a
// different schema is a miss, not an error.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := msgpack.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("corrupt cache entry %x: %w", key[:4], err)
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог, потом удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// cacheKey: H(schema || content hash || option bits).
func cacheKey(file *source.File, opts Options) Digest {
	h := sha256.New()
	_, _ = h.Write([]byte{byte(diskCacheSchemaVersion >> 8), byte(diskCacheSchemaVersion)})
	_, _ = h.Write(file.Hash[:])
	_, _ = h.Write(opts.fingerprint())
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

func newPayload(res *Result) *DiskPayload {
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        res.Path,
		IR:          ir.ToRecords(res.IR),
		Diagnostics: res.Bag.Items(),
	}
	if f := res.File(); f != nil {
		payload.ContentHash = f.Hash
	}
	return payload
}

// restore rebuilds IR and diagnostics, re-stamping spans with the file ID
// of the current run.
func (p *DiskPayload) restore(id source.FileID) ([]ir.Node, []diag.Diagnostic, error) {
	for _, r := range p.IR {
		restamp(r, id)
	}
	nodes, err := ir.FromRecords(p.IR)
	if err != nil {
		return nil, nil, err
	}
	diags := make([]diag.Diagnostic, len(p.Diagnostics))
	for i, d := range p.Diagnostics {
		d.Primary.File = id
		notes := make([]diag.Note, len(d.Notes))
		for j, n := range d.Notes {
			n.Span.File = id
			notes[j] = n
		}
		if len(notes) == 0 {
			notes = nil
		}
		d.Notes = notes
		diags[i] = d
	}
	return nodes, diags, nil
}

func restamp(r *ir.Record, id source.FileID) {
	if r == nil {
		return
	}
	r.Span.File = id
	r.OpSpan.File = id
	restamp(r.Left, id)
	restamp(r.Right, id)
}
