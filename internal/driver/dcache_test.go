package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"exprc/internal/diag"
	"exprc/internal/ir"
	"exprc/internal/pipeline"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCache("exprc", t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "a.expr")
	writeFile(t, path, "x * 5 - 3 `")

	opts := DefaultOptions()
	opts.Cache = cache

	first, err := RunFile(context.Background(), path, pipeline.StageLower, opts)
	if err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if first.Cached {
		t.Fatalf("first run must miss")
	}

	rec := &pipeline.RecordingSink{}
	opts.Progress = rec
	second, err := RunFile(context.Background(), path, pipeline.StageLower, opts)
	if err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if !second.Cached {
		t.Fatalf("second run must hit")
	}
	if ir.Shapes(second.IR) != ir.Shapes(first.IR) {
		t.Fatalf("cached ir %q, fresh %q", ir.Shapes(second.IR), ir.Shapes(first.IR))
	}
	if second.Tokens != nil || second.Nodes != nil {
		t.Fatalf("cache hit must skip tokenize and parse")
	}
	if second.Bag.Len() != first.Bag.Len() || !second.Bag.HasCode(diag.LexUnknownChar) {
		t.Fatalf("diagnostics not restored: %+v", second.Bag.Items())
	}
	if events := rec.Events(); len(events) != 1 || events[0].Status != pipeline.StatusCached {
		t.Fatalf("events = %+v", events)
	}

	// другие опции дают другой ключ
	opts.StripTrivia = false
	third, err := RunFile(context.Background(), path, pipeline.StageLower, opts)
	if err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if third.Cached {
		t.Fatalf("changed options must miss")
	}
}

func TestDiskCacheOnlyForLower(t *testing.T) {
	cache, err := OpenDiskCache("exprc", t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	opts := DefaultOptions()
	opts.Cache = cache
	RunSource(context.Background(), "<a>", "1 + 2", pipeline.StageParse, opts)
	entries, err := os.ReadDir(cache.Dir())
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("parse runs must not write the cache")
	}
}

func TestDiskCacheGetMissAndDrop(t *testing.T) {
	cache, err := OpenDiskCache("exprc", filepath.Join(t.TempDir(), "c"))
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	var key Digest
	key[0] = 1

	var out DiskPayload
	if hit, err := cache.Get(key, &out); hit || err != nil {
		t.Fatalf("empty cache: hit=%v err=%v", hit, err)
	}

	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion, Path: "a.expr"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if hit, err := cache.Get(key, &out); !hit || err != nil || out.Path != "a.expr" {
		t.Fatalf("Get: hit=%v err=%v out=%+v", hit, err, out)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	out = DiskPayload{}
	if hit, _ := cache.Get(key, &out); hit {
		t.Fatalf("DropAll must invalidate entries")
	}

	stale := DiskPayload{Schema: diskCacheSchemaVersion + 1}
	if err := cache.Put(key, &stale); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if hit, err := cache.Get(key, &out); hit || err != nil {
		t.Fatalf("other schema must miss: hit=%v err=%v", hit, err)
	}

	var nilCache *DiskCache
	if hit, err := nilCache.Get(key, &out); hit || err != nil {
		t.Fatalf("nil cache must miss")
	}
}

func TestDiskCacheCorruptEntry(t *testing.T) {
	cache, err := OpenDiskCache("exprc", t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	var key Digest
	p := cache.pathFor(key)
	writeFile(t, p, "\xc1 not msgpack")
	var out DiskPayload
	if _, err := cache.Get(key, &out); err == nil {
		t.Fatalf("expected decode error")
	}
}
