package storage

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/luoyh/lovestory/internal/logging"
)

// Prefix namespaces every key this system writes, so ClearAll can never
// touch unrelated data sharing the same store.
const Prefix = "love_story_v3_"

// Sub-keys under Prefix. Each collection is an independent entry, so partial
// corruption of one key does not invalidate the others.
const (
	KeyConfession    = "confession_status"
	KeyStory         = "story_items"
	KeyMemory        = "memory_items"
	KeyJourney       = "journey_text"
	KeyAnniversaries = "anniversary_items"
)

// Gateway is the persistence gateway: namespaced get/set/remove over a KV,
// owning JSON serialization and availability detection. Availability is
// probed once at construction; when the store is unavailable every operation
// short-circuits to a no-op or default and the rest of the system runs on
// in-memory state only.
type Gateway struct {
	kv        KV
	available bool
	log       logging.Logger
}

// StorageInfo reports usage of the namespaced portion of the store.
type StorageInfo struct {
	Available  bool
	ItemCount  int
	TotalBytes int
}

func NewGateway(ctx context.Context, kv KV, log logging.Logger) *Gateway {
	g := &Gateway{kv: kv, log: log}
	g.available = g.probe(ctx)
	if !g.available {
		g.log.Warn(ctx, "local store unavailable, running on in-memory state only")
	}
	return g
}

func (g *Gateway) probe(ctx context.Context) bool {
	if g.kv == nil {
		return false
	}
	const sentinel = Prefix + "__probe__"
	if err := g.kv.Set(ctx, sentinel, []byte("ok")); err != nil {
		return false
	}
	return g.kv.Delete(ctx, sentinel) == nil
}

// Available reports whether the startup probe succeeded.
func (g *Gateway) Available() bool {
	return g.available
}

// Set serializes value to JSON and writes it under the namespaced key.
// Failures are logged and reported as false, never raised; the caller's
// in-memory state is not rolled back, so store and memory can diverge until
// the next successful write.
func (g *Gateway) Set(ctx context.Context, key string, value any) bool {
	if !g.available {
		return false
	}
	b, err := json.Marshal(value)
	if err != nil {
		g.log.Error(ctx, "failed to serialize value", "key", key, "error", err)
		return false
	}
	if err := g.kv.Set(ctx, Prefix+key, b); err != nil {
		g.log.Error(ctx, "failed to write value", "key", key, "error", err)
		return false
	}
	return true
}

// Load reads the namespaced key into dest, reporting false when the store is
// unavailable, the key is absent, or the stored text does not parse. Corrupt
// entries are treated the same as absent ones.
func (g *Gateway) Load(ctx context.Context, key string, dest any) bool {
	if !g.available {
		return false
	}
	b, err := g.kv.Get(ctx, Prefix+key)
	if err != nil {
		g.log.Error(ctx, "failed to read value", "key", key, "error", err)
		return false
	}
	if b == nil {
		return false
	}
	if err := json.Unmarshal(b, dest); err != nil {
		g.log.Warn(ctx, "corrupt stored value, falling back to default", "key", key, "error", err)
		return false
	}
	return true
}

// Get reads the namespaced key and returns def when Load reports false.
func Get[T any](ctx context.Context, g *Gateway, key string, def T) T {
	var v T
	if !g.Load(ctx, key, &v) {
		return def
	}
	return v
}

// Remove deletes the namespaced key.
func (g *Gateway) Remove(ctx context.Context, key string) {
	if !g.available {
		return
	}
	if err := g.kv.Delete(ctx, Prefix+key); err != nil {
		g.log.Error(ctx, "failed to remove value", "key", key, "error", err)
	}
}

// ClearAll removes every key under this system's namespace prefix, leaving
// unrelated data in the same store untouched.
func (g *Gateway) ClearAll(ctx context.Context) {
	if !g.available {
		return
	}
	all, err := g.kv.List(ctx)
	if err != nil {
		g.log.Error(ctx, "failed to list store", "error", err)
		return
	}
	for k := range all {
		if !strings.HasPrefix(k, Prefix) {
			continue
		}
		if err := g.kv.Delete(ctx, k); err != nil {
			g.log.Error(ctx, "failed to remove value", "key", k, "error", err)
		}
	}
}

// Info reports how much of the store the namespaced keys occupy.
func (g *Gateway) Info(ctx context.Context) StorageInfo {
	if !g.available {
		return StorageInfo{}
	}
	all, err := g.kv.List(ctx)
	if err != nil {
		g.log.Error(ctx, "failed to list store", "error", err)
		return StorageInfo{Available: true}
	}
	info := StorageInfo{Available: true}
	for k, v := range all {
		if !strings.HasPrefix(k, Prefix) {
			continue
		}
		info.ItemCount++
		info.TotalBytes += len(k) + len(v)
	}
	return info
}
