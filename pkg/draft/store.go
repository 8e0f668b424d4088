// Package draft mirrors small pieces of client state to a durable local
// store so they survive restarts. Persistence here is best effort: a store
// that cannot be read or written degrades to in-memory state and never
// surfaces an error to the caller.
package draft

import (
	"encoding/json"

	"github.com/peterbourgon/diskv/v3"
)

// Store is the narrow persistence contract shared by every draft consumer.
// Get reports whether a usable value was found; Set and Clear swallow
// failures.
type Store interface {
	Get(key string, out interface{}) bool
	Set(key string, v interface{})
	Clear(key string)
}

// Open creates a Store backed by diskv under basePath. The key space is flat
// and partitioned by convention: each key has exactly one logical owner.
func Open(basePath string) Store {
	return &store{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

type store struct {
	d *diskv.Diskv
}

func (s *store) Get(key string, out interface{}) bool {
	val, err := s.d.Read(key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(val, out); err != nil {
		return false
	}
	return true
}

func (s *store) Set(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = s.d.Write(key, data)
}

func (s *store) Clear(key string) {
	_ = s.d.Erase(key)
}
