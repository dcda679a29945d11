package seenstore

import (
	"time"

	bc "github.com/allegro/bigcache/v3"
)

// BigCache keeps seen keys off-heap in bigcache's preallocated shard
// buffers. For unique runs in the multi-million range the map-backed Local
// store holds every key as a live string and GC scan time grows with it;
// bigcache stores the membership bytes outside the GC's view.
//
// Entries must outlive the run: the life window is generous and there is no
// hard size cap, since an evicted entry would readmit a duplicate.
type BigCache struct {
	c *bc.BigCache
	n int
}

// BigCacheConfig tunes the underlying cache. Zero values pick defaults
// suitable for a single long run.
type BigCacheConfig struct {
	LifeWindow         time.Duration // 0 => 24h
	MaxEntriesInWindow int           // 0 => bigcache default
	MaxEntrySize       int           // bytes per key; 0 => bigcache default
}

func NewBigCache(cfg BigCacheConfig) (*BigCache, error) {
	life := cfg.LifeWindow
	if life <= 0 {
		life = 24 * time.Hour
	}
	conf := bc.DefaultConfig(life)
	conf.CleanWindow = 0 // never expire mid-run
	conf.HardMaxCacheSize = 0
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	c, err := bc.NewBigCache(conf)
	if err != nil {
		return nil, err
	}
	return &BigCache{c: c}, nil
}

func (s *BigCache) Add(key string) (bool, error) {
	_, err := s.c.Get(key)
	if err == nil {
		return false, nil
	}
	if err != bc.ErrEntryNotFound {
		return false, err
	}
	if err := s.c.Set(key, []byte{}); err != nil {
		return false, err
	}
	s.n++
	return true, nil
}

func (s *BigCache) Len() int { return s.n }

func (s *BigCache) Close() error { return s.c.Close() }
