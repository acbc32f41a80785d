// Package sync holds locking helpers shared by in-process services.
package sync

import (
	"hash/maphash"
	"sync"
)

// DefaultShards is the shard count used by NewShardedMutex.
const DefaultShards = 64

// ShardedMutex serialises work per key without one lock per key. Keys that
// hash to the same shard share a mutex, so two sessions may occasionally wait
// on each other but one session never runs concurrently with itself.
type ShardedMutex struct {
	seed   maphash.Seed
	shards []sync.Mutex
}

func NewShardedMutex() *ShardedMutex {
	return NewShardedMutexN(DefaultShards)
}

// NewShardedMutexN builds a mutex with n shards; n below 1 means one shard.
func NewShardedMutexN(n int) *ShardedMutex {
	if n < 1 {
		n = 1
	}
	return &ShardedMutex{seed: maphash.MakeSeed(), shards: make([]sync.Mutex, n)}
}

func (m *ShardedMutex) Lock(key string) {
	m.shards[m.shardFor(key)].Lock()
}

func (m *ShardedMutex) Unlock(key string) {
	m.shards[m.shardFor(key)].Unlock()
}

// Do runs fn while holding key's shard.
func (m *ShardedMutex) Do(key string, fn func()) {
	m.Lock(key)
	defer m.Unlock(key)
	fn()
}

func (m *ShardedMutex) shardFor(key string) int {
	if len(m.shards) == 1 {
		return 0
	}
	return int(maphash.String(m.seed, key) % uint64(len(m.shards)))
}
