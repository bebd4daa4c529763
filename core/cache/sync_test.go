package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/somohq/somo/core/cache"
	memcache "github.com/somohq/somo/storage/cache/mem"
)

const testSyncDelay = 10 * time.Millisecond

func waitForSync() { time.Sleep(5 * testSyncDelay) }

func Test_Syncer_propagates(t *testing.T) {
	store := memcache.NewStore()
	source := cache.NewKey("faculties")
	target := cache.NewKey("faculties", "u1")

	s := cache.NewSyncer(store, []cache.SyncRule{
		{
			Source:  source,
			Targets: cache.StaticTargets(target),
			Transform: func(entry interface{}, target cache.Key) interface{} {
				return entry.(string) + " for " + target[len(target)-1]
			},
		},
	}, cache.WithSyncDelay(testSyncDelay))
	defer s.Stop()

	store.Set(source, "faculty list")
	s.Request()
	waitForSync()

	entry, ok := store.Get(target)
	assert.True(t, ok)
	assert.Equal(t, "faculty list for u1", entry)
}

func Test_Syncer_coalescesBursts(t *testing.T) {
	store := memcache.NewStore()
	source := cache.NewKey("src")
	target := cache.NewKey("dst")

	passes := 0
	s := cache.NewSyncer(store, []cache.SyncRule{
		{
			Source:  source,
			Targets: cache.StaticTargets(target),
			Transform: func(entry interface{}, _ cache.Key) interface{} {
				passes++
				return entry
			},
		},
	}, cache.WithSyncDelay(testSyncDelay))
	defer s.Stop()

	store.Set(source, "v1")
	s.Request()
	store.Set(source, "v2")
	s.Request()
	store.Set(source, "v3")
	s.Request()
	waitForSync()

	assert.Equal(t, 1, passes, "a burst within the window must coalesce into one pass")
	entry, _ := store.Get(target)
	assert.Equal(t, "v3", entry, "the pass sees the last write")
}

func Test_Syncer_missingSourceSkips(t *testing.T) {
	store := memcache.NewStore()
	target := cache.NewKey("dst")

	s := cache.NewSyncer(store, []cache.SyncRule{
		{Source: cache.NewKey("src"), Targets: cache.StaticTargets(target)},
	}, cache.WithSyncDelay(testSyncDelay))
	defer s.Stop()

	s.Flush()

	_, ok := store.Get(target)
	assert.False(t, ok)
}

func Test_Syncer_whenPredicateGates(t *testing.T) {
	store := memcache.NewStore()
	source := cache.NewKey("src")
	target := cache.NewKey("dst")

	s := cache.NewSyncer(store, []cache.SyncRule{
		{
			Source:  source,
			Targets: cache.StaticTargets(target),
			When:    func(entry interface{}) bool { return entry != "skip" },
		},
	}, cache.WithSyncDelay(testSyncDelay))
	defer s.Stop()

	store.Set(source, "skip")
	s.Flush()
	_, ok := store.Get(target)
	assert.False(t, ok)

	store.Set(source, "go")
	s.Flush()
	entry, ok := store.Get(target)
	assert.True(t, ok)
	assert.Equal(t, "go", entry)
}

func Test_Syncer_ruleFailureDoesNotStopThePass(t *testing.T) {
	store := memcache.NewStore()
	source := cache.NewKey("src")
	okTarget := cache.NewKey("ok")

	var failures []error
	s := cache.NewSyncer(store, []cache.SyncRule{
		{
			Source:  source,
			Targets: cache.StaticTargets(cache.NewKey("broken")),
			Transform: func(entry interface{}, _ cache.Key) interface{} {
				panic("broken transform")
			},
		},
		{
			Source:  source,
			Targets: cache.StaticTargets(okTarget),
		},
	},
		cache.WithSyncDelay(testSyncDelay),
		cache.WithSyncErrorHandler(func(err error) { failures = append(failures, err) }),
	)
	defer s.Stop()

	store.Set(source, "data")
	s.Flush()

	if assert.Len(t, failures, 1) {
		assert.Contains(t, failures[0].Error(), "src")
	}
	entry, ok := store.Get(okTarget)
	assert.True(t, ok)
	assert.Equal(t, "data", entry)
}

func Test_Syncer_stopCancelsPendingPass(t *testing.T) {
	store := memcache.NewStore()
	source := cache.NewKey("src")
	target := cache.NewKey("dst")

	s := cache.NewSyncer(store, []cache.SyncRule{
		{Source: source, Targets: cache.StaticTargets(target)},
	}, cache.WithSyncDelay(testSyncDelay))

	store.Set(source, "data")
	s.Request()
	s.Stop()
	waitForSync()

	_, ok := store.Get(target)
	assert.False(t, ok)
}
