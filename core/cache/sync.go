package cache

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

// DefaultSyncDelay is the debounce window applied to sync requests.
const DefaultSyncDelay = 300 * time.Millisecond

// SyncRule copies one source entry to a set of target keys, optionally
// transformed per target and gated by a predicate on the source entry.
type SyncRule struct {
	Source Key
	// Targets computes the destination keys at pass time; fan-out targets are
	// usually derived from another cache entry and cannot be static.
	Targets func() []Key
	// Transform shapes the source entry for one target. nil copies as-is.
	Transform func(entry interface{}, target Key) interface{}
	// When gates the rule on the source entry. nil means always.
	When func(entry interface{}) bool
}

// StaticTargets adapts a fixed key set to the Targets contract.
func StaticTargets(keys ...Key) func() []Key {
	return func() []Key { return keys }
}

type SyncOption func(*Syncer)

func WithSyncDelay(d time.Duration) SyncOption {
	return func(s *Syncer) { s.delay = d }
}

// WithSyncErrorHandler installs the callback invoked when a rule fails.
// Failures never propagate to the code that requested the sync.
func WithSyncErrorHandler(fn func(error)) SyncOption {
	return func(s *Syncer) { s.onError = fn }
}

// Syncer keeps derived cache entries consistent with their source entry.
// Requests are debounced: bursts of upstream writes within the delay window
// coalesce into a single propagation pass (last-writer-wins, not a queue).
type Syncer struct {
	store   Store
	rules   []SyncRule
	delay   time.Duration
	onError func(error)

	mu    sync.Mutex
	timer *time.Timer
}

func NewSyncer(store Store, rules []SyncRule, opts ...SyncOption) *Syncer {
	s := &Syncer{
		store: store,
		rules: rules,
		delay: DefaultSyncDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Request schedules a propagation pass, cancelling any pass still pending.
func (s *Syncer) Request() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.run)
}

// Flush cancels any pending pass and runs one immediately.
func (s *Syncer) Flush() {
	s.Stop()
	s.run()
}

// Stop cancels any pending pass.
func (s *Syncer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Syncer) run() {
	for i := range s.rules {
		s.apply(&s.rules[i])
	}
}

// apply runs one rule; a panicking Transform/When/Targets fails the rule via
// onError and the pass continues with the next rule.
func (s *Syncer) apply(rule *SyncRule) {
	defer func() {
		if r := recover(); r != nil {
			s.fail(errors.Errorf("cache: syncing %q: %v", rule.Source, r))
		}
	}()

	entry, ok := s.store.Get(rule.Source)
	if !ok {
		return
	}
	if rule.When != nil && !rule.When(entry) {
		return
	}
	if rule.Targets == nil {
		return
	}
	for _, target := range rule.Targets() {
		data := entry
		if rule.Transform != nil {
			data = rule.Transform(entry, target)
		}
		s.store.Set(target, data)
	}
}

func (s *Syncer) fail(err error) {
	if s.onError != nil {
		s.onError(err)
	}
}
