// console/util/loading_service.go

package util

import (
	"sort"
	"sync"
)

// GlobalLoadingKey is used when a caller does not name a key.
const GlobalLoadingKey = "global"

// LoadingService tracks in-flight work per key. Keys are reference counted so
// overlapping calls under one key keep it active until the last one stops.
type LoadingService struct {
	mu     sync.Mutex
	counts map[string]int

	aggregateSubs map[int]*loadingSubscriber
	keySubs       map[string]map[int]*loadingSubscriber
	nextSub       int
}

type loadingSubscriber struct {
	ch   chan bool
	last bool
}

func NewLoadingService() *LoadingService {
	return &LoadingService{
		counts:        make(map[string]int),
		aggregateSubs: make(map[int]*loadingSubscriber),
		keySubs:       make(map[string]map[int]*loadingSubscriber),
	}
}

func (l *LoadingService) StartLoading(key string) {
	if key == "" {
		key = GlobalLoadingKey
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counts[key]++
	l.publishLocked(key)
}

func (l *LoadingService) StopLoading(key string) {
	if key == "" {
		key = GlobalLoadingKey
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.counts[key] > 1 {
		l.counts[key]--
		return
	}
	delete(l.counts, key)
	l.publishLocked(key)
}

func (l *LoadingService) StopAllLoading() {
	l.mu.Lock()
	defer l.mu.Unlock()

	keys := make([]string, 0, len(l.counts))
	for k := range l.counts {
		keys = append(keys, k)
	}
	l.counts = make(map[string]int)
	for _, k := range keys {
		l.publishLocked(k)
	}
}

// IsLoading reports whether any key is active.
func (l *LoadingService) IsLoading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.counts) > 0
}

func (l *LoadingService) IsKeyLoading(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[key] > 0
}

// ActiveKeys returns the active keys in sorted order.
func (l *LoadingService) ActiveKeys() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	keys := make([]string, 0, len(l.counts))
	for k := range l.counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Subscribe streams the aggregate loading flag. The current value is
// delivered first; afterwards only changes are sent.
func (l *LoadingService) Subscribe() (<-chan bool, func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextSub
	l.nextSub++
	sub := &loadingSubscriber{ch: make(chan bool, subscriberBuffer), last: len(l.counts) > 0}
	sub.ch <- sub.last
	l.aggregateSubs[id] = sub

	return sub.ch, l.unsubscribe(func() {
		delete(l.aggregateSubs, id)
	}, sub.ch)
}

// SubscribeKey streams the loading flag of one key, distinct until changed.
func (l *LoadingService) SubscribeKey(key string) (<-chan bool, func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextSub
	l.nextSub++
	sub := &loadingSubscriber{ch: make(chan bool, subscriberBuffer), last: l.counts[key] > 0}
	sub.ch <- sub.last
	if l.keySubs[key] == nil {
		l.keySubs[key] = make(map[int]*loadingSubscriber)
	}
	l.keySubs[key][id] = sub

	return sub.ch, l.unsubscribe(func() {
		delete(l.keySubs[key], id)
		if len(l.keySubs[key]) == 0 {
			delete(l.keySubs, key)
		}
	}, sub.ch)
}

func (l *LoadingService) unsubscribe(remove func(), ch chan bool) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			remove()
			close(ch)
		})
	}
}

// publishLocked pushes the new aggregate value and the value of key to
// subscribers whose last seen value differs.
func (l *LoadingService) publishLocked(key string) {
	aggregate := len(l.counts) > 0
	for _, sub := range l.aggregateSubs {
		sub.send(aggregate)
	}
	if key == "" {
		return
	}
	active := l.counts[key] > 0
	for _, sub := range l.keySubs[key] {
		sub.send(active)
	}
}

func (s *loadingSubscriber) send(v bool) {
	if s.last == v {
		return
	}
	// a slow reader loses the oldest value, never the newest
	select {
	case s.ch <- v:
	default:
		select {
		case <-s.ch:
		default:
		}
		s.ch <- v
	}
	s.last = v
}
