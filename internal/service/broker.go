package service

import (
	"strconv"
	"sync"

	"github.com/MKhiriev/eat-that-list/internal/logger"
)

// Topic names.
func ListsTopic(userID string) string   { return "lists:" + userID }
func InvitesTopic(userID string) string { return "invites:" + userID }
func ItemsTopic(listID int64) string    { return "items:" + strconv.FormatInt(listID, 10) }

type memoryBroker struct {
	mu     sync.Mutex
	topics map[string]map[chan struct{}]struct{}

	logger *logger.Logger
}

// NewBroker returns an in-process [Broker].
func NewBroker(logger *logger.Logger) Broker {
	return &memoryBroker{
		topics: make(map[string]map[chan struct{}]struct{}),
		logger: logger,
	}
}

// Subscribe registers a listener on topic. Notifications coalesce: a slow
// reader sees one pending signal however many publishes happened.
func (b *memoryBroker) Subscribe(topic string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	b.mu.Lock()
	subs, ok := b.topics[topic]
	if !ok {
		subs = make(map[chan struct{}]struct{})
		b.topics[topic] = subs
	}
	subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.topics[topic], ch)
			if len(b.topics[topic]) == 0 {
				delete(b.topics, topic)
			}
			close(ch)
		})
	}
}

func (b *memoryBroker) Publish(topics ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, topic := range topics {
		for ch := range b.topics[topic] {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}
	b.logger.Debug().Strs("topics", topics).Msg("published change")
}
