package service

import (
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/stretchr/testify/assert"
)

// recordingBroker запоминает опубликованные топики
type recordingBroker struct {
	mu     sync.Mutex
	topics []string
}

func (b *recordingBroker) Subscribe(string) (<-chan struct{}, func()) {
	ch := make(chan struct{})
	return ch, func() {}
}

func (b *recordingBroker) Publish(topics ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.topics = append(b.topics, topics...)
}

func (b *recordingBroker) published() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.topics...)
}

func TestTopics(t *testing.T) {
	assert.Equal(t, "lists:u1", ListsTopic("u1"))
	assert.Equal(t, "invites:u1", InvitesTopic("u1"))
	assert.Equal(t, "items:42", ItemsTopic(42))
}

func TestBroker_PublishReachesSubscribersOfTopic(t *testing.T) {
	b := NewBroker(logger.Nop())

	lists, cancelLists := b.Subscribe(ListsTopic("u1"))
	defer cancelLists()
	items, cancelItems := b.Subscribe(ItemsTopic(1))
	defer cancelItems()

	b.Publish(ListsTopic("u1"))

	select {
	case <-lists:
	case <-time.After(time.Second):
		t.Fatal("lists subscriber not notified")
	}
	select {
	case <-items:
		t.Fatal("items subscriber must not be notified")
	default:
	}
}

func TestBroker_NotificationsCoalesce(t *testing.T) {
	b := NewBroker(logger.Nop())
	ch, cancel := b.Subscribe("t")
	defer cancel()

	b.Publish("t")
	b.Publish("t")
	b.Publish("t", "t")

	<-ch
	select {
	case <-ch:
		t.Fatal("expected a single pending notification")
	default:
	}
}

func TestBroker_CancelClosesChannel(t *testing.T) {
	b := NewBroker(logger.Nop())
	ch, cancel := b.Subscribe("t")

	cancel()
	cancel() // повторный вызов безопасен

	_, ok := <-ch
	assert.False(t, ok)

	// публикация после отписки не паникует
	b.Publish("t")
}
