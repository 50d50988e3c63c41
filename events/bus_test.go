package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingListener struct {
	topics []string
	got    chan string
}

func (l *recordingListener) Topics() []string {
	return l.topics
}

func (l *recordingListener) OnEvent(_ context.Context, topic string, payload any) {
	l.got <- topic + ":" + payload.(string)
}

func TestBusDeliversToSubscribedTopics(t *testing.T) {
	l := &recordingListener{topics: []string{NavPushed}, got: make(chan string, 1)}
	b := &bus{Listeners: []Listener{l}, byTopic: make(map[string][]Listener)}
	require.NoError(t, b.Init())

	b.Publish(context.Background(), NavPushed, "/get-request")

	select {
	case msg := <-l.got:
		assert.Equal(t, NavPushed+":/get-request", msg)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestBusIgnoresOtherTopics(t *testing.T) {
	l := &recordingListener{topics: []string{NavPushed}, got: make(chan string, 1)}
	b := &bus{Listeners: []Listener{l}, byTopic: make(map[string][]Listener)}
	require.NoError(t, b.Init())

	b.Publish(context.Background(), NavPopped, "/")

	select {
	case msg := <-l.got:
		t.Fatalf("unexpected delivery: %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}
