package events

import "context"

type bus struct {
	Listeners []Listener `wire:""`

	byTopic map[string][]Listener
}

func NewBus() Bus {
	return &bus{byTopic: make(map[string][]Listener)}
}

func (b *bus) Init() error {
	for _, l := range b.Listeners {
		for _, topic := range l.Topics() {
			b.byTopic[topic] = append(b.byTopic[topic], l)
		}
	}
	return nil
}

// Publish delivers asynchronously; a slow listener never stalls the UI
// goroutine.
func (b *bus) Publish(ctx context.Context, topic string, payload any) {
	for _, l := range b.byTopic[topic] {
		go l.OnEvent(ctx, topic, payload)
	}
}
