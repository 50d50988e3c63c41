// Package events is a small in-process pub/sub used to fan application
// events (navigation, mostly) out to interested components.
package events

import "context"

// Topics published by the main window.
const (
	NavPushed = "nav.pushed"
	NavPopped = "nav.popped"
)

// Bus delivers a payload to every listener subscribed to the topic.
type Bus interface {
	Publish(ctx context.Context, topic string, payload any)
}

// Listener receives events for the topics it declares. Implementations are
// collected through component wiring.
type Listener interface {
	Topics() []string
	OnEvent(ctx context.Context, topic string, payload any)
}
