package gui

import (
	"context"
	"log/slog"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/events"
)

// navLog mirrors navigation events into the structured log.
type navLog struct{}

func NewNavLogListener() events.Listener {
	return &navLog{}
}

func (*navLog) Topics() []string {
	return []string{events.NavPushed, events.NavPopped}
}

func (*navLog) OnEvent(_ context.Context, topic string, payload any) {
	slog.Info("navigation", "event", topic, "route", payload)
}
