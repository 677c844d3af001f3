// Package notify delivers user-facing outcome messages. Delivery is
// fire-and-forget: sinks log their own failures and never report back.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Notification is a toast-style message about the outcome of an action.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsError     bool   `json:"is_error"`
}

type Notifier interface {
	Notify(n Notification)
}

// Func adapts a function to Notifier.
type Func func(Notification)

func (f Func) Notify(n Notification) { f(n) }

// LogNotifier writes notifications to a logrus logger, errors at error level.
type LogNotifier struct {
	logger logrus.FieldLogger
}

func NewLogNotifier(logger logrus.FieldLogger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Notify(n Notification) {
	entry := l.logger.WithField("title", n.Title)
	if n.IsError {
		entry.Error(n.Description)
		return
	}
	entry.Info(n.Description)
}

const publishTimeout = 2 * time.Second

// RedisNotifier publishes notifications as JSON on a pub/sub channel.
type RedisNotifier struct {
	client  *redis.Client
	channel string
	logger  logrus.FieldLogger
}

func NewRedisNotifier(client *redis.Client, channel string, logger logrus.FieldLogger) *RedisNotifier {
	return &RedisNotifier{client: client, channel: channel, logger: logger}
}

func (r *RedisNotifier) Notify(n Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		r.logger.WithError(err).Warn("encode notification")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		r.logger.WithError(err).WithField("channel", r.channel).Warn("publish notification")
	}
}

// Multi fans a notification out to every sink in order.
type Multi []Notifier

func (m Multi) Notify(n Notification) {
	for _, sink := range m {
		if sink != nil {
			sink.Notify(n)
		}
	}
}

// Discard drops every notification.
var Discard Notifier = Func(func(Notification) {})
