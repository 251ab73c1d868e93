package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// Topic names for event fan-out.
const (
	TopicEventBroadcast = "event-broadcast"
)
