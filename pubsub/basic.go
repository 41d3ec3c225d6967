package pubsub

// An in-process broker, used when no mqtt endpoint is configured. Events
// emitted by one service are dispatched straight to the subscriptions of the
// others.
type basicPublisher struct {
	ch chan<- *Event
}

func (self *basicPublisher) ID() string {
	return "basic"
}

func (self *basicPublisher) Emit(ev *Event) {
	self.ch <- ev
}

// NewBasicBroker returns a connected in-process Publisher/Subscriber pair.
func NewBasicBroker() (Publisher, Subscriber) {
	ch := make(chan *Event, 16)
	sub := NewFilteredSubscriber("basic", ch)
	return &basicPublisher{ch}, sub
}
