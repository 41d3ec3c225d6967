package mqtt

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	MQTT "github.com/eclipse/paho.mqtt.golang"
	"github.com/sharkmet/HomeHUB/pubsub"
)

// TopicPrefix namespaces all hub traffic on the mqtt broker.
const TopicPrefix = "homehub/"

type Broker struct {
	broker     string
	client     MQTT.Client
	subscriber *Subscriber
}

func NewBroker(broker string, name string) (*Broker, error) {
	hostname, _ := os.Hostname()
	clientID := fmt.Sprintf("homehub/%s-%s-%d-%d", name, hostname, os.Getpid(), rand.Int())
	self := &Broker{broker: broker}
	opts := MQTT.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetDefaultPublishHandler(self.publishHandler)
	opts.SetOnConnectHandler(self.connectHandler)
	self.client = MQTT.NewClient(opts)
	if token := self.client.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return self, nil
}

func (self *Broker) ID() string {
	return "mqtt: " + self.broker
}

func (self *Broker) publishHandler(client MQTT.Client, msg MQTT.Message) {
	if self.subscriber == nil {
		return
	}
	self.subscriber.message(msg)
}

func (self *Broker) connectHandler(client MQTT.Client) {
	if self.subscriber == nil {
		return
	}
	// (re)subscribe when (re)connected
	self.subscriber.resubscribe()
}

func (self *Broker) Subscriber() pubsub.Subscriber {
	if self.subscriber == nil {
		self.subscriber = NewSubscriber(self)
	}
	return self.subscriber
}

func (self *Broker) Publisher() pubsub.Publisher {
	return &Publisher{broker: self}
}

// Publisher for mqtt
type Publisher struct {
	broker *Broker
}

// ID of Publisher
func (pub *Publisher) ID() string {
	return pub.broker.ID()
}

// Emit an event
func (pub *Publisher) Emit(ev *pubsub.Event) {
	topic := TopicPrefix + ev.Topic
	if token := pub.broker.client.Publish(topic, 1, false, ev.Bytes()); token.Wait() && token.Error() != nil {
		log.Println("Error publishing:", token.Error())
	}
}
