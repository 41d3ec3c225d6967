package services

import (
	"flag"
	"log"
	"os"

	"github.com/sharkmet/HomeHUB/config"
	"github.com/sharkmet/HomeHUB/pubsub"
	"github.com/sharkmet/HomeHUB/pubsub/mqtt"
)

// Service interface
type Service interface {
	ID() string
	Run() error
}

// ServiceInit interface
type ServiceInit interface {
	Service
	Init() error
}

type Flags interface {
	Flags()
}

var serviceMap map[string]Service = map[string]Service{}
var enabled []Service

var Config *config.Config
var Publisher pubsub.Publisher
var Subscriber pubsub.Subscriber
var Stor Store

func SetupLogging() {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	log.SetOutput(os.Stdout)
}

func SetupFlags() {
	for _, service := range enabled {
		// any service specific flags
		if f, ok := service.(Flags); ok {
			f.Flags()
		}
	}
	flag.Parse()
}

// SetupBroker connects the configured mqtt endpoint, falling back to an
// in-process broker so HTTP-only deployments need no broker daemon.
func SetupBroker(name string) {
	url := os.Getenv("HOMEHUB_MQTT")
	if url == "" {
		url = Config.Endpoints.Mqtt.Broker
	}
	if url == "" {
		log.Println("No mqtt endpoint configured, using in-process events")
		Publisher, Subscriber = pubsub.NewBasicBroker()
		return
	}

	broker, err := mqtt.NewBroker(url, name)
	if err != nil {
		log.Fatalln("Couldn't connect to mqtt:", err)
	}
	Publisher = broker.Publisher()
	Subscriber = broker.Subscriber()
}

// SetupStore prepares the flat file store under the data directory.
func SetupStore() {
	stor, err := NewFileStore(Config.Datadir())
	if err != nil {
		log.Fatalln("Couldn't open data directory:", err)
	}
	Stor = stor
}

func Setup(name string) {
	SetupBroker(name)
	SetupStore()
}

// Launch runs the named services, blocking indefinitely.
func Launch(ss []string) {
	enabled = []Service{}
	for _, name := range ss {
		if service, ok := serviceMap[name]; ok {
			enabled = append(enabled, service)
		} else {
			log.Fatalf("Service %s does not exist", name)
		}
	}

	SetupFlags()

	for _, service := range enabled {
		if service, ok := service.(ServiceInit); ok {
			err := service.Init()
			if err != nil {
				log.Fatalf("Error init service %s: %s", service.ID(), err.Error())
			}
		}
	}

	for _, service := range enabled {
		go func(service Service) {
			log.Printf("Starting %s\n", service.ID())
			err := service.Run()
			if err != nil {
				log.Fatalf("Error running service %s: %s", service.ID(), err.Error())
			}
		}(service)
	}
	select {}
}

func Register(service Service) {
	if _, exists := serviceMap[service.ID()]; exists {
		log.Fatalf("Duplicate service registered: %s", service.ID())
	}
	serviceMap[service.ID()] = service
}
