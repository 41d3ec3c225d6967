package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sharkmet/HomeHUB/config"
	"github.com/sharkmet/HomeHUB/services"
	"github.com/sharkmet/HomeHUB/services/dashboard"
	"github.com/sharkmet/HomeHUB/services/datalogger"
	"github.com/sharkmet/HomeHUB/services/demo"
)

const defaultServices = "dashboard,datalogger"

func registerServices() {
	services.Register(&dashboard.Service{})
	services.Register(&datalogger.Service{})
	services.Register(&demo.Service{})
}

func usage() {
	fmt.Println("Usage: homehub run [SERVICE,...]")
	fmt.Println()
	fmt.Println("Services:")
	fmt.Println("   dashboard    web dashboard and sensor ingest")
	fmt.Println("   datalogger   append sensor readings to the data log")
	fmt.Println("   demo         fabricated readings for demos")
	fmt.Println()
	fmt.Printf("Default: %s\n", defaultServices)
	fmt.Println()
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", "", "config file path (default ~/.config/homehub/homehub.yml)")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 || flag.Arg(0) != "run" {
		usage()
		os.Exit(1)
	}

	services.SetupLogging()

	var conf *config.Config
	var err error
	if *configPath != "" {
		conf, err = config.OpenFile(*configPath)
		if err != nil {
			log.Fatalln("Couldn't open config:", err)
		}
	} else {
		conf, err = config.Open()
		if err != nil {
			log.Println("Couldn't open config, using built-in defaults:", err)
			conf = config.ExampleConfig
		}
	}
	services.Config = conf

	selected := defaultServices
	if flag.NArg() > 1 {
		selected = strings.Join(flag.Args()[1:], ",")
	}
	ss := strings.Split(selected, ",")

	services.Setup("homehub")
	registerServices()
	services.Launch(ss)
}
