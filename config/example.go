package config

var ExampleYaml = `
dashboard:
  port: 5000
  datadir: ~/homehub
rooms:
  Bedroom: [HomeHUB_Env_Node, HomeHUB_Light_Node]
  Living Room: [HomeHUB_Env_Node_2]
weather:
  appid: abcdef
  city: Calgary
  country: CA
  units: metric
  cache: 10m
`

var ExampleConfig *Config

func init() {
	ExampleConfig, _ = OpenRaw([]byte(ExampleYaml))
}
