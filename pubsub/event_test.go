package pubsub

import (
	"fmt"
	"time"
)

func ExampleEvent_String() {
	ev := NewEvent("test", Fields{})
	loc, _ := time.LoadLocation("UTC")
	ev.Timestamp = time.Date(2014, 1, 2, 3, 4, 5, 0, loc)
	fmt.Println(ev.String())
	// Output: {"timestamp":"2014-01-02 03:04:05","topic":"test"}
}

func ExampleParse_withTimestamp() {
	ev := Parse(`{"timestamp":"2014-01-02 03:04:05","topic":"test","field":"value"}`, "")
	fmt.Println(ev.Topic)
	fmt.Println(ev.Timestamp)
	fmt.Println(ev.Fields)
	// Output:
	// test
	// 2014-01-02 03:04:05 +0000 UTC
	// map[field:value]
}

func ExampleParse_topicFallback() {
	ev := Parse(`{"device":"HomeHUB_Env_Node"}`, "sensor/HomeHUB_Env_Node")
	fmt.Println(ev.Topic)
	fmt.Println(ev.Device())
	// Output:
	// sensor/HomeHUB_Env_Node
	// HomeHUB_Env_Node
}

func ExampleParse_bad() {
	ev := Parse(`{`, "")
	fmt.Println(ev)
	// Output:
	// <nil>
}

func ExampleNewReading() {
	ev := NewReading("HomeHUB_Env_Node", map[string]float64{"temperature": 21.8}, "2026-01-02 03:04:05")
	fmt.Println(ev.Topic)
	fmt.Println(ev.Sensors()["temperature"])
	fmt.Println(ev.ReceivedAt())
	// Output:
	// sensor/HomeHUB_Env_Node
	// 21.8
	// 2026-01-02 03:04:05
}

func ExampleParse_nodePayload() {
	// the document a node POSTs over HTTP, published as-is to mqtt
	ev := Parse(`{"timestamp":"2026-01-02 03:04:05","device_name":"HomeHUB_Env_Node","sensors":{"temperature":21.8}}`, "sensor/HomeHUB_Env_Node")
	fmt.Println(ev.Device())
	fmt.Println(ev.Sensors()["temperature"])
	fmt.Println(ev.ReceivedAt())
	// Output:
	// HomeHUB_Env_Node
	// 21.8
	// 2026-01-02 03:04:05
}

func ExampleParse_sensorsWire() {
	ev := Parse(`{"device":"n","sensors":{"light":180,"name":"x"}}`, "sensor/n")
	fmt.Println(ev.Sensors())
	// Output:
	// map[light:180]
}
