// Package discovery finds MQTT brokers on the local network via mDNS/DNS-SD.
//
// Brokers such as Mosquitto advertise the _mqtt._tcp service type. The
// bridge daemon uses FirstBroker when no broker URL is configured.
package discovery
