// Package transport publishes reader events to message brokers.
//
// Events are encoded as JSON and published under
//
//	<prefix>/<readerID>/<kind>
//
// for example rfid/1/read. MQTTPublisher sends to that topic with QoS 1.
// KafkaPublisher writes every event to one fixed Kafka topic and carries
// the MQTT-style topic in the message key, so consumers can partition by
// reader. MultiPublisher fans one event out to several publishers.
package transport
