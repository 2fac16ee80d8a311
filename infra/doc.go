// Package infra groups the adapters behind the core interfaces: the zerolog
// logger, the Prometheus and InfluxDB metrics sinks and the Paho MQTT
// publisher. Nothing under core imports these packages.
package infra
