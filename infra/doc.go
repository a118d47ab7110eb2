// Package infra contains technical adapters: log outputs, error reporters,
// metrics recorders and the MQTT client. These packages should depend only on
// the interfaces defined in the core packages.
package infra
