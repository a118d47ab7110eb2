// Package monitoring provides the concrete error reporters behind
// core/monitoring.Reporter: a component-logger reporter, Sentry, MQTT, Redis
// streams and local report stores, plus the async and dedup decorators.
// Importing the package registers every reporter with the core registry.
package monitoring
