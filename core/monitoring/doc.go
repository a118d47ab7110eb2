// Package monitoring defines the error-reporting collaborator of the logging
// facade. The restricted sink hands every record at Error level and above to a
// Reporter as a Report. Concrete reporters (Sentry, MQTT, Redis, report
// stores) live in infra/monitoring and register themselves by name so that
// NewReporter can build them from configuration.
package monitoring
