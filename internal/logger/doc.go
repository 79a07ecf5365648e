// Package logger wraps a global zap sugared logger with an atomic level.
// Loggers can be carried in a context.Context so that fields such as a login
// attempt id follow a request through the transport and service layers.
package logger
