// Package ports defines the capability interfaces the application services
// depend on. Implementations live under internal/infrastructure; services
// receive them by injection so tests can substitute fakes.
package ports
