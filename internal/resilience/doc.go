// Package resilience groups the fault tolerance building blocks used around
// the storage layer: a circuit breaker that sheds load when the database is
// failing, and retry logic with exponential backoff for transient errors
// during startup and connection establishment.
package resilience
