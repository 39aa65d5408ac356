// Package resilience groups the fault-tolerance helpers used around the database:
//
//   - circuitbreaker wraps the connection pool so a failing database is short-circuited
//     instead of tying up request goroutines.
//   - retry re-establishes the initial connection with exponential backoff while the
//     database is still starting.
package resilience
