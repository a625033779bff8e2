// Package notifications implements the asynchronous pickup notification
// pipeline: the Dispatcher schedules jobs onto the delayed queue, the Worker
// drains due jobs and talks to the SMS gateway, and the JobManager runs the
// worker on a cron cadence.
//
// # Delivery guarantees
//
// Jobs are delivered at least once. The queue hands each job to a single
// worker at a time, so attempt counting and terminal dispositions are never
// raced, but a crash mid-execution can redeliver a job and produce a
// duplicate SMS. That is accepted as a minor artifact, not a correctness
// problem.
//
// # Failure policy
//
// Transient gateway failures (timeouts, network errors, 5xx) are retried
// with exponential backoff up to the job's attempt budget. Permanent
// failures (rejected destination, 4xx) kill the job immediately. Either way
// the outcome is only logged; the caller who triggered the enqueue already
// received its response.
package notifications
