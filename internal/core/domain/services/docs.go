// Package services contains domain services that implement business logic
// spanning value objects, such as validating the signature artifact captured
// at pickup. Domain services are stateless beyond their configuration and are
// safe for concurrent use.
package services
