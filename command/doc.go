// Package command models the generic failure produced by a command-execution pipeline.
//
// A Failure carries the root cause, the transaction record of the command that failed
// and a reference to the client that executed it. It knows nothing about the service
// domain; translating it into a service error is the job of package error.
package command
