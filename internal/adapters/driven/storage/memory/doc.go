// Package memory provides in-memory implementations of driven ports.
// Nothing survives the process; they back tests and scratch sessions.
package memory
