// Package model provides the data structures shared across the pipeline
// packages. It defines the rendered field, object, parameter and payload
// shapes consumed by the submission transport.
package model
