// Package pipeline models a batch-processing pipeline definition as a
// directed graph of typed, attribute-bearing objects, and serializes that
// graph into the flat key/value field representation the AWS Data Pipeline
// API consumes.
//
// Objects are created with variant constructors (NewSchedule,
// NewShellCommandActivity, NewEc2Resource, ...) that seed the variant's
// default attributes, then filled in with Set. Attribute assignment order is
// preserved all the way into the rendered payload, which keeps generated
// definitions deterministic and easy to diff. An attribute value may be a
// scalar, a reference to another object or parameter (rendered as the
// target's identifier), or a sequence of either (rendered as repeated fields
// sharing one key).
//
// A Pipeline collects objects and parameters in insertion order, enforcing
// id uniqueness per namespace. Render assembles the submission payload,
// Validate reports every structural problem in one pass, and Graph exposes
// the reference graph for inspection or drawing. Submission itself lives in
// the transport package.
package pipeline
