// Package transport submits rendered pipeline definitions to the AWS Data
// Pipeline API. It is a thin layer over the SDK client: create, update,
// activate and remote validation calls, each handing over the payload the
// pipeline package rendered. Retry behaviour and credential resolution are
// left to the SDK's defaults.
package transport
