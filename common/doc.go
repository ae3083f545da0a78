// Package common provides shared helpers for scheduling and
// orchestration tooling: run-scoped context facilities, identifier
// sanitization, query parameter encoding, environment-backed
// configuration, and date helpers.
package common
