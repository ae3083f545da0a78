// Package cron parses standard 5-field cron expressions and computes
// occurrence times, frequencies, and schedule stamps.
//
// It supports wildcards, ranges, steps, lists, and @descriptors across
// minute, hour, day-of-month, month, and day-of-week fields. Frequency
// helpers count occurrences inside fixed measurement windows and rank
// expressions by how often they fire.
package cron
