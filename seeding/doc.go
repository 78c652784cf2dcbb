// Package seeding builds the embedded course catalog from a source document.
//
// A catalog source is a JSON envelope of the form {"courses": [...]}.
// Parsing normalizes hour totals and validates every course; seeding embeds
// each course's title and description, then swaps the stored catalog in one
// drop-and-recreate operation. Re-seeding the same source is idempotent.
package seeding
