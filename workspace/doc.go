// Package workspace holds per-workspace routing preferences.
//
// A Preference can pin a default tier, clamp the classified tier into a
// range, narrow providers to an allow-list, cap per-request and monthly
// spend, and disable automatic escalation. All fields are optional and
// a missing preference means no constraints, so the engine works for
// workspaces that never configured anything.
//
// Preferences are owned and persisted by an external collaborator; this
// package defines the record, the Store read interface, and an
// in-memory Store for tests and single-process use.
package workspace
