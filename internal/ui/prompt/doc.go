// Package prompt provides simple interactive prompts.
//
// Prompts render to stderr so stdout stays usable for piping. Callers
// check for a terminal first; see [Confirm].
package prompt
