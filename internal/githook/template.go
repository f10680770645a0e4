package githook

import (
	"bufio"
	"bytes"
	"strings"
)

// Marker identifies a hook script generated by hooksmith. It always appears
// as a whole line directly below the shebang.
const Marker = "# hooksmith:managed-hook"

// markerScanLines bounds how far into a file the marker is searched for.
const markerScanLines = 10

const (
	eventPlaceholder   = "__HOOKSMITH_EVENT__"
	commandPlaceholder = "__HOOKSMITH_COMMAND__"
)

const scriptTemplate = `#!/bin/sh
` + Marker + `
# Generated by hooksmith for the "` + eventPlaceholder + `" event.
# Do not edit: "hooksmith install" rewrites this file and removes it
# once the event is no longer configured.

` + commandPlaceholder + `
`

// Render returns the hook script for e running command. The command is
// inserted verbatim, trailing newlines trimmed. The output contains no
// timestamps, so rendering the same input is byte-identical.
func Render(e Event, command string) []byte {
	r := strings.NewReplacer(
		eventPlaceholder, string(e),
		commandPlaceholder, strings.TrimRight(command, "\r\n"),
	)
	return []byte(r.Replace(scriptTemplate))
}

// IsManaged reports whether content carries the generated-file marker
// within its first few lines.
func IsManaged(content []byte) bool {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for i := 0; i < markerScanLines && scanner.Scan(); i++ {
		if strings.TrimRight(scanner.Text(), " \t\r") == Marker {
			return true
		}
	}
	return false
}
