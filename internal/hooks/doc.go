// Package hooks runs the command configured for a hook event directly,
// without going through the generated script.
//
// The command is executed as
//
//	sh -c <command> <event> <args...>
//
// so "$0" is the event name and "$1", "$2", ... are the arguments, exactly
// as the generated script sees them when git invokes it. This is what
// "hooksmith run" uses to try a hook out before committing.
//
// # Environment
//
// Extra variables are passed with --env KEY=VALUE. A value of "-" reads the
// variable from piped stdin:
//
//	git diff --cached | hooksmith run pre-commit --env DIFF=-
package hooks
