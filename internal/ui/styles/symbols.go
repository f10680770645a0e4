package styles

// Status symbols used in tables and doctor output.
const (
	SymbolOK   = "✓"
	SymbolWarn = "!"
	SymbolFail = "✗"
	SymbolNone = "·"
)

// OK renders the success symbol.
func OK() string { return SuccessStyle.Render(SymbolOK) }

// Warn renders the warning symbol.
func Warn() string { return WarningStyle.Render(SymbolWarn) }

// Fail renders the failure symbol.
func Fail() string { return ErrorStyle.Render(SymbolFail) }

// None renders the symbol for "nothing here".
func None() string { return MutedStyle.Render(SymbolNone) }
