package shell

import "github.com/archora/archora/internal/vfs"

// Kind selects which variant of Result is populated.
type Kind int

const (
	// KindSilent means success with nothing to print (cd, mkdir, touch, rm, clear).
	KindSilent Kind = iota
	// KindOutput carries text or a directory listing.
	KindOutput
	// KindFailure carries a FailureKind and a user-facing message.
	KindFailure
)

// Format tells renderers how to present an output's Text.
type Format int

const (
	FormatPlain   Format = iota // informational block
	FormatPath                  // a single path (pwd)
	FormatContent               // file content (cat); escaped by the HTML renderer
	FormatListing               // directory entries (ls); Text is empty
	FormatArt                   // preformatted ASCII art
)

// FailureKind classifies why a command failed.
type FailureKind int

const (
	FailureNone FailureKind = iota
	MissingOperand
	NotFound
	NotADirectory
	IsADirectory
	AlreadyExists
	NotEmpty
	UnknownCommand
	InvalidArgument
)

var failureNames = map[FailureKind]string{
	FailureNone:     "none",
	MissingOperand:  "missing operand",
	NotFound:        "not found",
	NotADirectory:   "not a directory",
	IsADirectory:    "is a directory",
	AlreadyExists:   "already exists",
	NotEmpty:        "not empty",
	UnknownCommand:  "unknown command",
	InvalidArgument: "invalid argument",
}

func (k FailureKind) String() string {
	if name, ok := failureNames[k]; ok {
		return name
	}
	return "unknown"
}

// Result is what every command handler returns. Exactly one variant is
// meaningful, selected by Kind.
type Result struct {
	Kind    Kind
	Format  Format
	Text    string
	Entries []vfs.Entry
	Failure FailureKind

	// Clear asks the front end to wipe its scrollback (silent results only).
	Clear bool
}

// Output returns a successful result carrying text.
func Output(format Format, text string) Result {
	return Result{Kind: KindOutput, Format: format, Text: text}
}

// Listing returns a successful result carrying directory entries.
func Listing(entries []vfs.Entry) Result {
	return Result{Kind: KindOutput, Format: FormatListing, Entries: entries}
}

// Silent returns a successful result with nothing to print.
func Silent() Result {
	return Result{Kind: KindSilent}
}

// Failure returns a failed result.
func Failure(kind FailureKind, message string) Result {
	return Result{Kind: KindFailure, Failure: kind, Text: message}
}

// Failed reports whether r is a failure.
func (r Result) Failed() bool {
	return r.Kind == KindFailure
}
