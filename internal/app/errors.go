package app

import "errors"

// ErrUsage marks invalid user input discovered after flag parsing, such
// as empty encode text or an invalid interactive choice.
var ErrUsage = errors.New("usage error")
