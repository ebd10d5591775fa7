package bstviz

import "github.com/cockroachdb/errors"

// Error kinds surfaced to callers. All are recoverable; test with errors.Is.
var (
	// ErrEmptyInput is returned when a build request contains no integers.
	ErrEmptyInput = errors.New("bstviz: empty input")
	// ErrInvalidSearchValue is returned when a search term is not an integer.
	ErrInvalidSearchValue = errors.New("bstviz: invalid number")
	// ErrEmptyTree is returned by searches and metrics on an absent tree.
	ErrEmptyTree = errors.New("bstviz: tree empty")
	// ErrNotFound is signalled once a search schedule completes without a
	// match.
	ErrNotFound = errors.New("bstviz: value not found")
)

// ErrUnknownCommand is returned by ParseCommand for unrecognised verbs.
var ErrUnknownCommand = errors.New("bstviz: unknown command")
