/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package errkit defines the error taxonomy surfaced to callers of
// pdf-extract (§6, §7): Format, Io, Pdf (wrapping encryption errors) and
// Other. Errors are chained with golang.org/x/xerrors so that
// errors.Is/errors.As see through the wrapping the same way the teacher
// library's xerrors.Is(err, core.ErrNotSupported) checks do.
package errkit

import "golang.org/x/xerrors"

// Sentinel errors a caller can match with errors.Is.
var (
	// ErrEncrypted is returned when a document is encrypted and no
	// password was supplied (§7 "Encryption").
	ErrEncrypted = xerrors.New("pdf-extract: document is encrypted")

	// ErrIncorrectPassword is returned when Decrypt was attempted with a
	// password that does not unlock the document.
	ErrIncorrectPassword = xerrors.New("pdf-extract: incorrect password")

	// ErrUnsupported is a sentinel for a feature recognized but not
	// evaluated by the core. Nothing in this module returns it: Function
	// types 3/4 (§4.C), for instance, evaluate as a pass-through with no
	// error. Not fatal by itself — callers decide.
	ErrUnsupported = xerrors.New("pdf-extract: unsupported")
)

// Kind classifies an error per §6's taxonomy.
type Kind int

const (
	// KindFormat covers structural failures: unparseable content,
	// self-contradictory font dictionaries.
	KindFormat Kind = iota
	// KindIO covers filesystem/stream I/O failures.
	KindIO
	// KindPdf wraps an error from the document-parsing collaborator,
	// including encryption failures.
	KindPdf
	// KindOther is anything that doesn't fit the above.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "Format"
	case KindIO:
		return "Io"
	case KindPdf:
		return "Pdf"
	default:
		return "Other"
	}
}

// Error is the concrete error type pdf-extract returns across its public
// surface (§6's ExtractText et al. all return one of these, wrapped).
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Message
}

// Unwrap exposes the wrapped error for errors.Is/errors.As, letting callers
// test for errkit.ErrEncrypted through a Pdf-kind Error.
func (e *Error) Unwrap() error { return e.Err }

// Format builds a Format-kind error.
func Format(msg string, args ...interface{}) error {
	return &Error{Kind: KindFormat, Message: xerrors.Errorf(msg, args...).Error()}
}

// Wrap builds an error of the given kind wrapping err, e.g. a collaborator failure
// surfaced from Document.Resolve or Document.PageContent.
func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// Other builds an Other-kind error for anything that doesn't fit the
// taxonomy's named buckets.
func Other(msg string, args ...interface{}) error {
	return &Error{Kind: KindOther, Message: xerrors.Errorf(msg, args...).Error()}
}

// IsEncrypted reports whether err (or anything it wraps) is ErrEncrypted.
func IsEncrypted(err error) bool { return xerrors.Is(err, ErrEncrypted) }

// IsIncorrectPassword reports whether err (or anything it wraps) is
// ErrIncorrectPassword.
func IsIncorrectPassword(err error) bool { return xerrors.Is(err, ErrIncorrectPassword) }
