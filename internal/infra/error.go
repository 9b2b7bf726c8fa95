package infra

import (
	"errors"
	"log/slog"

	"drivethru/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	slogger.Error("Repository error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

// NotFound is an expected outcome and is not logged. The result matches errs.ErrNotFound.
func NotFound(msg string) error {
	return errs.Mark(RepositoryError{Kind: KindNotFound, msg: msg}, errs.ErrNotFound)
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindNotFound      RepositoryErrorKind = "NOT_FOUND"
	KindDuplicateKey  RepositoryErrorKind = "DUPLICATE_KEY"
	KindInvalidRecord RepositoryErrorKind = "INVALID_RECORD"
)
