package convert

import (
	"context"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	codeInputOpen   = "INPUT_OPEN_FAILED"
	codeInputRead   = "INPUT_READ_FAILED"
	codeInputClose  = "INPUT_CLOSE_FAILED"
	codeOutputOpen  = "OUTPUT_OPEN_FAILED"
	codeOutputWrite = "OUTPUT_WRITE_FAILED"
	codeOutputClose = "OUTPUT_CLOSE_FAILED"
	codeCanceled    = "RUN_CANCELED"
)

// FileError describes a failed operation on the input or output file.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("can not %s file <%s> - %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

func fileError(op, path string, err error, code string) error {
	fe := &FileError{Op: op, Path: path, Err: err}
	return goerrors.Wrap(fe, goerrors.CategoryCommand, fe.Error()).
		WithTextCode(code)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "run deadline exceeded").
			WithTextCode(codeCanceled)
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "run cancelled").
		WithTextCode(codeCanceled)
}
