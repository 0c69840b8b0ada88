package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrNotDirectory = errors.New("not a directory")
)

type Error struct {
	Op   string // "stat", "read_root", "read_system"
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("catalog %s [%s]: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newCatalogError(op, path string, err error) *Error {
	return &Error{
		Op:   op,
		Path: path,
		Err:  err,
	}
}
