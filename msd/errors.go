// Package msd reads song fields from Million Song Dataset HDF5 files.
package msd

import (
	"errors"

	"github.com/robert-malhotra/go-msd/internal/h5store"
)

// Common errors
var (
	ErrNotFound  = h5store.ErrNotFound
	ErrSongIndex = errors.New("song index out of range")
	ErrBadIndex  = errors.New("inconsistent index column")
	ErrType      = errors.New("unexpected column or array type")
	ErrClosed    = errors.New("file is closed")
)

// LayoutError reports one table, column or array missing from a song file.
type LayoutError struct {
	Path string
	Err  error
}

func (e *LayoutError) Error() string { return e.Path + ": " + e.Err.Error() }

func (e *LayoutError) Unwrap() error { return e.Err }
