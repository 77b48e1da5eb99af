package msd

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

// WalkFunc is called for each song file found by Walk.
// f is the open file, or nil when err is set (unreadable directory or a
// file that failed to open). f is closed after the callback returns.
// Return nil to continue walking, ErrStopWalk to stop without error, or any
// other error to abort.
type WalkFunc func(path string, f *File, err error) error

// Walk visits every .h5 file below root in lexical order, one at a time.
//
// Example:
//
//	msd.Walk("MillionSongSubset/data", func(path string, f *msd.File, err error) error {
//	    if err != nil {
//	        return nil // skip unreadable files
//	    }
//	    name, err := f.ArtistName(0)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(path, name)
//	    return nil
//	})
func Walk(root string, fn WalkFunc, opts ...Option) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fn(path, nil, err)
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".h5") {
			return nil
		}

		f, err := Open(path, opts...)
		if err != nil {
			return fn(path, nil, err)
		}
		err = fn(path, f, nil)
		f.Close()
		return err
	})
	if IsStopWalk(err) {
		return nil
	}
	return err
}

// ErrStopWalk can be returned from a WalkFunc to stop walking without an error.
var ErrStopWalk = &walkStopError{}

type walkStopError struct{}

func (e *walkStopError) Error() string { return "walk stopped" }

// IsStopWalk returns true if the error is ErrStopWalk.
func IsStopWalk(err error) bool {
	return errors.Is(err, ErrStopWalk)
}
