package msd

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/robert-malhotra/go-msd/internal/h5store"
)

// storage is what the getters need from an open HDF5 file.
// Missing objects are reported with errors wrapping ErrNotFound.
type storage interface {
	ReadTable(path string) ([]string, []map[string]interface{}, error)
	ReadFloat64(path string) ([]float64, error)
	ReadInt64(path string) ([]int64, error)
	ReadString(path string) ([]string, error)
	Shape(path string) ([]uint64, error)
	Close() error
}

// File is an open song file. It holds one song (regular track files) or many
// (aggregate and summary files); getters select a song by its row index.
//
// A File is not safe for concurrent use.
type File struct {
	path   string
	store  storage
	logger *slog.Logger
	tables map[string]*Table
	closed bool
}

// Open opens a song file read-only.
//
//	f, err := msd.Open("TRAXLZU12903D05F23.h5")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	name, err := f.ArtistName(0)
func Open(path string, opts ...Option) (*File, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	s, err := h5store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening song file %s: %w", path, err)
	}
	return newFile(path, s, o), nil
}

func newFile(path string, s storage, o *options) *File {
	return &File{
		path:   path,
		store:  s,
		logger: o.logger,
		tables: make(map[string]*Table),
	}
}

// Close closes the file. A failure is logged and returned.
// Closing an already closed file does nothing.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	f.tables = nil

	if err := f.store.Close(); err != nil {
		f.logger.Error("could not close song file", "path", f.path, "error", err)
		return err
	}
	return nil
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// NumSongs returns the number of songs, i.e. the rows of the metadata table.
func (f *File) NumSongs() (int, error) {
	t, err := f.Table(TablePath(GroupMetadata))
	if err != nil {
		return 0, err
	}
	return t.NumRows(), nil
}

// Table returns the compound table at path. Tables are decoded once per
// open file.
func (f *File) Table(path string) (*Table, error) {
	if f.closed {
		return nil, ErrClosed
	}
	if t, ok := f.tables[path]; ok {
		return t, nil
	}

	columns, rows, err := f.store.ReadTable(path)
	if err != nil {
		return nil, err
	}
	t := &Table{path: path, columns: columns, rows: rows}
	f.tables[path] = t
	f.logger.Debug("decoded table", "path", f.path, "table", path, "rows", len(rows), "columns", len(columns))
	return t, nil
}

func (f *File) memberInt(group, column string, songIdx int) (int, error) {
	t, err := f.Table(TablePath(group))
	if err != nil {
		return 0, err
	}
	return t.Int(songIdx, column)
}

func (f *File) memberFloat(group, column string, songIdx int) (float64, error) {
	t, err := f.Table(TablePath(group))
	if err != nil {
		return 0, err
	}
	return t.Float(songIdx, column)
}

func (f *File) memberString(group, column string, songIdx int) (string, error) {
	t, err := f.Table(TablePath(group))
	if err != nil {
		return "", err
	}
	return t.String(songIdx, column)
}

// songTable returns the table of group after checking songIdx against it.
func (f *File) songTable(group string, songIdx int) (*Table, error) {
	t, err := f.Table(TablePath(group))
	if err != nil {
		return nil, err
	}
	if songIdx < 0 || songIdx >= t.NumRows() {
		return nil, fmt.Errorf("song %d of %s (%d songs): %w", songIdx, f.path, t.NumRows(), ErrSongIndex)
	}
	return t, nil
}

// floatSegment reads array name of group and returns the part owned by
// songIdx. width is the number of values per array row (1 or VectorWidth);
// a matrix must have shape [N, width].
func (f *File) floatSegment(group, name, index string, width, songIdx int) ([]float64, error) {
	t, err := f.songTable(group, songIdx)
	if err != nil {
		return nil, err
	}
	path := ArrayPath(group, name)
	data, err := f.store.ReadFloat64(path)
	if err != nil {
		return nil, err
	}
	rows := len(data)
	if width > 1 {
		shape, err := f.store.Shape(path)
		if err != nil {
			return nil, err
		}
		if len(shape) != 2 || shape[1] != uint64(width) || uint64(len(data)) != shape[0]*shape[1] {
			return nil, fmt.Errorf("array %s has shape %v, want [N %d]: %w", path, shape, width, ErrType)
		}
		rows = int(shape[0])
	}
	start, end, err := t.Segment(index, songIdx, rows)
	if err != nil {
		return nil, err
	}
	return slices.Clone(data[start*width : end*width]), nil
}

func (f *File) intSegment(group, name, index string, songIdx int) ([]int, error) {
	t, err := f.songTable(group, songIdx)
	if err != nil {
		return nil, err
	}
	data, err := f.store.ReadInt64(ArrayPath(group, name))
	if err != nil {
		return nil, err
	}
	start, end, err := t.Segment(index, songIdx, len(data))
	if err != nil {
		return nil, err
	}
	out := make([]int, end-start)
	for i, v := range data[start:end] {
		out[i] = int(v)
	}
	return out, nil
}

func (f *File) stringSegment(group, name, index string, songIdx int) ([]string, error) {
	t, err := f.songTable(group, songIdx)
	if err != nil {
		return nil, err
	}
	data, err := f.store.ReadString(ArrayPath(group, name))
	if err != nil {
		return nil, err
	}
	start, end, err := t.Segment(index, songIdx, len(data))
	if err != nil {
		return nil, err
	}
	return slices.Clone(data[start:end]), nil
}
