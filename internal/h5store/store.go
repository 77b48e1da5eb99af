// Package h5store reads the compound tables and flat arrays of an MSD song
// file through the go-hdf5 library.
//
// The store does no MSD-specific interpretation. It hands back decoded rows
// and whole arrays; slicing by song happens in package msd.
package h5store

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// ErrNotFound is returned (wrapped) when a table or array does not exist.
var ErrNotFound = hdf5.ErrNotFound

// Store is a read-only handle on one HDF5 file.
type Store struct {
	file *hdf5.File
}

// Open opens an HDF5 file for reading.
func Open(path string) (*Store, error) {
	f, err := hdf5.Open(path)
	if err != nil {
		return nil, err
	}
	return &Store{file: f}, nil
}

// Close releases the underlying file.
func (s *Store) Close() error {
	return s.file.Close()
}

// ReadTable decodes the compound dataset at path.
// Columns are the member names in lexical order.
func (s *Store) ReadTable(path string) ([]string, []map[string]interface{}, error) {
	ds, err := s.file.OpenDataset(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening table %s: %w", path, err)
	}

	t, err := ds.GoType()
	if err != nil {
		return nil, nil, fmt.Errorf("table %s: %w", path, err)
	}
	if t.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("table %s: dataset is not compound (%v)", path, t)
	}

	var rows []map[string]interface{}
	if err := ds.Read(&rows); err != nil {
		return nil, nil, fmt.Errorf("reading table %s: %w", path, err)
	}

	var columns []string
	if len(rows) > 0 {
		columns = make([]string, 0, len(rows[0]))
		for name := range rows[0] {
			columns = append(columns, name)
		}
		sort.Strings(columns)
	}
	return columns, rows, nil
}

// ReadFloat64 reads a whole array as float64, flattened row-major.
func (s *Store) ReadFloat64(path string) ([]float64, error) {
	ds, err := s.file.OpenDataset(path)
	if err != nil {
		return nil, fmt.Errorf("opening array %s: %w", path, err)
	}
	data, err := ds.ReadFloat64()
	if err != nil {
		return nil, fmt.Errorf("reading array %s: %w", path, err)
	}
	return data, nil
}

// ReadInt64 reads a whole integer array as int64.
func (s *Store) ReadInt64(path string) ([]int64, error) {
	ds, err := s.file.OpenDataset(path)
	if err != nil {
		return nil, fmt.Errorf("opening array %s: %w", path, err)
	}
	data, err := ds.ReadInt64()
	if err != nil {
		return nil, fmt.Errorf("reading array %s: %w", path, err)
	}
	return data, nil
}

// ReadString reads a whole string array.
func (s *Store) ReadString(path string) ([]string, error) {
	ds, err := s.file.OpenDataset(path)
	if err != nil {
		return nil, fmt.Errorf("opening array %s: %w", path, err)
	}
	data, err := ds.ReadString()
	if err != nil {
		return nil, fmt.Errorf("reading array %s: %w", path, err)
	}
	return data, nil
}

// Shape returns the dimensions of the dataset at path.
func (s *Store) Shape(path string) ([]uint64, error) {
	ds, err := s.file.OpenDataset(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return ds.Shape(), nil
}
