package msd

import (
	"fmt"
	"sort"
	"testing"
)

// memStore is an in-memory storage with the layout of an aggregate song file.
type memStore struct {
	tables   map[string][]map[string]interface{}
	floats   map[string][]float64
	ints     map[string][]int64
	strs     map[string][]string
	widths   map[string]int // row width of 2-D float arrays
	closeErr error

	tableReads map[string]int
}

func (s *memStore) ReadTable(path string) ([]string, []map[string]interface{}, error) {
	s.tableReads[path]++
	rows, ok := s.tables[path]
	if !ok {
		return nil, nil, fmt.Errorf("opening table %s: %w", path, ErrNotFound)
	}
	var columns []string
	if len(rows) > 0 {
		for name := range rows[0] {
			columns = append(columns, name)
		}
		sort.Strings(columns)
	}
	return columns, rows, nil
}

func (s *memStore) ReadFloat64(path string) ([]float64, error) {
	data, ok := s.floats[path]
	if !ok {
		return nil, fmt.Errorf("opening array %s: %w", path, ErrNotFound)
	}
	return data, nil
}

func (s *memStore) ReadInt64(path string) ([]int64, error) {
	data, ok := s.ints[path]
	if !ok {
		return nil, fmt.Errorf("opening array %s: %w", path, ErrNotFound)
	}
	return data, nil
}

func (s *memStore) ReadString(path string) ([]string, error) {
	data, ok := s.strs[path]
	if !ok {
		return nil, fmt.Errorf("opening array %s: %w", path, ErrNotFound)
	}
	return data, nil
}

func (s *memStore) Shape(path string) ([]uint64, error) {
	if data, ok := s.floats[path]; ok {
		if w := s.widths[path]; w > 0 {
			return []uint64{uint64(len(data) / w), uint64(w)}, nil
		}
		return []uint64{uint64(len(data))}, nil
	}
	if data, ok := s.ints[path]; ok {
		return []uint64{uint64(len(data))}, nil
	}
	if data, ok := s.strs[path]; ok {
		return []uint64{uint64(len(data))}, nil
	}
	return nil, fmt.Errorf("opening %s: %w", path, ErrNotFound)
}

func (s *memStore) Close() error {
	return s.closeErr
}

const testSongs = 3

// Start offsets per index column. Columns not listed use defaultIndex.
var testIndex = map[string][]int64{
	"idx_similar_artists": {0, 2, 2},
	"idx_artist_terms":    {0, 1, 3},
	"idx_artist_mbtags":   {0, 0, 1},
}

var defaultIndex = []int64{0, 2, 3}

// Array rows per index column. Columns not listed use defaultRows.
var testRows = map[string]int{
	"idx_similar_artists": 5,
	"idx_artist_terms":    4,
	"idx_artist_mbtags":   1,
}

const defaultRows = 5

// newMemStore builds a three-song file:
//   - scalar ints are 100+song, floats song+0.5, strings "<name>-<song>"
//   - float arrays hold 0, 1, 2, ... in row-major order
//   - similar_artists is a..e with songs owning [a b], [], [c d e]
//   - artist_terms is rock, pop, jazz, blues owned as [rock], [pop jazz], [blues]
//   - artist_mbtags is [uk] owned by song 1 only, with count 3
func newMemStore() *memStore {
	s := &memStore{
		tables:     make(map[string][]map[string]interface{}),
		floats:     make(map[string][]float64),
		ints:       make(map[string][]int64),
		strs:       make(map[string][]string),
		widths:     make(map[string]int),
		tableReads: make(map[string]int),
	}

	for _, g := range Groups {
		rows := make([]map[string]interface{}, testSongs)
		for i := range rows {
			rows[i] = make(map[string]interface{})
		}
		s.tables[TablePath(g)] = rows
	}

	for _, fld := range Fields {
		rows := s.tables[fld.TablePath()]
		for song, row := range rows {
			switch fld.Kind {
			case KindInt:
				row[fld.Name] = int32(100 + song)
			case KindFloat:
				row[fld.Name] = float64(song) + 0.5
			case KindString:
				row[fld.Name] = fmt.Sprintf("%s-%d", fld.Name, song)
			}
			if fld.IsArray() {
				idx, ok := testIndex[fld.Index]
				if !ok {
					idx = defaultIndex
				}
				row[fld.Index] = int32(idx[song])
			}
		}
		if !fld.IsArray() {
			continue
		}

		n, ok := testRows[fld.Index]
		if !ok {
			n = defaultRows
		}
		switch fld.Kind {
		case KindFloatArray, KindMatrix:
			width := 1
			if fld.Kind == KindMatrix {
				width = VectorWidth
				s.widths[fld.ArrayPath()] = width
			}
			data := make([]float64, n*width)
			for i := range data {
				data[i] = float64(i)
			}
			s.floats[fld.ArrayPath()] = data
		case KindIntArray:
			s.ints[fld.ArrayPath()] = []int64{3}
		}
	}

	s.strs[ArrayPath(GroupMetadata, "similar_artists")] = []string{"a", "b", "c", "d", "e"}
	s.strs[ArrayPath(GroupMetadata, "artist_terms")] = []string{"rock", "pop", "jazz", "blues"}
	s.strs[ArrayPath(GroupMusicbrainz, "artist_mbtags")] = []string{"uk"}
	return s
}

func openMem(t *testing.T, s *memStore, opts ...Option) *File {
	t.Helper()
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	f := newFile("mem.h5", s, o)
	t.Cleanup(func() { f.Close() })
	return f
}
