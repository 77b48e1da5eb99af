package msd

import (
	"fmt"
	"strings"
)

// Top-level groups of a song file. Each holds a compound table named "songs".
const (
	GroupMetadata    = "metadata"
	GroupAnalysis    = "analysis"
	GroupMusicbrainz = "musicbrainz"
)

// Groups lists the song file groups in display order.
var Groups = []string{GroupMetadata, GroupAnalysis, GroupMusicbrainz}

// TablePath returns the path of the songs table of a group, e.g. "/metadata/songs".
func TablePath(group string) string {
	return "/" + group + "/songs"
}

// ArrayPath returns the path of a flat per-song array, e.g. "/analysis/beats_start".
func ArrayPath(group, name string) string {
	return "/" + group + "/" + name
}

// IndexColumn returns the name of the column holding start offsets into array name.
func IndexColumn(name string) string {
	return "idx_" + name
}

// ParseFieldPath splits a column path into table path and column name.
// Path format: /group/table@column
//
// Examples:
//   - "/metadata/songs@artist_name" -> tablePath="/metadata/songs", column="artist_name"
//   - "analysis/songs@tempo" -> tablePath="/analysis/songs", column="tempo"
func ParseFieldPath(path string) (tablePath, column string, err error) {
	if path == "" {
		return "", "", fmt.Errorf("empty field path")
	}

	at := strings.LastIndex(path, "@")
	if at == -1 {
		return "", "", fmt.Errorf("field path must contain '@' separator: %s", path)
	}

	tablePath = strings.TrimSuffix(path[:at], "/")
	column = path[at+1:]
	if column == "" {
		return "", "", fmt.Errorf("column name cannot be empty: %s", path)
	}
	if tablePath == "" || tablePath == "/" {
		return "", "", fmt.Errorf("field path has no table: %s", path)
	}
	if !strings.HasPrefix(tablePath, "/") {
		tablePath = "/" + tablePath
	}
	return tablePath, column, nil
}

// JoinFieldPath creates a column path from a table path and column name.
func JoinFieldPath(tablePath, column string) string {
	return tablePath + "@" + column
}
