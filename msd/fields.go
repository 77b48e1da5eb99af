package msd

// Kind is the shape and element type of a field.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindIntArray
	KindFloatArray
	KindStringArray
	KindMatrix
)

var kindNames = [...]string{
	KindInt:         "int",
	KindFloat:       "float",
	KindString:      "string",
	KindIntArray:    "int array",
	KindFloatArray:  "float array",
	KindStringArray: "string array",
	KindMatrix:      "matrix",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Field describes one named value of a song.
type Field struct {
	Name  string
	Group string
	Kind  Kind

	// Index is the column of the group table holding the start offset of
	// this field's segment. Empty for scalar fields.
	Index string
}

// IsArray reports whether the field is a per-song slice of a flat array.
func (f Field) IsArray() bool {
	return f.Index != ""
}

// TablePath returns the songs table of the field's group.
func (f Field) TablePath() string {
	return TablePath(f.Group)
}

// ArrayPath returns the flat array holding the field. Only meaningful for arrays.
func (f Field) ArrayPath() string {
	return ArrayPath(f.Group, f.Name)
}

func scalar(group, name string, kind Kind) Field {
	return Field{Name: name, Group: group, Kind: kind}
}

func array(group, name, index string, kind Kind) Field {
	return Field{Name: name, Group: group, Kind: kind, Index: IndexColumn(index)}
}

// Fields lists every field of a song file in display order.
var Fields = []Field{
	scalar(GroupMetadata, "artist_familiarity", KindFloat),
	scalar(GroupMetadata, "artist_hotttnesss", KindFloat),
	scalar(GroupMetadata, "artist_id", KindString),
	scalar(GroupMetadata, "artist_mbid", KindString),
	scalar(GroupMetadata, "artist_playmeid", KindInt),
	scalar(GroupMetadata, "artist_7digitalid", KindInt),
	scalar(GroupMetadata, "artist_latitude", KindFloat),
	scalar(GroupMetadata, "artist_longitude", KindFloat),
	scalar(GroupMetadata, "artist_location", KindString),
	scalar(GroupMetadata, "artist_name", KindString),
	scalar(GroupMetadata, "release", KindString),
	scalar(GroupMetadata, "release_7digitalid", KindInt),
	scalar(GroupMetadata, "song_id", KindString),
	scalar(GroupMetadata, "song_hotttnesss", KindFloat),
	scalar(GroupMetadata, "title", KindString),
	scalar(GroupMetadata, "track_7digitalid", KindInt),
	array(GroupMetadata, "similar_artists", "similar_artists", KindStringArray),
	array(GroupMetadata, "artist_terms", "artist_terms", KindStringArray),
	array(GroupMetadata, "artist_terms_freq", "artist_terms", KindFloatArray),
	array(GroupMetadata, "artist_terms_weight", "artist_terms", KindFloatArray),

	scalar(GroupAnalysis, "analysis_sample_rate", KindFloat),
	scalar(GroupAnalysis, "audio_md5", KindString),
	scalar(GroupAnalysis, "danceability", KindFloat),
	scalar(GroupAnalysis, "duration", KindFloat),
	scalar(GroupAnalysis, "end_of_fade_in", KindFloat),
	scalar(GroupAnalysis, "energy", KindFloat),
	scalar(GroupAnalysis, "key", KindInt),
	scalar(GroupAnalysis, "key_confidence", KindFloat),
	scalar(GroupAnalysis, "loudness", KindFloat),
	scalar(GroupAnalysis, "mode", KindInt),
	scalar(GroupAnalysis, "mode_confidence", KindFloat),
	scalar(GroupAnalysis, "start_of_fade_out", KindFloat),
	scalar(GroupAnalysis, "tempo", KindFloat),
	scalar(GroupAnalysis, "time_signature", KindInt),
	scalar(GroupAnalysis, "time_signature_confidence", KindFloat),
	scalar(GroupAnalysis, "track_id", KindString),
	array(GroupAnalysis, "segments_start", "segments_start", KindFloatArray),
	array(GroupAnalysis, "segments_confidence", "segments_confidence", KindFloatArray),
	array(GroupAnalysis, "segments_pitches", "segments_pitches", KindMatrix),
	array(GroupAnalysis, "segments_timbre", "segments_timbre", KindMatrix),
	array(GroupAnalysis, "segments_loudness_max", "segments_loudness_max", KindFloatArray),
	array(GroupAnalysis, "segments_loudness_max_time", "segments_loudness_max_time", KindFloatArray),
	array(GroupAnalysis, "segments_loudness_start", "segments_loudness_start", KindFloatArray),
	array(GroupAnalysis, "sections_start", "sections_start", KindFloatArray),
	array(GroupAnalysis, "sections_confidence", "sections_confidence", KindFloatArray),
	array(GroupAnalysis, "beats_start", "beats_start", KindFloatArray),
	array(GroupAnalysis, "beats_confidence", "beats_confidence", KindFloatArray),
	array(GroupAnalysis, "bars_start", "bars_start", KindFloatArray),
	array(GroupAnalysis, "bars_confidence", "bars_confidence", KindFloatArray),
	array(GroupAnalysis, "tatums_start", "tatums_start", KindFloatArray),
	array(GroupAnalysis, "tatums_confidence", "tatums_confidence", KindFloatArray),

	scalar(GroupMusicbrainz, "year", KindInt),
	array(GroupMusicbrainz, "artist_mbtags", "artist_mbtags", KindStringArray),
	array(GroupMusicbrainz, "artist_mbtags_count", "artist_mbtags", KindIntArray),
}

var fieldsByName = func() map[string]Field {
	m := make(map[string]Field, len(Fields))
	for _, f := range Fields {
		m[f.Name] = f
	}
	return m
}()

// LookupField returns the field with the given name.
func LookupField(name string) (Field, bool) {
	f, ok := fieldsByName[name]
	return f, ok
}
