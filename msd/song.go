package msd

import (
	"errors"
	"fmt"
)

// Song holds every field of one song.
// Arrays are nil when the file does not carry them (summary files).
type Song struct {
	Index int `json:"index"`

	// metadata
	ArtistFamiliarity float64   `json:"artist_familiarity"`
	ArtistHotttnesss  float64   `json:"artist_hotttnesss"`
	ArtistID          string    `json:"artist_id"`
	ArtistMbid        string    `json:"artist_mbid"`
	ArtistPlaymeid    int       `json:"artist_playmeid"`
	Artist7digitalid  int       `json:"artist_7digitalid"`
	ArtistLatitude    float64   `json:"artist_latitude"`
	ArtistLongitude   float64   `json:"artist_longitude"`
	ArtistLocation    string    `json:"artist_location"`
	ArtistName        string    `json:"artist_name"`
	Release           string    `json:"release"`
	Release7digitalid int       `json:"release_7digitalid"`
	SongID            string    `json:"song_id"`
	SongHotttnesss    float64   `json:"song_hotttnesss"`
	Title             string    `json:"title"`
	Track7digitalid   int       `json:"track_7digitalid"`
	SimilarArtists    []string  `json:"similar_artists"`
	ArtistTerms       []string  `json:"artist_terms"`
	ArtistTermsFreq   []float64 `json:"artist_terms_freq"`
	ArtistTermsWeight []float64 `json:"artist_terms_weight"`

	// analysis
	AnalysisSampleRate      float64   `json:"analysis_sample_rate"`
	AudioMd5                string    `json:"audio_md5"`
	Danceability            float64   `json:"danceability"`
	Duration                float64   `json:"duration"`
	EndOfFadeIn             float64   `json:"end_of_fade_in"`
	Energy                  float64   `json:"energy"`
	Key                     int       `json:"key"`
	KeyConfidence           float64   `json:"key_confidence"`
	Loudness                float64   `json:"loudness"`
	Mode                    int       `json:"mode"`
	ModeConfidence          float64   `json:"mode_confidence"`
	StartOfFadeOut          float64   `json:"start_of_fade_out"`
	Tempo                   float64   `json:"tempo"`
	TimeSignature           int       `json:"time_signature"`
	TimeSignatureConfidence float64   `json:"time_signature_confidence"`
	TrackID                 string    `json:"track_id"`
	SegmentsStart           []float64 `json:"segments_start"`
	SegmentsConfidence      []float64 `json:"segments_confidence"`
	SegmentsPitches         Matrix    `json:"segments_pitches"`
	SegmentsTimbre          Matrix    `json:"segments_timbre"`
	SegmentsLoudnessMax     []float64 `json:"segments_loudness_max"`
	SegmentsLoudnessMaxTime []float64 `json:"segments_loudness_max_time"`
	SegmentsLoudnessStart   []float64 `json:"segments_loudness_start"`
	SectionsStart           []float64 `json:"sections_start"`
	SectionsConfidence      []float64 `json:"sections_confidence"`
	BeatsStart              []float64 `json:"beats_start"`
	BeatsConfidence         []float64 `json:"beats_confidence"`
	BarsStart               []float64 `json:"bars_start"`
	BarsConfidence          []float64 `json:"bars_confidence"`
	TatumsStart             []float64 `json:"tatums_start"`
	TatumsConfidence        []float64 `json:"tatums_confidence"`

	// musicbrainz
	Year              int      `json:"year"`
	ArtistMbtags      []string `json:"artist_mbtags"`
	ArtistMbtagsCount []int    `json:"artist_mbtags_count"`
}

// songReader collects the first error of a sequence of getter calls.
type songReader struct {
	songIdx int
	err     error
}

func (r *songReader) readFloat(dst *float64, get func(int) (float64, error)) {
	if r.err != nil {
		return
	}
	*dst, r.err = get(r.songIdx)
}

func (r *songReader) readInt(dst *int, get func(int) (int, error)) {
	if r.err != nil {
		return
	}
	*dst, r.err = get(r.songIdx)
}

func (r *songReader) readString(dst *string, get func(int) (string, error)) {
	if r.err != nil {
		return
	}
	*dst, r.err = get(r.songIdx)
}

// optional runs an array getter; a missing array leaves the zero value.
func optional[T any](r *songReader, dst *T, get func(int) (T, error)) {
	if r.err != nil {
		return
	}
	v, err := get(r.songIdx)
	if errors.Is(err, ErrNotFound) {
		return
	}
	if err != nil {
		r.err = err
		return
	}
	*dst = v
}

// Song reads every field of the song at songIdx.
func (f *File) Song(songIdx int) (*Song, error) {
	n, err := f.NumSongs()
	if err != nil {
		return nil, err
	}
	if songIdx < 0 || songIdx >= n {
		return nil, fmt.Errorf("song %d of %s (%d songs): %w", songIdx, f.path, n, ErrSongIndex)
	}

	s := &Song{Index: songIdx}
	r := &songReader{songIdx: songIdx}

	r.readFloat(&s.ArtistFamiliarity, f.ArtistFamiliarity)
	r.readFloat(&s.ArtistHotttnesss, f.ArtistHotttnesss)
	r.readString(&s.ArtistID, f.ArtistID)
	r.readString(&s.ArtistMbid, f.ArtistMbid)
	r.readInt(&s.ArtistPlaymeid, f.ArtistPlaymeid)
	r.readInt(&s.Artist7digitalid, f.Artist7digitalid)
	r.readFloat(&s.ArtistLatitude, f.ArtistLatitude)
	r.readFloat(&s.ArtistLongitude, f.ArtistLongitude)
	r.readString(&s.ArtistLocation, f.ArtistLocation)
	r.readString(&s.ArtistName, f.ArtistName)
	r.readString(&s.Release, f.Release)
	r.readInt(&s.Release7digitalid, f.Release7digitalid)
	r.readString(&s.SongID, f.SongID)
	r.readFloat(&s.SongHotttnesss, f.SongHotttnesss)
	r.readString(&s.Title, f.Title)
	r.readInt(&s.Track7digitalid, f.Track7digitalid)
	optional(r, &s.SimilarArtists, f.SimilarArtists)
	optional(r, &s.ArtistTerms, f.ArtistTerms)
	optional(r, &s.ArtistTermsFreq, f.ArtistTermsFreq)
	optional(r, &s.ArtistTermsWeight, f.ArtistTermsWeight)

	r.readFloat(&s.AnalysisSampleRate, f.AnalysisSampleRate)
	r.readString(&s.AudioMd5, f.AudioMd5)
	r.readFloat(&s.Danceability, f.Danceability)
	r.readFloat(&s.Duration, f.Duration)
	r.readFloat(&s.EndOfFadeIn, f.EndOfFadeIn)
	r.readFloat(&s.Energy, f.Energy)
	r.readInt(&s.Key, f.Key)
	r.readFloat(&s.KeyConfidence, f.KeyConfidence)
	r.readFloat(&s.Loudness, f.Loudness)
	r.readInt(&s.Mode, f.Mode)
	r.readFloat(&s.ModeConfidence, f.ModeConfidence)
	r.readFloat(&s.StartOfFadeOut, f.StartOfFadeOut)
	r.readFloat(&s.Tempo, f.Tempo)
	r.readInt(&s.TimeSignature, f.TimeSignature)
	r.readFloat(&s.TimeSignatureConfidence, f.TimeSignatureConfidence)
	r.readString(&s.TrackID, f.TrackID)
	optional(r, &s.SegmentsStart, f.SegmentsStart)
	optional(r, &s.SegmentsConfidence, f.SegmentsConfidence)
	optional(r, &s.SegmentsPitches, f.SegmentsPitches)
	optional(r, &s.SegmentsTimbre, f.SegmentsTimbre)
	optional(r, &s.SegmentsLoudnessMax, f.SegmentsLoudnessMax)
	optional(r, &s.SegmentsLoudnessMaxTime, f.SegmentsLoudnessMaxTime)
	optional(r, &s.SegmentsLoudnessStart, f.SegmentsLoudnessStart)
	optional(r, &s.SectionsStart, f.SectionsStart)
	optional(r, &s.SectionsConfidence, f.SectionsConfidence)
	optional(r, &s.BeatsStart, f.BeatsStart)
	optional(r, &s.BeatsConfidence, f.BeatsConfidence)
	optional(r, &s.BarsStart, f.BarsStart)
	optional(r, &s.BarsConfidence, f.BarsConfidence)
	optional(r, &s.TatumsStart, f.TatumsStart)
	optional(r, &s.TatumsConfidence, f.TatumsConfidence)

	r.readInt(&s.Year, f.Year)
	optional(r, &s.ArtistMbtags, f.ArtistMbtags)
	optional(r, &s.ArtistMbtagsCount, f.ArtistMbtagsCount)

	if r.err != nil {
		return nil, r.err
	}
	return s, nil
}

// Value reads a field by name. The dynamic type follows the field kind:
// int, float64, string, []int, []float64, []string or Matrix.
func (f *File) Value(name string, songIdx int) (interface{}, error) {
	fld, ok := LookupField(name)
	if !ok {
		return nil, fmt.Errorf("field %q: %w", name, ErrNotFound)
	}

	switch fld.Kind {
	case KindInt:
		return f.memberInt(fld.Group, fld.Name, songIdx)
	case KindFloat:
		return f.memberFloat(fld.Group, fld.Name, songIdx)
	case KindString:
		return f.memberString(fld.Group, fld.Name, songIdx)
	case KindIntArray:
		return f.intSegment(fld.Group, fld.Name, fld.Index, songIdx)
	case KindFloatArray:
		return f.floatSegment(fld.Group, fld.Name, fld.Index, 1, songIdx)
	case KindStringArray:
		return f.stringSegment(fld.Group, fld.Name, fld.Index, songIdx)
	case KindMatrix:
		return f.matrixSegment(fld.Group, fld.Name, fld.Index, songIdx)
	}
	return nil, fmt.Errorf("field %q has unknown kind %v", name, fld.Kind)
}
