package msd

// VectorWidth is the number of values per segment in the pitch and timbre
// matrices.
const VectorWidth = 12

// Matrix is a row-major matrix stored in a flat slice.
// Element (r, c) is Data[r*Width+c].
type Matrix struct {
	Data  []float64
	Width int
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	if m.Width == 0 {
		return 0
	}
	return len(m.Data) / m.Width
}

// At returns element (r, c).
func (m Matrix) At(r, c int) float64 {
	return m.Data[r*m.Width+c]
}

// Row returns row r as a subslice of Data.
func (m Matrix) Row(r int) []float64 {
	return m.Data[r*m.Width : (r+1)*m.Width]
}

func (f *File) matrixSegment(group, name, index string, songIdx int) (Matrix, error) {
	data, err := f.floatSegment(group, name, index, VectorWidth, songIdx)
	if err != nil {
		return Matrix{}, err
	}
	return Matrix{Data: data, Width: VectorWidth}, nil
}

// SimilarArtists returns the Echo Nest IDs of similar artists.
func (f *File) SimilarArtists(songIdx int) ([]string, error) {
	return f.stringSegment(GroupMetadata, "similar_artists", IndexColumn("similar_artists"), songIdx)
}

// ArtistTerms returns the Echo Nest tags of the artist.
func (f *File) ArtistTerms(songIdx int) ([]string, error) {
	return f.stringSegment(GroupMetadata, "artist_terms", IndexColumn("artist_terms"), songIdx)
}

// ArtistTermsFreq returns the frequency of each artist term.
func (f *File) ArtistTermsFreq(songIdx int) ([]float64, error) {
	return f.floatSegment(GroupMetadata, "artist_terms_freq", IndexColumn("artist_terms"), 1, songIdx)
}

// ArtistTermsWeight returns the weight of each artist term.
func (f *File) ArtistTermsWeight(songIdx int) ([]float64, error) {
	return f.floatSegment(GroupMetadata, "artist_terms_weight", IndexColumn("artist_terms"), 1, songIdx)
}

// SegmentsStart returns the start time of each segment.
func (f *File) SegmentsStart(songIdx int) ([]float64, error) {
	return f.floatSegment(GroupAnalysis, "segments_start", IndexColumn("segments_start"), 1, songIdx)
}

// SegmentsConfidence returns the confidence of each segment.
func (f *File) SegmentsConfidence(songIdx int) ([]float64, error) {
	return f.floatSegment(GroupAnalysis, "segments_confidence", IndexColumn("segments_confidence"), 1, songIdx)
}

// SegmentsPitches returns the chroma vector of each segment.
func (f *File) SegmentsPitches(songIdx int) (Matrix, error) {
	return f.matrixSegment(GroupAnalysis, "segments_pitches", IndexColumn("segments_pitches"), songIdx)
}

// SegmentsTimbre returns the timbre vector of each segment.
func (f *File) SegmentsTimbre(songIdx int) (Matrix, error) {
	return f.matrixSegment(GroupAnalysis, "segments_timbre", IndexColumn("segments_timbre"), songIdx)
}

// SegmentsLoudnessMax returns the peak loudness of each segment.
func (f *File) SegmentsLoudnessMax(songIdx int) ([]float64, error) {
	return f.floatSegment(GroupAnalysis, "segments_loudness_max", IndexColumn("segments_loudness_max"), 1, songIdx)
}

// SegmentsLoudnessMaxTime returns the offset of the loudness peak within each segment.
func (f *File) SegmentsLoudnessMaxTime(songIdx int) ([]float64, error) {
	return f.floatSegment(GroupAnalysis, "segments_loudness_max_time", IndexColumn("segments_loudness_max_time"), 1, songIdx)
}

// SegmentsLoudnessStart returns the loudness at the start of each segment.
func (f *File) SegmentsLoudnessStart(songIdx int) ([]float64, error) {
	return f.floatSegment(GroupAnalysis, "segments_loudness_start", IndexColumn("segments_loudness_start"), 1, songIdx)
}

// SectionsStart returns the start time of each section.
func (f *File) SectionsStart(songIdx int) ([]float64, error) {
	return f.floatSegment(GroupAnalysis, "sections_start", IndexColumn("sections_start"), 1, songIdx)
}

// SectionsConfidence returns the confidence of each section.
func (f *File) SectionsConfidence(songIdx int) ([]float64, error) {
	return f.floatSegment(GroupAnalysis, "sections_confidence", IndexColumn("sections_confidence"), 1, songIdx)
}

// BeatsStart returns the start time of each beat.
func (f *File) BeatsStart(songIdx int) ([]float64, error) {
	return f.floatSegment(GroupAnalysis, "beats_start", IndexColumn("beats_start"), 1, songIdx)
}

// BeatsConfidence returns the confidence of each beat.
func (f *File) BeatsConfidence(songIdx int) ([]float64, error) {
	return f.floatSegment(GroupAnalysis, "beats_confidence", IndexColumn("beats_confidence"), 1, songIdx)
}

// BarsStart returns the start time of each bar.
func (f *File) BarsStart(songIdx int) ([]float64, error) {
	return f.floatSegment(GroupAnalysis, "bars_start", IndexColumn("bars_start"), 1, songIdx)
}

// BarsConfidence returns the confidence of each bar.
func (f *File) BarsConfidence(songIdx int) ([]float64, error) {
	return f.floatSegment(GroupAnalysis, "bars_confidence", IndexColumn("bars_confidence"), 1, songIdx)
}

// TatumsStart returns the start time of each tatum.
func (f *File) TatumsStart(songIdx int) ([]float64, error) {
	return f.floatSegment(GroupAnalysis, "tatums_start", IndexColumn("tatums_start"), 1, songIdx)
}

// TatumsConfidence returns the confidence of each tatum.
func (f *File) TatumsConfidence(songIdx int) ([]float64, error) {
	return f.floatSegment(GroupAnalysis, "tatums_confidence", IndexColumn("tatums_confidence"), 1, songIdx)
}

// ArtistMbtags returns the MusicBrainz tags of the artist.
func (f *File) ArtistMbtags(songIdx int) ([]string, error) {
	return f.stringSegment(GroupMusicbrainz, "artist_mbtags", IndexColumn("artist_mbtags"), songIdx)
}

// ArtistMbtagsCount returns the number of times each MusicBrainz tag was applied.
func (f *File) ArtistMbtagsCount(songIdx int) ([]int, error) {
	return f.intSegment(GroupMusicbrainz, "artist_mbtags_count", IndexColumn("artist_mbtags"), songIdx)
}
