package msd

// ArtistFamiliarity returns the artist familiarity.
func (f *File) ArtistFamiliarity(songIdx int) (float64, error) {
	return f.memberFloat(GroupMetadata, "artist_familiarity", songIdx)
}

// ArtistHotttnesss returns the artist hotttnesss.
func (f *File) ArtistHotttnesss(songIdx int) (float64, error) {
	return f.memberFloat(GroupMetadata, "artist_hotttnesss", songIdx)
}

// ArtistID returns the Echo Nest artist ID.
func (f *File) ArtistID(songIdx int) (string, error) {
	return f.memberString(GroupMetadata, "artist_id", songIdx)
}

// ArtistMbid returns the MusicBrainz artist ID.
func (f *File) ArtistMbid(songIdx int) (string, error) {
	return f.memberString(GroupMetadata, "artist_mbid", songIdx)
}

// ArtistPlaymeid returns the playme.com artist ID.
func (f *File) ArtistPlaymeid(songIdx int) (int, error) {
	return f.memberInt(GroupMetadata, "artist_playmeid", songIdx)
}

// Artist7digitalid returns the 7digital artist ID.
func (f *File) Artist7digitalid(songIdx int) (int, error) {
	return f.memberInt(GroupMetadata, "artist_7digitalid", songIdx)
}

// ArtistLatitude returns the artist latitude.
func (f *File) ArtistLatitude(songIdx int) (float64, error) {
	return f.memberFloat(GroupMetadata, "artist_latitude", songIdx)
}

// ArtistLongitude returns the artist longitude.
func (f *File) ArtistLongitude(songIdx int) (float64, error) {
	return f.memberFloat(GroupMetadata, "artist_longitude", songIdx)
}

// ArtistLocation returns the artist location.
func (f *File) ArtistLocation(songIdx int) (string, error) {
	return f.memberString(GroupMetadata, "artist_location", songIdx)
}

// ArtistName returns the artist name.
func (f *File) ArtistName(songIdx int) (string, error) {
	return f.memberString(GroupMetadata, "artist_name", songIdx)
}

// Release returns the release (album) name.
func (f *File) Release(songIdx int) (string, error) {
	return f.memberString(GroupMetadata, "release", songIdx)
}

// Release7digitalid returns the 7digital release ID.
func (f *File) Release7digitalid(songIdx int) (int, error) {
	return f.memberInt(GroupMetadata, "release_7digitalid", songIdx)
}

// SongID returns the Echo Nest song ID.
func (f *File) SongID(songIdx int) (string, error) {
	return f.memberString(GroupMetadata, "song_id", songIdx)
}

// SongHotttnesss returns the song hotttnesss.
func (f *File) SongHotttnesss(songIdx int) (float64, error) {
	return f.memberFloat(GroupMetadata, "song_hotttnesss", songIdx)
}

// Title returns the song title.
func (f *File) Title(songIdx int) (string, error) {
	return f.memberString(GroupMetadata, "title", songIdx)
}

// Track7digitalid returns the 7digital track ID.
func (f *File) Track7digitalid(songIdx int) (int, error) {
	return f.memberInt(GroupMetadata, "track_7digitalid", songIdx)
}

// AnalysisSampleRate returns the sample rate of the analysed audio.
func (f *File) AnalysisSampleRate(songIdx int) (float64, error) {
	return f.memberFloat(GroupAnalysis, "analysis_sample_rate", songIdx)
}

// AudioMd5 returns the MD5 of the analysed audio.
func (f *File) AudioMd5(songIdx int) (string, error) {
	return f.memberString(GroupAnalysis, "audio_md5", songIdx)
}

// Danceability returns the danceability.
func (f *File) Danceability(songIdx int) (float64, error) {
	return f.memberFloat(GroupAnalysis, "danceability", songIdx)
}

// Duration returns the duration in seconds.
func (f *File) Duration(songIdx int) (float64, error) {
	return f.memberFloat(GroupAnalysis, "duration", songIdx)
}

// EndOfFadeIn returns the end of the fade-in in seconds.
func (f *File) EndOfFadeIn(songIdx int) (float64, error) {
	return f.memberFloat(GroupAnalysis, "end_of_fade_in", songIdx)
}

// Energy returns the energy.
func (f *File) Energy(songIdx int) (float64, error) {
	return f.memberFloat(GroupAnalysis, "energy", songIdx)
}

// Key returns the estimated key (0 is C).
func (f *File) Key(songIdx int) (int, error) {
	return f.memberInt(GroupAnalysis, "key", songIdx)
}

// KeyConfidence returns the confidence of the key estimate.
func (f *File) KeyConfidence(songIdx int) (float64, error) {
	return f.memberFloat(GroupAnalysis, "key_confidence", songIdx)
}

// Loudness returns the overall loudness in dB.
func (f *File) Loudness(songIdx int) (float64, error) {
	return f.memberFloat(GroupAnalysis, "loudness", songIdx)
}

// Mode returns the estimated mode (0 minor, 1 major).
func (f *File) Mode(songIdx int) (int, error) {
	return f.memberInt(GroupAnalysis, "mode", songIdx)
}

// ModeConfidence returns the confidence of the mode estimate.
func (f *File) ModeConfidence(songIdx int) (float64, error) {
	return f.memberFloat(GroupAnalysis, "mode_confidence", songIdx)
}

// StartOfFadeOut returns the start of the fade-out in seconds.
func (f *File) StartOfFadeOut(songIdx int) (float64, error) {
	return f.memberFloat(GroupAnalysis, "start_of_fade_out", songIdx)
}

// Tempo returns the estimated tempo in BPM.
func (f *File) Tempo(songIdx int) (float64, error) {
	return f.memberFloat(GroupAnalysis, "tempo", songIdx)
}

// TimeSignature returns the estimated beats per bar.
func (f *File) TimeSignature(songIdx int) (int, error) {
	return f.memberInt(GroupAnalysis, "time_signature", songIdx)
}

// TimeSignatureConfidence returns the confidence of the time signature estimate.
func (f *File) TimeSignatureConfidence(songIdx int) (float64, error) {
	return f.memberFloat(GroupAnalysis, "time_signature_confidence", songIdx)
}

// TrackID returns the Echo Nest track ID.
func (f *File) TrackID(songIdx int) (string, error) {
	return f.memberString(GroupAnalysis, "track_id", songIdx)
}

// Year returns the release year from MusicBrainz, 0 when unknown.
func (f *File) Year(songIdx int) (int, error) {
	return f.memberInt(GroupMusicbrainz, "year", songIdx)
}
