package provider

import (
	"metaprobe/internal/pipeline"
)

// Info identifies the provider and tool versions that produced a result.
type Info struct {
	Name    string            `json:"name"`
	Version map[string]string `json:"version"`
}

// Result is the normalized description of one media file. Track lists are
// always present, empty when the file has no tracks of that kind.
type Result struct {
	General  *pipeline.Track   `json:"general,omitempty"`
	Video    []*pipeline.Track `json:"video"`
	Audio    []*pipeline.Track `json:"audio"`
	Subtitle []*pipeline.Track `json:"subtitle"`
	Provider Info              `json:"provider"`
}

// Assemble normalizes classified raw tracks through the schema and builds
// the final result. Private fields are pruned here, after every rule has
// run. Zero classifiable tracks of any kind is a malformed file.
func Assemble(schema *pipeline.Schema, general pipeline.RawTrack, video, audio, subtitle []pipeline.RawTrack, scan *pipeline.Context, info Info) (*Result, error) {
	if general == nil && len(video) == 0 && len(audio) == 0 && len(subtitle) == 0 {
		return nil, pipeline.ErrMalformedFile
	}

	result := &Result{
		Video:    make([]*pipeline.Track, 0, len(video)),
		Audio:    make([]*pipeline.Track, 0, len(audio)),
		Subtitle: make([]*pipeline.Track, 0, len(subtitle)),
		Provider: info,
	}
	normalize := func(kind pipeline.TrackKind, raw pipeline.RawTrack) *pipeline.Track {
		track := schema.Normalize(kind, raw, scan)
		track.Prune()
		return track
	}

	if general != nil {
		result.General = normalize(pipeline.General, general)
	}
	for _, raw := range video {
		result.Video = append(result.Video, normalize(pipeline.Video, raw))
	}
	for _, raw := range audio {
		result.Audio = append(result.Audio, normalize(pipeline.Audio, raw))
	}
	for _, raw := range subtitle {
		result.Subtitle = append(result.Subtitle, normalize(pipeline.Subtitle, raw))
	}
	return result, nil
}
