package catalog

import (
	"fmt"
	"strings"
)

// defaultDescription is shown when the backend supplies no description.
// The site is localized to Russian, so the placeholder is too.
const defaultDescription = "Описание отсутствует"

// Normalizer converts raw backend movie records into canonical Film values.
// Normalization is pure and total: any RawMovie, including the zero value,
// produces a fully populated Film.
type Normalizer struct {
	assetBase string
}

// NewNormalizer creates a Normalizer that synthesizes fallback asset URLs
// under the given object storage base URL and bucket.
func NewNormalizer(assetURL, bucket string) *Normalizer {
	return &Normalizer{
		assetBase: strings.TrimRight(assetURL, "/") + "/" + bucket,
	}
}

// Normalize maps a RawMovie onto the canonical Film shape. Missing fields
// get type-appropriate defaults; missing poster and backdrop URLs are
// synthesized deterministically from the movie id.
func (n *Normalizer) Normalize(raw RawMovie) Film {
	posterURL := raw.PosterURL
	if posterURL == "" {
		posterURL = fmt.Sprintf("%s/movies/%d/poster.svg", n.assetBase, raw.ID)
	}

	backdropURL := raw.BackdropURL
	if backdropURL == "" {
		backdropURL = fmt.Sprintf("%s/movies/%d/backdrop.jpg", n.assetBase, raw.ID)
	}

	description := raw.Description
	if description == "" {
		description = defaultDescription
	}

	return Film{
		MovieID:     raw.ID,
		Title:       raw.Title,
		Description: description,
		ReleaseDate: raw.ReleaseDate,
		Rating:      raw.Rating,
		PosterURL:   posterURL,
		BackdropURL: backdropURL,
		VideoURL:    raw.MovieURL,
		Duration:    raw.Duration,
		// The backend does not expose genres yet; always empty.
		Genres: []string{},
	}
}

// NormalizeAll applies Normalize element-wise, preserving input order.
// A nil input yields an empty slice rather than failing.
func (n *Normalizer) NormalizeAll(raws []RawMovie) []Film {
	films := make([]Film, 0, len(raws))
	for _, raw := range raws {
		films = append(films, n.Normalize(raw))
	}
	return films
}
