package catalog

// RawMovie is the catalog service's movie payload as it arrives on the wire.
// Any field may be missing; fields the backend omits decode to their zero
// value and are repaired by the normalizer. A RawMovie is consumed exactly
// once by Normalize and then discarded.
type RawMovie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ReleaseDate string  `json:"release_date"`
	Rating      float64 `json:"rating"`
	PosterURL   string  `json:"poster_url"`
	BackdropURL string  `json:"backdrop_url"`
	MovieURL    string  `json:"movie_url"`
	Duration    int     `json:"duration"`
}

// Film is the canonical movie record handed to consumers. Every field is
// always populated: absence in the backend payload is normalized to a
// type-appropriate empty, zero, or fallback value, so callers never need to
// nil-check before rendering.
type Film struct {
	MovieID     int      `json:"movie_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ReleaseDate string   `json:"release_date"`
	Rating      float64  `json:"rating"`
	PosterURL   string   `json:"poster_url"`
	BackdropURL string   `json:"backdrop_url"`
	VideoURL    string   `json:"video_url"`
	Duration    int      `json:"duration"`
	Genres      []string `json:"genres"`
}

// PagedMovies is the result of AllPaged. Total is the size of the returned
// page, not the full catalog count; the backend does not expose a true total.
type PagedMovies struct {
	Movies []Film `json:"movies"`
	Total  int    `json:"total"`
}
