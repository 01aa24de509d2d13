package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Result-size limits for the shelf-style views.
const (
	topRatedLimit = 12
	similarLimit  = 12
)

// Operations exposes the catalog read surface. Every read operation follows
// the same failure policy: transport and parsing errors are caught here,
// logged, and degraded to an empty result of the appropriate type, so a
// failing backend can never crash a catalog view. The cost is that transient
// failures look like an empty catalog to callers.
type Operations struct {
	client *Client
	norm   *Normalizer
	logger zerolog.Logger
}

// NewOperations creates a new Operations instance.
func NewOperations(client *Client, norm *Normalizer, logger zerolog.Logger) *Operations {
	return &Operations{
		client: client,
		norm:   norm,
		logger: logger,
	}
}

// List fetches one page of movies and normalizes it. List responses omit
// backdrop URLs, so a bounded enrichment pass refetches full detail for the
// first few items; see enrichDetails for the concurrency contract.
func (o *Operations) List(ctx context.Context, page, size int) []Film {
	raws, err := o.client.Movies(ctx, page, size)
	if err != nil {
		o.logger.Error().Err(err).Int("page", page).Msg("Failed to fetch movies")
		return []Film{}
	}

	films := o.norm.NormalizeAll(raws)
	o.enrichDetails(ctx, films)
	return films
}

// Get fetches a single movie. It returns nil both when the service reports
// the movie missing and when the request fails outright; the two cases are
// indistinguishable to the caller by design.
func (o *Operations) Get(ctx context.Context, movieID int) *Film {
	raw, err := o.client.Movie(ctx, movieID)
	if err != nil {
		o.logger.Error().Err(err).Int("movie_id", movieID).Msg("Failed to fetch movie")
		return nil
	}

	film := o.norm.Normalize(*raw)
	return &film
}

// TopRated fetches the full catalog, sorts it by rating descending and
// returns at most the first 12. The sort is stable so equal ratings keep
// their fetch order.
func (o *Operations) TopRated(ctx context.Context) []Film {
	raws, err := o.client.Movies(ctx, 0, 0)
	if err != nil {
		o.logger.Error().Err(err).Msg("Failed to fetch top rated movies")
		return []Film{}
	}

	films := o.norm.NormalizeAll(raws)
	sort.SliceStable(films, func(i, j int) bool {
		return films[i].Rating > films[j].Rating
	})

	if len(films) > topRatedLimit {
		films = films[:topRatedLimit]
	}
	return films
}

// Recommendations returns recommended movies. No recommendation model
// exists yet; this is an alias for TopRated and count is ignored.
func (o *Operations) Recommendations(ctx context.Context, count int) []Film {
	o.logger.Warn().Msg("Recommendations not implemented by the backend, falling back to top rated")
	return o.TopRated(ctx)
}

// Search performs a case-insensitive substring match on titles. The match
// runs client-side over the full catalog; there is no search index. A blank
// query returns an empty result without touching the network.
func (o *Operations) Search(ctx context.Context, query string) []Film {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return []Film{}
	}

	raws, err := o.client.Movies(ctx, 0, 0)
	if err != nil {
		o.logger.Error().Err(err).Str("query", term).Msg("Failed to search movies")
		return []Film{}
	}

	films := o.norm.NormalizeAll(raws)
	results := make([]Film, 0, len(films))
	for _, film := range films {
		if strings.Contains(strings.ToLower(film.Title), term) {
			results = append(results, film)
		}
	}

	o.logger.Debug().Str("query", term).Int("count", len(results)).Msg("Search complete")
	return results
}

// Similar returns up to 12 movies similar to the given one. The queried
// movie may itself appear in the result; filtering it out is the caller's
// responsibility.
func (o *Operations) Similar(ctx context.Context, movieID int) []Film {
	raws, err := o.client.SimilarMovies(ctx, movieID)
	if err != nil {
		o.logger.Error().Err(err).Int("movie_id", movieID).Msg("Failed to fetch similar movies")
		return []Film{}
	}

	films := o.norm.NormalizeAll(raws)
	if len(films) > similarLimit {
		films = films[:similarLimit]
	}
	return films
}

// AllPaged fetches one page and reports its size as the total. The backend
// exposes no catalog-wide count, so Total is page-local; pagination controls
// built on it are wrong beyond one page, a known upstream limitation.
func (o *Operations) AllPaged(ctx context.Context, page, size int) PagedMovies {
	raws, err := o.client.Movies(ctx, page, size)
	if err != nil {
		o.logger.Error().Err(err).Int("page", page).Msg("Failed to fetch movie page")
		return PagedMovies{Movies: []Film{}, Total: 0}
	}

	films := o.norm.NormalizeAll(raws)
	return PagedMovies{Movies: films, Total: len(films)}
}

// StreamURL builds the playback URL for a movie without a network call.
func (o *Operations) StreamURL(movieID int) string {
	return o.client.StreamURL(movieID)
}

// Preload warms the backend's caches by firing the full list fetch and
// discarding the result. Errors are logged only.
func (o *Operations) Preload(ctx context.Context) {
	if _, err := o.client.Movies(ctx, 0, 0); err != nil {
		o.logger.Error().Err(err).Msg("Failed to preload movies")
	}
}
