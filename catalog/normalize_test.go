package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer("http://localhost:9000", "cinema-files")
}

func TestNormalize(t *testing.T) {
	norm := newTestNormalizer()

	tests := []struct {
		name string
		raw  RawMovie
		want Film
	}{
		{
			name: "full record",
			raw: RawMovie{
				ID:          7,
				Title:       "Матрица",
				Description: "Нео узнаёт правду",
				ReleaseDate: "1999-03-31",
				Rating:      8.7,
				PosterURL:   "http://cdn/posters/7.jpg",
				BackdropURL: "http://cdn/backdrops/7.jpg",
				MovieURL:    "http://cdn/movies/7.mp4",
				Duration:    8160,
			},
			want: Film{
				MovieID:     7,
				Title:       "Матрица",
				Description: "Нео узнаёт правду",
				ReleaseDate: "1999-03-31",
				Rating:      8.7,
				PosterURL:   "http://cdn/posters/7.jpg",
				BackdropURL: "http://cdn/backdrops/7.jpg",
				VideoURL:    "http://cdn/movies/7.mp4",
				Duration:    8160,
				Genres:      []string{},
			},
		},
		{
			name: "missing assets get fallback URLs",
			raw:  RawMovie{ID: 42, Title: "A", Rating: 9},
			want: Film{
				MovieID:     42,
				Title:       "A",
				Description: "Описание отсутствует",
				Rating:      9,
				PosterURL:   "http://localhost:9000/cinema-files/movies/42/poster.svg",
				BackdropURL: "http://localhost:9000/cinema-files/movies/42/backdrop.jpg",
				Genres:      []string{},
			},
		},
		{
			name: "empty record stays fully populated",
			raw:  RawMovie{},
			want: Film{
				MovieID:     0,
				Title:       "",
				Description: "Описание отсутствует",
				PosterURL:   "http://localhost:9000/cinema-files/movies/0/poster.svg",
				BackdropURL: "http://localhost:9000/cinema-files/movies/0/backdrop.jpg",
				Genres:      []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := norm.Normalize(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.NotNil(t, got.Genres)
		})
	}
}

func TestNormalizeTrimsAssetBase(t *testing.T) {
	norm := NewNormalizer("http://localhost:9000/", "cinema-files")
	film := norm.Normalize(RawMovie{ID: 1})
	assert.Equal(t, "http://localhost:9000/cinema-files/movies/1/poster.svg", film.PosterURL)
}

func TestNormalizeAll(t *testing.T) {
	norm := newTestNormalizer()

	t.Run("nil input yields empty slice", func(t *testing.T) {
		films := norm.NormalizeAll(nil)
		assert.NotNil(t, films)
		assert.Empty(t, films)
	})

	t.Run("preserves input order", func(t *testing.T) {
		films := norm.NormalizeAll([]RawMovie{{ID: 3}, {ID: 1}, {ID: 2}})
		ids := []int{films[0].MovieID, films[1].MovieID, films[2].MovieID}
		assert.Equal(t, []int{3, 1, 2}, ids)
	})
}
