package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leniks/cinema2/catalog"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `Rating > 8`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty filter expression",
		},
		{
			name:       "invalid syntax",
			expression: `contains(Title, "unclosed`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `Rating > 7.0 and contains(Title, "матрица") and hasVideo()`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			require.NotNil(t, f)
			assert.Equal(t, tt.expression, f.String())
		})
	}
}

func TestEvaluate(t *testing.T) {
	film := catalog.Film{
		MovieID:     1,
		Title:       "Матрица",
		Rating:      8.7,
		ReleaseDate: "1999-03-31",
		VideoURL:    "http://cdn/1.mp4",
		Duration:    8160,
	}

	tests := []struct {
		name       string
		expression string
		want       bool
	}{
		{"rating comparison", `Rating > 8`, true},
		{"rating comparison miss", `Rating > 9`, false},
		{"case-insensitive contains", `contains(Title, "МАТРИЦА")`, true},
		{"release year helper", `released("1999")`, true},
		{"video presence", `hasVideo()`, true},
		{"combined", `Rating > 8 and Duration > 3600`, true},
		{"non-boolean result is false", `Title`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Evaluate(film))
		})
	}
}

func TestCreateFilter(t *testing.T) {
	predicate, err := CreateFilter(`Rating >= 5`)
	require.NoError(t, err)

	assert.True(t, predicate(catalog.Film{Rating: 5}))
	assert.False(t, predicate(catalog.Film{Rating: 4.9}))

	_, err = CreateFilter("")
	assert.Error(t, err)
}
