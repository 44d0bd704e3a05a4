package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wanderlog/internal/config"
	"wanderlog/pkg/utils"
)

const fullPlaceJSON = `{
  "status": "OK",
  "result": {
    "name": "Hoan Kiem Lake",
    "formatted_phone_number": "024 3825 5555",
    "website": "https://hoankiem.example",
    "opening_hours": {"weekday_text": ["Monday: Open 24 hours", "Tuesday: Open 24 hours"]},
    "photos": [{"photo_reference": "ref-1"}, {"photo_reference": "ref-2"}],
    "reviews": [{"author_name": "Trang", "rating": 5, "text": "Lovely at dawn"}],
    "types": ["tourist_attraction", "point_of_interest"],
    "formatted_address": "Hang Trong, Hoan Kiem, Hanoi",
    "editorial_summary": {"overview": "Historic lake in central Hanoi."},
    "geometry": {
      "location": {"lat": 21.0285, "lng": 105.8522},
      "viewport": {
        "northeast": {"lat": 21.03, "lng": 105.86},
        "southwest": {"lat": 21.02, "lng": 105.84}
      }
    }
  }
}`

func newPlacesTestService(t *testing.T, handler http.HandlerFunc) PlacesServiceInterface {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{Places: config.PlacesConfig{
		APIKey:        "test-key",
		BaseURL:       srv.URL,
		PhotoURL:      "https://photos.example/photo",
		PhotoMaxWidth: 400,
	}}
	return NewGooglePlacesService(cfg, srv.Client(), zap.NewNop())
}

func TestPlacesService_GetPlace(t *testing.T) {
	var gotQuery url.Values
	var gotPath string
	svc := newPlacesTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fullPlaceJSON))
	})

	place, err := svc.GetPlace(context.Background(), "ChIJ-lake")
	require.NoError(t, err)

	assert.Equal(t, "/details/json", gotPath)
	assert.Equal(t, "ChIJ-lake", gotQuery.Get("place_id"))
	assert.Equal(t, "test-key", gotQuery.Get("key"))

	assert.Equal(t, "Hoan Kiem Lake", place.Name)
	assert.Equal(t, "024 3825 5555", place.PhoneNumber)
	assert.Equal(t, []string{"Monday: Open 24 hours", "Tuesday: Open 24 hours"}, place.OpeningHours)
	require.Len(t, place.Photos, 2)
	assert.Equal(t, "https://photos.example/photo?key=test-key&maxwidth=400&photoreference=ref-1", place.Photos[0])
	require.Len(t, place.Reviews, 1)
	assert.Equal(t, "Trang", place.Reviews[0].AuthorName)
	assert.Equal(t, "Historic lake in central Hanoi.", place.BriefDescription)
	require.NotNil(t, place.Geometry)
	assert.InDelta(t, 21.0285, place.Geometry.Location.Lat, 1e-9)
	assert.InDelta(t, 105.84, place.Geometry.Viewport.Southwest.Lng, 1e-9)
}

func TestPlacesService_BriefDescriptionFallback(t *testing.T) {
	cases := []struct {
		name   string
		result string
		want   string
	}{
		{
			name:   "first review",
			result: `"reviews": [{"author_name": "A", "rating": 4, "text": "Great noodles"}, {"author_name": "B", "rating": 3, "text": "ok"}],`,
			want:   "Great noodles",
		},
		{
			name:   "nothing to describe",
			result: ``,
			want:   noDescriptionAvailable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := `{"status": "OK", "result": {"name": "Pho 10", ` + tc.result + `
			  "geometry": {"location": {"lat": 1, "lng": 2},
			    "viewport": {"northeast": {"lat": 3, "lng": 4}, "southwest": {"lat": 0, "lng": 0}}}}}`
			svc := newPlacesTestService(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			place, err := svc.GetPlace(context.Background(), "p")
			require.NoError(t, err)
			assert.Equal(t, tc.want, place.BriefDescription)
			assert.Empty(t, place.Photos)
			assert.Empty(t, place.OpeningHours)
			assert.Equal(t, 0.0, place.Geometry.Viewport.Southwest.Lat)
		})
	}
}

func TestPlacesService_UpstreamFailures(t *testing.T) {
	cases := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantDetail bool
	}{
		{"non-2xx", http.StatusForbidden, `{"error_message": "key revoked"}`, http.StatusForbidden, true},
		{"google status", http.StatusOK, `{"status": "INVALID_REQUEST", "error_message": "bad place id"}`, 0, true},
		{"missing viewport", http.StatusOK, `{"status": "OK", "result": {"name": "X", "geometry": {"location": {"lat": 1, "lng": 2}}}}`, 0, true},
		{"missing geometry", http.StatusOK, `{"status": "OK", "result": {"name": "X"}}`, 0, true},
		{"missing name", http.StatusOK, `{"status": "OK", "result": {"geometry": {"location": {"lat": 1, "lng": 2}, "viewport": {"northeast": {"lat": 1, "lng": 1}, "southwest": {"lat": 1, "lng": 1}}}}}`, 0, true},
		{"not json", http.StatusOK, `<html>`, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newPlacesTestService(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			place, err := svc.GetPlace(context.Background(), "p")
			require.Error(t, err)
			assert.Nil(t, place)
			assert.ErrorIs(t, err, utils.ErrUpstream)

			var upstream *utils.UpstreamError
			require.True(t, errors.As(err, &upstream))
			assert.Equal(t, tc.wantStatus, upstream.StatusCode)
			if tc.wantDetail {
				assert.NotNil(t, upstream.Details)
			}
		})
	}
}

func TestPlacesService_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	cfg := &config.Config{Places: config.PlacesConfig{BaseURL: srv.URL, PhotoMaxWidth: 400}}
	svc := NewGooglePlacesService(cfg, http.DefaultClient, zap.NewNop())

	_, err := svc.GetPlace(context.Background(), "p")
	assert.ErrorIs(t, err, utils.ErrUpstream)
}

// placeWithReviews returns an OK details payload whose reviews each carry
// textLen bytes of text.
func placeWithReviews(reviews, textLen int) string {
	items := make([]string, reviews)
	for i := range items {
		items[i] = fmt.Sprintf(`{"author_name": "Reviewer %d", "rating": 4, "text": %q}`, i, strings.Repeat("a", textLen))
	}
	return `{"status": "OK", "result": {"name": "Temple of Literature", "reviews": [` +
		strings.Join(items, ",") +
		`], "geometry": {"location": {"lat": 21.02, "lng": 105.83}, "viewport": {"northeast": {"lat": 21.03, "lng": 105.84}, "southwest": {"lat": 21.01, "lng": 105.82}}}}}`
}

func TestPlacesService_LongReviews(t *testing.T) {
	body := placeWithReviews(5, 60<<10)
	require.Greater(t, len(body), 256<<10)

	svc := newPlacesTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	})

	place, err := svc.GetPlace(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "Temple of Literature", place.Name)
	require.Len(t, place.Reviews, 5)
	assert.Len(t, place.Reviews[4].Text, 60<<10)
}

func TestPlacesService_ResponseTooLarge(t *testing.T) {
	body := placeWithReviews(3, maxUpstreamBody/2)
	require.Greater(t, len(body), maxUpstreamBody)

	svc := newPlacesTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	})

	place, err := svc.GetPlace(context.Background(), "p")
	assert.Nil(t, place)
	assert.ErrorIs(t, err, utils.ErrUpstream)
	assert.ErrorIs(t, err, errResponseTooLarge)
	assert.NotContains(t, err.Error(), "unexpected end of JSON input")
}

func TestReadUpstreamBody(t *testing.T) {
	exact := strings.Repeat("x", maxUpstreamBody)
	body, err := readUpstreamBody(strings.NewReader(exact))
	require.NoError(t, err)
	assert.Len(t, body, maxUpstreamBody)

	_, err = readUpstreamBody(strings.NewReader(exact + "x"))
	assert.ErrorIs(t, err, errResponseTooLarge)
}
