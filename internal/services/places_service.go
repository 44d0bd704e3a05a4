package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"wanderlog/internal/config"
	"wanderlog/internal/models/db_models"
	"wanderlog/pkg/utils"
)

const (
	placesServiceName      = "google places"
	noDescriptionAvailable = "No description available"
	maxUpstreamBody        = 2 << 20
)

var errResponseTooLarge = errors.New("response too large")

type PlacesServiceInterface interface {
	// GetPlace fetches a place by its Google place id and maps it to the
	// snapshot stored on trips.
	GetPlace(ctx context.Context, placeID string) (*db_models.Place, error)
}

type googlePlacesService struct {
	cfg      config.PlacesConfig
	client   *http.Client
	validate *validator.Validate
	logger   *zap.Logger
}

func NewGooglePlacesService(cfg *config.Config, client *http.Client, logger *zap.Logger) PlacesServiceInterface {
	return &googlePlacesService{
		cfg:      cfg.Places,
		client:   client,
		validate: validator.New(),
		logger:   logger.Named("places"),
	}
}

// Google Places "details" payload, restricted to what a trip keeps.
type placeDetailsResponse struct {
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message,omitempty"`
	Result       *placeResult `json:"result"`
}

type placeResult struct {
	Name                 string `json:"name" validate:"required"`
	FormattedPhoneNumber string `json:"formatted_phone_number"`
	Website              string `json:"website"`
	OpeningHours         *struct {
		WeekdayText []string `json:"weekday_text"`
	} `json:"opening_hours"`
	Photos []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
	Reviews []struct {
		AuthorName string  `json:"author_name"`
		Rating     float64 `json:"rating"`
		Text       string  `json:"text"`
	} `json:"reviews"`
	Types            []string `json:"types"`
	FormattedAddress string   `json:"formatted_address"`
	EditorialSummary *struct {
		Overview string `json:"overview"`
	} `json:"editorial_summary"`
	Geometry *placeGeometry `json:"geometry" validate:"required"`
}

type placeGeometry struct {
	Location *placeLatLng `json:"location" validate:"required"`
	Viewport *struct {
		Northeast *placeLatLng `json:"northeast" validate:"required"`
		Southwest *placeLatLng `json:"southwest" validate:"required"`
	} `json:"viewport" validate:"required"`
}

type placeLatLng struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lng *float64 `json:"lng" validate:"required"`
}

func (s *googlePlacesService) GetPlace(ctx context.Context, placeID string) (*db_models.Place, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("key", s.cfg.APIKey)
	endpoint := s.cfg.BaseURL + "/details/json?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("place details request failed", zap.String("place_id", placeID), zap.Error(err))
		return nil, &utils.UpstreamError{Service: placesServiceName, Err: err}
	}
	defer resp.Body.Close()

	body, err := readUpstreamBody(resp.Body)
	if err != nil {
		s.logger.Error("place details body unreadable", zap.String("place_id", placeID), zap.Error(err))
		return nil, &utils.UpstreamError{Service: placesServiceName, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Warn("place details returned non-2xx",
			zap.String("place_id", placeID),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &utils.UpstreamError{
			Service:    placesServiceName,
			StatusCode: resp.StatusCode,
			Details:    decodeDetails(body),
			Err:        fmt.Errorf("unexpected response status"),
		}
	}

	var payload placeDetailsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &utils.UpstreamError{Service: placesServiceName, Details: string(body), Err: fmt.Errorf("decode place details: %w", err)}
	}

	if payload.Status != "OK" || payload.Result == nil {
		s.logger.Warn("place details not OK",
			zap.String("place_id", placeID),
			zap.String("status", payload.Status),
			zap.String("error_message", payload.ErrorMessage),
		)
		return nil, &utils.UpstreamError{
			Service: placesServiceName,
			Details: map[string]string{"status": payload.Status, "error_message": payload.ErrorMessage},
			Err:     fmt.Errorf("place details status %q", payload.Status),
		}
	}

	return s.buildPlace(payload.Result)
}

// buildPlace maps a details result to a Place. The name and the full
// geometry (location and both viewport corners) must be present.
func (s *googlePlacesService) buildPlace(r *placeResult) (*db_models.Place, error) {
	if err := s.validate.Struct(r); err != nil {
		return nil, &utils.UpstreamError{
			Service: placesServiceName,
			Details: err.Error(),
			Err:     fmt.Errorf("unusable place shape: %w", err),
		}
	}

	place := &db_models.Place{
		Name: r.Name,
		PlaceDetails: db_models.PlaceDetails{
			PhoneNumber:      r.FormattedPhoneNumber,
			Website:          r.Website,
			Types:            r.Types,
			FormattedAddress: r.FormattedAddress,
			BriefDescription: noDescriptionAvailable,
			Geometry: &db_models.Geometry{
				Location: toLatLng(r.Geometry.Location),
				Viewport: db_models.Viewport{
					Northeast: toLatLng(r.Geometry.Viewport.Northeast),
					Southwest: toLatLng(r.Geometry.Viewport.Southwest),
				},
			},
		},
	}

	if r.OpeningHours != nil {
		place.OpeningHours = r.OpeningHours.WeekdayText
	}
	for _, p := range r.Photos {
		place.Photos = append(place.Photos, s.photoURL(p.PhotoReference))
	}
	for _, rv := range r.Reviews {
		place.Reviews = append(place.Reviews, db_models.Review{AuthorName: rv.AuthorName, Rating: rv.Rating, Text: rv.Text})
	}

	switch {
	case r.EditorialSummary != nil && r.EditorialSummary.Overview != "":
		place.BriefDescription = r.EditorialSummary.Overview
	case len(r.Reviews) > 0 && r.Reviews[0].Text != "":
		place.BriefDescription = r.Reviews[0].Text
	}

	return place, nil
}

func (s *googlePlacesService) photoURL(ref string) string {
	q := url.Values{}
	q.Set("maxwidth", strconv.Itoa(s.cfg.PhotoMaxWidth))
	q.Set("photoreference", ref)
	q.Set("key", s.cfg.APIKey)
	return s.cfg.PhotoURL + "?" + q.Encode()
}

func toLatLng(p *placeLatLng) db_models.LatLng {
	return db_models.LatLng{Lat: *p.Lat, Lng: *p.Lng}
}

// decodeDetails keeps a JSON error body as JSON and anything else as text.
func decodeDetails(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(body, &v); err == nil {
		return v
	}
	return string(body)
}

// readUpstreamBody reads at most maxUpstreamBody bytes and fails instead of
// returning a truncated body.
func readUpstreamBody(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxUpstreamBody+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxUpstreamBody {
		return nil, fmt.Errorf("%w: more than %d bytes", errResponseTooLarge, maxUpstreamBody)
	}
	return body, nil
}
