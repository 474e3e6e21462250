package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	nearbySearchURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	detailsURL      = "https://maps.googleapis.com/maps/api/place/details/json"
)

// Place is one nearby-search result, reduced to the fields the app uses.
type Place struct {
	PlaceID   string
	Name      string
	Vicinity  string
	Latitude  float64
	Longitude float64
}

type Client struct {
	apiKey string
	client *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// --------------------------------------------------
// Nearby search (restaurant keyword search)
// --------------------------------------------------
func (c *Client) SearchNearby(
	ctx context.Context,
	keyword string,
	latitude, longitude, radiusMeters float64,
) ([]Place, error) {

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", latitude, longitude))
	params.Set("radius", strconv.FormatFloat(radiusMeters, 'f', 0, 64))
	params.Set("keyword", keyword)
	params.Set("type", "restaurant")
	params.Set("key", c.apiKey)

	var result struct {
		Results []struct {
			PlaceID  string `json:"place_id"`
			Name     string `json:"name"`
			Vicinity string `json:"vicinity"`
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
		Status string `json:"status"`
	}

	if err := c.get(ctx, nearbySearchURL, params, &result); err != nil {
		return nil, err
	}
	if result.Status != "OK" && result.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places API status %s", result.Status)
	}

	places := make([]Place, 0, len(result.Results))
	for _, r := range result.Results {
		places = append(places, Place{
			PlaceID:   r.PlaceID,
			Name:      r.Name,
			Vicinity:  r.Vicinity,
			Latitude:  r.Geometry.Location.Lat,
			Longitude: r.Geometry.Location.Lng,
		})
	}
	return places, nil
}

// --------------------------------------------------
// Website lookup (place details)
// --------------------------------------------------

// LookupWebsite returns the place's website, or "" when the place has none.
func (c *Client) LookupWebsite(ctx context.Context, placeID string) (string, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "website")
	params.Set("key", c.apiKey)

	var result struct {
		Result struct {
			Website string `json:"website"`
		} `json:"result"`
		Status string `json:"status"`
	}

	if err := c.get(ctx, detailsURL, params, &result); err != nil {
		return "", err
	}
	if result.Status != "OK" {
		return "", fmt.Errorf("places API status %s", result.Status)
	}
	return result.Result.Website, nil
}

func (c *Client) get(ctx context.Context, baseURL string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places API returned status %d: %s", resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}
