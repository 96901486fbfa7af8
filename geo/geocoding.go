package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Geocoder resolves coordinates to a postal address using OpenStreetMap
// Nominatim. Free service; fine for this traffic, swap for a paid geocoder
// if volume ever matters.
type Geocoder struct {
	BaseURL string
	HTTP    *http.Client
}

func NewGeocoder() *Geocoder {
	return &Geocoder{
		BaseURL: "https://nominatim.openstreetmap.org",
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		HouseNumber   string `json:"house_number"`
		Road          string `json:"road"`
		Neighbourhood string `json:"neighbourhood"`
		Suburb        string `json:"suburb"`
		City          string `json:"city"`
		Town          string `json:"town"`
		Village       string `json:"village"`
		State         string `json:"state"`
		Postcode      string `json:"postcode"`
	} `json:"address"`
}

// ReverseGeocode converts a coordinate pair into a display address.
func (g *Geocoder) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	apiURL := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f&zoom=18&addressdetails=1", g.BaseURL, lat, lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build geocoding request: %w", err)
	}

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make geocoding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocoding service returned status: %d", resp.StatusCode)
	}

	var result reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if addr := formatAddress(result); addr != "" {
		return addr, nil
	}
	if result.DisplayName != "" {
		return result.DisplayName, nil
	}
	return "", fmt.Errorf("geocoding response carried no address")
}

// formatAddress assembles the address parts most useful to a worker finding
// the door, most specific first.
func formatAddress(r reverseResponse) string {
	a := r.Address
	var parts []string

	if a.HouseNumber != "" && a.Road != "" {
		parts = append(parts, a.HouseNumber+" "+a.Road)
	} else if a.Road != "" {
		parts = append(parts, a.Road)
	}

	if a.Neighbourhood != "" {
		parts = append(parts, a.Neighbourhood)
	} else if a.Suburb != "" {
		parts = append(parts, a.Suburb)
	}

	switch {
	case a.City != "":
		parts = append(parts, a.City)
	case a.Town != "":
		parts = append(parts, a.Town)
	case a.Village != "":
		parts = append(parts, a.Village)
	}

	if a.State != "" {
		parts = append(parts, a.State)
	}
	if a.Postcode != "" {
		parts = append(parts, a.Postcode)
	}

	return strings.Join(parts, ", ")
}
