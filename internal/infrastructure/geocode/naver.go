// Package geocode talks to the Naver Cloud geocoding API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const naverGeocodeURL = "https://naveropenapi.apigw.ntruss.com/map-geocode/v2/geocode"

// Result is one resolved address candidate.
type Result struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NaverClient resolves free-form Korean addresses through the Naver Cloud
// map-geocode endpoint.
type NaverClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
}

func NewNaverClient(clientID, clientSecret string) *NaverClient {
	return &NaverClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      naverGeocodeURL,
		httpClient:   &http.Client{Timeout: 5 * time.Second},
	}
}

// Configured reports whether credentials were provided; an unconfigured
// client should never be called.
func (c *NaverClient) Configured() bool {
	return c != nil && c.clientID != "" && c.clientSecret != ""
}

type naverResponse struct {
	Status    string `json:"status"`
	Addresses []struct {
		RoadAddress  string `json:"roadAddress"`
		JibunAddress string `json:"jibunAddress"`
		X            string `json:"x"`
		Y            string `json:"y"`
	} `json:"addresses"`
}

func (c *NaverClient) Geocode(ctx context.Context, query string) ([]Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"?query="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-NCP-APIGW-API-KEY-ID", c.clientID)
	req.Header.Set("X-NCP-APIGW-API-KEY", c.clientSecret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("naver geocode: unexpected status %d", resp.StatusCode)
	}

	var body naverResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status != "OK" {
		return nil, fmt.Errorf("naver geocode: status %s", body.Status)
	}

	results := make([]Result, 0, len(body.Addresses))
	for _, a := range body.Addresses {
		lng, errX := strconv.ParseFloat(a.X, 64)
		lat, errY := strconv.ParseFloat(a.Y, 64)
		if errX != nil || errY != nil {
			continue
		}
		addr := a.RoadAddress
		if addr == "" {
			addr = a.JibunAddress
		}
		results = append(results, Result{
			Name:      query,
			Address:   addr,
			Latitude:  lat,
			Longitude: lng,
		})
	}
	return results, nil
}
