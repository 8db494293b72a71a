package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"StockGlance/internal/model"
)

// RESTFetcher implements Fetcher against the stock application's candle API.
type RESTFetcher struct {
	BaseURL  string
	Resource string
	APIKey   string
	Client   *http.Client
}

// NewRESTFetcher creates a fetcher with optional proxy support.
func NewRESTFetcher(baseURL, resource, apiKey, proxyURL string) *RESTFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if resource == "" {
		resource = "stocks"
	}
	return &RESTFetcher{
		BaseURL:  baseURL,
		Resource: resource,
		APIKey:   apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *RESTFetcher) Name() string { return "rest" }

// rawCandle is the expected JSON shape of one candle. All numeric
// fields are delivered as strings.
type rawCandle struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Open      string `json:"open"`
	High      string `json:"high"`
	Low       string `json:"low"`
	Close     string `json:"close"`
	Value     string `json:"value"`
	Volume    string `json:"volume"`
}

// candlePayload is the unpaginated list response (?all=true).
type candlePayload struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  []rawCandle `json:"results"`
}

// FetchCandles retrieves the full candle history for a ticker. Any
// malformed candle rejects the whole payload so partial data never
// reaches the store.
func (f *RESTFetcher) FetchCandles(ctx context.Context, ticker string) ([]model.Candle, error) {
	endpoint := fmt.Sprintf("%s/api/%s/%s/candles/?all=true", f.BaseURL, f.Resource, url.PathEscape(ticker))
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch candles: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch candles: status %d, body: %s", resp.StatusCode, string(body))
	}
	var payload candlePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode candles: %w", err)
	}
	if len(payload.Results) == 0 {
		return nil, fmt.Errorf("no candles returned for %s", ticker)
	}
	candles := make([]model.Candle, len(payload.Results))
	for i, r := range payload.Results {
		c, err := r.toCandle()
		if err != nil {
			return nil, fmt.Errorf("candle %d: %w", i, err)
		}
		candles[i] = c
	}
	return candles, nil
}

func (r rawCandle) toCandle() (model.Candle, error) {
	start, err := parseInstant(r.StartTime)
	if err != nil {
		return model.Candle{}, fmt.Errorf("start_time: %w", err)
	}
	end, err := parseInstant(r.EndTime)
	if err != nil {
		return model.Candle{}, fmt.Errorf("end_time: %w", err)
	}
	c := model.Candle{StartTime: start, EndTime: end}
	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"open", r.Open, &c.Open},
		{"high", r.High, &c.High},
		{"low", r.Low, &c.Low},
		{"close", r.Close, &c.Close},
		{"value", r.Value, &c.Value},
		{"volume", r.Volume, &c.Volume},
	}
	for _, f := range fields {
		if f.raw == "" {
			return model.Candle{}, fmt.Errorf("missing %s", f.name)
		}
		v, err := strconv.ParseFloat(f.raw, 64)
		if err != nil {
			return model.Candle{}, fmt.Errorf("parse %s: %w", f.name, err)
		}
		*f.dst = v
	}
	return c, nil
}

// instantLayouts covers the timestamp renderings the candle API is
// known to emit. Timezone-naive values are treated as UTC instants.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseInstant(s string) (time.Time, error) {
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
