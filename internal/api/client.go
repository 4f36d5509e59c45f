package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

var httpClient = &http.Client{Timeout: 8 * time.Second}

// Config holds API client configuration
type Config struct {
	BaseURL string
}

type Client struct {
	config Config
}

func NewClient(baseURL string) *Client {
	return &Client{
		config: Config{BaseURL: baseURL},
	}
}

func (c *Client) apiGet(path string, out interface{}) error {
	base := strings.TrimRight(c.config.BaseURL, "/")
	url := base + path
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	req.Header.Set("Accept", "application/json")
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("api status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) apiPost(path string, in, out interface{}) error {
	base := strings.TrimRight(c.config.BaseURL, "/")
	url := base + path
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("api status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ResolveExchange asks the server to resolve a single exchange.
func (c *Client) ResolveExchange(req ExchangeRequest) (*ExchangeResponse, error) {
	var res ExchangeResponse
	if err := c.apiPost("/api/resolve/exchange", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// RunDuel runs a full duel on the server and returns the stored report.
func (c *Client) RunDuel(req DuelRequest) (*DuelResponse, error) {
	var res DuelResponse
	if err := c.apiPost("/api/duel", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// FetchReport retrieves a previously stored duel report by id.
func (c *Client) FetchReport(id int64) (*DuelResponse, error) {
	var res DuelResponse
	if err := c.apiGet("/api/reports/"+strconv.FormatInt(id, 10), &res); err != nil {
		return nil, err
	}
	return &res, nil
}
