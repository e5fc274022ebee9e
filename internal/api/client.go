// Package api implements the JSON-over-POST client for the analytics
// backend. Every request is scoped to a source system; deciding what to do
// with a response that arrives after the console has moved on is the
// caller's job (see internal/session).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"trendscope/internal/session"
)

const (
	endpointForecastSummary = "/forecast/summary"
	endpointForecastDetail  = "/forecast/detail"
	endpointAnalysisSummary = "/analysis/summary"
	endpointAnalysisDetail  = "/analysis/detail"

	analysisTypeTrend = "trend_analysis"
)

// Client talks to the analytics backend.
type Client struct {
	baseURL string
	hc      *http.Client
	logger  *slog.Logger
}

// New creates a client. The timeout bounds the whole request including
// body read; callers may tighten it further per call via ctx.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type catalogRequest struct {
	SourceSystem session.SourceSystem `json:"source_system"`
}

type catalogResponse struct {
	Products []string `json:"products"`
}

// ProductCatalog fetches the product list of a source system. An empty
// catalog is a legitimate result, not an error.
func (c *Client) ProductCatalog(ctx context.Context, sys session.SourceSystem) ([]string, error) {
	var resp catalogResponse
	if err := c.post(ctx, endpointForecastSummary, catalogRequest{SourceSystem: sys}, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

type forecastRequest struct {
	SourceSystem session.SourceSystem `json:"source_system"`
	Product      string               `json:"product"`
}

type forecastResponse struct {
	ForecastData  []session.ForecastPoint `json:"forecast_data"`
	TotalForecast float64                 `json:"total_forecast"`
}

// Forecast fetches the 30-day forecast for one product. The result is
// tagged with the (system, product) it was requested under so staleness is
// detectable at resolution time.
func (c *Client) Forecast(ctx context.Context, sys session.SourceSystem, product string) (*session.ForecastResult, error) {
	var resp forecastResponse
	if err := c.post(ctx, endpointForecastDetail, forecastRequest{SourceSystem: sys, Product: product}, &resp); err != nil {
		return nil, err
	}
	if len(resp.ForecastData) == 0 {
		return nil, emptyErr(endpointForecastDetail)
	}
	return &session.ForecastResult{
		Product:       product,
		SourceSystem:  sys,
		Points:        resp.ForecastData,
		TotalForecast: resp.TotalForecast,
	}, nil
}

type summaryRequest struct {
	SourceSystem session.SourceSystem `json:"source_system"`
	AnalysisType string               `json:"analysis_type"`
}

// TrendSummary fetches the 1-month trend summary for all products.
func (c *Client) TrendSummary(ctx context.Context, sys session.SourceSystem) ([]session.TrendSummaryItem, error) {
	var items []session.TrendSummaryItem
	if err := c.post(ctx, endpointAnalysisSummary, summaryRequest{SourceSystem: sys, AnalysisType: analysisTypeTrend}, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type detailRequest struct {
	SourceSystem session.SourceSystem `json:"source_system"`
	AnalysisType string               `json:"analysis_type"`
	Product      string               `json:"product"`
	TimeRange    session.TimeRange    `json:"time_range"`
}

// TrendDetail fetches one product's trend detail for a time range.
func (c *Client) TrendDetail(ctx context.Context, sys session.SourceSystem, product string, r session.TimeRange) (*session.TrendDetail, error) {
	var detail session.TrendDetail
	req := detailRequest{
		SourceSystem: sys,
		AnalysisType: analysisTypeTrend,
		Product:      product,
		TimeRange:    r,
	}
	if err := c.post(ctx, endpointAnalysisDetail, req, &detail); err != nil {
		return nil, err
	}
	if len(detail.ChartData.Dates) == 0 {
		return nil, emptyErr(endpointAnalysisDetail)
	}
	detail.SourceSystem = sys
	detail.TimeRange = r
	return &detail, nil
}

// post issues one JSON POST and decodes the response into out.
func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return networkErr(endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return networkErr(endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return networkErr(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return networkErr(endpoint, fmt.Errorf("unexpected status %s", resp.Status))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return networkErr(endpoint, fmt.Errorf("decoding response: %w", err))
	}

	c.logger.Debug("backend request", "endpoint", endpoint, "elapsed", time.Since(start))
	return nil
}
