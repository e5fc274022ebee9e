package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendscope/internal/session"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second, nil)
}

func decodeBody(t *testing.T, r *http.Request, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(r.Body).Decode(out))
}

func TestProductCatalog(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, endpointForecastSummary, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]string
		decodeBody(t, r, &req)
		assert.Equal(t, "sdp", req["source_system"])

		json.NewEncoder(w).Encode(map[string]any{"products": []string{"widget", "gadget"}})
	})

	products, err := c.ProductCatalog(context.Background(), session.SourceSDP)
	require.NoError(t, err)
	assert.Equal(t, []string{"widget", "gadget"}, products)
}

func TestProductCatalogEmptyIsNotAnError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"products": []string{}})
	})

	products, err := c.ProductCatalog(context.Background(), session.SourceEON)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestForecast(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, endpointForecastDetail, r.URL.Path)

		var req map[string]string
		decodeBody(t, r, &req)
		assert.Equal(t, "eon", req["source_system"])
		assert.Equal(t, "widget", req["product"])

		json.NewEncoder(w).Encode(map[string]any{
			"forecast_data": []map[string]any{
				{"ds": "2026-09-02T00:00:00Z", "yhat": 10.5, "yhat_lower": 8.0, "yhat_upper": 13.0},
				{"ds": "2026-09-03T00:00:00Z", "yhat": 11.0, "yhat_lower": 8.5, "yhat_upper": 13.5},
			},
			"total_forecast": 21.5,
		})
	})

	res, err := c.Forecast(context.Background(), session.SourceEON, "widget")
	require.NoError(t, err)
	assert.Equal(t, "widget", res.Product)
	assert.Equal(t, session.SourceEON, res.SourceSystem)
	assert.Len(t, res.Points, 2)
	assert.Equal(t, 10.5, res.Points[0].Yhat)
	assert.Equal(t, 21.5, res.TotalForecast)
}

func TestForecastEmptySeries(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"forecast_data": []any{}, "total_forecast": 0})
	})

	_, err := c.Forecast(context.Background(), session.SourceEON, "widget")
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, KindEmpty, fe.Kind)
	assert.Equal(t, endpointForecastDetail, fe.Endpoint)
}

func TestTrendSummary(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, endpointAnalysisSummary, r.URL.Path)

		var req map[string]string
		decodeBody(t, r, &req)
		assert.Equal(t, "trend_analysis", req["analysis_type"])
		assert.Equal(t, "orion", req["source_system"])

		json.NewEncoder(w).Encode([]map[string]any{
			{
				"product":           "widget",
				"total_sales":       420.0,
				"trend_percent":     -3.2,
				"trend_description": "Falling",
				"trend_icon":        "↓",
				"sparkline_data": []map[string]any{
					{"date": "2026-08-01", "total_orders": 12.0},
				},
				"color": "#f85149",
			},
		})
	})

	items, err := c.TrendSummary(context.Background(), session.SourceORION)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "widget", items[0].Product)
	assert.Equal(t, -3.2, items[0].TrendPercent)
	require.Len(t, items[0].SparklineData, 1)
	assert.Equal(t, 12.0, items[0].SparklineData[0].TotalOrders)
}

func TestTrendDetail(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, endpointAnalysisDetail, r.URL.Path)

		var req map[string]string
		decodeBody(t, r, &req)
		assert.Equal(t, "1y", req["time_range"])
		assert.Equal(t, "widget", req["product"])
		assert.Equal(t, "trend_analysis", req["analysis_type"])

		json.NewEncoder(w).Encode(map[string]any{
			"product":           "widget",
			"total_sales":       1000.0,
			"avg_sales":         83.3,
			"trend_description": "Rising",
			"trend_percent":     5.4,
			"chart_data": map[string]any{
				"dates":  []string{"2025-09", "2025-10"},
				"actual": []float64{80, 91},
			},
		})
	})

	d, err := c.TrendDetail(context.Background(), session.SourceEON, "widget", session.RangeYear)
	require.NoError(t, err)
	assert.Equal(t, "widget", d.Product)
	assert.Equal(t, session.SourceEON, d.SourceSystem)
	assert.Equal(t, session.RangeYear, d.TimeRange)
	assert.Equal(t, []float64{80, 91}, d.ChartData.Actual)
}

func TestTrendDetailEmptySeries(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"product": "widget", "chart_data": map[string]any{}})
	})

	_, err := c.TrendDetail(context.Background(), session.SourceEON, "widget", session.RangeMonth)
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, KindEmpty, fe.Kind)
}

func TestServerErrorIsNetworkKind(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.ProductCatalog(context.Background(), session.SourceEON)
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, KindNetwork, fe.Kind)
	assert.Equal(t, endpointForecastSummary, fe.Endpoint)
}

func TestMalformedBodyIsNetworkKind(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := c.TrendSummary(context.Background(), session.SourceEON)
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, KindNetwork, fe.Kind)
}

func TestUnreachableBackendIsNetworkKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := New(srv.URL, time.Second, nil)

	_, err := c.ProductCatalog(context.Background(), session.SourceEON)
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, KindNetwork, fe.Kind)
}

func TestContextCancellation(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.ProductCatalog(ctx, session.SourceEON)
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, KindNetwork, fe.Kind)
}
