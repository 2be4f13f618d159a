package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUSDAService(handler http.Handler) (*USDAService, *httptest.Server) {
	srv := httptest.NewServer(handler)
	svc := &USDAService{
		apiKey:  "test-key",
		baseURL: srv.URL,
		client:  &http.Client{Timeout: 2 * time.Second},
	}
	return svc, srv
}

func TestSearchFoods(t *testing.T) {
	svc, srv := newTestUSDAService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/foods/search", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "banana", r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"foods":[
			{"fdcId":1102653,"description":"Bananas, ripe and slightly ripe, raw","dataType":"Survey (FNDDS)"},
			{"fdcId":1105314,"description":"Banana bread","dataType":"Survey (FNDDS)"}
		]}`))
	}))
	defer srv.Close()

	foods, err := svc.SearchFoods("banana")
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, int64(1102653), foods[0].FdcID)
	assert.Equal(t, "Bananas, ripe and slightly ripe, raw", foods[0].Description)
}

func TestSearchFoodsUpstreamError(t *testing.T) {
	svc, srv := newTestUSDAService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"API rate limit exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := svc.SearchFoods("banana")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGetFoodDetails(t *testing.T) {
	svc, srv := newTestUSDAService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/food/1102653", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"description":"Bananas, ripe and slightly ripe, raw",
			"servingSize":118,
			"servingSizeUnit":"g",
			"foodNutrients":[
				{"nutrient":{"name":"Energy","unitName":"KCAL"},"amount":105},
				{"nutrient":{"name":"Protein","unitName":"G"},"amount":1.29},
				{"nutrient":{"name":"Carbohydrate, by difference","unitName":"G"},"amount":26.9},
				{"nutrient":{"name":"Fiber, total dietary","unitName":"G"},"amount":3.07},
				{"nutrient":{"name":"Total lipid (fat)","unitName":"G"},"amount":0.389},
				{"nutrient":{"name":"Water","unitName":"G"}}
			]
		}`))
	}))
	defer srv.Close()

	details, err := svc.GetFoodDetails(1102653)
	require.NoError(t, err)

	assert.Equal(t, int64(1102653), details.FdcID)
	assert.Equal(t, "Bananas, ripe and slightly ripe, raw", details.Description)
	assert.Equal(t, "118 g", details.Unit)
	assert.Equal(t, 105.0, details.Nutrients.Calories)
	assert.Equal(t, 1.29, details.Nutrients.Protein)
	assert.Equal(t, 26.9, details.Nutrients.Carbs)
	assert.Equal(t, 3.07, details.Nutrients.Fiber)
	assert.Equal(t, 0.389, details.Nutrients.Fat)
}

func TestServingUnit(t *testing.T) {
	cases := []struct {
		size float64
		unit string
		want string
	}{
		{118, "g", "118 g"},
		{0, "slice", "slice"},
		{0, "", "unit"},
		{1.5, "cup", "1.5 cup"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, servingUnit(tc.size, tc.unit))
	}
}
