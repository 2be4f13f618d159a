package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/Himanagi/Calorie-tracker-app/nutrition"
)

const usdaBaseURL = "https://api.nal.usda.gov/fdc/v1"

// USDAService talks to the USDA FoodData Central API: free-text food search
// plus per-food nutrient detail.
type USDAService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewUSDAService() *USDAService {
	return &USDAService{
		apiKey:  os.Getenv("USDA_API_KEY"),
		baseURL: usdaBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// FoodHit is one search result.
type FoodHit struct {
	FdcID       int64  `json:"fdcId"`
	Description string `json:"description"`
	DataType    string `json:"dataType"`
	BrandOwner  string `json:"brandOwner,omitempty"`
}

type foodSearchResponse struct {
	Foods []FoodHit `json:"foods"`
}

// SearchFoods calls the FoodData Central search endpoint.
func (s *USDAService) SearchFoods(query string) ([]FoodHit, error) {
	u := fmt.Sprintf(
		"%s/foods/search?api_key=%s&query=%s&pageSize=5",
		s.baseURL, s.apiKey, url.QueryEscape(query),
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call USDA search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read USDA search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("usda search API error %d: %s", resp.StatusCode, string(body))
	}

	var sr foodSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse USDA search JSON: %w", err)
	}
	return sr.Foods, nil
}

// foodDetailResponse is the slice of the detail payload we care about. The
// nutrient name lives under a nested "nutrient" object; amount may be
// absent, hence the pointer.
type foodDetailResponse struct {
	Description     string  `json:"description"`
	ServingSize     float64 `json:"servingSize"`
	ServingSizeUnit string  `json:"servingSizeUnit"`
	FoodNutrients   []struct {
		Nutrient struct {
			Name     string `json:"name"`
			UnitName string `json:"unitName"`
		} `json:"nutrient"`
		Amount *float64 `json:"amount"`
	} `json:"foodNutrients"`
}

// FoodDetails is a lookup result normalized for the food-input flow:
// per-serving nutrients plus a human-readable serving unit.
type FoodDetails struct {
	FdcID       int64               `json:"fdcId"`
	Description string              `json:"description"`
	Unit        string              `json:"unit"`
	Nutrients   nutrition.Nutrients `json:"nutrients"`
}

// GetFoodDetails fetches one food and normalizes its nutrient list.
func (s *USDAService) GetFoodDetails(fdcID int64) (*FoodDetails, error) {
	u := fmt.Sprintf("%s/food/%d?api_key=%s", s.baseURL, fdcID, s.apiKey)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call USDA detail: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read USDA detail response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("usda detail API error %d: %s", resp.StatusCode, string(body))
	}

	var dr foodDetailResponse
	if err := json.Unmarshal(body, &dr); err != nil {
		return nil, fmt.Errorf("failed to parse USDA detail JSON: %w", err)
	}

	rows := make([]nutrition.NamedNutrient, 0, len(dr.FoodNutrients))
	for _, fn := range dr.FoodNutrients {
		rows = append(rows, nutrition.NamedNutrient{
			Name:   fn.Nutrient.Name,
			Amount: fn.Amount,
			Unit:   fn.Nutrient.UnitName,
		})
	}

	return &FoodDetails{
		FdcID:       fdcID,
		Description: dr.Description,
		Unit:        servingUnit(dr.ServingSize, dr.ServingSizeUnit),
		Nutrients:   nutrition.ParseNutrients(rows),
	}, nil
}

// servingUnit derives the display unit from the serving size fields,
// falling back to the bare unit, then "unit".
func servingUnit(size float64, unit string) string {
	switch {
	case size != 0 && unit != "":
		return fmt.Sprintf("%g %s", size, unit)
	case unit != "":
		return unit
	default:
		return "unit"
	}
}
