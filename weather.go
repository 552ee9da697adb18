package tabiplan

import (
	"fmt"
	"math"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "daily": {
	        "time": ["2025-01-18"],
	        "weather_code": [3],
	        "temperature_2m_max": [7.1],
	        "temperature_2m_min": [-1.2]
	    }
	}
*/

// Forecast is the day's weather summary shown on top of the day view.
type Forecast struct {
	Date    Date
	High    float64
	Low     float64
	Summary string
}

const openMeteoEndpoint = "https://api.open-meteo.com/v1/forecast"

// DailyForecast fetches the forecast for one calendar day at the given
// coordinates from open-meteo. The view renders without it on any error, so
// callers should treat a failure as a missing widget, not a fault.
func DailyForecast(client *http.Client, lat, lon float64, on Date) (*Forecast, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min")
	q.Set("timezone", "auto")
	q.Set("start_date", on.String())
	q.Set("end_date", on.String())
	addr := openMeteoEndpoint + "?" + q.Encode()

	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", "open-meteo", err)
	}
	return forecastFrom(jobj, on)
}

// forecastFrom extracts the forecast from a decoded open-meteo response.
func forecastFrom(jobj any, on Date) (*Forecast, error) {
	high, err := jsonFloat(jobj, "$.daily.temperature_2m_max[0]")
	if err != nil {
		return nil, err
	}
	low, err := jsonFloat(jobj, "$.daily.temperature_2m_min[0]")
	if err != nil {
		return nil, err
	}
	code, err := jsonFloat(jobj, "$.daily.weather_code[0]")
	if err != nil {
		return nil, err
	}
	return &Forecast{Date: on, High: high, Low: low, Summary: weatherSummary(int(code))}, nil
}

// jsonFloat extracts a single float from a decoded JSON document.
func jsonFloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing forecast: %q %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing forecast: %q %s %v", path, "not a float", jval)
	}
	return val, nil
}

// weatherSummary maps WMO weather codes to the short labels the day view shows.
func weatherSummary(code int) string {
	switch {
	case code == 0:
		return "晴朗"
	case code <= 2:
		return "多雲時晴"
	case code == 3:
		return "陰天"
	case code == 45 || code == 48:
		return "有霧"
	case code >= 51 && code <= 67:
		return "有雨"
	case code >= 71 && code <= 77:
		return "降雪"
	case code >= 80 && code <= 82:
		return "陣雨"
	case code == 85 || code == 86:
		return "陣雪"
	case code >= 95:
		return "雷雨"
	default:
		return "多雲"
	}
}
