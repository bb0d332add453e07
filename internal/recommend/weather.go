package recommend

// Condition is the coarse weather bucket the scoring tables key on
type Condition string

const (
	ConditionHot  Condition = "hot"
	ConditionCold Condition = "cold"
	ConditionMild Condition = "mild"
	ConditionRain Condition = "rain"
)

// Temperature thresholds in Fahrenheit
const (
	hotTempF  = 85
	coldTempF = 58
)

// precipCodes are the WMO weather codes for drizzle, rain, showers and
// thunderstorms, as reported by the forecast provider
var precipCodes = map[int]bool{
	51: true, 53: true, 55: true, // drizzle
	56: true, 57: true, // freezing drizzle
	61: true, 63: true, 65: true, // rain
	66: true, 67: true, // freezing rain
	80: true, 81: true, 82: true, // rain showers
	95: true, 96: true, 99: true, // thunderstorm
}

// WeatherContext is the ephemeral weather snapshot passed into scoring.
// It is never persisted.
type WeatherContext struct {
	Condition Condition `json:"condition"`
	TempF     float64   `json:"temp_f"`
}

// ClassifyWeather buckets a raw forecast code and temperature. Precipitation
// wins over temperature.
func ClassifyWeather(code int, tempF float64) Condition {
	switch {
	case precipCodes[code]:
		return ConditionRain
	case tempF >= hotTempF:
		return ConditionHot
	case tempF <= coldTempF:
		return ConditionCold
	default:
		return ConditionMild
	}
}

// FallbackWeather is used when no forecast is available. Weather only ever
// adds a small bonus, so an unavailable provider is never fatal.
func FallbackWeather() WeatherContext {
	return WeatherContext{Condition: ConditionMild, TempF: 72}
}
