package recommend

import "testing"

func TestClassifyWeather(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		tempF    float64
		expected Condition
	}{
		{"clear and hot", 0, 95, ConditionHot},
		{"clear at hot threshold", 0, 85, ConditionHot},
		{"clear and cold", 0, 40, ConditionCold},
		{"clear at cold threshold", 0, 58, ConditionCold},
		{"clear and mild", 0, 70, ConditionMild},
		{"just above cold threshold", 0, 58.1, ConditionMild},
		{"drizzle wins over heat", 53, 95, ConditionRain},
		{"thunderstorm wins over cold", 95, 30, ConditionRain},
		{"rain showers", 81, 70, ConditionRain},
		{"snow code is not rain", 71, 30, ConditionCold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyWeather(tt.code, tt.tempF); got != tt.expected {
				t.Errorf("ClassifyWeather(%d, %v) = %v, want %v", tt.code, tt.tempF, got, tt.expected)
			}
		})
	}
}

func TestFallbackWeather(t *testing.T) {
	wx := FallbackWeather()
	if wx.Condition != ConditionMild || wx.TempF != 72 {
		t.Errorf("FallbackWeather() = %+v, want mild/72", wx)
	}
}
