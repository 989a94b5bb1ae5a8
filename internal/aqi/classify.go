package aqi

// LabelUnknown is returned for index values outside the 1..5 scale.
const LabelUnknown = "Unknown"

// labels maps the provider's air quality index scale to its
// qualitative categories.
var labels = map[int]string{
	1: "Good",
	2: "Fair",
	3: "Moderate",
	4: "Poor",
	5: "Very Poor",
}

// Label returns the qualitative category for an AQI value. Values off
// the 1..5 scale map to LabelUnknown; classification never fails.
func Label(aqi int) string {
	if l, ok := labels[aqi]; ok {
		return l
	}
	return LabelUnknown
}
