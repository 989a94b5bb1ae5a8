package models

import "time"

// PollutantChannels lists the pollutant concentrations carried by every
// reading, in the order reports print them. The set is fixed: readings
// missing any of these channels are rejected during normalization, and
// extra channels sent by the provider are ignored.
var PollutantChannels = []string{"co", "no", "no2", "o3", "so2", "pm2_5", "pm10", "nh3"}

// RawReading is a single record from the provider history feed, before
// validation. Scalar fields are pointers so that a field the provider
// omitted is distinguishable from a zero value.
//
// Fields:
//  1. UnixTime: sampling instant as a Unix timestamp ("dt" upstream).
//  2. AQI: air quality index code, nominally 1..5 ("main.aqi" upstream).
//  3. Components: pollutant concentrations in μg/m³, keyed by channel.
type RawReading struct {
	UnixTime   *int64
	AQI        *int
	Components map[string]float64
}

// Reading is a validated sample tied to its calendar day. Date is the
// day key derived from Timestamp, laid out as "2006-01-02", and is what
// aggregation groups by. Pollutants holds exactly the channels listed
// in PollutantChannels.
type Reading struct {
	Timestamp  time.Time
	Date       string
	AQI        int
	Pollutants map[string]float64
}
