package aqi

import (
	"errors"
	"testing"
	"time"

	"github.com/aqipulse/aqipulse/internal/domain/models"
)

func i64ptr(v int64) *int64 { return &v }
func intptr(v int) *int     { return &v }

// fullComponents returns a component map covering every fixed channel,
// each set to v.
func fullComponents(v float64) map[string]float64 {
	m := make(map[string]float64, len(models.PollutantChannels))
	for _, ch := range models.PollutantChannels {
		m[ch] = v
	}
	return m
}

func validRaw(unix int64, aqi int) models.RawReading {
	return models.RawReading{UnixTime: i64ptr(unix), AQI: intptr(aqi), Components: fullComponents(1.5)}
}

func TestNormalize_TableDriven(t *testing.T) {
	// 2026-08-20T10:00:00Z
	const unix = int64(1787220000)

	missingSO2 := fullComponents(1.0)
	delete(missingSO2, "so2")

	cases := []struct {
		name      string
		raw       models.RawReading
		wantErr   bool
		wantField string
		wantDate  string
		wantAQI   int
	}{
		{name: "valid record", raw: validRaw(unix, 2), wantDate: "2026-08-20", wantAQI: 2},
		{name: "missing dt", raw: models.RawReading{AQI: intptr(1), Components: fullComponents(1)}, wantErr: true, wantField: "dt"},
		{name: "missing aqi", raw: models.RawReading{UnixTime: i64ptr(unix), Components: fullComponents(1)}, wantErr: true, wantField: "aqi"},
		{name: "missing components block", raw: models.RawReading{UnixTime: i64ptr(unix), AQI: intptr(1)}, wantErr: true, wantField: "components"},
		{name: "missing one channel", raw: models.RawReading{UnixTime: i64ptr(unix), AQI: intptr(1), Components: missingSO2}, wantErr: true, wantField: "so2"},
	}

	n := NewNormalizer(time.UTC)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := n.Normalize(7, tc.raw)
			if tc.wantErr {
				var mErr *MalformedRecordError
				if !errors.As(err, &mErr) {
					t.Fatalf("expected MalformedRecordError, got %v", err)
				}
				if mErr.Field != tc.wantField {
					t.Fatalf("field: want %q got %q", tc.wantField, mErr.Field)
				}
				if mErr.Index != 7 {
					t.Fatalf("index: want 7 got %d", mErr.Index)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if r.Date != tc.wantDate {
				t.Fatalf("date: want %q got %q", tc.wantDate, r.Date)
			}
			if r.AQI != tc.wantAQI {
				t.Fatalf("aqi: want %d got %d", tc.wantAQI, r.AQI)
			}
			if len(r.Pollutants) != len(models.PollutantChannels) {
				t.Fatalf("pollutants: want %d channels got %d", len(models.PollutantChannels), len(r.Pollutants))
			}
		})
	}
}

func TestNormalize_ExtraChannelsDropped(t *testing.T) {
	raw := validRaw(1787220000, 3)
	raw.Components["benzene"] = 9.9

	n := NewNormalizer(time.UTC)
	r, err := n.Normalize(0, raw)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := r.Pollutants["benzene"]; ok {
		t.Fatalf("unexpected channel kept: benzene")
	}
	if len(r.Pollutants) != len(models.PollutantChannels) {
		t.Fatalf("pollutants: want %d channels got %d", len(models.PollutantChannels), len(r.Pollutants))
	}
}

// Day keys must follow the normalizer's reference location, not the
// raw instant's zone: one second before and after midnight UTC land on
// different days.
func TestNormalize_DayKeyBoundary(t *testing.T) {
	n := NewNormalizer(time.UTC)

	// 2026-08-20T23:59:59Z and one second later.
	before, err := n.Normalize(0, validRaw(1787270399, 1))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	after, err := n.Normalize(1, validRaw(1787270400, 1))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if before.Date != "2026-08-20" {
		t.Fatalf("before midnight: want 2026-08-20 got %s", before.Date)
	}
	if after.Date != "2026-08-21" {
		t.Fatalf("after midnight: want 2026-08-21 got %s", after.Date)
	}
}

func TestNormalize_FixedOffsetLocation(t *testing.T) {
	// 2026-08-20T23:00:00Z is already past midnight at UTC+5.
	n := NewNormalizer(time.FixedZone("UTC+5", 5*3600))
	r, err := n.Normalize(0, validRaw(1787266800, 1))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.Date != "2026-08-21" {
		t.Fatalf("date: want 2026-08-21 got %s", r.Date)
	}
}

func TestNormalizeAll_FailsWholeBatch(t *testing.T) {
	raws := []models.RawReading{
		validRaw(1787220000, 1),
		{UnixTime: i64ptr(1787223600), AQI: intptr(2)}, // components missing
		validRaw(1787227200, 3),
	}

	n := NewNormalizer(nil)
	out, err := n.NormalizeAll(raws)
	if out != nil {
		t.Fatalf("expected no partial result, got %d readings", len(out))
	}
	var mErr *MalformedRecordError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected MalformedRecordError, got %v", err)
	}
	if mErr.Index != 1 {
		t.Fatalf("index: want 1 got %d", mErr.Index)
	}
}

func TestNormalizeAll_Empty(t *testing.T) {
	n := NewNormalizer(nil)
	out, err := n.NormalizeAll(nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("want empty output, got %d", len(out))
	}
}
