package tz

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	if got := Load(""); got != time.UTC {
		t.Errorf("Load(\"\") = %v, want UTC", got)
	}
	if got := Load("Not/AZone"); got != time.UTC {
		t.Errorf("Load(invalid) = %v, want UTC", got)
	}
}

func TestStamp(t *testing.T) {
	ts := time.Date(2026, 10, 15, 21, 30, 0, 0, time.UTC)
	if got := Stamp(ts, time.UTC); got != "20261015-2130" {
		t.Errorf("Stamp = %q", got)
	}
	plus3 := time.FixedZone("MSK", 3*3600)
	if got := Stamp(ts, plus3); got != "20261016-0030" {
		t.Errorf("Stamp(MSK) = %q", got)
	}
}
