package responseformat

import (
	"bufio"
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/chrissnell/snowsim/internal/simulation"
	"github.com/chrissnell/snowsim/internal/types"
	"github.com/vmihailenco/msgpack/v5"
)

var record = types.StepRecord{
	Step:          1,
	Timestamp:     time.Date(2022, 1, 1, 0, 5, 0, 0, time.UTC),
	Temperature:   -2,
	Dewpoint:      -4,
	Humidity:      100,
	Pressure:      1006,
	TotalSnow:     0.0500000001,
	Precipitation: types.Snow,
	Amount:        1,
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatText},
		{in: "text", want: FormatText},
		{in: "json", want: FormatJSON},
		{in: "msgpack", want: FormatMsgPack},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteStepText(t *testing.T) {
	var buf bytes.Buffer
	if err := NewFormatter(&buf, FormatText).WriteStep(record); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"Date: 2022, January, 01 12:05AM",
		"Temperature: -2C",
		"Dewpoint: -4",
		"Humidity: 100%",
		"Barometric pressure: 1006.0",
		"Precipitation: snow 1",
		"Total snow amount: 0.05 meters",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteStepTextNegativeZero(t *testing.T) {
	rec := record
	rec.Temperature = math.Copysign(0, -1)
	rec.Amount = 0
	rec.TotalSnow = math.Copysign(0, -1)

	var buf bytes.Buffer
	if err := NewFormatter(&buf, FormatText).WriteStep(rec); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if strings.Contains(out, "-0") {
		t.Errorf("output contains a signed zero:\n%s", out)
	}
	if !strings.Contains(out, "Temperature: 0C") {
		t.Errorf("output missing %q:\n%s", "Temperature: 0C", out)
	}
}

func TestWriteStepJSONLines(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, FormatJSON)
	for i := 0; i < 3; i++ {
		if err := f.WriteStep(record); err != nil {
			t.Fatal(err)
		}
	}

	scanner := bufio.NewScanner(&buf)
	lines := 0
	for scanner.Scan() {
		var got map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &got); err != nil {
			t.Fatalf("line %d: %v", lines, err)
		}
		if got["precipitation"] != "snow" || got["humidity"] != float64(100) {
			t.Errorf("line %d = %v", lines, got)
		}
		if _, ok := got["melt"]; ok {
			t.Errorf("line %d: zero melt should be omitted", lines)
		}
		lines++
	}
	if lines != 3 {
		t.Errorf("got %d lines, expected 3", lines)
	}
}

func TestWriteStepMsgPackUsesJSONKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := NewFormatter(&buf, FormatMsgPack).WriteStep(record); err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := msgpack.NewDecoder(&buf).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got["barometric_pressure"] != float64(1006) {
		t.Errorf("barometric_pressure = %v (%T)", got["barometric_pressure"], got["barometric_pressure"])
	}
	if got["precipitation"] != "snow" {
		t.Errorf("precipitation = %v", got["precipitation"])
	}
}

func TestWriteSummaryText(t *testing.T) {
	var buf bytes.Buffer
	s := simulation.Summary{
		RunID:           "abc",
		Name:            "default",
		Steps:           10,
		SnowSteps:       7,
		RainSteps:       3,
		WetSteps:        4,
		MeanTemperature: -2.5,
		PeakSnow:        1.23456,
		FinalSnow:       1.2,
	}
	if err := NewFormatter(&buf, FormatText).WriteSummary(s); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"Simulation default (run abc)",
		"Steps: 10 (7 snow, 3 rain, 4 with precipitation)",
		"Mean temperature: -2.50C",
		"Peak snow: 1.235 meters",
		"Final snow: 1.2 meters",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
