package responseformat

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/chrissnell/snowsim/internal/simulation"
	"github.com/chrissnell/snowsim/internal/types"
	"github.com/vmihailenco/msgpack/v5"
)

// Format selects how records are encoded
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatMsgPack Format = "msgpack"
)

// dateLayout renders timestamps like "2022, January, 01 12:05AM"
const dateLayout = "2006, January, 02 03:04PM"

// ParseFormat maps a config/flag value to a Format. Empty means text.
func ParseFormat(v string) (Format, error) {
	switch Format(v) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatMsgPack:
		return Format(v), nil
	}
	return "", fmt.Errorf("unsupported output format %q: use text, json or msgpack", v)
}

// Formatter encodes step records and run summaries onto a writer. JSON is
// written one object per line; MessagePack values are written back to back.
type Formatter struct {
	w       io.Writer
	format  Format
	json    *json.Encoder
	msgpack *msgpack.Encoder
}

// NewFormatter creates a formatter writing to w
func NewFormatter(w io.Writer, format Format) *Formatter {
	f := &Formatter{
		w:      w,
		format: format,
	}

	switch format {
	case FormatJSON:
		f.json = json.NewEncoder(w)
	case FormatMsgPack:
		f.msgpack = msgpack.NewEncoder(w)
		f.msgpack.SetCustomStructTag("json") // Use json tags for MessagePack
	}
	return f
}

// WriteStep writes one step record
func (f *Formatter) WriteStep(rec types.StepRecord) error {
	switch f.format {
	case FormatJSON:
		return f.json.Encode(rec)
	case FormatMsgPack:
		return f.msgpack.Encode(rec)
	}

	_, err := fmt.Fprintf(f.w, `
Date: %s
    Temperature: %sC
    Dewpoint: %s
    Humidity: %d%%
    Barometric pressure: %.1f
    Precipitation: %s %s
    Total snow amount: %s meters
`,
		rec.Timestamp.Format(dateLayout),
		formatNumber(rec.Temperature),
		formatNumber(rec.Dewpoint),
		rec.Humidity,
		rec.Pressure,
		rec.Precipitation,
		formatNumber(rec.Amount),
		formatNumber(roundTo(rec.TotalSnow, 3)),
	)
	return err
}

// WriteSummary writes the end-of-run summary
func (f *Formatter) WriteSummary(s simulation.Summary) error {
	switch f.format {
	case FormatJSON:
		return f.json.Encode(s)
	case FormatMsgPack:
		return f.msgpack.Encode(s)
	}

	_, err := fmt.Fprintf(f.w, `
Simulation %s (run %s)
    Steps: %d (%d snow, %d rain, %d with precipitation)
    Mean temperature: %.2fC (stddev %.2f)
    Mean humidity: %.1f%%
    Mean barometric pressure: %.1f
    Peak snow: %s meters
    Final snow: %s meters
`,
		s.Name, s.RunID,
		s.Steps, s.SnowSteps, s.RainSteps, s.WetSteps,
		s.MeanTemperature, s.StdDevTemperature,
		s.MeanHumidity,
		s.MeanPressure,
		formatNumber(roundTo(s.PeakSnow, 3)),
		formatNumber(roundTo(s.FinalSnow, 3)),
	)
	return err
}

// formatNumber prints the shortest representation, keeping whole numbers bare
func formatNumber(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
