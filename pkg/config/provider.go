package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetSimulation() (*SimulationData, error)
	GetOutput() (*OutputData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Simulation SimulationData `json:"simulation"`
	Output     OutputData     `json:"output,omitempty"`
}

// SimulationData describes one simulation run. Zero values and nil pointers
// mean "take the value from the preset".
type SimulationData struct {
	Name        string `json:"name"`
	Preset      string `json:"preset,omitempty"`
	Start       string `json:"start,omitempty"`
	Until       string `json:"until,omitempty"`
	Steps       int    `json:"steps,omitempty"`
	StepMinutes int    `json:"step_minutes,omitempty"`
	Seed        *int64 `json:"seed,omitempty"`

	// Duration multiplies every precipitation amount
	Duration float64 `json:"duration,omitempty"`

	Temperature *TemperatureData `json:"temperature,omitempty"`
	Humidity    *HumidityData    `json:"humidity,omitempty"`
	Pressure    *PressureData    `json:"pressure,omitempty"`

	SnowThresholdInclusive *bool  `json:"snow_threshold_inclusive,omitempty"`
	BandMode               string `json:"band_mode,omitempty"`
	ApplyMelt              *bool  `json:"apply_melt,omitempty"`
}

// TemperatureData bounds generated temperatures in °C
type TemperatureData struct {
	Min        int  `json:"min"`
	Max        int  `json:"max"`
	Continuous bool `json:"continuous,omitempty"`
}

// HumidityData is the stepped humidity progression; High is exclusive
type HumidityData struct {
	Low  int `json:"low"`
	High int `json:"high"`
	Step int `json:"step"`
}

// PressureData bounds generated barometric pressure in hPa
type PressureData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// OutputData controls how step records are rendered
type OutputData struct {
	Format    string `json:"format,omitempty"`
	FinalOnly bool   `json:"final_only,omitempty"`
}
