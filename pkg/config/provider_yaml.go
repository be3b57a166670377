package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// SimulationYAML mirrors SimulationData with YAML tags
type SimulationYAML struct {
	Name        string `yaml:"name,omitempty"`
	Preset      string `yaml:"preset,omitempty"`
	Start       string `yaml:"start,omitempty"`
	Until       string `yaml:"until,omitempty"`
	Steps       int    `yaml:"steps,omitempty"`
	StepMinutes int    `yaml:"step-minutes,omitempty"`
	Seed        *int64 `yaml:"seed,omitempty"`

	Duration float64 `yaml:"duration,omitempty"`

	Temperature *struct {
		Min        int  `yaml:"min"`
		Max        int  `yaml:"max"`
		Continuous bool `yaml:"continuous,omitempty"`
	} `yaml:"temperature,omitempty"`
	Humidity *struct {
		Low  int `yaml:"low"`
		High int `yaml:"high"`
		Step int `yaml:"step"`
	} `yaml:"humidity,omitempty"`
	Pressure *struct {
		Min float64 `yaml:"min"`
		Max float64 `yaml:"max"`
	} `yaml:"pressure,omitempty"`

	SnowThresholdInclusive *bool  `yaml:"snow-threshold-inclusive,omitempty"`
	BandMode               string `yaml:"band-mode,omitempty"`
	ApplyMelt              *bool  `yaml:"apply-melt,omitempty"`
}

// OutputYAML mirrors OutputData with YAML tags
type OutputYAML struct {
	Format    string `yaml:"format,omitempty"`
	FinalOnly bool   `yaml:"final-only,omitempty"`
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	config, err := ParseYAML(cfgFile)
	if err != nil {
		return nil, err
	}

	y.config = config
	return config, nil
}

// ParseYAML converts raw YAML into ConfigData
func ParseYAML(data []byte) (*ConfigData, error) {
	var yamlConfig struct {
		Simulation SimulationYAML `yaml:"simulation"`
		Output     OutputYAML     `yaml:"output,omitempty"`
	}

	if err := yaml.Unmarshal(data, &yamlConfig); err != nil {
		return nil, err
	}

	sim := yamlConfig.Simulation
	config := &ConfigData{
		Simulation: SimulationData{
			Name:                   sim.Name,
			Preset:                 sim.Preset,
			Start:                  sim.Start,
			Until:                  sim.Until,
			Steps:                  sim.Steps,
			StepMinutes:            sim.StepMinutes,
			Seed:                   sim.Seed,
			Duration:               sim.Duration,
			SnowThresholdInclusive: sim.SnowThresholdInclusive,
			BandMode:               sim.BandMode,
			ApplyMelt:              sim.ApplyMelt,
		},
		Output: OutputData{
			Format:    yamlConfig.Output.Format,
			FinalOnly: yamlConfig.Output.FinalOnly,
		},
	}

	if sim.Temperature != nil {
		config.Simulation.Temperature = &TemperatureData{
			Min:        sim.Temperature.Min,
			Max:        sim.Temperature.Max,
			Continuous: sim.Temperature.Continuous,
		}
	}
	if sim.Humidity != nil {
		config.Simulation.Humidity = &HumidityData{
			Low:  sim.Humidity.Low,
			High: sim.Humidity.High,
			Step: sim.Humidity.Step,
		}
	}
	if sim.Pressure != nil {
		config.Simulation.Pressure = &PressureData{
			Min: sim.Pressure.Min,
			Max: sim.Pressure.Max,
		}
	}

	return config, nil
}

// GetSimulation returns the simulation section
func (y *YAMLProvider) GetSimulation() (*SimulationData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Simulation, nil
}

// GetOutput returns the output section
func (y *YAMLProvider) GetOutput() (*OutputData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Output, nil
}

// IsReadOnly returns true since YAML files are read-only through this interface
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}
