package config

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/chrissnell/snowsim/internal/constants"
	_ "modernc.org/sqlite"
)

// Schema creates the tables the SQLite provider reads and writes
const Schema = `
CREATE TABLE IF NOT EXISTS simulations (
	name                     TEXT PRIMARY KEY,
	preset                   TEXT,
	start_time               TEXT,
	until_time               TEXT,
	steps                    INTEGER,
	step_minutes             INTEGER,
	seed                     INTEGER,
	duration                 REAL,
	temp_min                 INTEGER,
	temp_max                 INTEGER,
	temp_continuous          INTEGER,
	humidity_low             INTEGER,
	humidity_high            INTEGER,
	humidity_step            INTEGER,
	pressure_min             REAL,
	pressure_max             REAL,
	snow_threshold_inclusive INTEGER,
	band_mode                TEXT,
	apply_melt               INTEGER,
	updated_at               TEXT
);

CREATE TABLE IF NOT EXISTS output_configs (
	simulation_name TEXT PRIMARY KEY REFERENCES simulations(name) ON DELETE CASCADE,
	format          TEXT,
	final_only      INTEGER
);
`

// SQLiteProvider implements ConfigProvider for SQLite database configuration.
// It reads a single named simulation, "default" unless changed with UseSimulation.
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
	name   string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
		name:   constants.DefaultSimulationName,
	}, nil
}

// UseSimulation selects which simulation row the provider loads
func (s *SQLiteProvider) UseSimulation(name string) {
	if name != "" {
		s.name = name
	}
}

// InitSchema creates the configuration tables if they don't exist
func (s *SQLiteProvider) InitSchema() error {
	if _, err := s.db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// LoadConfig loads the complete configuration from SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	sim, err := s.GetSimulation()
	if err != nil {
		return nil, fmt.Errorf("failed to load simulation: %w", err)
	}

	output, err := s.GetOutput()
	if err != nil {
		return nil, fmt.Errorf("failed to load output config: %w", err)
	}

	return &ConfigData{
		Simulation: *sim,
		Output:     *output,
	}, nil
}

// GetSimulation returns the selected simulation from the database
func (s *SQLiteProvider) GetSimulation() (*SimulationData, error) {
	query := `
		SELECT name, preset, start_time, until_time, steps, step_minutes, seed, duration,
		       temp_min, temp_max, temp_continuous,
		       humidity_low, humidity_high, humidity_step,
		       pressure_min, pressure_max,
		       snow_threshold_inclusive, band_mode, apply_melt
		FROM simulations
		WHERE name = ?
	`

	var sim SimulationData
	var preset, start, until, bandMode sql.NullString
	var steps, stepMinutes, seed sql.NullInt64
	var tempMin, tempMax, tempContinuous sql.NullInt64
	var humLow, humHigh, humStep sql.NullInt64
	var duration, pressureMin, pressureMax sql.NullFloat64
	var inclusive, applyMelt sql.NullInt64

	err := s.db.QueryRow(query, s.name).Scan(
		&sim.Name, &preset, &start, &until, &steps, &stepMinutes, &seed, &duration,
		&tempMin, &tempMax, &tempContinuous,
		&humLow, &humHigh, &humStep,
		&pressureMin, &pressureMax,
		&inclusive, &bandMode, &applyMelt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("simulation %q not found: %w", s.name, err)
		}
		return nil, fmt.Errorf("failed to query simulation: %w", err)
	}

	sim.Preset = preset.String
	sim.Start = start.String
	sim.Until = until.String
	sim.BandMode = bandMode.String
	sim.Steps = int(steps.Int64)
	sim.StepMinutes = int(stepMinutes.Int64)
	sim.Duration = duration.Float64

	if seed.Valid {
		v := seed.Int64
		sim.Seed = &v
	}
	if tempMin.Valid && tempMax.Valid {
		sim.Temperature = &TemperatureData{
			Min:        int(tempMin.Int64),
			Max:        int(tempMax.Int64),
			Continuous: tempContinuous.Valid && tempContinuous.Int64 != 0,
		}
	}
	if humLow.Valid && humHigh.Valid && humStep.Valid {
		sim.Humidity = &HumidityData{
			Low:  int(humLow.Int64),
			High: int(humHigh.Int64),
			Step: int(humStep.Int64),
		}
	}
	if pressureMin.Valid && pressureMax.Valid {
		sim.Pressure = &PressureData{
			Min: pressureMin.Float64,
			Max: pressureMax.Float64,
		}
	}
	if inclusive.Valid {
		sim.SnowThresholdInclusive = boolPtr(inclusive.Int64 != 0)
	}
	if applyMelt.Valid {
		sim.ApplyMelt = boolPtr(applyMelt.Int64 != 0)
	}

	return &sim, nil
}

// GetOutput returns the output settings for the selected simulation. A missing
// row is not an error; defaults apply.
func (s *SQLiteProvider) GetOutput() (*OutputData, error) {
	var output OutputData
	var format sql.NullString
	var finalOnly sql.NullInt64

	err := s.db.QueryRow(`SELECT format, final_only FROM output_configs WHERE simulation_name = ?`, s.name).
		Scan(&format, &finalOnly)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &output, nil
		}
		return nil, fmt.Errorf("failed to query output config: %w", err)
	}

	output.Format = format.String
	output.FinalOnly = finalOnly.Valid && finalOnly.Int64 != 0
	return &output, nil
}

// ListSimulations returns the names of all stored simulations
func (s *SQLiteProvider) ListSimulations() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM simulations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query simulations: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan simulation row: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// IsReadOnly returns false since SQLite configuration can be modified
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveConfig writes configData as the simulation named in it, replacing any
// existing row of that name.
func (s *SQLiteProvider) SaveConfig(configData *ConfigData) error {
	sim := configData.Simulation
	if sim.Name == "" {
		sim.Name = s.name
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.insertSimulation(tx, &sim); err != nil {
		return fmt.Errorf("failed to insert simulation %s: %w", sim.Name, err)
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO output_configs (simulation_name, format, final_only) VALUES (?, ?, ?)`,
		sim.Name, nullString(configData.Output.Format), boolInt(configData.Output.FinalOnly))
	if err != nil {
		return fmt.Errorf("failed to insert output config: %w", err)
	}

	return tx.Commit()
}

func (s *SQLiteProvider) insertSimulation(tx *sql.Tx, sim *SimulationData) error {
	query := `
		INSERT OR REPLACE INTO simulations (
			name, preset, start_time, until_time, steps, step_minutes, seed, duration,
			temp_min, temp_max, temp_continuous,
			humidity_low, humidity_high, humidity_step,
			pressure_min, pressure_max,
			snow_threshold_inclusive, band_mode, apply_melt, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))
	`

	var tempMin, tempMax, tempContinuous sql.NullInt64
	if sim.Temperature != nil {
		tempMin = sql.NullInt64{Int64: int64(sim.Temperature.Min), Valid: true}
		tempMax = sql.NullInt64{Int64: int64(sim.Temperature.Max), Valid: true}
		tempContinuous = sql.NullInt64{Int64: boolInt(sim.Temperature.Continuous), Valid: true}
	}

	var humLow, humHigh, humStep sql.NullInt64
	if sim.Humidity != nil {
		humLow = sql.NullInt64{Int64: int64(sim.Humidity.Low), Valid: true}
		humHigh = sql.NullInt64{Int64: int64(sim.Humidity.High), Valid: true}
		humStep = sql.NullInt64{Int64: int64(sim.Humidity.Step), Valid: true}
	}

	var pressureMin, pressureMax sql.NullFloat64
	if sim.Pressure != nil {
		pressureMin = sql.NullFloat64{Float64: sim.Pressure.Min, Valid: true}
		pressureMax = sql.NullFloat64{Float64: sim.Pressure.Max, Valid: true}
	}

	var seed sql.NullInt64
	if sim.Seed != nil {
		seed = sql.NullInt64{Int64: *sim.Seed, Valid: true}
	}

	_, err := tx.Exec(query,
		sim.Name, nullString(sim.Preset), nullString(sim.Start), nullString(sim.Until),
		nullInt64(sim.Steps), nullInt64(sim.StepMinutes), seed, nullFloat64(sim.Duration),
		tempMin, tempMax, tempContinuous,
		humLow, humHigh, humStep,
		pressureMin, pressureMax,
		nullBool(sim.SnowThresholdInclusive), nullString(sim.BandMode), nullBool(sim.ApplyMelt),
	)
	return err
}

// Helper functions for handling nullable fields
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt64(i int) sql.NullInt64 {
	if i == 0 {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: int64(i), Valid: true}
}

func nullFloat64(f float64) sql.NullFloat64 {
	if f == 0 {
		return sql.NullFloat64{Valid: false}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

func nullBool(b *bool) sql.NullInt64 {
	if b == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: boolInt(*b), Valid: true}
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
