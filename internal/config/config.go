// Package config loads the table setup from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Actor kinds a seat can be played by.
const (
	ActorHuman  = "human"
	ActorSimple = "simple"
	ActorAdHoc  = "adhoc"
)

// Seats is the number of seats at the table.
const Seats = 4

// Config represents the complete table configuration
type Config struct {
	Table  *TableSettings  `hcl:"table,block"`
	Seats  []SeatConfig    `hcl:"seat,block"`
	Equity *EquitySettings `hcl:"equity,block"`
}

// TableSettings contains the stakes and pacing of the game
type TableSettings struct {
	SmallBlind    int    `hcl:"small_blind,optional"`
	BigBlind      int    `hcl:"big_blind,optional"`
	StartingStack int    `hcl:"starting_stack,optional"`
	TickRate      int    `hcl:"tick_rate,optional"`
	ConfirmLock   string `hcl:"confirm_lock,optional"`
}

// SeatConfig defines who plays a seat
type SeatConfig struct {
	Name      string `hcl:"name,label"`
	Actor     string `hcl:"actor"`
	ThinkTime string `hcl:"think_time,optional"`
}

// EquitySettings controls the Monte Carlo estimates of automated seats
type EquitySettings struct {
	Trials  int `hcl:"trials,optional"`
	Workers int `hcl:"workers,optional"`
}

const (
	defaultSmallBlind    = 2
	defaultBigBlind      = 5
	defaultStartingStack = 100
	defaultTickRate      = 15
	defaultConfirmLock   = "500ms"
	defaultThinkTime     = "500ms"
	defaultTrials        = 20000
	defaultWorkers       = 4
)

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	cfg := &Config{
		Seats: []SeatConfig{
			{Name: "You", Actor: ActorHuman},
			{Name: "West", Actor: ActorAdHoc},
			{Name: "North", Actor: ActorAdHoc},
			{Name: "East", Actor: ActorAdHoc},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from an HCL file
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if len(cfg.Seats) == 0 {
		cfg.Seats = DefaultConfig().Seats
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Table == nil {
		c.Table = &TableSettings{}
	}
	if c.Table.SmallBlind == 0 {
		c.Table.SmallBlind = defaultSmallBlind
	}
	if c.Table.BigBlind == 0 {
		c.Table.BigBlind = defaultBigBlind
	}
	if c.Table.StartingStack == 0 {
		c.Table.StartingStack = defaultStartingStack
	}
	if c.Table.TickRate == 0 {
		c.Table.TickRate = defaultTickRate
	}
	if c.Table.ConfirmLock == "" {
		c.Table.ConfirmLock = defaultConfirmLock
	}

	for i := range c.Seats {
		if c.Seats[i].ThinkTime == "" {
			c.Seats[i].ThinkTime = defaultThinkTime
		}
	}

	if c.Equity == nil {
		c.Equity = &EquitySettings{}
	}
	if c.Equity.Trials == 0 {
		c.Equity.Trials = defaultTrials
	}
	if c.Equity.Workers == 0 {
		c.Equity.Workers = defaultWorkers
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	t := c.Table
	if t.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive")
	}
	if t.BigBlind <= t.SmallBlind {
		return fmt.Errorf("big blind must be greater than small blind")
	}
	if t.StartingStack < t.BigBlind {
		return fmt.Errorf("starting stack must cover the big blind")
	}
	if t.TickRate < 1 || t.TickRate > 120 {
		return fmt.Errorf("tick rate must be between 1 and 120, got %d", t.TickRate)
	}
	if _, err := time.ParseDuration(t.ConfirmLock); err != nil {
		return fmt.Errorf("confirm lock: %w", err)
	}

	if len(c.Seats) != Seats {
		return fmt.Errorf("exactly %d seats must be configured, got %d", Seats, len(c.Seats))
	}
	humans := 0
	for _, s := range c.Seats {
		switch s.Actor {
		case ActorHuman:
			humans++
		case ActorSimple, ActorAdHoc:
		default:
			return fmt.Errorf("seat %s: invalid actor %s", s.Name, s.Actor)
		}
		if _, err := time.ParseDuration(s.ThinkTime); err != nil {
			return fmt.Errorf("seat %s: think time: %w", s.Name, err)
		}
	}
	if humans > 1 {
		return fmt.Errorf("at most one human seat is supported, got %d", humans)
	}

	if c.Equity.Trials <= 0 {
		return fmt.Errorf("equity trials must be positive")
	}
	if c.Equity.Workers < 1 || c.Equity.Workers > 64 {
		return fmt.Errorf("equity workers must be between 1 and 64, got %d", c.Equity.Workers)
	}
	return nil
}

// TickInterval returns the time between game updates
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Table.TickRate)
}

// ConfirmLockDuration returns the parsed confirm key lock
func (c *Config) ConfirmLockDuration() time.Duration {
	d, _ := time.ParseDuration(c.Table.ConfirmLock)
	return d
}

// ThinkDuration returns the parsed minimum thinking time of the seat
func (s SeatConfig) ThinkDuration() time.Duration {
	d, _ := time.ParseDuration(s.ThinkTime)
	return d
}
