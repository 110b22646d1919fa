package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" help:"Path to the HCL table configuration" default:"holdem.hcl" type:"path"`
	Seed     int64            `help:"Random seed for shuffles and bots (0 = time based)" default:"0"`
	LogFile  string           `help:"File to write logs to" default:"holdem.log" type:"path"`
	Debug    bool             `help:"Enable debug logging"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play at the table in the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Play hands between bots without the terminal UI"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Four-handed Texas Hold'em in the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// openLog creates the log file and a logger writing to it. The returned
// func closes the file.
func (cli *CLI) openLog() (*log.Logger, func(), error) {
	logFile, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "MAIN",
	})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	return logger, func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}, nil
}
