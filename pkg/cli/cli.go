// Package cli parses command line arguments, environment variables and the
// optional advent.toml file into one Config. Precedence is flags, then
// environment, then advent.toml, then built-in defaults.
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Policy names accepted by --policy.
const (
	PolicyBatch       = "batch"
	PolicyInteractive = "interactive"
)

// Config holds the parsed runtime configuration.
type Config struct {
	InputDir      string  // directory holding day<N>.txt puzzle inputs
	Days          []int   // days to run; empty means every solved day
	Program       string  // ad-hoc machine program file (--run)
	MachineInputs []int64 // inputs fed to the ad-hoc program
	Policy        string  // input starvation policy: batch or interactive
	LogLevel      string  // debug, info, warn, error
	Autopilot     bool    // arcade: let the cabinet track the ball
	Speed         int     // arcade: screen frames per game frame; higher is slower
	ShowHelp      bool    // help display flag
}

// ParseArgs parses command line arguments into a Config. The advent.toml
// lookup starts from the current directory.
func ParseArgs(args []string) (*Config, error) {
	return ParseArgsIn(".", args)
}

// ParseArgsIn is ParseArgs with an explicit starting directory for the
// advent.toml lookup.
func ParseArgsIn(startDir string, args []string) (*Config, error) {
	// Reorder arguments: flags first, positional arguments last
	reorderedArgs := reorderArgs(args)

	fs := flag.NewFlagSet("advent", flag.ContinueOnError)

	config := &Config{}

	var days string
	var inputs string
	fs.StringVar(&config.InputDir, "input", "", "directory holding puzzle inputs")
	fs.StringVar(&config.InputDir, "i", "", "directory holding puzzle inputs (shorthand)")
	fs.StringVar(&days, "days", "", "days to run, e.g. 2,5,9-13")
	fs.StringVar(&days, "d", "", "days to run (shorthand)")
	fs.StringVar(&config.Program, "run", "", "run a machine program file instead of day solutions")
	fs.StringVar(&inputs, "inputs", "", "comma separated inputs for --run")
	fs.StringVar(&config.Policy, "policy", "", "input starvation policy: batch or interactive")
	fs.StringVar(&config.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&config.LogLevel, "l", "", "log level (shorthand)")
	fs.BoolVar(&config.Autopilot, "autopilot", false, "arcade: let the paddle track the ball")
	fs.BoolVar(&config.Autopilot, "a", false, "arcade: autopilot (shorthand)")
	fs.IntVar(&config.Speed, "speed", 0, "arcade: screen frames per game frame")
	fs.BoolVar(&config.ShowHelp, "help", false, "show this help")
	fs.BoolVar(&config.ShowHelp, "h", false, "show this help (shorthand)")

	if err := fs.Parse(reorderedArgs); err != nil {
		return nil, err
	}

	// Positional arguments are day numbers, same as --days
	if fs.NArg() > 0 && days == "" {
		days = strings.Join(fs.Args(), ",")
	}
	if days != "" {
		parsed, err := parseDays(days)
		if err != nil {
			return nil, err
		}
		config.Days = parsed
	}

	// Environment variables (command line flags take precedence)
	if config.InputDir == "" {
		config.InputDir = os.Getenv("ADVENT_INPUT")
	}
	if config.LogLevel == "" {
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			config.LogLevel = strings.ToLower(logLevelEnv)
		}
	}

	// advent.toml (flags and environment take precedence)
	file, err := FindAndLoadFile(startDir)
	if err != nil {
		return nil, err
	}
	if file != nil {
		if config.InputDir == "" {
			config.InputDir = file.InputPath()
		}
		if len(config.Days) == 0 {
			config.Days = file.Days
		}
		if config.LogLevel == "" {
			config.LogLevel = file.LogLevel
		}
		if config.Policy == "" {
			config.Policy = file.Policy
		}
		if !config.Autopilot {
			config.Autopilot = file.Arcade.Autopilot
		}
		if config.Speed == 0 {
			config.Speed = file.Arcade.Speed
		}
	}

	// Built-in defaults
	if config.InputDir == "" {
		config.InputDir = "inputs"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.Policy == "" {
		config.Policy = PolicyBatch
	}
	if config.Speed == 0 {
		config.Speed = 1
	}

	if inputs != "" {
		config.MachineInputs, err = parseInputs(inputs)
		if err != nil {
			return nil, err
		}
	}

	// Validation
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[config.LogLevel] {
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", config.LogLevel)
	}
	if config.Policy != PolicyBatch && config.Policy != PolicyInteractive {
		return nil, fmt.Errorf("invalid policy: %s (must be batch or interactive)", config.Policy)
	}
	if config.Speed < 1 {
		return nil, fmt.Errorf("speed must be positive, got %d", config.Speed)
	}
	for _, d := range config.Days {
		if d < 1 || d > 25 {
			return nil, fmt.Errorf("invalid day: %d (must be between 1 and 25)", d)
		}
	}

	return config, nil
}

// parseDays parses a day list such as "2,5,9-13".
func parseDays(s string) ([]int, error) {
	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if lo, hi, ok := strings.Cut(part, "-"); ok {
			start, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("invalid day range %q: %w", part, err)
			}
			end, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("invalid day range %q: %w", part, err)
			}
			if end < start {
				return nil, fmt.Errorf("invalid day range %q: end before start", part)
			}
			for d := start; d <= end; d++ {
				days = append(days, d)
			}
			continue
		}

		d, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q: %w", part, err)
		}
		days = append(days, d)
	}
	return days, nil
}

// parseInputs parses the comma separated --inputs value list.
func parseInputs(s string) ([]int64, error) {
	var values []int64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid input value %q: %w", part, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// reorderArgs rearranges arguments so flags come first and positional
// arguments last, letting "advent 5 --log-level debug" work.
func reorderArgs(args []string) []string {
	var flags []string
	var positional []string

	boolFlags := map[string]bool{
		"-h": true, "--help": true,
		"-a": true, "--autopilot": true,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// Negative numbers are positional, not flags
		if len(arg) > 1 && arg[0] == '-' && (arg[1] < '0' || arg[1] > '9') {
			flags = append(flags, arg)

			// Value flags consume the next argument (-d 5 style)
			if !boolFlags[arg] && !strings.Contains(arg, "=") &&
				i+1 < len(args) && len(args[i+1]) > 0 && args[i+1][0] != '-' {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, arg)
		}
	}

	return append(flags, positional...)
}

// PrintHelp prints the usage message.
func PrintHelp() {
	fmt.Fprintf(os.Stdout, `advent - Advent of Code 2019 solutions

Usage:
  advent [options] [days...]

Arguments:
  days...       day numbers to run (default: every solved day)

Options:
  -i, --input <dir>           directory holding day<N>.txt inputs (default: inputs)
  -d, --days <list>           days to run, e.g. 2,5,9-13
  --run <file>                run a machine program file instead of day solutions
  --inputs <list>             comma separated input values for --run
  --policy <name>             input starvation policy: batch or interactive (default: batch)
  -l, --log-level <level>     log level: debug, info, warn, error (default: info)
  -a, --autopilot             arcade: let the paddle track the ball
  --speed <n>                 arcade: screen frames per game frame (default: 1)
  -h, --help                  show this help

Environment Variables:
  ADVENT_INPUT=<dir>          input directory
  LOG_LEVEL=<level>           log level

Configuration:
  advent.toml                 searched upward from the working directory;
                              flags and environment variables override it

Examples:
  advent                      run every solved day
  advent 13                   run day 13
  advent -d 1-5 -i ./inputs   run days 1 through 5
  advent --run prog.txt --inputs 1,2
  LOG_LEVEL=debug advent 9    debug logging via environment variable
`)
}
