// Package app wires the command line, configuration, logging and solvers
// into the runnable applications.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/zephyrix/advent2019/pkg/cli"
	"github.com/zephyrix/advent2019/pkg/fileutil"
	"github.com/zephyrix/advent2019/pkg/game"
	"github.com/zephyrix/advent2019/pkg/intcode"
	"github.com/zephyrix/advent2019/pkg/logger"
	"github.com/zephyrix/advent2019/pkg/solutions"
)

// Application manages the main flow of the solver and arcade binaries.
type Application struct {
	config *cli.Config
	log    *slog.Logger
	stdout io.Writer
}

// New creates an Application writing answers to stdout.
func New() *Application {
	return &Application{
		stdout: os.Stdout,
	}
}

// Run executes the solver application.
func (app *Application) Run(args []string) error {
	// 1. Parse command line arguments and configuration
	if err := app.parseArgs(args); err != nil {
		return fmt.Errorf("failed to parse args: %w", err)
	}

	if app.config.ShowHelp {
		cli.PrintHelp()
		return nil
	}

	// 2. Initialize the logger
	if err := app.initLogger(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// 3. Ad-hoc program mode: run one machine program and print its output
	if app.config.Program != "" {
		if err := app.runProgram(); err != nil {
			return fmt.Errorf("failed to run program: %w", err)
		}
		return nil
	}

	// 4. Run the requested day solvers
	days := app.config.Days
	if len(days) == 0 {
		days = solutions.Days()
	}

	for _, day := range days {
		if err := app.runDay(day); err != nil {
			return err
		}
	}

	app.log.Debug("all days solved", "count", len(days))
	return nil
}

// RunArcade executes the playable arcade application. The game program
// comes from --run or from the day 13 puzzle input.
func (app *Application) RunArcade(args []string) error {
	if err := app.parseArgs(args); err != nil {
		return fmt.Errorf("failed to parse args: %w", err)
	}

	if app.config.ShowHelp {
		cli.PrintHelp()
		return nil
	}

	if err := app.initLogger(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	program, err := app.loadArcadeProgram()
	if err != nil {
		return fmt.Errorf("failed to load game program: %w", err)
	}

	app.log.Info("starting arcade", "autopilot", app.config.Autopilot, "speed", app.config.Speed)

	return game.Run(program, game.Options{
		Autopilot: app.config.Autopilot,
		Speed:     app.config.Speed,
		ShowFPS:   true,
	})
}

func (app *Application) parseArgs(args []string) error {
	config, err := cli.ParseArgs(args)
	if err != nil {
		return err
	}
	app.config = config
	return nil
}

func (app *Application) initLogger() error {
	if err := logger.Init(app.config.LogLevel); err != nil {
		return err
	}
	app.log = logger.Get()
	return nil
}

func (app *Application) policy() intcode.Policy {
	if app.config.Policy == cli.PolicyInteractive {
		return intcode.PolicyInteractive
	}
	return intcode.PolicyBatch
}

// runDay loads the day's input, solves it and prints the answers.
func (app *Application) runDay(day int) error {
	input, err := fileutil.ReadInput(app.config.InputDir, day)
	if err != nil {
		return fmt.Errorf("failed to read input for day %d: %w", day, err)
	}

	app.log.Debug("solving", "day", day, "input_bytes", len(input))

	result, err := solutions.Run(day, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "Day %d\n", day)
	fmt.Fprintf(app.stdout, "  Part 1: %s\n", result.Part1)
	if result.Part2 != "" {
		fmt.Fprintf(app.stdout, "  Part 2: %s\n", result.Part2)
	}
	return nil
}

// runProgram executes one machine program file with the configured inputs
// and starvation policy, printing each output on its own line.
func (app *Application) runProgram() error {
	source, err := os.ReadFile(app.config.Program)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", app.config.Program, err)
	}

	program, err := intcode.ParseProgram(string(source))
	if err != nil {
		return err
	}

	machine := intcode.New(program, app.policy())
	machine.PushInput(app.config.MachineInputs...)

	if err := machine.Run(); err != nil {
		return err
	}
	if machine.State() == intcode.StateAwaitingInput {
		app.log.Warn("program stopped awaiting input", "outputs", len(machine.Outputs()))
	}

	for _, v := range machine.DrainOutput() {
		fmt.Fprintf(app.stdout, "%d\n", v)
	}
	return nil
}

// loadArcadeProgram reads the game program from --run or the day 13 input.
func (app *Application) loadArcadeProgram() (intcode.Program, error) {
	if app.config.Program != "" {
		source, err := os.ReadFile(app.config.Program)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", app.config.Program, err)
		}
		return intcode.ParseProgram(string(source))
	}

	input, err := fileutil.ReadInput(app.config.InputDir, 13)
	if err != nil {
		return nil, err
	}
	return intcode.ParseProgram(input)
}
