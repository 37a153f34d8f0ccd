// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args)
}

func parseArgs(args []string) (options.Program, error) {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	// usage and parse errors are reported through UsageError
	flags.SetOutput(io.Discard)
	var opts options.Program
	entry := readOptionFlags(flags, &opts)

	err := flags.Parse(args[1:])
	if err != nil {
		usageErr := &UsageError{flags: flags}
		if !errors.Is(err, flag.ErrHelp) {
			usageErr.msg = err.Error()
		}
		return opts, usageErr
	}
	positional := flags.Args()
	if len(positional) == 0 && opts.Input == "" {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(positional); err != nil {
		return opts, err
	}
	if len(positional) > 0 {
		opts.Input = positional[0]
	}

	if err := normalizeOptions(&opts, *entry); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <program file>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions validates option values and parses the entry point.
func normalizeOptions(opts *options.Program, entry string) error {
	if opts.Steps <= 0 {
		return fmt.Errorf("invalid step count %d: must be positive", opts.Steps)
	}

	address, err := strconv.ParseUint(entry, 0, 16)
	if err != nil {
		return fmt.Errorf("invalid entry point '%s': %w", entry, err)
	}
	if address < options.DefaultEntryPoint || address > 0xFFF || address%2 != 0 {
		return fmt.Errorf("invalid entry point $%X: %w", address, errInvalidEntryPoint)
	}
	opts.EntryPoint = uint16(address)

	if opts.Debug && opts.Quiet {
		opts.Quiet = false
	}
	return nil
}

var errInvalidEntryPoint = errors.New("must be an even address from $200 to $FFE")

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) *string {
	flags.StringVar(&opts.Input, "i", "", "name of the program image file")
	flags.StringVar(&opts.Script, "script", "", "Lua script to run against the machine state after execution")
	flags.IntVar(&opts.Steps, "steps", options.DefaultSteps, "maximum number of instructions to execute")
	entry := flags.String("entry", fmt.Sprintf("0x%X", options.DefaultEntryPoint), "entry point address, hex values need a 0x prefix")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 seeds from the clock")
	flags.BoolVar(&opts.InclusiveTransfer, "inclusive-transfer", false, "FX55/FX65 transfer V0 through VX instead of V0 through VX-1")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction")
	flags.BoolVar(&opts.Window, "window", false, "show the display in a window while running")
	flags.BoolVar(&opts.Screen, "screen", true, "print the display after execution")
	flags.BoolVar(&opts.Registers, "regs", true, "print the registers after execution")
	flags.BoolVar(&opts.Dump, "dump", false, "print every byte of the program image before execution")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	return entry
}
