// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string // program image file
	Script string // Lua inspection script run after execution
}

// Flags contains behavior options.
type Flags struct {
	Steps      int    // execution budget
	EntryPoint uint16 // address execution starts at
	Seed       uint64 // random seed, 0 seeds from the clock

	InclusiveTransfer bool // FX55/FX65 include VX

	Trace  bool
	Window bool
	Debug  bool
	Quiet  bool
}

// OutputFlags contains report options.
type OutputFlags struct {
	Dump      bool // program image bytes, printed before the run
	Screen    bool
	Registers bool
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Default values of the program options.
const (
	DefaultSteps      = 1000
	DefaultEntryPoint = 0x200
)
