package chip8

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Register file constants.
const (
	RegisterCount = 16
	FlagRegister  = 0xF
)

// instructionSize is the size of an instruction word in bytes.
const instructionSize = 2

// Recoverable execution errors. The step that returns them has completed and
// left the machine in a consistent state.
var (
	ErrUndefinedInstruction = errors.New("undefined instruction")
	ErrStackOverflow        = errors.New("stack overflow")
	ErrStackUnderflow       = errors.New("stack underflow")
)

// RandomSource provides the bytes consumed by the random AND mask instruction.
// It must not block.
type RandomSource interface {
	Byte() byte
}

// Tracer is called with the address and the decoded instruction before the
// instruction is executed.
type Tracer func(address uint16, ins Instruction)

// Quirks selects between behaviors that differ across interpreters.
type Quirks struct {
	// InclusiveRegisterTransfer makes FX55 and FX65 transfer V0 through VX.
	// By default only V0 through V(X-1) are transferred.
	InclusiveRegisterTransfer bool
}

// Options configures a CPU.
type Options struct {
	EntryPoint uint16 // defaults to ProgramStart
	Random     RandomSource
	Quirks     Quirks
	Logger     *log.Logger
	Tracer     Tracer
}

// CPU holds the complete machine state and executes instructions.
type CPU struct {
	logger *log.Logger
	random RandomSource
	quirks Quirks
	tracer Tracer
	entry  uint16

	memory  Memory
	v       [RegisterCount]byte
	index   uint16
	pc      uint16
	stack   Stack
	display Framebuffer

	reported set.Set[uint16] // addresses that already logged a diagnostic
}

// New returns a new CPU with zeroed state and the program counter at the
// configured entry point.
func New(opts Options) *CPU {
	if opts.EntryPoint == 0 {
		opts.EntryPoint = ProgramStart
	}
	if opts.Random == nil {
		opts.Random = NewRandomSource(0)
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithConfig(log.DefaultConfig())
	}

	c := &CPU{
		logger: opts.Logger,
		random: opts.Random,
		quirks: opts.Quirks,
		tracer: opts.Tracer,
		entry:  opts.EntryPoint & addressMask,
	}
	c.Reset()
	return c
}

// Reset zeroes all machine state and sets the program counter to the entry point.
func (c *CPU) Reset() {
	c.memory = Memory{}
	c.v = [RegisterCount]byte{}
	c.index = 0
	c.pc = c.entry
	c.stack.Reset()
	c.display.Clear()
	c.reported = set.New[uint16]()
}

// Load resets the machine and copies the program image to ProgramStart.
// Images larger than MaxProgramSize are truncated; the number of dropped
// bytes is returned.
func (c *CPU) Load(image []byte) int {
	c.Reset()

	var dropped int
	if len(image) > MaxProgramSize {
		dropped = len(image) - MaxProgramSize
		c.logger.Warn("Program image too large, truncating",
			log.String("size", fmt.Sprintf("%d", len(image))),
			log.String("dropped", fmt.Sprintf("%d", dropped)))
		image = image[:MaxProgramSize]
	}
	copy(c.memory[ProgramStart:], image)
	return dropped
}

// Step executes a single instruction.
func (c *CPU) Step() error {
	address := c.pc
	ins := Decode(c.memory.ReadWord(address))
	if c.tracer != nil {
		c.tracer(address, ins)
	}

	if err := c.execute(ins); err != nil {
		return fmt.Errorf("executing $%04X at $%03X: %w", ins.Word, address, err)
	}
	return nil
}

// PC returns the program counter.
func (c *CPU) PC() uint16 {
	return c.pc
}

// Index returns the index register.
func (c *CPU) Index() uint16 {
	return c.index
}

// Register returns the value of register V0-VF.
func (c *CPU) Register(i int) byte {
	return c.v[i&0xF]
}

// SetRegister sets the value of register V0-VF.
func (c *CPU) SetRegister(i int, value byte) {
	c.v[i&0xF] = value
}

// Registers returns a copy of the general purpose registers.
func (c *CPU) Registers() [RegisterCount]byte {
	return c.v
}

// StackDepth returns the number of return addresses on the call stack.
func (c *CPU) StackDepth() int {
	return c.stack.Depth()
}

// Stack returns a copy of the call stack return addresses, oldest first.
func (c *CPU) Stack() []uint16 {
	return c.stack.Entries()
}

// Memory returns the memory of the machine.
func (c *CPU) Memory() *Memory {
	return &c.memory
}

// Framebuffer returns the display of the machine.
func (c *CPU) Framebuffer() *Framebuffer {
	return &c.display
}
