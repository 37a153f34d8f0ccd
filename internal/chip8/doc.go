// Package chip8 implements a CHIP-8 virtual machine core.
//
// # Machine State
//
// The CPU owns all machine state exclusively:
//   - 4KB of memory (0x000-MaxAddress), programs are loaded at ProgramStart
//   - 16 general-purpose 8-bit registers V0-VF, VF doubles as the flag register
//   - a 16-bit index register I and a 16-bit program counter
//   - a call stack bounded to StackLimit return addresses
//   - a 64x32 monochrome framebuffer stored as one uint64 per row
//
// The region ReservedStart-MaxAddress is kept free of program data, images
// larger than MaxProgramSize are truncated on load.
//
// # Execution
//
// Step fetches the big-endian instruction word at PC, decodes it into an
// Instruction and executes it. Recoverable problems (undefined instruction,
// stack overflow, stack underflow) are returned as errors after the step has
// completed; the machine state is always consistent afterwards.
//
// Run drives Step until the execution budget is used up or the program
// counter stops advancing, which happens on an unconditional jump to itself
// or a return with an empty stack.
//
// # Peripherals
//
// Keypad, delay timer, sound timer, font sprites and BCD conversion are not
// wired. The corresponding opcodes are decoded and only advance the program
// counter.
//
// # Usage Example
//
//	cpu := chip8.New(chip8.Options{Logger: logger})
//	cpu.Load(image)
//	result, err := cpu.Run(ctx, 1000)
package chip8
