package chip8

// CHIP-8 memory layout constants.
//
//	0x000-0x1FF: Interpreter area, unused
//	0x200-0xE9F: Program image
//	0xEA0-0xFFF: Reserved, historically the call stack and interpreter variables
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// ProgramStart is the memory address where programs are loaded and start execution.
	ProgramStart = 0x200

	// ReservedStart is the first address of the reserved high memory region.
	ReservedStart = 0xEA0

	// MaxAddress is the highest valid address in memory.
	MaxAddress = 0xFFF

	// MaxProgramSize is the largest program image that can be loaded.
	MaxProgramSize = ReservedStart - ProgramStart
)

// addressMask limits addresses to the 12-bit address space.
const addressMask = 0x0FFF

// Memory is the 4KB address space of the machine.
// All accesses are masked to 12 bits so they always resolve inside the array.
type Memory [MemorySize]byte

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) byte {
	return m[address&addressMask]
}

// Write sets the byte at the given address.
func (m *Memory) Write(address uint16, value byte) {
	m[address&addressMask] = value
}

// ReadWord returns the big-endian 16-bit word at the given address.
func (m *Memory) ReadWord(address uint16) uint16 {
	return uint16(m.Read(address))<<8 | uint16(m.Read(address+1))
}

// Slice returns a copy of length bytes starting at address, wrapping at the
// end of the address space.
func (m *Memory) Slice(address uint16, length int) []byte {
	data := make([]byte, length)
	for i := range data {
		data[i] = m.Read(address + uint16(i))
	}
	return data
}
