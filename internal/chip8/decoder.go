package chip8

// Op identifies the operation of a decoded instruction.
type Op uint8

// Operations of the CHIP-8 instruction set.
// OpUndefined marks a word that matches no operation of a sub-dispatched family.
const (
	OpUndefined       Op = iota
	OpSys             // 0NNN: machine routine call, not supported
	OpClear           // 00E0: clear screen
	OpReturn          // 00EE: return from subroutine
	OpJump            // 1NNN: jump
	OpCall            // 2NNN: call subroutine
	OpSkipEqualImm    // 3XNN: skip if VX == NN
	OpSkipNotEqualImm // 4XNN: skip if VX != NN
	OpSkipEqualReg    // 5XY0: skip if VX == VY
	OpLoadImm         // 6XNN: VX = NN
	OpAddImm          // 7XNN: VX += NN
	OpLoadReg         // 8XY0: VX = VY
	OpOr              // 8XY1: VX |= VY
	OpAnd             // 8XY2: VX &= VY
	OpXor             // 8XY3: VX ^= VY
	OpAddReg          // 8XY4: VX += VY with carry
	OpSub             // 8XY5: VX -= VY with borrow
	OpShiftRight      // 8XY6: VX >>= 1
	OpSubReverse      // 8XY7: VX = VY - VX with borrow
	OpShiftLeft       // 8XYE: VX <<= 1
	OpSkipNotEqualReg // 9XY0: skip if VX != VY
	OpLoadIndex       // ANNN: I = NNN
	OpJumpOffset      // BNNN: jump to NNN + V0
	OpRandom          // CXNN: VX = random & NN
	OpDraw            // DXYN: draw sprite
	OpSkipKey         // EX9E: skip if key VX pressed
	OpSkipNotKey      // EXA1: skip if key VX not pressed
	OpLoadDelay       // FX07: VX = delay timer
	OpWaitKey         // FX0A: wait for key press
	OpSetDelay        // FX15: delay timer = VX
	OpSetSound        // FX18: sound timer = VX
	OpAddIndex        // FX1E: I += VX
	OpLoadFont        // FX29: I = font sprite of VX
	OpStoreBCD        // FX33: store BCD of VX at I
	OpStoreRegisters  // FX55: store registers at I
	OpLoadRegisters   // FX65: load registers from I
)

var opNames = [...]string{
	OpUndefined:       "undefined",
	OpSys:             "sys",
	OpClear:           "clear",
	OpReturn:          "return",
	OpJump:            "jump",
	OpCall:            "call",
	OpSkipEqualImm:    "skip-equal-immediate",
	OpSkipNotEqualImm: "skip-not-equal-immediate",
	OpSkipEqualReg:    "skip-equal-register",
	OpLoadImm:         "load-immediate",
	OpAddImm:          "add-immediate",
	OpLoadReg:         "load-register",
	OpOr:              "or",
	OpAnd:             "and",
	OpXor:             "xor",
	OpAddReg:          "add-register",
	OpSub:             "sub",
	OpShiftRight:      "shift-right",
	OpSubReverse:      "sub-reverse",
	OpShiftLeft:       "shift-left",
	OpSkipNotEqualReg: "skip-not-equal-register",
	OpLoadIndex:       "load-index",
	OpJumpOffset:      "jump-offset",
	OpRandom:          "random",
	OpDraw:            "draw",
	OpSkipKey:         "skip-key",
	OpSkipNotKey:      "skip-not-key",
	OpLoadDelay:       "load-delay",
	OpWaitKey:         "wait-key",
	OpSetDelay:        "set-delay",
	OpSetSound:        "set-sound",
	OpAddIndex:        "add-index",
	OpLoadFont:        "load-font",
	OpStoreBCD:        "store-bcd",
	OpStoreRegisters:  "store-registers",
	OpLoadRegisters:   "load-registers",
}

// String returns the name of the operation.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "undefined"
}

// Instruction is a decoded 16-bit instruction word with its operand fields.
type Instruction struct {
	Op      Op
	Word    uint16 // raw instruction word
	Family  uint8  // top 4 bits
	X       uint8  // register index in bits 8-11
	Y       uint8  // register index in bits 4-7
	N       uint8  // 4-bit immediate
	NN      uint8  // 8-bit immediate
	Address uint16 // 12-bit address
}

// Decode extracts the operand fields of an instruction word and identifies
// its operation. Every word decodes; words that match no operation of the
// 0x8, 0xE and 0xF families decode to OpUndefined.
func Decode(word uint16) Instruction {
	ins := Instruction{
		Word:    word,
		Family:  uint8(word >> 12),
		X:       extractRegisterX(word),
		Y:       extractRegisterY(word),
		N:       uint8(word & 0x000F),
		NN:      uint8(word & 0x00FF),
		Address: word & addressMask,
	}
	ins.Op = decodeOp(ins)
	return ins
}

func decodeOp(ins Instruction) Op {
	switch ins.Family {
	case 0x0:
		switch ins.Word {
		case 0x00E0:
			return OpClear
		case 0x00EE:
			return OpReturn
		}
		return OpSys
	case 0x1:
		return OpJump
	case 0x2:
		return OpCall
	case 0x3:
		return OpSkipEqualImm
	case 0x4:
		return OpSkipNotEqualImm
	case 0x5:
		return OpSkipEqualReg
	case 0x6:
		return OpLoadImm
	case 0x7:
		return OpAddImm
	case 0x8:
		return decodeALU(ins.N)
	case 0x9:
		return OpSkipNotEqualReg
	case 0xA:
		return OpLoadIndex
	case 0xB:
		return OpJumpOffset
	case 0xC:
		return OpRandom
	case 0xD:
		return OpDraw
	case 0xE:
		switch ins.NN {
		case 0x9E:
			return OpSkipKey
		case 0xA1:
			return OpSkipNotKey
		}
	case 0xF:
		return decodeMisc(ins.NN)
	}
	return OpUndefined
}

func decodeALU(n uint8) Op {
	switch n {
	case 0x0:
		return OpLoadReg
	case 0x1:
		return OpOr
	case 0x2:
		return OpAnd
	case 0x3:
		return OpXor
	case 0x4:
		return OpAddReg
	case 0x5:
		return OpSub
	case 0x6:
		return OpShiftRight
	case 0x7:
		return OpSubReverse
	case 0xE:
		return OpShiftLeft
	}
	return OpUndefined
}

func decodeMisc(nn uint8) Op {
	switch nn {
	case 0x07:
		return OpLoadDelay
	case 0x0A:
		return OpWaitKey
	case 0x15:
		return OpSetDelay
	case 0x18:
		return OpSetSound
	case 0x1E:
		return OpAddIndex
	case 0x29:
		return OpLoadFont
	case 0x33:
		return OpStoreBCD
	case 0x55:
		return OpStoreRegisters
	case 0x65:
		return OpLoadRegisters
	}
	return OpUndefined
}

// extractRegisterX extracts the X register nibble from an instruction word.
func extractRegisterX(word uint16) uint8 {
	return uint8((word & 0x0F00) >> 8)
}

// extractRegisterY extracts the Y register nibble from an instruction word.
func extractRegisterY(word uint16) uint8 {
	return uint8((word & 0x00F0) >> 4)
}
