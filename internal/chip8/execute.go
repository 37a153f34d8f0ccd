package chip8

// execute mutates the machine state according to the instruction and
// advances the program counter unless the instruction sets it.
func (c *CPU) execute(ins Instruction) error {
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpSys:
		c.advance()

	case OpClear:
		c.display.Clear()
		c.advance()

	case OpReturn:
		address, ok := c.stack.Pop()
		if !ok {
			return ErrStackUnderflow
		}
		c.pc = address

	case OpJump:
		c.pc = ins.Address

	case OpCall:
		if !c.stack.Push(c.next()) {
			c.advance()
			return ErrStackOverflow
		}
		c.pc = ins.Address

	case OpSkipEqualImm:
		c.skipIf(c.v[x] == ins.NN)

	case OpSkipNotEqualImm:
		c.skipIf(c.v[x] != ins.NN)

	case OpSkipEqualReg:
		c.skipIf(c.v[x] == c.v[y])

	case OpSkipNotEqualReg:
		c.skipIf(c.v[x] != c.v[y])

	case OpLoadImm:
		c.v[x] = ins.NN
		c.advance()

	case OpAddImm:
		c.v[x] += ins.NN
		c.advance()

	case OpLoadReg, OpOr, OpAnd, OpXor, OpAddReg, OpSub, OpShiftRight, OpSubReverse, OpShiftLeft:
		c.executeALU(ins.Op, x, y)
		c.advance()

	case OpLoadIndex:
		c.index = ins.Address
		c.advance()

	case OpJumpOffset:
		c.pc = (ins.Address + uint16(c.v[0])) & addressMask

	case OpRandom:
		c.v[x] = c.random.Byte() & ins.NN
		c.advance()

	case OpDraw:
		c.draw(c.v[x], c.v[y], ins.N)
		c.advance()

	case OpAddIndex:
		c.index += uint16(c.v[x])
		c.advance()

	case OpStoreRegisters:
		for i := range c.transferCount(x) {
			c.memory.Write(c.index+uint16(i), c.v[i])
		}
		c.advance()

	case OpLoadRegisters:
		for i := range c.transferCount(x) {
			c.v[i] = c.memory.Read(c.index + uint16(i))
		}
		c.advance()

	case OpSkipKey, OpSkipNotKey, OpLoadDelay, OpWaitKey, OpSetDelay, OpSetSound, OpLoadFont, OpStoreBCD:
		// no keypad, timers or font data are wired
		c.advance()

	case OpUndefined:
		c.advance()
		return ErrUndefinedInstruction
	}
	return nil
}

// executeALU runs one of the 8XY_ register operations. Flags are computed
// from the operands before VX is written and VF is written last, so the flag
// wins when X is the flag register.
func (c *CPU) executeALU(op Op, x, y uint8) {
	vx, vy := c.v[x], c.v[y]

	switch op {
	case OpLoadReg:
		c.v[x] = vy
	case OpOr:
		c.v[x] = vx | vy
	case OpAnd:
		c.v[x] = vx & vy
	case OpXor:
		c.v[x] = vx ^ vy

	case OpAddReg:
		sum := uint16(vx) + uint16(vy)
		c.v[x] = byte(sum)
		c.v[FlagRegister] = flag(sum > 0xFF)

	case OpSub:
		c.v[x] = vx - vy
		c.v[FlagRegister] = flag(vy <= vx)

	case OpSubReverse:
		c.v[x] = vy - vx
		c.v[FlagRegister] = flag(vx <= vy)

	case OpShiftRight:
		c.v[x] = vx >> 1
		c.v[FlagRegister] = vx & 0x01

	case OpShiftLeft:
		c.v[x] = vx << 1
		c.v[FlagRegister] = vx >> 7
	}
}

// draw blits an n byte sprite read from I at (x, y) and sets VF on collision.
func (c *CPU) draw(x, y, n byte) {
	sprite := c.memory.Slice(c.index, int(n))
	collision := c.display.DrawSprite(int(x), int(y), sprite)
	c.v[FlagRegister] = flag(collision)
}

// transferCount returns the number of registers FX55 and FX65 move.
func (c *CPU) transferCount(x uint8) int {
	if c.quirks.InclusiveRegisterTransfer {
		return int(x) + 1
	}
	return int(x)
}

// next returns the address of the instruction following the current one.
func (c *CPU) next() uint16 {
	return (c.pc + instructionSize) & addressMask
}

func (c *CPU) advance() {
	c.pc = c.next()
}

func (c *CPU) skipIf(condition bool) {
	c.advance()
	if condition {
		c.advance()
	}
}

func flag(set bool) byte {
	if set {
		return 1
	}
	return 0
}
