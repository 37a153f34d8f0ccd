// Package script runs Lua inspection scripts against the final machine
// state, for example to check the results of a test program.
//
// The scripts see a global table named chip8 with these functions:
//
//	chip8.pc()          program counter
//	chip8.i()           index register
//	chip8.v(n)          register Vn
//	chip8.depth()       call stack depth
//	chip8.peek(address) memory byte
//	chip8.pixel(x, y)   framebuffer pixel as boolean
//	chip8.steps()       executed steps
//	chip8.reason()      why the run ended
package script

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	lua "github.com/yuin/gopher-lua"
)

// Runner executes inspection scripts.
type Runner struct {
	cpu    *chip8.CPU
	result chip8.RunResult
}

// New returns a script runner bound to the machine and its run result.
func New(cpu *chip8.CPU, result chip8.RunResult) *Runner {
	return &Runner{
		cpu:    cpu,
		result: result,
	}
}

// RunFile executes the Lua script file.
func (r *Runner) RunFile(path string) error {
	L := r.newState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("running script %s: %w", path, err)
	}
	return nil
}

// RunString executes Lua source code.
func (r *Runner) RunString(source string) error {
	L := r.newState()
	defer L.Close()

	if err := L.DoString(source); err != nil {
		return fmt.Errorf("running script: %w", err)
	}
	return nil
}

func (r *Runner) newState() *lua.LState {
	L := lua.NewState()
	mod := L.SetFuncs(L.NewTable(), r.exports())
	L.SetGlobal("chip8", mod)
	return L
}

func (r *Runner) exports() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"pc":     r.pc,
		"i":      r.index,
		"v":      r.register,
		"depth":  r.depth,
		"peek":   r.peek,
		"pixel":  r.pixel,
		"steps":  r.steps,
		"reason": r.reason,
	}
}

func (r *Runner) pc(L *lua.LState) int {
	L.Push(lua.LNumber(r.cpu.PC()))
	return 1
}

func (r *Runner) index(L *lua.LState) int {
	L.Push(lua.LNumber(r.cpu.Index()))
	return 1
}

func (r *Runner) register(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 0 || n >= chip8.RegisterCount {
		L.ArgError(1, "register index out of range")
		return 0
	}
	L.Push(lua.LNumber(r.cpu.Register(n)))
	return 1
}

func (r *Runner) depth(L *lua.LState) int {
	L.Push(lua.LNumber(r.cpu.StackDepth()))
	return 1
}

func (r *Runner) peek(L *lua.LState) int {
	address := L.CheckInt(1)
	if address < 0 || address > chip8.MaxAddress {
		L.ArgError(1, "address out of range")
		return 0
	}
	L.Push(lua.LNumber(r.cpu.Memory().Read(uint16(address))))
	return 1
}

func (r *Runner) pixel(L *lua.LState) int {
	x, y := L.CheckInt(1), L.CheckInt(2)
	L.Push(lua.LBool(r.cpu.Framebuffer().Pixel(x, y)))
	return 1
}

func (r *Runner) steps(L *lua.LState) int {
	L.Push(lua.LNumber(r.result.Steps))
	return 1
}

func (r *Runner) reason(L *lua.LState) int {
	L.Push(lua.LString(r.result.Reason.String()))
	return 1
}
