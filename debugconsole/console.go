// This file is part of Go64.
//
// Go64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Go64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

package debugconsole

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dirkwhoffmann/go64/debug"
	"github.com/dirkwhoffmann/go64/hardware/scheduler"
)

// Console drives an interactive breakpoint/watchpoint session against a
// running Machine: step, continue and quit are single keystrokes;
// adding a breakpoint or watchpoint briefly switches to line-buffered
// input to read the hex address.
type Console struct {
	Machine     *scheduler.Machine
	Breakpoints *debug.Breakpoints
	Watchpoints *debug.Watchpoints

	out io.Writer
	rt  *rawTerm
}

// New constructs a Console wired to m, arming m's debugger slot with a
// fresh Breakpoints set (m.SetDebugger). The terminal is not touched
// until Run is called.
func New(m *scheduler.Machine, out io.Writer) *Console {
	bp := debug.NewBreakpoints()
	m.SetDebugger(bp)
	return &Console{
		Machine:     m,
		Breakpoints: bp,
		Watchpoints: debug.NewWatchpoints(),
		out:         out,
	}
}

// Run starts the REPL on stdin/stdout. It blocks until the user quits (q)
// or input is exhausted (EOF), restoring the terminal's canonical mode on
// the way out regardless of how it returns.
func (c *Console) Run() error {
	rt, err := newRawTerm(os.Stdin)
	if err != nil {
		// Not a real terminal (eg. piped input in a test harness) — fall
		// back to a plain line reader so the console still works, just
		// without single-keystroke commands.
		return c.runLineMode(os.Stdin)
	}
	c.rt = rt

	if err := rt.CBreakMode(); err != nil {
		return err
	}
	defer rt.CanonicalMode()

	c.printHelp()
	for {
		fmt.Fprint(c.out, "\n(go64) ")
		key, err := rt.ReadByte()
		if err != nil {
			return nil
		}
		if done := c.dispatch(key); done {
			return nil
		}
	}
}

// dispatch handles one command keystroke, returning true if the console
// should exit.
func (c *Console) dispatch(key byte) (quit bool) {
	switch key {
	case 'q', 'Q':
		fmt.Fprintln(c.out, "quit")
		return true
	case 's', 'S':
		c.step()
	case 'c', 'C':
		c.cont()
	case 'b', 'B':
		c.addBreakpoint()
	case 'w', 'W':
		c.addWatchpoint()
	case 'l', 'L':
		c.list()
	case 'r', 'R':
		fmt.Fprintln(c.out, c.Machine.CPU.String())
	case '?':
		c.printHelp()
	case '\n', '\r':
		// ignore bare newlines between commands
	default:
		fmt.Fprintf(c.out, "unknown command %q; press ? for help\n", string(key))
	}
	return false
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, "s=step  c=continue  b=breakpoint  w=watchpoint  l=list  r=registers  q=quit  ?=help")
}

// step advances the machine by exactly one instruction (the smallest unit
// RunFor can be asked to execute) and polls watchpoints afterward.
func (c *Console) step() {
	if _, err := c.Machine.RunFor(1); err != nil {
		fmt.Fprintf(c.out, "step error: %v\n", err)
		return
	}
	c.reportWatchpoints()
	fmt.Fprintln(c.out, c.Machine.CPU.String())
}

// cont runs until a breakpoint fires, the CPU jams, or the user's Pause
// request (not available from this console) stops it; watchpoints are
// polled between each instruction since they have no scheduler-level hook.
func (c *Console) cont() {
	for {
		executed, err := c.Machine.RunFor(1)
		if err != nil {
			fmt.Fprintf(c.out, "run error: %v\n", err)
			return
		}
		c.reportWatchpoints()
		if c.Machine.CpuJammed {
			fmt.Fprintln(c.out, "CPU jammed")
			return
		}
		if executed == 0 {
			// a breakpoint fired before any cycle executed
			return
		}
	}
}

func (c *Console) reportWatchpoints() {
	for _, hit := range c.Watchpoints.Poll(c.Machine.Mem) {
		fmt.Fprintf(c.out, "%s (now $%02X)\n", hit.Tag, hit.New)
	}
}

func (c *Console) list() {
	fmt.Fprintln(c.out, "breakpoints:")
	for _, pc := range c.Breakpoints.List() {
		fmt.Fprintf(c.out, "  $%04X\n", pc)
	}
	fmt.Fprintln(c.out, "watchpoints:")
	for _, addr := range c.Watchpoints.List() {
		fmt.Fprintf(c.out, "  $%04X\n", addr)
	}
}

// addBreakpoint briefly restores canonical mode to read a hex address.
func (c *Console) addBreakpoint() {
	addr, ok := c.readHexAddress("breakpoint address (hex): ")
	if !ok {
		return
	}
	c.Breakpoints.Add(addr, debug.HARD)
	fmt.Fprintf(c.out, "breakpoint set at $%04X\n", addr)
}

func (c *Console) addWatchpoint() {
	addr, ok := c.readHexAddress("watchpoint address (hex): ")
	if !ok {
		return
	}
	c.Watchpoints.Add(addr, debug.AnyValue, 0)
	fmt.Fprintf(c.out, "watchpoint set at $%04X\n", addr)
}

func (c *Console) readHexAddress(prompt string) (uint16, bool) {
	if c.rt == nil {
		return 0, false
	}
	_ = c.rt.CanonicalMode()
	defer c.rt.CBreakMode()

	fmt.Fprint(c.out, "\n"+prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return 0, false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "$"))
	v, err := strconv.ParseUint(line, 16, 16)
	if err != nil {
		fmt.Fprintf(c.out, "invalid address %q\n", line)
		return 0, false
	}
	return uint16(v), true
}

// runLineMode is the fallback REPL used when stdin is not a real
// terminal: every command is a full line ("s", "c", "b c000", "w d020",
// "q").
func (c *Console) runLineMode(r io.Reader) error {
	c.printHelp()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "q", "quit":
			return nil
		case "s", "step":
			c.step()
		case "c", "continue":
			c.cont()
		case "l", "list":
			c.list()
		case "r", "registers":
			fmt.Fprintln(c.out, c.Machine.CPU.String())
		case "b", "break":
			if len(fields) < 2 {
				continue
			}
			if v, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "$"), 16, 16); err == nil {
				c.Breakpoints.Add(uint16(v), debug.HARD)
			}
		case "w", "watch":
			if len(fields) < 2 {
				continue
			}
			if v, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "$"), 16, 16); err == nil {
				c.Watchpoints.Add(uint16(v), debug.AnyValue, 0)
			}
		default:
			fmt.Fprintf(c.out, "unknown command %q\n", fields[0])
		}
	}
	return scanner.Err()
}
