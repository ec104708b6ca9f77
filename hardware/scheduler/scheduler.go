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

// Package scheduler owns every sub-system of the machine and drives the
// master clock. It is the top-level container: every component is
// constructed here and handed only the narrow collaborator interfaces it
// needs (an interrupt sink, a memory bus, an IEC line view), never a
// reference back to the scheduler itself.
package scheduler

import (
	"fmt"
	"io"
	"os"

	"github.com/dirkwhoffmann/go64/cartridgeloader"
	"github.com/dirkwhoffmann/go64/environment"
	"github.com/dirkwhoffmann/go64/errors"
	"github.com/dirkwhoffmann/go64/hardware/cia"
	"github.com/dirkwhoffmann/go64/hardware/clocks"
	"github.com/dirkwhoffmann/go64/hardware/cpu"
	"github.com/dirkwhoffmann/go64/hardware/display"
	"github.com/dirkwhoffmann/go64/hardware/drive1541"
	"github.com/dirkwhoffmann/go64/hardware/iec"
	"github.com/dirkwhoffmann/go64/hardware/input"
	"github.com/dirkwhoffmann/go64/hardware/instance"
	"github.com/dirkwhoffmann/go64/hardware/memory"
	"github.com/dirkwhoffmann/go64/hardware/memory/cartridge"
	"github.com/dirkwhoffmann/go64/hardware/sid"
	"github.com/dirkwhoffmann/go64/hardware/vic"
	"github.com/dirkwhoffmann/go64/host"
	"github.com/dirkwhoffmann/go64/logger"
	"github.com/dirkwhoffmann/go64/snapshot"
)

// maxDrives is the number of IEC device numbers the scheduler reserves
// views for (8-11), matching a real serial bus's four-drive ceiling.
const maxDrives = 4

// Machine is the complete emulation core: every chip model plus the
// master clock that ticks them in a fixed, observable order every cycle.
type Machine struct {
	Env *environment.Environment
	ins *instance.Instance

	Clock uint64 // master cycle counter C

	ntsc bool

	CPU     *cpu.CPU
	Mem     *memory.Memory
	vicBus  *memory.VICBus
	VIC     *vic.VIC
	CIA1    *cia.CIA
	CIA2    *cia.CIA
	SID     *sid.SID
	Cart    *cartridge.Cartridge
	IEC     *iec.Bus

	Keyboard  *input.Keyboard
	Joystick1 *input.Joystick
	Joystick2 *input.Joystick

	drives [maxDrives]*drive1541.Drive

	swap *display.Swap

	commands host.Commands

	// CpuJammed latches once the CPU executes an undocumented HLT/JAM
	// opcode; RunFor stops immediately and the caller must Reset before
	// resuming.
	CpuJammed bool

	// stopRequested is polled between instructions so Pause() takes effect
	// without waiting for the current RunFor(n) to exhaust its budget.
	stopRequested bool

	warp bool

	debug Debugger

	cia1IRQ bool
	vicIRQ  bool

	// frozen edge-detects the freezer cartridge button so NMI is pulled
	// once per press, not re-latched every cycle the button is held.
	frozen bool

	// diskWasModified tracks each drive's modified flag so the
	// disk_modified message fires once per change, not continuously.
	diskWasModified [maxDrives]bool
}

// Debugger is the narrow interface RunFor consults once per instruction,
// before the instruction at PC executes, to decide whether to halt on a
// breakpoint. Watchpoints are not checked through it. A nil Debugger (the
// default) never halts.
type Debugger interface {
	CheckBreakpoint(pc uint16) (hit bool, tag string)
}

// SetDebugger installs (or, with nil, removes) the breakpoint consultant
// used by RunFor/RunUntilBreakpoint.
func (m *Machine) SetDebugger(d Debugger) { m.debug = d }

// New constructs a complete, powered-off machine. ROMs and a cartridge (if
// any) must be loaded with LoadROMs/AttachCartridge before RunFor will
// produce anything useful; without them the CPU spins at whatever the
// zeroed RAM happens to decode to, exactly as real hardware does when
// powered up without ROMs (the ROMsMissing notice covers the host-facing
// half of this).
func New(env *environment.Environment) (*Machine, error) {
	ins, err := instance.NewInstance(nil)
	if err != nil {
		return nil, err
	}

	m := &Machine{Env: env, ins: ins}

	m.Mem = memory.NewMemory()

	m.CIA1 = cia.New(func(level bool) { m.cia1IRQ = level; m.updateIRQ() })
	m.CIA2 = cia.New(func(level bool) {
		if level {
			m.CPU.TriggerNMI()
		}
	})

	m.Keyboard = input.NewKeyboard()
	m.Joystick1 = input.NewJoystick()
	m.Joystick2 = input.NewJoystick()
	m.CIA1.PortA = input.KeyboardRows{Keyboard: m.Keyboard, Joystick: m.Joystick2}
	m.CIA1.PortB = input.KeyboardColumns{Keyboard: m.Keyboard, Joystick: m.Joystick1}

	m.IEC = iec.NewBus()
	m.CIA2.PortA = &input.CIA2PortA{
		IEC:  m.IEC.View(iec.Host),
		Bank: vicBankAdapter{m},
	}

	m.SID = sid.NewSID()

	m.Cart = cartridge.NewCartridge(m.Mem.RecomputeBanks)

	m.vicBus = memory.NewVICBus(m.Mem.RAM, m.Mem.ROM)

	m.CPU = cpu.NewCPU(m.ins, m.Mem)
	m.CPU.OnNMI = m.Cart.NMIWillTrigger
	m.VIC = vic.New(m.vicBus, m.Mem.ColorRAM, func(level bool) { m.vicIRQ = level; m.updateIRQ(); m.maybeNotifyRasterIRQ(level) })

	m.Mem.Plumb(m.VIC, m.CIA1, m.CIA2, m.SID, m.Cart)

	m.swap = display.NewSwap(display.TextureSize, display.TextureSize)
	m.VIC.SetFrame(m.swap.Back())
	m.VIC.SetPalette(display.ByName(env.Prefs.Palette.String()))

	m.SetRegion(env.Prefs.Region.String() == "NTSC")

	for i := range m.drives {
		dins, err := instance.NewInstance(nil)
		if err != nil {
			return nil, err
		}
		view := m.IEC.View(iec.Participant(int(iec.Drive8) + i))
		m.drives[i] = drive1541.New(uint8(8+i), view, dins)
	}

	return m, nil
}

// vicBankAdapter lets CIA2's port A flip the VIC's memory bank without the
// input package depending on the memory package.
type vicBankAdapter struct{ m *Machine }

func (b vicBankAdapter) SetVICBank(bank int) {
	b.m.vicBus.SetVICBank(bank)
}

// updateIRQ ORs together every source that can assert the CPU's IRQ line:
// CIA1's timer/TOD interrupt, the VIC's interrupt and a held
// freezer-cartridge freeze button
// (which also asserts NMI, edge-detected in cycleCallback).
func (m *Machine) updateIRQ() {
	m.CPU.IRQ = m.cia1IRQ || m.vicIRQ || m.Cart.Frozen()
}

// maybeNotifyRasterIRQ surfaces the VIC's IRQ line going active as a
// host.RasterIRQ message whenever it rises (it may also be asserted by a
// sprite/sprite or sprite/background collision, which share the same
// line; the host distinguishes the cause by reading $D019 itself).
func (m *Machine) maybeNotifyRasterIRQ(level bool) {
	if level {
		m.Env.Notify.Notify(host.Event{Notice: host.RasterIRQ})
	}
}

// SetRegion switches the machine between PAL and NTSC timing: the VIC's
// raster geometry and the SID's clock rate change, CPU and memory state
// stay intact.
func (m *Machine) SetRegion(ntsc bool) {
	m.ntsc = ntsc
	m.VIC.SetRegion(ntsc)
	if ntsc {
		m.SID.SetClock(clocks.NTSC * 1e6)
	} else {
		m.SID.SetClock(clocks.PAL * 1e6)
	}
}

// LoadROMs installs the three mandatory system ROMs. A missing ROM is not
// an error here (the caller is expected to have already reported
// host.ROMsMissing); a nil image leaves that ROM's contents as they were,
// all zero bytes on a freshly constructed machine.
func (m *Machine) LoadROMs(basic, char, kernal []byte) error {
	if basic != nil {
		if err := m.Mem.ROM.LoadBasic(basic); err != nil {
			return err
		}
	}
	if char != nil {
		if err := m.Mem.ROM.LoadChar(char); err != nil {
			return err
		}
	}
	if kernal != nil {
		if err := m.Mem.ROM.LoadKernal(kernal); err != nil {
			return err
		}
	}
	return nil
}

// LoadDriveROM installs the 1541 DOS ROM into every configured drive.
func (m *Machine) LoadDriveROM(data []byte) error {
	for _, d := range m.drives {
		if err := d.LoadROM(data); err != nil {
			return err
		}
	}
	return nil
}

// AttachCartridge loads a CRT image and, per the recorded open-question
// decision, performs an implicit hard reset so the new memory
// configuration starts from a known state.
func (m *Machine) AttachCartridge(ld cartridgeloader.Loader) error {
	if err := m.Cart.Attach(ld); err != nil {
		return err
	}
	m.Reset(true)
	m.Env.Notify.Notify(host.Event{Notice: host.CartridgeAttached, Detail: m.Cart.Label()})
	return nil
}

// DetachCartridge ejects the attached cartridge, if any, and resets.
func (m *Machine) DetachCartridge() {
	m.Cart.Eject()
	m.Reset(true)
	m.Env.Notify.Notify(host.Event{Notice: host.CartridgeDetached})
}

// InsertDisk mounts a D64 image into the drive with the given device
// number (8-11).
func (m *Machine) InsertDisk(deviceNo uint8, data []byte) error {
	d := m.drive(deviceNo)
	if d == nil {
		return errors.Errorf(errors.DriveError, "no such device")
	}
	if err := d.InsertDisk(data); err != nil {
		return err
	}
	m.Env.Notify.Notify(host.Event{Notice: host.DiskInserted})
	return nil
}

// EjectDisk unmounts the image in the given drive.
func (m *Machine) EjectDisk(deviceNo uint8) {
	if d := m.drive(deviceNo); d != nil {
		d.EjectDisk()
		m.Env.Notify.Notify(host.Event{Notice: host.DiskEjected})
	}
}

func (m *Machine) drive(deviceNo uint8) *drive1541.Drive {
	i := int(deviceNo) - 8
	if i < 0 || i >= len(m.drives) {
		return nil
	}
	return m.drives[i]
}

// Reset performs a reset. Both kinds reset the CPU, both CIAs and every
// drive, clear the jam latch and reload PC from the reset vector; hard
// also clears (or, with the RandomState preference on, randomises) RAM,
// while soft leaves RAM intact. Both must only be called while RunFor is
// not executing.
func (m *Machine) Reset(hard bool) {
	if hard {
		if m.Env.Prefs.RandomState.Get() {
			m.Mem.RAM.Fill(func(uint16) uint8 { return uint8(m.Env.Random.NoRewind(256)) })
		} else {
			m.Mem.RAM.Fill(func(uint16) uint8 { return 0 })
		}
	}
	m.CPU.Reset()
	m.CIA1.Reset()
	m.CIA2.Reset()
	for _, d := range m.drives {
		d.Reset()
	}
	m.CpuJammed = false
	if err := m.CPU.LoadPCIndirect(0xfffc); err != nil {
		logger.Logf(m.Env, "scheduler", "reset vector load failed: %v", err)
	}
}

// Cycle reports the current master clock value, implementing
// random.Clock.
func (m *Machine) Cycle() uint64 { return m.Clock }

// Pause requests that RunFor stop at the next instruction boundary.
func (m *Machine) Pause() { m.stopRequested = true }

// Commands returns the host command queue; a GUI or CLI host pushes
// requests onto it and RunFor drains them once per instruction.
func (m *Machine) Commands() *host.Commands { return &m.commands }

// Swap returns the double-buffered frame swap the host's render loop
// reads from.
func (m *Machine) Swap() *display.Swap { return m.swap }

// RunFor advances the machine by at least n master cycles, unless a
// CpuJam, breakpoint hit, or host Pause() request stops it sooner; since
// it only stops between instructions, the last instruction can carry the
// clock a few cycles past n. It returns the number of cycles actually
// executed.
//
// The CPU core is instruction-stepped (ExecuteInstruction runs every bus
// cycle of one opcode before returning), so the master clock cannot be
// advanced one cycle at a time from out here. Instead every other chip is
// ticked from inside the CPU's own per-cycle callback (cycleCallback
// below), which is invoked once per bus cycle regardless of how many
// cycles the in-flight instruction takes — this keeps the fixed
// VIC/CIA/CPU/cartridge/IEC/1541 interleaving at true cycle granularity
// even though the outer loop only sees whole instructions.
// Breakpoints and host commands are therefore only checked at instruction
// boundaries, which is also where real debuggers and the KERNAL's own
// polling loops observe the machine.
func (m *Machine) RunFor(n uint64) (uint64, error) {
	m.stopRequested = false
	start := m.Clock

	for m.Clock-start < n {
		if m.stopRequested || m.CpuJammed {
			break
		}

		m.drainCommands()

		if m.debug != nil {
			if hit, tag := m.debug.CheckBreakpoint(uint16(m.CPU.PC.Address())); hit {
				m.Env.Notify.Notify(host.Event{Notice: host.BreakpointHit, Detail: tag})
				break
			}
		}

		if err := m.CPU.ExecuteInstruction(m.cycleCallback); err != nil {
			return m.Clock - start, err
		}

		if m.CPU.Killed {
			m.CpuJammed = true
			m.Env.Notify.Notify(host.Event{Notice: host.CPUJammed})
			break
		}
	}

	return m.Clock - start, nil
}

// Step advances the machine by exactly one CPU instruction, ticking every
// other chip once per bus cycle as usual. It ignores breakpoints; the
// caller asked for precisely this much progress.
func (m *Machine) Step() error {
	if m.CpuJammed {
		return nil
	}
	if err := m.CPU.ExecuteInstruction(m.cycleCallback); err != nil {
		return err
	}
	if m.CPU.Killed {
		m.CpuJammed = true
		m.Env.Notify.Notify(host.Event{Notice: host.CPUJammed})
	}
	return nil
}

// StepCycle advances the machine by the smallest amount the
// instruction-stepped CPU core permits, which is always one whole
// instruction: it is the same as Step, and it does not step single cycles,
// not even while the VIC holds RDY low. Every chip still advances exactly
// once per bus cycle of that instruction.
func (m *Machine) StepCycle() error {
	return m.Step()
}

// RunUntilBreakpoint runs indefinitely (subject to the same stop
// conditions as RunFor) until a breakpoint fires, the CPU jams, or the
// host pauses.
func (m *Machine) RunUntilBreakpoint() error {
	const chunk = 1_000_000
	for {
		executed, err := m.RunFor(chunk)
		if err != nil {
			return err
		}
		if m.stopRequested || m.CpuJammed || executed < chunk {
			return nil
		}
	}
}

// cycleCallback is invoked by the CPU once per bus cycle. It ticks every
// other chip exactly once, in the machine's fixed order: VIC, CIA1,
// CIA2, (CPU — already running), expansion port, IEC, 1541 ×N.
// Rearranging this order is observable: copy-protection schemes time
// chip interactions against each other.
func (m *Machine) cycleCallback() error {
	wasIdle := m.IEC.Idle()
	wasFrame := m.VIC.FrameCount()

	m.VIC.Tick()
	m.Mem.ColorRAM.VICDataBus = m.VIC.LastDataBus()
	m.CPU.RdyFlg = m.VIC.BA()
	m.CIA1.Execute()
	m.CIA2.Execute()

	m.Cart.Execute()
	frozen := m.Cart.Frozen()
	if frozen && !m.frozen {
		// the freeze button pulls NMI once, on the press edge; the IRQ
		// half is level-held via updateIRQ for as long as the button is
		// down
		m.CPU.TriggerNMI()
	}
	if frozen != m.frozen {
		m.frozen = frozen
		m.updateIRQ()
	}

	if !m.warp {
		m.SID.Execute()
	}

	m.IEC.Tick()
	if wasIdle != m.IEC.Idle() {
		if m.IEC.Idle() {
			m.Env.Notify.Notify(host.Event{Notice: host.IECBusIdle})
		} else {
			m.Env.Notify.Notify(host.Event{Notice: host.IECBusBusy})
		}
	}

	if m.Env.Prefs.TrueDriveEmulation.Get() {
		for i, d := range m.drives {
			if err := d.Tick(); err != nil {
				return err
			}
			if mod := d.Disk().Modified(); mod != m.diskWasModified[i] {
				m.diskWasModified[i] = mod
				if mod {
					m.Env.Notify.Notify(host.Event{Notice: host.DiskModified})
				}
			}
		}
	}

	if m.VIC.FrameCount() != wasFrame {
		m.swap.Publish()
		m.VIC.SetFrame(m.swap.Back())
		m.Env.Notify.Notify(host.Event{Notice: host.FrameComplete})
	}

	m.Clock++
	return nil
}

// drainCommands applies every host command queued since the last
// instruction boundary.
func (m *Machine) drainCommands() {
	for _, c := range m.commands.Drain() {
		m.applyCommand(c)
	}
}

func (m *Machine) applyCommand(c host.Command) {
	switch c.Kind {
	case host.AttachCartridge:
		ld, err := cartridgeloader.NewLoaderFromFilename(c.Path)
		if err == nil {
			err = m.AttachCartridge(ld)
		}
		if err != nil {
			logger.Logf(m.Env, "scheduler", "attach cartridge: %v", err)
		}
	case host.DetachCartridge:
		m.DetachCartridge()
	case host.InsertDisk:
		data, err := os.ReadFile(c.Path)
		if err != nil {
			logger.Logf(m.Env, "scheduler", "insert disk: %v", err)
			break
		}
		device := c.Device
		if device == 0 {
			device = 8
		}
		if err := m.InsertDisk(device, data); err != nil {
			logger.Logf(m.Env, "scheduler", "insert disk: %v", err)
		}
	case host.EjectDisk:
		device := c.Device
		if device == 0 {
			device = 8
		}
		m.EjectDisk(device)
	case host.PressResetButton:
		// The reset button asserts the CPU's RESET line directly; unlike a
		// power cycle it leaves RAM contents intact.
		m.Reset(false)
	case host.PressKey:
		m.Keyboard.Press(c.Row, c.Col)
	case host.ReleaseKey:
		m.Keyboard.Release(c.Row, c.Col)
	case host.SetJoystick:
		m.joystickFor(c.Port).Set(c.Bit, true)
	case host.ClearJoystick:
		m.joystickFor(c.Port).Set(c.Bit, false)
	case host.PressFreezeButton:
		m.Cart.PressFreezeButton()
	case host.ReleaseFreezeButton:
		m.Cart.ReleaseFreezeButton()
	case host.SetCartSwitch:
		m.Cart.SetSwitch(c.SwitchPosition)
	case host.ResetSoft:
		m.Reset(false)
	case host.ResetHard:
		m.Reset(true)
	case host.Pause:
		m.stopRequested = true
	case host.Run:
		m.stopRequested = false
	case host.WarpOn:
		m.warp = true
	case host.WarpOff:
		m.warp = false
	case host.InsertTape, host.EjectTape:
		// Datasette emulation is out of scope; these are accepted and
		// ignored so a host that queues them unconditionally doesn't panic.
	}
}

func (m *Machine) joystickFor(port int) *input.Joystick {
	if port == 2 {
		return m.Joystick2
	}
	return m.Joystick1
}

// Warp reports whether warp mode (audio disabled, frame limiter off) is
// currently active.
func (m *Machine) Warp() bool { return m.warp }

// statefulComponents returns every snapshot-eligible component keyed by a
// stable name, plus the reset-behaviour flags recorded with each item:
// "mem" is tagged ClearOnReset and every other component defaults to
// KeepOnReset. The tags are stored in the snapshot only; Reset does not
// consult them.
func (m *Machine) statefulComponents() (map[string]snapshot.Stateful, map[string]snapshot.Flags) {
	components := map[string]snapshot.Stateful{
		"cpu":      m.CPU,
		"mem":      m.Mem,
		"vic":      m.VIC,
		"cia1":     m.CIA1,
		"cia2":     m.CIA2,
		"sid":      m.SID,
		"cart":     m.Cart,
		"iec":      m.IEC,
	}
	for i, d := range m.drives {
		name := fmt.Sprintf("drive%d", i)
		components[name+".cpu"] = d.CPU()
		components[name+".via1"] = d.VIA1()
		components[name+".via2"] = d.VIA2()
		components[name] = d
	}

	flags := map[string]snapshot.Flags{
		"mem": snapshot.ClearOnReset,
	}
	return components, flags
}

// SaveSnapshot writes the machine's complete state to w. RunFor must not
// be executing concurrently.
func (m *Machine) SaveSnapshot(w io.Writer) error {
	components, flags := m.statefulComponents()
	items := snapshot.Collect(components, flags)
	return snapshot.Write(w, items)
}

// LoadSnapshot restores the machine's complete state from r. The
// attached cartridge and any mounted disk images must already match
// what was attached when the snapshot was taken; only their internal
// bank/mechanical state is restored, not the images themselves.
func (m *Machine) LoadSnapshot(r io.Reader) error {
	items, err := snapshot.Read(r)
	if err != nil {
		return err
	}
	components, _ := m.statefulComponents()
	if err := snapshot.Apply(components, items); err != nil {
		return err
	}
	m.CpuJammed = false
	return nil
}
