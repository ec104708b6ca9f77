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

package drive1541

import (
	"github.com/dirkwhoffmann/go64/hardware/cpu"
	"github.com/dirkwhoffmann/go64/hardware/instance"
	"github.com/dirkwhoffmann/go64/logger"
)

// IECLines is the subset of iec.View a drive needs: it drives CLOCK and
// DATA itself and samples all three lines, but (unlike the host) never
// drives ATN.
type IECLines interface {
	Sample() (atn, clock, data bool)
	DriveClock(asserted bool)
	DriveData(asserted bool)
}

// Drive is a complete 1541: its own CPU, RAM, ROM, two VIAs and a
// rotating disk. The scheduler calls Tick once per master cycle,
// stepping the drive's CPU exactly as it steps the host's, after the
// host's own IEC-bus-affecting components have run in the fixed
// per-cycle order.
type Drive struct {
	DeviceNumber uint8

	cpu  *cpu.CPU
	mem  *Memory
	via1 *VIA
	via2 *VIA
	disk *Disk
	iec  IECLines

	halfTrack    int // 1-84
	headPos      int
	byteTimer    int
	stepperPhase int
	motorOn      bool
	ledOn        bool
	diskInserted bool

	// IEC output latches, driven by VIA1 port B writes. atna is the
	// acknowledge latch the auto-response circuit XORs with the bus ATN.
	clockOut bool
	dataOut  bool
	atna     bool
	atnPrev  bool

	// head state
	syncRun      int
	syncActive   bool
	lastHeadByte uint8

	// cycleDebt absorbs the mismatch between the scheduler's one-Tick-
	// per-master-cycle contract and the CPU's instruction-granular
	// ExecuteInstruction: a burst of N cycles spent servicing one drive
	// instruction is repaid over the next N calls to Tick, so the VIAs
	// and disk mechanism still advance once per master cycle on average
	// even though the drive CPU core itself only yields at instruction
	// boundaries.
	cycleDebt int
}

// iecPort adapts VIA1's port B to the serial bus, matching the 1541
// schematic: PB1 drives DATA out, PB3 drives CLOCK out, PB4 is the ATN
// acknowledge latch, and PB0/PB2/PB7 read DATA/CLOCK/ATN back.
type iecPort struct {
	d *Drive
}

// Update implements PortWriter: output changes reach the bus as the VIA
// register write happens, not at the next read.
func (p *iecPort) Update(driven uint8, ddr uint8) {
	d := p.d
	d.dataOut = driven&0x02 != 0 && ddr&0x02 != 0
	d.clockOut = driven&0x08 != 0 && ddr&0x08 != 0
	d.atna = driven&0x10 != 0 && ddr&0x10 != 0
	d.reevaluateIEC()
}

func (p *iecPort) Sample(driven uint8, ddr uint8) uint8 {
	if p.d.iec == nil {
		return 0xff
	}
	atn, clock, data := p.d.iec.Sample()
	v := uint8(0xff)
	if !data {
		v &^= 0x01
	}
	if !clock {
		v &^= 0x04
	}
	if !atn {
		v &^= 0x80
	}
	return v
}

// diskPort adapts VIA2's port B to the drive mechanics: PB0/PB1 step the
// head, PB2 spins the motor, PB3 lights the LED. PB5/PB6 (bit density
// select) are not decoded: the byte timing follows the speed zone of the
// head's track (see cyclesPerByte). PB4 reads the write-protect sensor and
// PB7 the SYNC detector, both active low.
type diskPort struct {
	d *Drive
}

func (p *diskPort) Update(driven uint8, ddr uint8) {
	d := p.d
	d.motorOn = driven&0x04 != 0
	d.ledOn = driven&0x08 != 0

	phase := int(driven & 0x03)
	switch (phase - d.stepperPhase + 4) % 4 {
	case 1:
		d.stepHalfTrack(1)
	case 3:
		d.stepHalfTrack(-1)
	}
	d.stepperPhase = phase
}

func (p *diskPort) Sample(driven uint8, ddr uint8) uint8 {
	v := uint8(0xff)
	if p.d.diskInserted && p.d.disk.WriteProtected() {
		v &^= 0x10
	}
	if p.d.syncActive {
		v &^= 0x80
	}
	return v
}

// headPort is VIA2's port A: the read head's shifted-in byte.
type headPort struct {
	d *Drive
}

func (p *headPort) Sample(uint8, uint8) uint8 { return p.d.lastHeadByte }

// New constructs a drive with device number devNo (8-11), wired to the
// given IEC bus view, using ins for its own CPU's preferences/randomness
// source (independent from the host's instance, since a real 1541 has
// its own reset behaviour). LoadROM must be called before the drive is
// run.
func New(devNo uint8, iecLines IECLines, ins *instance.Instance) *Drive {
	d := &Drive{DeviceNumber: devNo, disk: NewDisk(), halfTrack: 35, iec: iecLines}

	d.via1 = NewVIA(d.setIRQ)
	d.via2 = NewVIA(d.setIRQ)
	d.via1.PortB = &iecPort{d: d}
	d.via2.PortA = &headPort{d: d}
	d.via2.PortB = &diskPort{d: d}

	d.mem = NewMemory(d.via1, d.via2)
	d.cpu = cpu.NewCPU(ins, d.mem)

	if iecLines != nil {
		d.atnPrev, _, _ = iecLines.Sample()
	}

	return d
}

func (d *Drive) setIRQ(level bool) {
	if d.cpu == nil {
		// the VIAs reset while New is still wiring the drive
		return
	}
	d.cpu.IRQ = d.via1.ifr&ifrIRQ != 0 || d.via2.ifr&ifrIRQ != 0
}

// reevaluateIEC recomputes the drive's contribution to the bus lines. The
// DATA line is the OR of the VIA's own output and the ATN auto-acknowledge
// circuit, which XORs the acknowledge latch with the bus ATN so the drive
// answers an attention request in hardware before the DOS gets around to
// it.
func (d *Drive) reevaluateIEC() {
	if d.iec == nil {
		return
	}
	atn, _, _ := d.iec.Sample()
	autoAck := !atn != d.atna

	d.iec.DriveClock(d.clockOut)
	d.iec.DriveData(d.dataOut || autoAck)
}

// LoadROM installs the 1541's 16 KiB DOS ROM image.
func (d *Drive) LoadROM(data []byte) error {
	return d.mem.LoadROM(data)
}

// InsertDisk mounts a D64 image.
func (d *Drive) InsertDisk(data []byte) error {
	disk := NewDisk()
	if err := disk.LoadD64(data); err != nil {
		return err
	}
	d.disk = disk
	d.diskInserted = true
	logger.Logf(logger.Allow, "drive1541", "device %d: disk inserted", d.DeviceNumber)
	return nil
}

// EjectDisk removes the currently mounted image.
func (d *Drive) EjectDisk() {
	d.disk = NewDisk()
	d.diskInserted = false
}

// Disk exposes the mounted disk, for the host's modified-image handling.
func (d *Drive) Disk() *Disk { return d.disk }

// Reset reinitialises the drive's CPU, VIAs and mechanism, as happens on
// power-on or when the host asserts the reset line carried over the
// serial cable.
func (d *Drive) Reset() {
	d.cpu.Reset()
	d.via1.Reset()
	d.via2.Reset()
	d.clockOut, d.dataOut, d.atna = false, false, false
	d.motorOn, d.ledOn = false, false
	d.syncRun, d.syncActive = 0, false
	d.stepperPhase = 0
	d.reevaluateIEC()
	if err := d.cpu.LoadPCIndirect(0xfffc); err != nil {
		logger.Logf(logger.Allow, "drive1541", "device %d: reset vector load failed: %v", d.DeviceNumber, err)
	}
}

// cyclesPerByte returns the byte-cell duration for the current head
// position's speed zone.
func (d *Drive) cyclesPerByte() int {
	return cyclesPerByteZone[zoneForHalfTrack(d.halfTrack)]
}

// writeMode reports whether the head is writing: VIA2's CB2 (read/write
// control) held low, and the write-protect sensor clear.
func (d *Drive) writeMode() bool {
	return d.via2.CB2ManualLow() && !d.disk.WriteProtected()
}

// tickByteClock advances the byte-cell timer; each expiry moves one GCR
// byte past the head. Reads deliver the byte to VIA2 (CA1 edge, shift
// register, port A) and pulse the CPU's SO pin; a run of sync bytes
// instead raises the SYNC line and inhibits byte-ready. Writes serialise
// VIA2's port A output back onto the track.
func (d *Drive) tickByteClock() {
	if !d.motorOn || !d.diskInserted {
		return
	}
	d.byteTimer--
	if d.byteTimer > 0 {
		return
	}
	d.byteTimer = d.cyclesPerByte()

	if d.writeMode() {
		d.disk.WriteByteAt(d.halfTrack, d.headPos, d.via2.ORA())
		d.headPos++
		d.syncRun, d.syncActive = 0, false
		return
	}

	b := d.disk.ByteAt(d.halfTrack, d.headPos)
	d.headPos++

	if b == syncByte {
		// two successive $FF bytes carry at least ten one-bits: SYNC.
		// while it is asserted byte-ready stays quiet.
		d.syncRun++
		d.syncActive = d.syncRun >= 2
		if d.syncActive {
			return
		}
	} else {
		d.syncRun = 0
		d.syncActive = false
	}

	d.lastHeadByte = b
	d.via2.LoadShiftRegister(b)
	d.via2.SetCA1(true)
	d.via2.SetCA1(false)
	d.cpu.TriggerSO()
}

// Tick advances the drive by one master cycle. Because the drive's own
// CPU core only yields control at instruction boundaries, a single call
// here may burst several master cycles' worth of VIA/disk activity at
// once; cycleDebt repays that burst over the following calls so the
// long-run average stays one master cycle per Tick.
func (d *Drive) Tick() error {
	d.watchATN()

	if d.cycleDebt > 0 {
		d.cycleDebt--
		d.via1.Execute()
		d.via2.Execute()
		d.tickByteClock()
		return nil
	}

	spent := 0
	err := d.cpu.ExecuteInstruction(func() error {
		spent++
		d.via1.Execute()
		d.via2.Execute()
		d.tickByteClock()
		return nil
	})
	if spent > 0 {
		d.cycleDebt = spent - 1
	}
	return err
}

// watchATN feeds ATN transitions into VIA1's CA1 (the drive's attention
// interrupt) and keeps the auto-acknowledge contribution current. The
// CA1 input sees the inverted line, so ATN being pulled low arrives as a
// rising edge.
func (d *Drive) watchATN() {
	if d.iec == nil {
		return
	}
	atn, _, _ := d.iec.Sample()
	if atn != d.atnPrev {
		d.atnPrev = atn
		d.via1.SetCA1(!atn)
		d.reevaluateIEC()
	}
}

// stepHalfTrack moves the head by one half-track, clamped to the
// physical range.
func (d *Drive) stepHalfTrack(delta int) {
	next := d.halfTrack + delta
	if next < 1 {
		next = 1
	}
	if next > halfTrackCount {
		next = halfTrackCount
	}
	if next != d.halfTrack {
		d.halfTrack = next
		d.headPos = 0
	}
}

// StepHead moves the head by whole tracks, for the debugger and for host
// commands; the DOS itself steps through the VIA.
func (d *Drive) StepHead(delta int) {
	d.stepHalfTrack(delta * 2)
}

// Track reports the drive head's current full track, for the debugger
// and status display.
func (d *Drive) Track() int { return (d.halfTrack + 1) / 2 }

// HalfTrack reports the head's half-track position.
func (d *Drive) HalfTrack() int { return d.halfTrack }

// MotorOn reports whether the spindle motor is running.
func (d *Drive) MotorOn() bool { return d.motorOn }

// LED reports the drive-activity LED state.
func (d *Drive) LED() bool { return d.ledOn }
