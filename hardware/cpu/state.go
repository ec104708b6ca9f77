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

package cpu

import "encoding/gob"

// state is the snapshot-serialisable subset of CPU fields: the six
// registers plus the handful of sticky flags a restore needs to reproduce
// exactly, not the transient per-instruction bookkeeping (LastResult,
// Interrupted, PhantomMemAccess) that's always overwritten before it's
// next read.
type state struct {
	PC                              uint16
	A, X, Y, SP, Status             uint8
	RdyFlg, IRQ, Killed, NMIPending bool
	IRQGateDisable                  bool
	IRQAge                          int
}

func init() {
	gob.Register(state{})
}

// SaveState returns a serialisable snapshot of every stateful field.
func (mc *CPU) SaveState() interface{} {
	return state{
		PC:         mc.PC.Value(),
		A:          mc.A.Value(),
		X:          mc.X.Value(),
		Y:          mc.Y.Value(),
		SP:         mc.SP.Value(),
		Status:     mc.Status.Value(),
		RdyFlg:         mc.RdyFlg,
		IRQ:            mc.IRQ,
		Killed:         mc.Killed,
		NMIPending:     mc.nmiPending,
		IRQGateDisable: mc.irqGateDisable,
		IRQAge:         mc.irqAge,
	}
}

// RestoreState applies a snapshot produced by SaveState.
func (mc *CPU) RestoreState(s interface{}) bool {
	st, ok := s.(state)
	if !ok {
		return false
	}
	mc.PC.Load(st.PC)
	mc.A.Load(st.A)
	mc.X.Load(st.X)
	mc.Y.Load(st.Y)
	mc.SP.Load(st.SP)
	mc.Status.Load(st.Status)
	mc.RdyFlg = st.RdyFlg
	mc.IRQ = st.IRQ
	mc.Killed = st.Killed
	mc.nmiPending = st.NMIPending
	mc.irqGateDisable = st.IRQGateDisable
	mc.irqAge = st.IRQAge

	// a restored CPU is by definition at an instruction boundary
	mc.Interrupted = true
	return true
}
