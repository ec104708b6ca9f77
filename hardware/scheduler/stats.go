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

package scheduler

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// ServeStats starts a statsview dashboard on addr (eg. ":18081"), serving
// live goroutine/heap/GC charts for as long as the process runs. It does
// not block; call it once, any time before or during
// RunFor. A warp-mode run typically skips this since it disables the
// niceties warp is trying to avoid the cost of.
func (m *Machine) ServeStats(addr string) {
	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()
	go mgr.Start()
}

// CycleRate reports the total number of master cycles executed since the
// machine was constructed (the master clock value), for a host that wants to print its own throughput
// figure alongside the statsview runtime charts (statsview itself has no
// hook for domain-specific counters like "bad lines this frame").
func (m *Machine) CycleRate() uint64 {
	return m.Clock
}
