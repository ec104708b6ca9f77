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

// go64 is a headless CLI host for the emulation core: the "host" the
// core's command/message queues (package host) talk to when no GUI is
// present. It wires ROMs, an optional cartridge and an optional disk
// image into a scheduler.Machine, runs it for a fixed number of cycles or
// until a debugger stop, and can save/load snapshots.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dirkwhoffmann/go64/cartridgeloader"
	"github.com/dirkwhoffmann/go64/debug"
	"github.com/dirkwhoffmann/go64/debugconsole"
	"github.com/dirkwhoffmann/go64/environment"
	"github.com/dirkwhoffmann/go64/hardware/scheduler"
	"github.com/dirkwhoffmann/go64/host"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// stdoutNotify prints every host.Event to stderr so a headless run can be
// watched without a GUI.
type stdoutNotify struct{}

func (stdoutNotify) Notify(e host.Event) error {
	fmt.Fprintln(os.Stderr, "["+e.Notice.String()+"]", e.String())
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "go64",
		Short: "Headless runner for the go64 Commodore 64 emulation core",
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newAttachCmd())
	root.AddCommand(newSnapshotCmd())

	return root
}

// machineFlags are the ROM/cartridge/disk/region options shared by every
// subcommand that needs a live Machine.
type machineFlags struct {
	kernal, basic, char string
	cart                string
	disk                string
	driveROM            string
	ntsc                bool
	prefsFile            string
}

func (f *machineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kernal, "kernal", "", "path to the KERNAL ROM image")
	cmd.Flags().StringVar(&f.basic, "basic", "", "path to the BASIC ROM image")
	cmd.Flags().StringVar(&f.char, "char", "", "path to the character ROM image")
	cmd.Flags().StringVar(&f.cart, "cart", "", "path to a .crt cartridge image to attach")
	cmd.Flags().StringVar(&f.disk, "disk", "", "path to a .d64 disk image to insert into drive 8")
	cmd.Flags().StringVar(&f.driveROM, "drive-rom", "", "path to the 1541 DOS ROM image")
	cmd.Flags().BoolVar(&f.ntsc, "ntsc", false, "use NTSC timing instead of PAL")
	cmd.Flags().StringVar(&f.prefsFile, "prefs", "", "preferences file to load/persist (default: unpersisted)")
}

// build constructs a fully wired Machine from the flags: ROMs loaded,
// region set, cartridge attached and disk inserted if given.
func (f *machineFlags) build() (*scheduler.Machine, error) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil, stdoutNotify{}, f.prefsFile)
	if err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	m, err := scheduler.New(env)
	if err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}
	m.SetRegion(f.ntsc)

	basic, err := readOptionalROM(f.basic)
	if err != nil {
		return nil, err
	}
	char, err := readOptionalROM(f.char)
	if err != nil {
		return nil, err
	}
	kernal, err := readOptionalROM(f.kernal)
	if err != nil {
		return nil, err
	}
	if err := m.LoadROMs(basic, char, kernal); err != nil {
		return nil, fmt.Errorf("loading ROMs: %w", err)
	}
	if basic == nil || char == nil || kernal == nil {
		env.Notify.Notify(host.Event{Notice: host.ROMsMissing})
	}

	if f.driveROM != "" {
		data, err := os.ReadFile(f.driveROM)
		if err != nil {
			return nil, fmt.Errorf("reading drive ROM: %w", err)
		}
		if err := m.LoadDriveROM(data); err != nil {
			return nil, fmt.Errorf("loading drive ROM: %w", err)
		}
	}

	m.Reset(true)

	if f.cart != "" {
		ld, err := cartridgeloader.NewLoaderFromFilename(f.cart)
		if err != nil {
			return nil, fmt.Errorf("cartridge loader: %w", err)
		}
		if err := m.AttachCartridge(ld); err != nil {
			return nil, fmt.Errorf("attaching cartridge: %w", err)
		}
	}

	if f.disk != "" {
		data, err := os.ReadFile(f.disk)
		if err != nil {
			return nil, fmt.Errorf("reading disk image: %w", err)
		}
		if err := m.InsertDisk(8, data); err != nil {
			return nil, fmt.Errorf("inserting disk: %w", err)
		}
	}

	return m, nil
}

func readOptionalROM(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ROM %q: %w", path, err)
	}
	return data, nil
}

func newRunCmd() *cobra.Command {
	var flags machineFlags
	var cycles uint64
	var interactive bool
	var screenText bool
	var statsAddr string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Boot the machine and run it for a fixed number of cycles",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := flags.build()
			if err != nil {
				return err
			}

			if statsAddr != "" {
				m.ServeStats(statsAddr)
			}

			if interactive {
				console := debugconsole.New(m, os.Stdout)
				return console.Run()
			}

			if _, err := m.RunFor(cycles); err != nil {
				return fmt.Errorf("run: %w", err)
			}

			if screenText {
				lines, err := debug.ReadScreen(m.Mem, debug.DefaultScreenBase, debug.ScreenWidth, debug.ScreenHeight)
				if err != nil {
					return fmt.Errorf("reading screen: %w", err)
				}
				for _, l := range lines {
					fmt.Println(l)
				}
			}

			if m.CpuJammed {
				return fmt.Errorf("CPU jammed")
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().Uint64Var(&cycles, "cycles", 2_500_000, "number of master cycles to run")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "drop into the breakpoint/watchpoint console instead of running to completion")
	cmd.Flags().BoolVar(&screenText, "print-screen", false, "print the 40x25 text screen after running")
	cmd.Flags().StringVar(&statsAddr, "stats-addr", "", "serve a live statsview dashboard at this address (eg. :18081); disabled if empty")

	return cmd
}

func newAttachCmd() *cobra.Command {
	var flags machineFlags

	cmd := &cobra.Command{
		Use:   "attach [cart.crt]",
		Short: "Attach a cartridge image and report its identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.cart = args[0]
			m, err := flags.build()
			if err != nil {
				return err
			}
			fmt.Printf("attached: %s\n", m.Cart.Label())
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save or load a machine snapshot",
	}
	cmd.AddCommand(newSnapshotSaveCmd())
	cmd.AddCommand(newSnapshotLoadCmd())
	return cmd
}

func newSnapshotSaveCmd() *cobra.Command {
	var flags machineFlags
	var cycles uint64
	var out string

	cmd := &cobra.Command{
		Use:   "save [snapshot-file]",
		Short: "Run the machine then save its state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out = args[0]
			m, err := flags.build()
			if err != nil {
				return err
			}
			if _, err := m.RunFor(cycles); err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			return m.SaveSnapshot(f)
		},
	}
	flags.register(cmd)
	cmd.Flags().Uint64Var(&cycles, "cycles", 0, "number of master cycles to run before saving")

	return cmd
}

func newSnapshotLoadCmd() *cobra.Command {
	var flags machineFlags
	var cycles uint64

	cmd := &cobra.Command{
		Use:   "load [snapshot-file]",
		Short: "Load a snapshot into a freshly built machine and resume running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := flags.build()
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			if err := m.LoadSnapshot(f); err != nil {
				return err
			}

			if cycles > 0 {
				if _, err := m.RunFor(cycles); err != nil {
					return err
				}
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().Uint64Var(&cycles, "cycles", 0, "number of master cycles to run after loading")

	return cmd
}
