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

import "github.com/dirkwhoffmann/go64/errors"

// halfTrackCount is the number of half-track positions the stepper can
// reach: 42 tracks of two half-tracks each. Standard DOS only formats
// tracks 1-35 (and only the odd, "full" half-tracks), but copy-protected
// disks use the rest.
const halfTrackCount = 84

// sectorsPerTrack gives the standard zone layout: outer tracks carry more
// 256-byte sectors than inner ones. Tracks 36-42 continue zone 4.
func sectorsPerTrack(track int) int {
	switch {
	case track <= 17:
		return 21
	case track <= 24:
		return 19
	case track <= 30:
		return 18
	default:
		return 17
	}
}

// cyclesPerByteZone gives the byte-cell duration for each speed zone:
// outer (lower-numbered) tracks pack more bytes into the same 300 RPM
// rotation, so each byte passes the head in fewer cycles.
var cyclesPerByteZone = [4]int{26, 28, 30, 32}

// zoneForHalfTrack maps a half-track to its speed zone index.
func zoneForHalfTrack(ht int) int {
	track := (ht + 1) / 2
	switch {
	case track <= 17:
		return 0
	case track <= 24:
		return 1
	case track <= 30:
		return 2
	default:
		return 3
	}
}

// gcrTable maps each nibble to its 5-bit group code. The codes guarantee
// no more than two consecutive zero bits and no more than eight
// consecutive one bits on the medium, which is what makes the ten-one-bits
// SYNC mark unambiguous.
var gcrTable = [16]uint8{
	0x0a, 0x0b, 0x12, 0x13, 0x0e, 0x0f, 0x16, 0x17,
	0x09, 0x19, 0x1a, 0x1b, 0x0d, 0x1d, 0x1e, 0x15,
}

// encodeGCR converts 4 plain bytes into their 5-byte GCR form.
func encodeGCR(dst, src []uint8) {
	var bits uint64
	for _, b := range src {
		bits = bits<<5 | uint64(gcrTable[b>>4])
		bits = bits<<5 | uint64(gcrTable[b&0x0f])
	}
	for i := 4; i >= 0; i-- {
		dst[i] = uint8(bits)
		bits >>= 8
	}
}

// appendGCR GCR-encodes a block (length a multiple of 4) and appends it to
// the track stream.
func appendGCR(track []uint8, block []uint8) []uint8 {
	var out [5]uint8
	for i := 0; i+4 <= len(block); i += 4 {
		encodeGCR(out[:], block[i:i+4])
		track = append(track, out[:]...)
	}
	return track
}

// the sync mark and inter-block gap filler
const (
	syncByte = 0xff
	gapByte  = 0x55
)

// Disk models a removable 5.25" single-sided floppy as 84 circular
// half-track streams of GCR bytes. The read/write head addresses a
// (half-track, byte) pair; the bit-level position within a byte is folded
// into the drive's byte-cell timer.
type Disk struct {
	halftracks     [halfTrackCount + 1][]uint8 // 1-based
	writeProtected bool
	modified       bool
}

// NewDisk returns an empty, unformatted disk.
func NewDisk() *Disk {
	return &Disk{}
}

// LoadD64 parses a standard D64 image - 35 or 40 tracks, with or without
// the trailing per-sector error-code table - and GCR-encodes each track
// into its half-track stream. The even ("half") positions between tracks
// are left unformatted, exactly as stock formatting leaves them.
func (d *Disk) LoadD64(data []byte) error {
	const sectorSize = 256

	trackCount := 0
	sectors := 0
	for t := 1; t <= 40; t++ {
		sectors += sectorsPerTrack(t)
		size := sectors * sectorSize
		if len(data) == size || len(data) == size+sectors {
			trackCount = t
			break
		}
	}
	if trackCount < 35 {
		return errors.Errorf(errors.DriveError, "unrecognised D64 image size")
	}

	// the two ID bytes live in the BAM on a real disk; any fixed pair
	// serves for images that don't carry one
	const id1, id2 = uint8('6'), uint8('4')

	offset := 0
	for t := 1; t <= trackCount; t++ {
		n := sectorsPerTrack(t)
		var track []uint8
		for s := 0; s < n; s++ {
			sector := data[offset : offset+sectorSize]
			offset += sectorSize

			// header block: marker, checksum, sector, track, ID2, ID1,
			// and two $0F padding bytes
			hdr := [8]uint8{
				0x08,
				uint8(s) ^ uint8(t) ^ id1 ^ id2,
				uint8(s), uint8(t),
				id2, id1,
				0x0f, 0x0f,
			}

			// data block: marker, 256 data bytes, checksum, two zeros
			blk := make([]uint8, 0, 260)
			blk = append(blk, 0x07)
			blk = append(blk, sector...)
			var chk uint8
			for _, b := range sector {
				chk ^= b
			}
			blk = append(blk, chk, 0x00, 0x00)

			for i := 0; i < 5; i++ {
				track = append(track, syncByte)
			}
			track = appendGCR(track, hdr[:])
			for i := 0; i < 9; i++ {
				track = append(track, gapByte)
			}
			for i := 0; i < 5; i++ {
				track = append(track, syncByte)
			}
			track = appendGCR(track, blk)
			for i := 0; i < 8; i++ {
				track = append(track, gapByte)
			}
		}
		d.halftracks[2*t-1] = track
	}

	d.writeProtected = false
	d.modified = false
	return nil
}

// SetWriteProtect sets the write-protect sensor state, as a host command
// would when the user covers or uncovers the notch.
func (d *Disk) SetWriteProtect(on bool) {
	d.writeProtected = on
}

// TrackLen returns the byte length of the stream for the given half-track
// (1-84), or 0 if it is unformatted or out of range.
func (d *Disk) TrackLen(ht int) int {
	if ht < 1 || ht > halfTrackCount {
		return 0
	}
	return len(d.halftracks[ht])
}

// ByteAt returns the byte at position within the half-track's stream,
// wrapping as the head continues rotating past the end.
func (d *Disk) ByteAt(ht, position int) uint8 {
	n := d.TrackLen(ht)
	if n == 0 {
		return 0
	}
	return d.halftracks[ht][position%n]
}

// WriteByteAt replaces the byte at position and marks the disk modified.
// Writing to an unformatted half-track lazily formats it as a gap-filled
// stream of the zone's nominal capacity first, which is what a real head
// writing onto virgin media amounts to in this byte-level model.
func (d *Disk) WriteByteAt(ht, position int, b uint8) {
	if ht < 1 || ht > halfTrackCount || d.writeProtected {
		return
	}
	if len(d.halftracks[ht]) == 0 {
		track := make([]uint8, nominalTrackLen(ht))
		for i := range track {
			track[i] = gapByte
		}
		d.halftracks[ht] = track
	}
	d.halftracks[ht][position%len(d.halftracks[ht])] = b
	d.modified = true
}

// nominalTrackLen approximates the zone's raw capacity at 300 RPM.
func nominalTrackLen(ht int) int {
	return [4]int{7692, 7142, 6666, 6250}[zoneForHalfTrack(ht)]
}

// WriteProtected reports whether the write-protect sensor is tripped.
func (d *Disk) WriteProtected() bool {
	return d.writeProtected
}

// Modified reports whether any byte has been written since the image was
// loaded; the host uses it to prompt before discarding changes.
func (d *Disk) Modified() bool {
	return d.modified
}

// ClearModified acknowledges a Modified report, after the host has saved
// the image back out.
func (d *Disk) ClearModified() {
	d.modified = false
}
