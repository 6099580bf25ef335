/*
   EdidForge - EDID generator for display test rigs
   Copyright (c) 2026, the EdidForge authors

   This file is part of EdidForge.

   EdidForge is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   EdidForge is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with EdidForge. If not, see <http://www.gnu.org/licenses/>.
*/

package edid

import (
	"encoding/hex"
	"fmt"
	"io"
	"time"
)

/*
	Record is one EDID 1.3 base block under construction. Populate identity
	and timing fields first, then descriptor slots, then call UpdateChecksum
	exactly once as the last step. The Record does not track finalization;
	mutating it after the checksum was written leaves an invalid block until
	UpdateChecksum	runs again.
*/
type Record struct {
	block *block
}

// New creates a record with default identity and timing tables, stamping
// the manufacture year from the wall clock.
func New() *Record {
	return NewAt(time.Now())
}

/*
	NewAt creates a record with default identity and timing tables, stamping
	the manufacture year from the given time. The defaults are a 52x30 cm
	display with gamma 2.20, established timings 640x480/800x600/1024x768 at
	60 Hz, and standard timing slots 0-4 preset with 1920x1080, 1280x720,
	1024x768, 800x600 and 640x480 at 60 Hz.
*/
func NewAt(t time.Time) *Record {

	r := &Record{block: newBlock(edidIndex, make([]byte, Length))}

	copy(r.block.slice("header"), headerMagic)
	r.SetManufacturer(defaultManufacturer)
	r.block.setByte("version", edidVersion)
	r.block.setByte("revision", edidRevision)
	r.block.setByte("input", inputType)
	r.block.setByte("widthcm", defaultWidthCM)
	r.block.setByte("heightcm", defaultHeightCM)
	r.SetGamma(defaultGamma)
	r.block.setByte("features", featureBits)
	r.block.setByte("mfgyear", byte(t.Year()-yearEpoch))

	r.SetEstablishedDefaults()

	presets := []struct {
		hsize, vfreq int
		aspect       Aspect
	}{
		{1920, 60, Aspect16x9},
		{1280, 60, Aspect16x9},
		{1024, 60, Aspect4x3},
		{800, 60, Aspect4x3},
		{640, 60, Aspect4x3},
	}
	for ix, p := range presets {
		r.SetStandardTiming(ix, p.hsize, p.vfreq, p.aspect)
	}
	for ix := len(presets); ix < StandardTimingCount; ix++ {
		r.UnsetStandardTiming(ix)
	}

	return r
}

/*
	SetManufacturer writes the three-letter manufacturer code. Each letter
	maps to a 5-bit value ('A' is 1), and the three values pack big-endian
	into the low 15 bits of the two-byte field.
*/
func (r *Record) SetManufacturer(mfg string) error {

	if len(mfg) != 3 {
		return fmt.Errorf("manufacturer code must have 3 letters: %q", mfg)
	}
	for _, c := range mfg {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf(
				"manufacturer code must be upper case letters: %q", mfg)
		}
	}

	c0 := mfg[0] - '@'
	c1 := mfg[1] - '@'
	c2 := mfg[2] - '@'

	id := r.block.slice("mfgid")
	id[0] = c0<<2 | c1>>3
	id[1] = c1<<5 | c2

	return nil
}

// Manufacturer decodes the three-letter manufacturer code.
func (r *Record) Manufacturer() string {
	id := r.block.slice("mfgid")
	return string([]byte{
		'@' + (id[0]>>2)&0x1f,
		'@' + ((id[0]&0x03)<<3 | id[1]>>5),
		'@' + id[1]&0x1f,
	})
}

// SetProductCode writes the 16-bit product code.
func (r *Record) SetProductCode(code uint16) {
	r.block.setWord("prodcode", int(code))
}

//
func (r *Record) ProductCode() uint16 {
	return uint16(r.block.getWord("prodcode"))
}

// SetSerialNumber writes the 32-bit serial number field.
func (r *Record) SetSerialNumber(serial uint32) {
	s := r.block.slice("serial")
	s[0] = byte(serial)
	s[1] = byte(serial >> 8)
	s[2] = byte(serial >> 16)
	s[3] = byte(serial >> 24)
}

//
func (r *Record) SetPhysicalSize(widthCM, heightCM int) error {
	if widthCM < 0 || widthCM > 0xff || heightCM < 0 || heightCM > 0xff {
		return fmt.Errorf("physical size out of range: %dx%d cm",
			widthCM, heightCM)
	}
	r.block.setByte("widthcm", byte(widthCM))
	r.block.setByte("heightcm", byte(heightCM))
	return nil
}

//
func (r *Record) PhysicalSize() (widthCM, heightCM int) {
	return int(r.block.getByte("widthcm")), int(r.block.getByte("heightcm"))
}

// SetGamma stores gamma as (gamma * 100) - 100.
func (r *Record) SetGamma(gamma float64) {
	r.block.setByte("gamma", byte(gamma*100-100))
}

/*
	SetManufactureDate writes week and year of manufacture. Week 0 means
	unspecified. The year is stored as an offset from 1990.
*/
func (r *Record) SetManufactureDate(week, year int) error {
	if week < 0 || week > 54 {
		return fmt.Errorf("invalid manufacture week: %d", week)
	}
	if year < yearEpoch || year > yearEpoch+0xff {
		return fmt.Errorf("manufacture year out of range: %d", year)
	}
	r.block.setByte("mfgweek", byte(week))
	r.block.setByte("mfgyear", byte(year-yearEpoch))
	return nil
}

//
func (r *Record) ManufactureYear() int {
	return yearEpoch + int(r.block.getByte("mfgyear"))
}

//
func (r *Record) Version() (version, revision int) {
	return int(r.block.getByte("version")), int(r.block.getByte("revision"))
}

/*
	UpdateChecksum computes the block checksum and writes it into the last
	byte, making the sum of all 128 bytes zero mod 256. Call this once,
	after all other population is done.
*/
func (r *Record) UpdateChecksum() {
	sum := r.block.sum("payload") % 256
	r.block.setByte("checksum", byte(256-sum))
}

//
func (r *Record) Checksum() byte {
	return r.block.getByte("checksum")
}

// Sum returns the arithmetic sum of all 128 bytes mod 256, which is zero
// for a correctly finalized record.
func (r *Record) Sum() int {
	return (r.block.sum("payload") + int(r.Checksum())) % 256
}

// Bytes returns a copy of the 128-byte block.
func (r *Record) Bytes() []byte {
	ret := make([]byte, Length)
	copy(ret, r.block.data)
	return ret
}

//
func (r *Record) Emit(w io.Writer) {
	io.WriteString(w, fmt.Sprintf("\nEDID: %s - %dx%d cm, year %d\n",
		r.Manufacturer(), int(r.block.getByte("widthcm")),
		int(r.block.getByte("heightcm")), r.ManufactureYear()))
	d := hex.Dumper(w)
	defer d.Close()
	d.Write(r.block.data)
}
