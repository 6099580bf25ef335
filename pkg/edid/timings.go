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
	"fmt"
)

/*
	SetEstablishedDefaults sets exactly the established timing bits for
	640x480, 800x600 and 1024x768 at 60 Hz, clearing all others.
*/
func (r *Record) SetEstablishedDefaults() {
	et := r.block.slice("established")
	et[0] = 0x21
	et[1] = 0x08
	et[2] = 0x00
}

//
func (r *Record) standardSlot(slot int) ([]byte, error) {
	if slot < 0 || slot >= StandardTimingCount {
		return nil, fmt.Errorf("invalid standard timing slot: %d", slot)
	}
	st := r.block.slice("standard")
	return st[slot*2 : slot*2+2], nil
}

/*
	SetStandardTiming fills one standard timing slot. hsize is the horizontal
	size in pixels, 256 to 2288 and a multiple of 8; vfreq the vertical
	refresh in Hz, 60 to 123. The slot encodes hsize as hsize/8-31 and packs
	the aspect ratio into the top two bits of the vfreq byte.
*/
func (r *Record) SetStandardTiming(slot, hsize, vfreq int, aspect Aspect) error {

	st, err := r.standardSlot(slot)
	if err != nil {
		return err
	}

	if hsize < 256 || hsize > 2288 {
		return fmt.Errorf("horizontal size out of range: %d", hsize)
	}
	if hsize%8 != 0 {
		return fmt.Errorf("horizontal size not a multiple of 8: %d", hsize)
	}
	if vfreq < 60 || vfreq > 123 {
		return fmt.Errorf("vertical frequency out of range: %d", vfreq)
	}
	if aspect > Aspect16x9 {
		return fmt.Errorf("invalid aspect ratio: %d", aspect)
	}

	st[0] = byte(hsize/8 - 31)
	st[1] = byte(aspect)<<6 | byte(vfreq-60)

	return nil
}

// UnsetStandardTiming marks a standard timing slot unused by writing the
// reserved fill pattern.
func (r *Record) UnsetStandardTiming(slot int) error {

	st, err := r.standardSlot(slot)
	if err != nil {
		return err
	}

	st[0] = stUnusedFill
	st[1] = stUnusedFill

	return nil
}

/*
	StandardTiming decodes one standard timing slot. ok is false when the
	slot carries the unused fill pattern.
*/
func (r *Record) StandardTiming(slot int) (
	hsize, vfreq int, aspect Aspect, ok bool) {

	st, err := r.standardSlot(slot)
	if err != nil {
		return 0, 0, 0, false
	}
	if st[0] == stUnusedFill && st[1] == stUnusedFill {
		return 0, 0, 0, false
	}

	hsize = (int(st[0]) + 31) * 8
	vfreq = int(st[1]&0x3f) + 60
	aspect = Aspect(st[1] >> 6)

	return hsize, vfreq, aspect, true
}
