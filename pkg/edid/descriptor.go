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

//
func (r *Record) descriptorSlot(slot int) ([]byte, error) {
	if slot < 0 || slot >= DetailedTimingCount {
		return nil, fmt.Errorf("invalid descriptor slot: %d", slot)
	}
	dt := r.block.slice("detailed")
	return dt[slot*descriptorLength : (slot+1)*descriptorLength], nil
}

//
func clearSlot(d []byte) {
	for ix := range d {
		d[ix] = 0
	}
}

/*
	SetDetailedTiming fills a descriptor slot with a full pixel timing
	derived from the given modeline, with the display size in millimeters.
	Every derived sub-field is checked against its bit width before anything
	is written; an over-wide value would otherwise corrupt the neighboring
	bit-packed fields.
*/
func (r *Record) SetDetailedTiming(
	slot int, m *Modeline, widthMM, heightMM int) error {

	d, err := r.descriptorSlot(slot)
	if err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}

	hactive := m.HDisplay
	hblank := m.HBlank()
	hsyncOffset := m.HSyncOffset()
	hsyncWidth := m.HSyncWidth()

	vactive := m.VDisplay
	vblank := m.VBlank()
	vsyncOffset := m.VSyncOffset()
	vsyncWidth := m.VSyncWidth()

	checks := []struct {
		name string
		val  int
		max  int
	}{
		{"horizontal active", hactive, 0xfff},
		{"horizontal blank", hblank, 0xfff},
		{"vertical active", vactive, 0xfff},
		{"vertical blank", vblank, 0xfff},
		{"horizontal sync offset", hsyncOffset, 0x3ff},
		{"horizontal sync width", hsyncWidth, 0x3ff},
		{"vertical sync offset", vsyncOffset, 0x3f},
		{"vertical sync width", vsyncWidth, 0x3f},
		{"width", widthMM, 0xfff},
		{"height", heightMM, 0xfff},
	}
	for _, c := range checks {
		if c.val < 0 || c.val > c.max {
			return fmt.Errorf("%s exceeds field range: %d", c.name, c.val)
		}
	}

	clearSlot(d)

	clock := m.Clock / 10 // units of 10 kHz
	d[dtPixelClock] = byte(clock)
	d[dtPixelClock+1] = byte(clock >> 8)

	d[dtHActiveLo] = byte(hactive)
	d[dtHBlankLo] = byte(hblank)
	d[dtHActiveHBlankHi] = byte((hactive&0xf00)>>4 | (hblank&0xf00)>>8)

	d[dtVActiveLo] = byte(vactive)
	d[dtVBlankLo] = byte(vblank)
	d[dtVActiveVBlankHi] = byte((vactive&0xf00)>>4 | (vblank&0xf00)>>8)

	d[dtHSyncOffsetLo] = byte(hsyncOffset)
	d[dtHSyncWidthLo] = byte(hsyncWidth)
	d[dtVSyncLo] = byte((vsyncOffset&0xf)<<4 | vsyncWidth&0xf)
	d[dtSyncHi] = byte((hsyncOffset&0x300)>>2 | (hsyncWidth&0x300)>>4 |
		(vsyncOffset&0x30)>>2 | (vsyncWidth&0x30)>>4)

	d[dtWidthMMLo] = byte(widthMM)
	d[dtHeightMMLo] = byte(heightMM)
	d[dtSizeMMHi] = byte((widthMM&0xf00)>>4 | (heightMM&0xf00)>>8)

	misc := byte(0)
	if m.Flags&ModeFlagPHSync != 0 {
		misc |= ptHSyncPositive
	}
	if m.Flags&ModeFlagPVSync != 0 {
		misc |= ptVSyncPositive
	}
	d[dtMisc] = misc

	return nil
}

/*
	SetMonitorRange fills a descriptor slot with a monitor frequency range
	around the given modeline: vertical refresh and horizontal frequency get
	one unit of padding on either side. The pixel clock field stays zero,
	which is what marks the slot as a non-pixel block.
*/
func (r *Record) SetMonitorRange(slot int, m *Modeline) error {

	d, err := r.descriptorSlot(slot)
	if err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}

	vfreq := m.RefreshRate()
	hfreq := m.Clock / m.HTotal // kHz

	if vfreq < 1 || vfreq+1 > 0xff {
		return fmt.Errorf("vertical frequency out of range: %d", vfreq)
	}
	if hfreq < 1 || hfreq+1 > 0xff {
		return fmt.Errorf("horizontal frequency out of range: %d", hfreq)
	}

	clearSlot(d)

	d[dtTag] = byte(monitorRangeTag)

	data := d[dtData:]
	data[0] = byte(vfreq - 1)
	data[1] = byte(vfreq + 1)
	data[2] = byte(hfreq - 1)
	data[3] = byte(hfreq + 1)
	data[4] = byte(m.Clock/10000 + 1) // units of 10 MHz
	data[5] = 0
	copy(data[6:], rangePadding)

	return nil
}

/*
	SetString fills a descriptor slot with a text block. Only MonitorName,
	MonitorString and MonitorSerial are valid types. The text is truncated
	at the field width; when it is strictly shorter, a newline terminator
	follows it, as the rest of the field stays zeroed.
*/
func (r *Record) SetString(slot int, typ StringType, text string) error {

	d, err := r.descriptorSlot(slot)
	if err != nil {
		return err
	}

	switch typ {
	case MonitorName, MonitorString, MonitorSerial:
	default:
		return fmt.Errorf("not a string descriptor type: %#x", byte(typ))
	}

	clearSlot(d)

	d[dtTag] = byte(typ)

	data := d[dtData : dtData+stringLength]
	n := copy(data, text)
	if n < stringLength {
		data[n] = '\n'
	}

	return nil
}

// PixelClock returns the pixel clock of a descriptor slot in kHz. It is
// zero for monitor range and string blocks.
func (r *Record) PixelClock(slot int) int {
	d, err := r.descriptorSlot(slot)
	if err != nil {
		return 0
	}
	return (int(d[dtPixelClock]) | int(d[dtPixelClock+1])<<8) * 10
}

// DescriptorTag returns the type tag of a non-pixel descriptor slot, zero
// when the slot holds a pixel timing.
func (r *Record) DescriptorTag(slot int) byte {
	if r.PixelClock(slot) != 0 {
		return 0
	}
	d, err := r.descriptorSlot(slot)
	if err != nil {
		return 0
	}
	return d[dtTag]
}
