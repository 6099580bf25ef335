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
	"bytes"
	"testing"
)

//
func TestDetailedTiming1080p(t *testing.T) {

	r := NewAt(testTime)
	mode := LookupMode("1920x1080")
	if err := r.SetDetailedTiming(0, mode, 520, 300); err != nil {
		t.Fatalf("cannot set detailed timing: %v", err)
	}

	// the canonical 1080p detailed timing block
	want := []byte{
		0x02, 0x3a, 0x80, 0x18, 0x71, 0x38, 0x2d, 0x40, 0x58, 0x2c,
		0x45, 0x00, 0x08, 0x2c, 0x21, 0x00, 0x00, 0x06,
	}
	d, _ := r.descriptorSlot(0)
	if !bytes.Equal(d, want) {
		t.Errorf("wrong descriptor bytes:\ngot  % x\nwant % x", d, want)
	}

	if c := r.PixelClock(0); c != 148500 {
		t.Errorf("wrong pixel clock: %d", c)
	}
}

//
func TestDetailedTimingRejectsOverflow(t *testing.T) {

	r := NewAt(testTime)

	cases := []struct {
		name string
		mode Modeline
	}{
		{
			"hactive over 12 bits",
			Modeline{Clock: 600000,
				HDisplay: 4096, HSyncStart: 4100, HSyncEnd: 4120, HTotal: 4200,
				VDisplay: 2160, VSyncStart: 2168, VSyncEnd: 2178, VTotal: 2250},
		},
		{
			"hsync offset over 10 bits",
			Modeline{Clock: 148500,
				HDisplay: 1920, HSyncStart: 2945, HSyncEnd: 2990, HTotal: 3000,
				VDisplay: 1080, VSyncStart: 1084, VSyncEnd: 1089, VTotal: 1125},
		},
		{
			"vsync width over 6 bits",
			Modeline{Clock: 148500,
				HDisplay: 1920, HSyncStart: 2008, HSyncEnd: 2052, HTotal: 2200,
				VDisplay: 1080, VSyncStart: 1084, VSyncEnd: 1149, VTotal: 1150},
		},
		{
			"zero totals",
			Modeline{Clock: 148500},
		},
	}
	before := r.Bytes()
	for _, c := range cases {
		if err := r.SetDetailedTiming(1, &c.mode, 520, 300); err == nil {
			t.Errorf("%s: no error", c.name)
		}
	}

	good := LookupMode("1920x1080")
	if err := r.SetDetailedTiming(1, good, 4096, 300); err == nil {
		t.Error("width over 12 bits: no error")
	}

	// rejected requests must not have touched the record
	if !bytes.Equal(before, r.Bytes()) {
		t.Error("rejected request modified the record")
	}
}

//
func TestMonitorRange(t *testing.T) {

	r := NewAt(testTime)
	mode := LookupMode("1920x1080")
	if err := r.SetMonitorRange(1, mode); err != nil {
		t.Fatalf("cannot set monitor range: %v", err)
	}

	// 60 Hz +/-1, 148500/2200 = 67 kHz +/-1, ceiling 15 x 10 MHz
	want := []byte{
		0x00, 0x00, 0x00, 0xfd, 0x00, 0x3b, 0x3d, 0x42, 0x44, 0x0f,
		0x00, 0x0a, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
	}
	d, _ := r.descriptorSlot(1)
	if !bytes.Equal(d, want) {
		t.Errorf("wrong range bytes:\ngot  % x\nwant % x", d, want)
	}

	if err := r.SetMonitorRange(1, &Modeline{Clock: 1000}); err == nil {
		t.Error("accepted modeline without totals")
	}
}

//
func TestStringDescriptor(t *testing.T) {

	r := NewAt(testTime)
	if err := r.SetString(2, MonitorName, "FORGE"); err != nil {
		t.Fatalf("cannot set name: %v", err)
	}

	d, _ := r.descriptorSlot(2)
	if d[dtTag] != 0xfc {
		t.Errorf("wrong type tag: %#x", d[dtTag])
	}
	want := []byte{'F', 'O', 'R', 'G', 'E', '\n',
		0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(d[dtData:], want) {
		t.Errorf("wrong string bytes: % x", d[dtData:])
	}
}

/*
	The terminator byte is only written when the text is strictly shorter
	than the field: a 13-character string fills the field exactly with no
	terminator, a 12-character one is followed by one.
*/
func TestStringTerminatorBoundary(t *testing.T) {

	r := NewAt(testTime)

	if err := r.SetString(2, MonitorString, "ABCDEFGHIJKLM"); err != nil {
		t.Fatalf("cannot set string: %v", err)
	}
	d, _ := r.descriptorSlot(2)
	if !bytes.Equal(d[dtData:], []byte("ABCDEFGHIJKLM")) {
		t.Errorf("full-width string altered: % x", d[dtData:])
	}

	if err := r.SetString(2, MonitorString, "ABCDEFGHIJKL"); err != nil {
		t.Fatalf("cannot set string: %v", err)
	}
	d, _ = r.descriptorSlot(2)
	if !bytes.Equal(d[dtData:], []byte("ABCDEFGHIJKL\n")) {
		t.Errorf("missing terminator: % x", d[dtData:])
	}

	// over-long text truncates at field width, no error
	if err := r.SetString(2, MonitorString, "ABCDEFGHIJKLMNOP"); err != nil {
		t.Fatalf("cannot set string: %v", err)
	}
	d, _ = r.descriptorSlot(2)
	if !bytes.Equal(d[dtData:], []byte("ABCDEFGHIJKLM")) {
		t.Errorf("wrong truncation: % x", d[dtData:])
	}
}

//
func TestStringRejectsNonStringType(t *testing.T) {
	r := NewAt(testTime)
	for _, typ := range []StringType{0x00, 0xfd, 0xf7, 0xfb} {
		if err := r.SetString(2, typ, "X"); err == nil {
			t.Errorf("accepted non-string type %#x", byte(typ))
		}
	}
}

//
func TestVariantDiscriminant(t *testing.T) {

	r := NewAt(testTime)
	mode := LookupMode("1280x720")

	if err := r.SetDetailedTiming(0, mode, 520, 300); err != nil {
		t.Fatalf("cannot set detailed timing: %v", err)
	}
	if r.PixelClock(0) == 0 {
		t.Error("pixel timing slot reads zero clock")
	}
	if r.DescriptorTag(0) != 0 {
		t.Error("pixel timing slot has a type tag")
	}

	if err := r.SetMonitorRange(0, mode); err != nil {
		t.Fatalf("cannot set monitor range: %v", err)
	}
	if r.PixelClock(0) != 0 {
		t.Error("monitor range slot has nonzero clock")
	}
	if r.DescriptorTag(0) != 0xfd {
		t.Errorf("wrong range tag: %#x", r.DescriptorTag(0))
	}

	if err := r.SetString(0, MonitorSerial, "123"); err != nil {
		t.Fatalf("cannot set serial string: %v", err)
	}
	if r.PixelClock(0) != 0 {
		t.Error("string slot has nonzero clock")
	}
	if r.DescriptorTag(0) != 0xff {
		t.Errorf("wrong serial tag: %#x", r.DescriptorTag(0))
	}
}
