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
	"time"
)

//
var testTime = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

//
func TestNewDefaults(t *testing.T) {

	r := NewAt(testTime)
	data := r.Bytes()

	if !bytes.Equal(data[:8], headerMagic) {
		t.Errorf("wrong header magic: % x", data[:8])
	}

	if v, rev := r.Version(); v != 1 || rev != 3 {
		t.Errorf("wrong version: %d.%d", v, rev)
	}
	if data[20] != 0x80 {
		t.Errorf("wrong input type: %#x", data[20])
	}
	if w, h := r.PhysicalSize(); w != 52 || h != 30 {
		t.Errorf("wrong physical size: %dx%d", w, h)
	}
	if data[23] != 120 { // gamma 2.20
		t.Errorf("wrong gamma byte: %d", data[23])
	}
	if data[24] != 0x02 {
		t.Errorf("wrong feature bits: %#x", data[24])
	}
	if y := r.ManufactureYear(); y != 2026 {
		t.Errorf("wrong manufacture year: %d", y)
	}
	if data[17] != 36 {
		t.Errorf("wrong manufacture year byte: %d", data[17])
	}

	// established timings
	if data[35] != 0x21 || data[36] != 0x08 || data[37] != 0x00 {
		t.Errorf("wrong established timings: % x", data[35:38])
	}

	// extension count stays zero, base block only
	if data[126] != 0 {
		t.Errorf("unexpected extension count: %d", data[126])
	}
}

//
func TestManufacturerPacking(t *testing.T) {

	r := NewAt(testTime)
	if err := r.SetManufacturer("IGT"); err != nil {
		t.Fatalf("cannot set manufacturer: %v", err)
	}

	// 'I'=9, 'G'=7, 'T'=20
	data := r.Bytes()
	if data[8] != 0x24 || data[9] != 0xf4 {
		t.Errorf("wrong manufacturer packing: % x", data[8:10])
	}
	if m := r.Manufacturer(); m != "IGT" {
		t.Errorf("manufacturer does not decode back: %q", m)
	}
}

//
func TestManufacturerInvalid(t *testing.T) {
	r := NewAt(testTime)
	for _, mfg := range []string{"", "AB", "ABCD", "AbC", "A1C"} {
		if err := r.SetManufacturer(mfg); err == nil {
			t.Errorf("accepted invalid manufacturer code %q", mfg)
		}
	}
}

//
func TestSerialAndProductCode(t *testing.T) {

	r := NewAt(testTime)
	r.SetProductCode(0x1234)
	r.SetSerialNumber(0xdeadbeef)

	data := r.Bytes()
	if data[10] != 0x34 || data[11] != 0x12 {
		t.Errorf("wrong product code bytes: % x", data[10:12])
	}
	if c := r.ProductCode(); c != 0x1234 {
		t.Errorf("product code does not decode back: %#x", c)
	}
	if data[12] != 0xef || data[13] != 0xbe ||
		data[14] != 0xad || data[15] != 0xde {
		t.Errorf("wrong serial bytes: % x", data[12:16])
	}
}

//
func TestManufactureDate(t *testing.T) {

	r := NewAt(testTime)
	if err := r.SetManufactureDate(12, 2024); err != nil {
		t.Fatalf("cannot set manufacture date: %v", err)
	}

	data := r.Bytes()
	if data[16] != 12 || data[17] != 34 {
		t.Errorf("wrong manufacture date bytes: %d/%d", data[16], data[17])
	}

	if err := r.SetManufactureDate(0, 1989); err == nil {
		t.Error("accepted year before epoch")
	}
	if err := r.SetManufactureDate(55, 2024); err == nil {
		t.Error("accepted invalid week")
	}
}

//
func TestChecksum(t *testing.T) {

	r := NewAt(testTime)
	mode := LookupMode("1920x1080")
	if err := r.SetDetailedTiming(0, mode, 520, 300); err != nil {
		t.Fatalf("cannot set detailed timing: %v", err)
	}
	r.UpdateChecksum()

	if s := r.Sum(); s != 0 {
		t.Errorf("record does not sum to zero: %d", s)
	}

	// recomputing after mutation restores the invariant
	r.SetString(2, MonitorName, "OTHER")
	r.UpdateChecksum()
	if s := r.Sum(); s != 0 {
		t.Errorf("record does not sum to zero after update: %d", s)
	}
}

//
func TestDeterminism(t *testing.T) {

	build := func() []byte {
		r := NewAt(testTime)
		mode := LookupMode("1280x720")
		if err := r.SetDetailedTiming(0, mode, 520, 300); err != nil {
			t.Fatalf("cannot set detailed timing: %v", err)
		}
		if err := r.SetMonitorRange(1, mode); err != nil {
			t.Fatalf("cannot set monitor range: %v", err)
		}
		if err := r.SetString(2, MonitorName, "FORGE"); err != nil {
			t.Fatalf("cannot set name: %v", err)
		}
		r.UpdateChecksum()
		return r.Bytes()
	}

	if !bytes.Equal(build(), build()) {
		t.Error("identical inputs do not produce identical records")
	}
}
