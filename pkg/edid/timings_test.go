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
func TestStandardTimingRoundTrip(t *testing.T) {

	r := NewAt(testTime)

	for hsize := 256; hsize <= 2288; hsize += 8 {
		for _, vfreq := range []int{60, 75, 100, 123} {
			if err := r.SetStandardTiming(
				7, hsize, vfreq, Aspect16x10); err != nil {
				t.Fatalf("cannot set %dx?@%d: %v", hsize, vfreq, err)
			}
			h, v, a, ok := r.StandardTiming(7)
			if !ok {
				t.Fatalf("slot reads as unset for %d@%d", hsize, vfreq)
			}
			if h != hsize || v != vfreq || a != Aspect16x10 {
				t.Fatalf("round trip failed: got %d@%d %s, want %d@%d",
					h, v, a, hsize, vfreq)
			}
		}
	}
}

//
func TestStandardTimingAspects(t *testing.T) {

	r := NewAt(testTime)

	for _, aspect := range []Aspect{
		Aspect16x10, Aspect4x3, Aspect5x4, Aspect16x9,
	} {
		if err := r.SetStandardTiming(6, 1280, 60, aspect); err != nil {
			t.Fatalf("cannot set aspect %s: %v", aspect, err)
		}
		if _, _, a, _ := r.StandardTiming(6); a != aspect {
			t.Errorf("wrong aspect: got %s, want %s", a, aspect)
		}
	}
}

//
func TestStandardTimingRejects(t *testing.T) {

	r := NewAt(testTime)

	cases := []struct {
		name         string
		hsize, vfreq int
	}{
		{"hsize too small", 248, 60},
		{"hsize too large", 2296, 60},
		{"hsize not multiple of 8", 1284, 60},
		{"vfreq too low", 1280, 59},
		{"vfreq too high", 1280, 124},
	}
	for _, c := range cases {
		if err := r.SetStandardTiming(
			0, c.hsize, c.vfreq, Aspect4x3); err == nil {
			t.Errorf("%s: no error for %d@%d", c.name, c.hsize, c.vfreq)
		}
	}

	if err := r.SetStandardTiming(8, 1280, 60, Aspect4x3); err == nil {
		t.Error("accepted out of range slot")
	}
	if err := r.UnsetStandardTiming(-1); err == nil {
		t.Error("accepted negative slot")
	}
}

//
func TestUnsetStandardTimingIdempotent(t *testing.T) {

	r := NewAt(testTime)

	if err := r.UnsetStandardTiming(2); err != nil {
		t.Fatalf("cannot unset slot: %v", err)
	}
	once := r.Bytes()

	if err := r.UnsetStandardTiming(2); err != nil {
		t.Fatalf("cannot unset slot again: %v", err)
	}
	if !bytes.Equal(once, r.Bytes()) {
		t.Error("unsetting twice changed the record")
	}

	st, _ := r.standardSlot(2)
	if st[0] != 0x01 || st[1] != 0x01 {
		t.Errorf("wrong fill pattern: % x", st)
	}
	if _, _, _, ok := r.StandardTiming(2); ok {
		t.Error("unset slot reads as set")
	}
}

//
func TestStandardTimingPresets(t *testing.T) {

	r := NewAt(testTime)

	want := []struct {
		hsize, vfreq int
		aspect       Aspect
	}{
		{1920, 60, Aspect16x9},
		{1280, 60, Aspect16x9},
		{1024, 60, Aspect4x3},
		{800, 60, Aspect4x3},
		{640, 60, Aspect4x3},
	}
	for ix, w := range want {
		h, v, a, ok := r.StandardTiming(ix)
		if !ok || h != w.hsize || v != w.vfreq || a != w.aspect {
			t.Errorf("slot %d: got %d@%d %s (set: %t), want %d@%d %s",
				ix, h, v, a, ok, w.hsize, w.vfreq, w.aspect)
		}
	}
	for ix := len(want); ix < StandardTimingCount; ix++ {
		if _, _, _, ok := r.StandardTiming(ix); ok {
			t.Errorf("slot %d: expected unset", ix)
		}
	}
}
