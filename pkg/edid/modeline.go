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

// ModeFlag carries the sync polarity bits of a modeline.
type ModeFlag uint

//
const (
	ModeFlagPHSync ModeFlag = 1 << iota
	ModeFlagNHSync
	ModeFlagPVSync
	ModeFlagNVSync
)

/*
	Modeline is the full set of timing parameters for one video mode. Clock
	is the pixel clock in kHz. The sync counters follow the usual modeline
	convention: display < sync start < sync end <= total, per axis.
*/
type Modeline struct {
	Name  string
	Clock int
	//
	HDisplay   int
	HSyncStart int
	HSyncEnd   int
	HTotal     int
	//
	VDisplay   int
	VSyncStart int
	VSyncEnd   int
	VTotal     int
	//
	VRefresh int
	Flags    ModeFlag
}

//
func (m *Modeline) HBlank() int {
	return m.HTotal - m.HDisplay
}

//
func (m *Modeline) HSyncOffset() int {
	return m.HSyncStart - m.HDisplay
}

//
func (m *Modeline) HSyncWidth() int {
	return m.HSyncEnd - m.HSyncStart
}

//
func (m *Modeline) VBlank() int {
	return m.VTotal - m.VDisplay
}

//
func (m *Modeline) VSyncOffset() int {
	return m.VSyncStart - m.VDisplay
}

//
func (m *Modeline) VSyncWidth() int {
	return m.VSyncEnd - m.VSyncStart
}

// RefreshRate returns the vertical refresh in Hz, deriving it from clock and
// totals when the modeline does not carry a nominal value.
func (m *Modeline) RefreshRate() int {
	if m.VRefresh > 0 {
		return m.VRefresh
	}
	frame := m.HTotal * m.VTotal
	if frame == 0 {
		return 0
	}
	return (m.Clock*1000 + frame/2) / frame
}

//
func (m *Modeline) Validate() error {

	if m.Clock <= 0 {
		return fmt.Errorf("mode %s: pixel clock must be positive", m.Name)
	}
	if m.HTotal <= 0 || m.VTotal <= 0 {
		return fmt.Errorf("mode %s: totals must be positive", m.Name)
	}
	if m.HDisplay > m.HSyncStart || m.HSyncStart > m.HSyncEnd ||
		m.HSyncEnd > m.HTotal {
		return fmt.Errorf("mode %s: horizontal counters out of order", m.Name)
	}
	if m.VDisplay > m.VSyncStart || m.VSyncStart > m.VSyncEnd ||
		m.VSyncEnd > m.VTotal {
		return fmt.Errorf("mode %s: vertical counters out of order", m.Name)
	}
	return nil
}

//
func (m *Modeline) String() string {
	return fmt.Sprintf("%s: %d %d %d %d %d %d %d %d %d",
		m.Name, m.Clock,
		m.HDisplay, m.HSyncStart, m.HSyncEnd, m.HTotal,
		m.VDisplay, m.VSyncStart, m.VSyncEnd, m.VTotal)
}

// common DMT/CEA modes, all at 60 Hz
var modes = []*Modeline{
	{
		Name: "640x480", Clock: 25175,
		HDisplay: 640, HSyncStart: 656, HSyncEnd: 752, HTotal: 800,
		VDisplay: 480, VSyncStart: 490, VSyncEnd: 492, VTotal: 525,
		VRefresh: 60, Flags: ModeFlagNHSync | ModeFlagNVSync,
	},
	{
		Name: "800x600", Clock: 40000,
		HDisplay: 800, HSyncStart: 840, HSyncEnd: 968, HTotal: 1056,
		VDisplay: 600, VSyncStart: 601, VSyncEnd: 605, VTotal: 628,
		VRefresh: 60, Flags: ModeFlagPHSync | ModeFlagPVSync,
	},
	{
		Name: "1024x768", Clock: 65000,
		HDisplay: 1024, HSyncStart: 1048, HSyncEnd: 1184, HTotal: 1344,
		VDisplay: 768, VSyncStart: 771, VSyncEnd: 777, VTotal: 806,
		VRefresh: 60, Flags: ModeFlagNHSync | ModeFlagNVSync,
	},
	{
		Name: "1280x720", Clock: 74250,
		HDisplay: 1280, HSyncStart: 1390, HSyncEnd: 1430, HTotal: 1650,
		VDisplay: 720, VSyncStart: 725, VSyncEnd: 730, VTotal: 750,
		VRefresh: 60, Flags: ModeFlagPHSync | ModeFlagPVSync,
	},
	{
		Name: "1920x1080", Clock: 148500,
		HDisplay: 1920, HSyncStart: 2008, HSyncEnd: 2052, HTotal: 2200,
		VDisplay: 1080, VSyncStart: 1084, VSyncEnd: 1089, VTotal: 1125,
		VRefresh: 60, Flags: ModeFlagPHSync | ModeFlagPVSync,
	},
	{
		Name: "2560x1440", Clock: 241500,
		HDisplay: 2560, HSyncStart: 2608, HSyncEnd: 2640, HTotal: 2720,
		VDisplay: 1440, VSyncStart: 1443, VSyncEnd: 1448, VTotal: 1481,
		VRefresh: 60, Flags: ModeFlagPHSync | ModeFlagNVSync,
	},
	{
		Name: "3840x2160", Clock: 594000,
		HDisplay: 3840, HSyncStart: 4016, HSyncEnd: 4104, HTotal: 4400,
		VDisplay: 2160, VSyncStart: 2168, VSyncEnd: 2178, VTotal: 2250,
		VRefresh: 60, Flags: ModeFlagPHSync | ModeFlagPVSync,
	},
}

// LookupMode retrieves a preset modeline by name, nil if there is none.
func LookupMode(name string) *Modeline {
	for _, m := range modes {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// ModeNames lists the available preset modelines, in ascending resolution.
func ModeNames() []string {
	ret := make([]string, 0, len(modes))
	for _, m := range modes {
		ret = append(ret, m.Name)
	}
	return ret
}
