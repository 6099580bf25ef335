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

package profile

import (
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/edidforge/edidforge/pkg/edid"
)

/*
	Profile describes one simulated display: its preferred mode, physical
	size, identity, and the strings its descriptor blocks carry. Building a
	profile runs the full encoding pipeline and yields a finalized record.
*/
type Profile struct {
	Name         string `json:"name" mapstructure:"name"`
	Mode         string `json:"mode" mapstructure:"mode"`
	Manufacturer string `json:"manufacturer,omitempty" mapstructure:"manufacturer"`
	MonitorName  string `json:"monitorName,omitempty" mapstructure:"monitorname"`
	Serial       string `json:"serial,omitempty" mapstructure:"serial"`
	WidthCM      int    `json:"widthCM,omitempty" mapstructure:"widthcm"`
	HeightCM     int    `json:"heightCM,omitempty" mapstructure:"heightcm"`
}

// Build creates the EDID record for this profile, stamped with the current
// wall clock. Use BuildAt when the output needs to be deterministic.
func (p *Profile) Build() (*edid.Record, error) {
	return p.BuildAt(time.Now())
}

/*
	BuildAt creates the EDID record for this profile, with the manufacture
	year taken from the given time. Descriptor slot 0 carries the preferred
	mode, slot 1 the monitor range, slot 2 the monitor name, and slot 3 the
	serial string when the profile has one.
*/
func (p *Profile) BuildAt(t time.Time) (*edid.Record, error) {

	mode := edid.LookupMode(p.Mode)
	if mode == nil {
		return nil, fmt.Errorf("profile %s: unknown mode %q", p.Name, p.Mode)
	}

	log.WithFields(log.Fields{
		"profile": p.Name,
		"mode":    p.Mode,
	}).Debug("building EDID")

	r := edid.NewAt(t)

	if p.Manufacturer != "" {
		if err := r.SetManufacturer(p.Manufacturer); err != nil {
			return nil, err
		}
	}

	widthCM, heightCM := r.PhysicalSize()
	if p.WidthCM > 0 {
		widthCM = p.WidthCM
	}
	if p.HeightCM > 0 {
		heightCM = p.HeightCM
	}
	if err := r.SetPhysicalSize(widthCM, heightCM); err != nil {
		return nil, err
	}

	if err := r.SetDetailedTiming(
		0, mode, widthCM*10, heightCM*10); err != nil {
		return nil, err
	}
	if err := r.SetMonitorRange(1, mode); err != nil {
		return nil, err
	}
	if err := r.SetString(2, edid.MonitorName, p.MonitorName); err != nil {
		return nil, err
	}
	if p.Serial != "" {
		if err := r.SetString(3, edid.MonitorSerial, p.Serial); err != nil {
			return nil, err
		}
	}

	r.UpdateChecksum()
	return r, nil
}

//
var registry = map[string]*Profile{}

//
func init() {
	for _, p := range []*Profile{
		{Name: "vga", Mode: "640x480", MonitorName: "FORGE VGA"},
		{Name: "xga", Mode: "1024x768", MonitorName: "FORGE XGA"},
		{Name: "hd", Mode: "1280x720", MonitorName: "FORGE HD"},
		{Name: "fhd", Mode: "1920x1080", MonitorName: "FORGE FHD"},
		{Name: "qhd", Mode: "2560x1440", MonitorName: "FORGE QHD"},
		{Name: "uhd", Mode: "3840x2160", MonitorName: "FORGE UHD"},
	} {
		registry[p.Name] = p
	}
}

// Lookup retrieves a profile by name, nil if there is none.
func Lookup(name string) *Profile {
	return registry[name]
}

// Names lists all registered profiles in alphabetical order.
func Names() []string {
	ret := make([]string, 0, len(registry))
	for n := range registry {
		ret = append(ret, n)
	}
	sort.Strings(ret)
	return ret
}

//
func register(p *Profile) error {
	if p.Name == "" {
		return fmt.Errorf("profile without name")
	}
	if p.Mode == "" {
		return fmt.Errorf("profile %s: no mode", p.Name)
	}
	if edid.LookupMode(p.Mode) == nil {
		return fmt.Errorf("profile %s: unknown mode %q", p.Name, p.Mode)
	}
	registry[p.Name] = p
	return nil
}
