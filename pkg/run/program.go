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

package run

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/edidforge/edidforge/pkg/profile"
	"github.com/edidforge/edidforge/pkg/programmer"
)

//
func NewProgram() *Program {

	p := &Program{}
	p.Runner = *NewRunner(
		"program -d|--device {device} [-P|--profile {profile}] [-c|--profiles {file}]",
		"program an EDID emulator dongle",
		`
Use the program command to upload the EDID block of a profile to an EDID
emulator dongle attached via serial port. The dongle acks the upload with
the checksum of the received block.`,
		"", runnerHelpEpilogue, p.Run)

	p.AddBaseSettings()
	p.AddSetting(&p.Device, "device", "d", "EDIDFORGE_DEVICE", nil,
		"serial port device of the dongle", true)
	p.AddSetting(&p.Profile, "profile", "P", "", "fhd", "display profile", false)

	return p
}

//
type Program struct {
	//
	Runner
	//
	Device  string
	Profile string
}

//
func (p *Program) Run() error {

	p.ParseSettings()

	if err := p.LoadProfiles(); err != nil {
		return err
	}

	prof := profile.Lookup(p.Profile)
	if prof == nil {
		return fmt.Errorf("unknown profile: %s", p.Profile)
	}

	r, err := prof.Build()
	if err != nil {
		return err
	}

	prg, err := programmer.Open(p.Device)
	if err != nil {
		return fmt.Errorf("cannot open dongle on %s: %v", p.Device, err)
	}
	defer prg.Close()

	if err := prg.Program(r); err != nil {
		return err
	}

	log.Infof("profile %s programmed via %s", prof.Name, p.Device)
	return nil
}
