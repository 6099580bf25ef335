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
	"os"

	"github.com/edidforge/edidforge/pkg/profile"
)

//
func NewDump() *Dump {

	d := &Dump{}
	d.Runner = *NewRunner(
		"dump [-P|--profile {profile}] [-c|--profiles {file}]",
		"hex dump the EDID blob of a profile",
		"\nUse the dump command to output a hex dump of a profile's EDID block.",
		"", runnerHelpEpilogue, d.Run)

	d.AddBaseSettings()
	d.AddSetting(&d.Profile, "profile", "P", "", "fhd", "display profile", false)

	return d
}

//
type Dump struct {
	//
	Runner
	//
	Profile string
}

//
func (d *Dump) Run() error {

	d.ParseSettings()

	if err := d.LoadProfiles(); err != nil {
		return err
	}

	p := profile.Lookup(d.Profile)
	if p == nil {
		return fmt.Errorf("unknown profile: %s", d.Profile)
	}

	r, err := p.Build()
	if err != nil {
		return err
	}

	r.Emit(os.Stdout)
	return nil
}
