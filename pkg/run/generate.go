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
	"io/ioutil"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/edidforge/edidforge/pkg/profile"
)

//
func NewGenerate() *Generate {

	g := &Generate{}
	g.Runner = *NewRunner(
		`generate [-P|--profile {profile}] [-o|--output {file}] [-m|--mode {mode}]
      [-n|--name {name}] [-s|--serial {serial}] [-c|--profiles {file}]`,
		"generate an EDID blob",
		`
Use the generate command to build the 128 byte EDID base block for a display
profile and write it to a file, or to stdout when no output file is given.
Individual profile fields can be overridden with flags.`,
		"", runnerHelpEpilogue, g.Run)

	g.AddBaseSettings()
	g.AddSetting(&g.Profile, "profile", "P", "", "fhd", "display profile", false)
	g.AddSetting(&g.Output, "output", "o", "", nil, "output file", false)
	g.AddSetting(&g.Mode, "mode", "m", "", nil, "override preferred mode", false)
	g.AddSetting(&g.Name, "name", "n", "", nil, "override monitor name", false)
	g.AddSetting(&g.Serial, "serial", "s", "", nil, "override serial string", false)

	return g
}

//
type Generate struct {
	//
	Runner
	//
	Profile string
	Output  string
	Mode    string
	Name    string
	Serial  string
}

//
func (g *Generate) Run() error {

	g.ParseSettings()

	if err := g.LoadProfiles(); err != nil {
		return err
	}

	p := profile.Lookup(g.Profile)
	if p == nil {
		return fmt.Errorf("unknown profile: %s", g.Profile)
	}

	use := *p
	if g.Mode != "" {
		use.Mode = g.Mode
	}
	if g.Name != "" {
		use.MonitorName = g.Name
	}
	if g.Serial != "" {
		use.Serial = g.Serial
	}

	r, err := use.Build()
	if err != nil {
		return err
	}

	if g.Output == "" {
		_, err = os.Stdout.Write(r.Bytes())
		return err
	}

	if err := ioutil.WriteFile(g.Output, r.Bytes(), 0644); err != nil {
		return err
	}

	log.Infof("EDID for profile %s written to %s", use.Name, g.Output)
	return nil
}
