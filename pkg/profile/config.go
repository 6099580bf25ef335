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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

/*
	Load reads additional profiles from a YAML file and adds them to the
	registry, replacing builtins of the same name. The file carries a list
	under the `profiles` key:

		profiles:
		  - name: bench
		    mode: 1920x1080
		    monitorname: BENCH DUT
		    serial: B-0001
		    widthcm: 60
		    heightcm: 34
*/
func Load(file string) error {

	v := viper.New()
	v.SetConfigFile(file)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("cannot read profile file %s: %v", file, err)
	}

	var profiles []*Profile
	if err := v.UnmarshalKey("profiles", &profiles); err != nil {
		return fmt.Errorf("cannot parse profile file %s: %v", file, err)
	}

	for _, p := range profiles {
		if err := register(p); err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"profile": p.Name,
			"mode":    p.Mode,
		}).Debug("profile loaded")
	}

	log.Debugf("%d profiles loaded from %s", len(profiles), file)
	return nil
}
