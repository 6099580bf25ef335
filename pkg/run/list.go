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

	"github.com/edidforge/edidforge/pkg/profile"
)

//
func NewList() *List {

	l := &List{}
	l.Runner = *NewRunner(
		"ls [-c|--profiles {file}]",
		"list available display profiles",
		"\nUse the ls command to list the available display profiles and modes.",
		"", runnerHelpEpilogue, l.Run)

	l.AddBaseSettings()

	return l
}

//
type List struct {
	Runner
}

//
func (l *List) Run() error {

	l.ParseSettings()

	if err := l.LoadProfiles(); err != nil {
		return err
	}

	fmt.Printf("\n%-12s%-12s%-10s%s\n", "PROFILE", "MODE", "SIZE", "NAME")
	for _, n := range profile.Names() {
		p := profile.Lookup(n)
		size := "-"
		if p.WidthCM > 0 && p.HeightCM > 0 {
			size = fmt.Sprintf("%dx%d cm", p.WidthCM, p.HeightCM)
		}
		fmt.Printf("%-12s%-12s%-10s%s\n", p.Name, p.Mode, size, p.MonitorName)
	}
	fmt.Println()

	return nil
}
