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

package main

import (
	"fmt"
	"os"

	"github.com/edidforge/edidforge/pkg/run"
)

//
var EdidForgeVersion string

//
func synopsis() {
	fmt.Print(`
synopsis: edidctl {generate|dump|ls|serve|program|version} ...

run 'edidctl {action} -h|--help' to see detailed info

`)
}

//
func version() {
	fmt.Printf("\nEdidForge %s\n\n", EdidForgeVersion)
}

//
func main() {

	var action string
	var args []string

	if len(os.Args) > 1 {
		action = os.Args[1]
	}

	if len(os.Args) > 2 {
		args = os.Args[2:]
	}

	switch action {

	case "generate":
		run.DieOnError(run.NewGenerate().Execute(args))

	case "dump":
		run.DieOnError(run.NewDump().Execute(args))

	case "ls":
		run.DieOnError(run.NewList().Execute(args))

	case "serve":
		version()
		run.DieOnError(run.NewServe().Execute(args))

	case "program":
		run.DieOnError(run.NewProgram().Execute(args))

	case "version":
		version()

	case "":
		fallthrough
	case "-h":
		fallthrough
	case "--help":
		synopsis()

	default:
		run.Die("unknown action: %s\n", action)
	}
}
