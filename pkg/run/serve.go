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
	"os"
	"os/signal"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/edidforge/edidforge/pkg/control"
)

//
func NewServe() *Serve {

	s := &Serve{}
	s.Runner = *NewRunner(
		"serve [-a|--address {address}] [-c|--profiles {file}]",
		"API server command",
		`
Use the serve command for running the API server. It serves the available
display profiles and their EDID blobs over HTTP, for test rigs that pick up
the advertised capabilities of a simulated display from the network.`,
		"", `- Logging can be configured with these environment variables:

  LOG_FORMAT		set to 'json' for JSON logging
  LOG_FORCE_COLORS	set to non-empty for forcing colorized log entries
  LOG_METHODS		set to non-empty for including methods in log
  LOG_LEVEL		panic, fatal, error, warn, info, debug, trace

`+runnerHelpEpilogue, s.Run)

	s.AddBaseSettings()
	s.AddSetting(&s.Address, "address", "a", "EDIDFORGE_ADDRESS", ":8130",
		"listen address of the API server", false)

	return s
}

//
type Serve struct {
	//
	Runner
	//
	Address string
}

//
func (s *Serve) Run() error {

	s.ParseSettings()

	if err := s.LoadProfiles(); err != nil {
		return err
	}

	wg := &sync.WaitGroup{}
	wg.Add(1)

	api := control.NewAPIServer(s.Address)
	go func() {
		defer wg.Done()
		if err := api.Serve(); err != nil {
			log.Errorf("API server closed with error: %v", err)
		} else {
			log.Info("API server stopped")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	if err := api.Stop(); err != nil {
		log.Errorf("problem stopping API server: %v", err)
	}

	wg.Wait()
	return nil
}
