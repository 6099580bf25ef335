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

package control

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//
type APIServer interface {
	Serve() error
	Stop() error
}

// NewAPIServer creates an API server listening on addr; when addr carries
// no port, the default port 8130 is added.
func NewAPIServer(addr string) APIServer {
	return &api{address: addr}
}

//
type api struct {
	address string
	server  *http.Server
}

//
func (a *api) Serve() error {

	addr := a.address
	if len(strings.Split(addr, ":")) < 2 {
		addr = fmt.Sprintf("%s:8130", a.address)
	}

	log.Infof("EdidForge API starts listening on %s", addr)
	a.server = &http.Server{Addr: addr, Handler: a.router()}

	err := a.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

//
func (a *api) Stop() error {
	if a.server != nil {
		log.Info("API server stopping...")
		err := a.server.Shutdown(context.Background())
		a.server = nil
		return err
	}
	return nil
}

//
func (a *api) router() *mux.Router {

	router := mux.NewRouter().StrictSlash(true)

	addRoute(router, "profiles", "GET", "/profiles", a.profiles)
	addRoute(router, "profile", "GET", "/profile/{name}", a.profile)
	addRoute(router, "edid", "GET", "/profile/{name}/edid", a.profileEDID)
	addRoute(router, "dump", "GET", "/profile/{name}/dump", a.profileDump)
	addRoute(router, "build", "POST", "/edid", a.build)

	return router
}

//
func addRoute(r *mux.Router, name, method, pattern string,
	handler http.HandlerFunc) {
	r.Methods(method).
		Path(pattern).
		Name(name).
		Handler(requestLogger(handler, name))
}

//
func requestLogger(inner http.Handler, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		log.WithFields(log.Fields{
			"remote": r.RemoteAddr,
			"method": r.Method,
			"path":   r.RequestURI,
		}).Debugf("API BEGIN | %s", name)

		inner.ServeHTTP(w, r)

		log.Debugf("API END   | %s", name)
	})
}
