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
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/edidforge/edidforge/pkg/profile"
)

//
func (a *api) profiles(w http.ResponseWriter, req *http.Request) {

	list := make([]*profile.Profile, 0)
	for _, n := range profile.Names() {
		list = append(list, profile.Lookup(n))
	}

	sendJSONReply(list, http.StatusOK, w)
}

//
func (a *api) profile(w http.ResponseWriter, req *http.Request) {

	p := profile.Lookup(mux.Vars(req)["name"])
	if p == nil {
		handleError(fmt.Errorf("no such profile"), http.StatusNotFound, w)
		return
	}

	sendJSONReply(p, http.StatusOK, w)
}

//
func (a *api) profileEDID(w http.ResponseWriter, req *http.Request) {

	name := mux.Vars(req)["name"]

	p := profile.Lookup(name)
	if p == nil {
		handleError(fmt.Errorf("no such profile"), http.StatusNotFound, w)
		return
	}

	r, err := p.Build()
	if err != nil {
		handleError(err, http.StatusInternalServerError, w)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s.edid", name))
	w.Write(r.Bytes())
}

//
func (a *api) profileDump(w http.ResponseWriter, req *http.Request) {

	p := profile.Lookup(mux.Vars(req)["name"])
	if p == nil {
		handleError(fmt.Errorf("no such profile"), http.StatusNotFound, w)
		return
	}

	r, err := p.Build()
	if err != nil {
		handleError(err, http.StatusInternalServerError, w)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	r.Emit(w)
}

/*
	build constructs an EDID from an ad-hoc profile carried in the request
	body, without registering it. The body uses the same JSON fields as the
	profile listing.
*/
func (a *api) build(w http.ResponseWriter, req *http.Request) {

	var p profile.Profile
	if err := json.NewDecoder(req.Body).Decode(&p); err != nil {
		handleError(
			fmt.Errorf("cannot parse request body: %v", err),
			http.StatusBadRequest, w)
		return
	}

	r, err := p.Build()
	if err != nil {
		handleError(err, http.StatusBadRequest, w)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(r.Bytes())
}

//
func sendJSONReply(obj interface{}, status int, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(obj); err != nil {
		log.Errorf("problem sending JSON reply: %v", err)
	}
}

//
func handleError(e error, status int, w http.ResponseWriter) {
	log.Error(e)
	http.Error(w, fmt.Sprintf("%v", e), status)
}
