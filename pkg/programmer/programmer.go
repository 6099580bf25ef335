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

package programmer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jacobsa/go-serial/serial"
	log "github.com/sirupsen/logrus"

	"github.com/edidforge/edidforge/pkg/edid"
)

//
const commandLength = 4

//
var helloHost = []byte("hlod")
var helloDongle = []byte("hloe")
var cmdProgram = []byte("prog")

/*
	Programmer drives an EDID emulator dongle over a serial line. The wire
	protocol is a hello exchange after connecting, then per upload a 4-byte
	command, the 128-byte record, and a single ack byte from the dongle that
	must equal the record checksum.
*/
type Programmer struct {
	port io.ReadWriteCloser
}

// Open connects to the dongle on the given serial device.
func Open(device string) (*Programmer, error) {

	port, err := openPort(device)
	if err != nil {
		return nil, err
	}

	p := NewProgrammer(port)
	if err := p.syncOnHello(); err != nil {
		p.Close()
		return nil, err
	}

	return p, nil
}

// NewProgrammer wraps an already opened port. The caller is responsible
// for the hello exchange when the port is a fresh connection.
func NewProgrammer(port io.ReadWriteCloser) *Programmer {
	return &Programmer{port: port}
}

//
func openPort(p string) (io.ReadWriteCloser, error) {
	return serial.Open(serial.OpenOptions{
		PortName:        p,
		BaudRate:        115200,
		DataBits:        8,
		StopBits:        1,
		MinimumReadSize: 1,
	})
}

//
func (p *Programmer) Close() error {
	return p.port.Close()
}

//
func (p *Programmer) syncOnHello() error {

	if _, err := p.port.Write(helloHost); err != nil {
		return err
	}

	reply := make([]byte, commandLength)
	if _, err := io.ReadFull(p.port, reply); err != nil {
		return err
	}
	if !bytes.Equal(reply, helloDongle) {
		return fmt.Errorf("dongle did not say hello: % x", reply)
	}

	log.Debug("dongle says hello")
	return nil
}

/*
	Program uploads a finalized record to the dongle. The caller must have
	run UpdateChecksum; the dongle acks with the checksum byte it computed
	over the received block, so a stale checksum fails the upload.
*/
func (p *Programmer) Program(r *edid.Record) error {

	data := r.Bytes()

	if _, err := p.port.Write(cmdProgram); err != nil {
		return err
	}
	if _, err := p.port.Write(data); err != nil {
		return err
	}

	ack := make([]byte, 1)
	if _, err := io.ReadFull(p.port, ack); err != nil {
		return err
	}
	if ack[0] != r.Checksum() {
		return fmt.Errorf("dongle ack mismatch: want %#x, got %#x",
			r.Checksum(), ack[0])
	}

	log.Debugf("record programmed, checksum %#x", ack[0])
	return nil
}
