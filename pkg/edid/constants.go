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

package edid

// Length is the size of an EDID 1.3 base block.
const Length = 128

// number of slots in the standard timing table
const StandardTimingCount = 8

// number of detailed descriptor slots
const DetailedTimingCount = 4

// size of one detailed descriptor slot
const descriptorLength = 18

// width of the text field in a string descriptor
const stringLength = 13

//
const (
	defaultManufacturer = "EDF"
	defaultWidthCM      = 52
	defaultHeightCM     = 30
	defaultGamma        = 2.20
	//
	edidVersion  = 1
	edidRevision = 3
	// analog input, separate sync
	inputType = 0x80
	// preferred timing mode in first detailed block
	featureBits = 0x02
	// manufacture year is stored as an offset from 1990
	yearEpoch = 1990
)

//
var headerMagic = []byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00}

// newline plus six spaces, the literal trailer the monitor range block carries
var rangePadding = []byte{0x0a, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20}

// fill byte marking an unused standard timing slot
const stUnusedFill = 0x01

/*
	edidIndex maps the named regions of the base block to their byte offset
	and length. The color characteristics region stays zeroed; writing real
	chromaticity coordinates is not something this generator does.
*/
var edidIndex = map[string][2]int{
	"header":      {0, 8},
	"mfgid":       {8, 2},
	"prodcode":    {10, 2},
	"serial":      {12, 4},
	"mfgweek":     {16, 1},
	"mfgyear":     {17, 1},
	"version":     {18, 1},
	"revision":    {19, 1},
	"input":       {20, 1},
	"widthcm":     {21, 1},
	"heightcm":    {22, 1},
	"gamma":       {23, 1},
	"features":    {24, 1},
	"chroma":      {25, 10},
	"established": {35, 3},
	"standard":    {38, 16},
	"detailed":    {54, 72},
	"extensions":  {126, 1},
	"checksum":    {127, 1},
	"payload":     {0, 127},
}

// Aspect selects the aspect ratio of a standard timing slot. The two bit
// values are those of the vfreq/aspect byte's top two bits.
type Aspect byte

//
const (
	Aspect16x10 Aspect = 0x0
	Aspect4x3   Aspect = 0x1
	Aspect5x4   Aspect = 0x2
	Aspect16x9  Aspect = 0x3
)

//
func (a Aspect) String() string {
	switch a {
	case Aspect16x10:
		return "16:10"
	case Aspect4x3:
		return "4:3"
	case Aspect5x4:
		return "5:4"
	case Aspect16x9:
		return "16:9"
	}
	return "unknown"
}

// StringType selects the role of a string descriptor.
type StringType byte

//
const (
	MonitorName   StringType = 0xfc
	MonitorString StringType = 0xfe
	MonitorSerial StringType = 0xff
	//
	monitorRangeTag StringType = 0xfd
)

// byte offsets within one detailed descriptor slot
const (
	dtPixelClock = 0 // 2 bytes LE, units of 10 kHz, zero for non-pixel blocks
	//
	dtHActiveLo       = 2
	dtHBlankLo        = 3
	dtHActiveHBlankHi = 4
	dtVActiveLo       = 5
	dtVBlankLo        = 6
	dtVActiveVBlankHi = 7
	dtHSyncOffsetLo   = 8
	dtHSyncWidthLo    = 9
	dtVSyncLo         = 10
	dtSyncHi          = 11
	dtWidthMMLo       = 12
	dtHeightMMLo      = 13
	dtSizeMMHi        = 14
	dtHBorder         = 15
	dtVBorder         = 16
	dtMisc            = 17
	// non-pixel blocks
	dtTag  = 3
	dtData = 5
)

// bits of the misc byte of a pixel timing block
const (
	ptHSyncPositive = 1 << 1
	ptVSyncPositive = 1 << 2
)
