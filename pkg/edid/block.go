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

//
func newBlock(index map[string][2]int, data []byte) *block {
	return &block{index: index, data: data}
}

/*
	block addresses a fixed-layout byte buffer through a named index. Each
	index entry maps a field name to its byte offset and length within the
	buffer. All multi-byte numeric fields are little-endian.
*/
type block struct {
	index map[string][2]int
	data  []byte
}

//
func (b *block) slice(key string) []byte {
	if ix, ok := b.index[key]; ok {
		start := ix[0]
		end := start + ix[1]
		if 0 <= start && end <= len(b.data) {
			return b.data[start:end]
		}
	}
	return []byte{}
}

//
func (b *block) getByte(key string) byte {
	if ix, ok := b.index[key]; ok {
		if 0 <= ix[0] && ix[0] < len(b.data) && ix[1] == 1 {
			return b.data[ix[0]]
		}
	}
	return 0
}

//
func (b *block) setByte(key string, v byte) {
	if ix, ok := b.index[key]; ok {
		if 0 <= ix[0] && ix[0] < len(b.data) && ix[1] == 1 {
			b.data[ix[0]] = v
		}
	}
}

//
func (b *block) getWord(key string) int {
	bytes := b.slice(key)
	if len(bytes) != 2 {
		return -1
	}
	return int(bytes[0]) | (int(bytes[1]) << 8)
}

//
func (b *block) setWord(key string, v int) {
	bytes := b.slice(key)
	if len(bytes) == 2 {
		bytes[0] = byte(v)
		bytes[1] = byte(v >> 8)
	}
}

//
func (b *block) sum(key string) int {
	sum := 0
	for _, s := range b.slice(key) {
		sum += int(s)
	}
	return sum
}
