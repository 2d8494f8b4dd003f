/*
	Copyright (C) 2023 flxj(https://github.com/flxj)

	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at

		http://www.apache.org/licenses/LICENSE-2.0

	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package mstlib

import (
	"encoding/binary"

	"github.com/flxj/mstlib/cohort"
)

// encodeEdges lays out edges as a flat little-endian int64 sequence,
// from/to/weight interleaved — a documented byte layout rather than
// the source's packed Handle struct (spec §9).
func encodeEdges(edges []Edge) []byte {
	buf := make([]byte, 0, EdgeFields*8*len(edges))
	var tmp [8]byte
	put := func(v int) {
		binary.LittleEndian.PutUint64(tmp[:], uint64(int64(v)))
		buf = append(buf, tmp[:]...)
	}
	for _, e := range edges {
		put(e.From)
		put(e.To)
		put(e.Weight)
	}
	return buf
}

func decodeEdges(buf []byte) []Edge {
	n := len(buf) / (EdgeFields * 8)
	edges := make([]Edge, n)
	for i := 0; i < n; i++ {
		off := i * EdgeFields * 8
		edges[i] = Edge{
			From:   int(int64(binary.LittleEndian.Uint64(buf[off:]))),
			To:     int(int64(binary.LittleEndian.Uint64(buf[off+8:]))),
			Weight: int(int64(binary.LittleEndian.Uint64(buf[off+16:]))),
		}
	}
	return edges
}

// sendEdgeList mirrors the source's "size-prefix integer then edge
// payload" framing (spec §4.6) at the Send granularity: a little
// endian int64 edge count, then the encoded edges.
func sendEdgeList(env cohort.Environment, dest int, edges []Edge) {
	var countBuf [8]byte
	binary.LittleEndian.PutUint64(countBuf[:], uint64(len(edges)))
	env.Send(dest, countBuf[:])
	if len(edges) == 0 {
		return
	}
	env.Send(dest, encodeEdges(edges))
}

func recvEdgeList(env cohort.Environment, source int) []Edge {
	countBuf := env.Recv(source)
	count := binary.LittleEndian.Uint64(countBuf)
	if count == 0 {
		return nil
	}
	return decodeEdges(env.Recv(source))
}

// encodeInts / decodeInts give the Borůvka best-edge table (spec
// §4.9) the same flat little-endian layout.
func encodeInts(vals []int) []byte {
	buf := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(int64(v)))
	}
	return buf
}

func decodeInts(buf []byte) []int {
	n := len(buf) / 8
	vals := make([]int, n)
	for i := range vals {
		vals[i] = int(int64(binary.LittleEndian.Uint64(buf[i*8:])))
	}
	return vals
}
