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

// chunkSize returns the per-rank scatter chunk size C = ceil(e/size)
// used by both the Kruskal sort phase and Borůvka's edge scan
// (spec §4.6).
func chunkSize(e, size int) int {
	if size == 0 {
		return 0
	}
	return (e + size - 1) / size
}

// checkTopology enforces the scatter precondition of spec §4.6:
// floor(e/2)+1 >= size, unless e == size (every rank gets exactly one
// edge and the halving precondition doesn't apply).
func checkTopology(e, size int) error {
	if e == size {
		return nil
	}
	if e/2+1 < size {
		return ErrUnsupportedTopo
	}
	return nil
}

// distributedSort implements Kruskal's sort phase (spec §4.6): rank 0
// scatters its edge list in equal chunks, every rank locally
// merge-sorts its share, then the cohort tree-merges back to rank 0,
// which ends up holding the fully sorted list.
func distributedSort(env cohort.Environment, edges []Edge) ([]Edge, error) {
	rank, size := env.Rank(), env.Size()

	e := len(edges)
	eBuf := env.Broadcast(0, encodeCount(e))
	e = int(binary.LittleEndian.Uint64(eBuf))

	if err := checkTopology(e, size); err != nil {
		return nil, err
	}

	c := chunkSize(e, size)
	var flat []byte
	if rank == 0 {
		flat = encodeEdges(edges)
	}
	chunk := env.Scatter(0, flat, c*EdgeFields*8)
	local := decodeEdges(chunk)
	// the last rank's effective count is at most e mod c when e is not
	// a multiple of c (Scatter already cuts trailing chunks short, and
	// the last one can be empty); trailing padding past that point is
	// never read by anything downstream (spec §9).
	if rank == size-1 && c != 0 && e%c != 0 && len(local) > e%c {
		local = local[:e%c]
	}

	mergeSort(local, 0, len(local)-1)

	for step := 1; step < size; step *= 2 {
		if rank%(2*step) == 0 {
			partner := rank + step
			if partner < size {
				incoming := recvEdgeList(env, partner)
				pivot := len(local) - 1
				local = append(local, incoming...)
				if len(local) > 0 {
					merge(local, 0, len(local)-1, pivot)
				}
			}
		} else if rank%step == 0 {
			partner := rank - step
			sendEdgeList(env, partner, local)
			return nil, nil // dropped out of the reduction
		}
	}

	if rank != 0 {
		return nil, nil
	}
	return local, nil
}

func encodeCount(n int) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(n)))
	return buf[:]
}
