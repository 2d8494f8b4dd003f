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

// Package cohort models the SPMD message-passing environment that
// Kruskal's distributed sort and Borůvka's distributed edge-scan run
// on top of (spec §5, §9). Real deployments wire Environment to an
// actual message-passing runtime; this package also ships an
// in-process fake (NewLocalCohort) that runs cooperative "ranks" as
// goroutines on a single machine, which is how property #10 (cohort
// equivalence) becomes cheap to test.
package cohort

import "time"

// Environment is the capability surface a rank needs from the cohort.
// All sends/receives are blocking and matched on (source, implicit
// tag 0); collectives are synchronising across every rank that calls
// them.
type Environment interface {
	// Rank returns this process's position in [0, Size()).
	Rank() int
	// Size returns the number of cooperating ranks.
	Size() int

	// Broadcast distributes buf from root to every rank; non-root
	// calls return the value root supplied.
	Broadcast(root int, buf []byte) []byte
	// Scatter splits buf (meaningful only on root) into Size() chunks
	// of chunkLen bytes and hands each rank its chunk; chunks that run
	// past the end of buf are cut short, down to empty.
	Scatter(root int, buf []byte, chunkLen int) []byte
	// Send blocks until the link to dest accepts buf; it may return
	// before dest's matching Recv has run.
	Send(dest int, buf []byte)
	// Recv blocks until source has sent a matching Send, returning
	// its payload.
	Recv(source int) []byte

	// WallTime returns elapsed time since the cohort started, used by
	// the driver to time an MST run (spec §4.10).
	WallTime() time.Duration
}
