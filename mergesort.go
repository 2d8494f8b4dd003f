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

// mergeSort sorts edges[lo..hi] (inclusive) by Weight in place. It is
// not stable across equal weights; MST correctness must never depend
// on stability (spec §4.5).
func mergeSort(edges []Edge, lo, hi int) {
	if lo >= hi {
		return
	}
	pivot := lo + (hi-lo)/2
	mergeSort(edges, lo, pivot)
	mergeSort(edges, pivot+1, hi)
	merge(edges, lo, hi, pivot)
}

// merge combines the two already-sorted runs edges[lo..pivot] and
// edges[pivot+1..hi] using the bitonic trick: copy the left run
// forward and the right run reversed into one scratch buffer, then
// repeatedly take from whichever end holds the smaller value. On a
// weight tie the left-originating element is taken first (spec §4.5).
func merge(edges []Edge, lo, hi, pivot int) {
	n := hi - lo + 1
	scratch := make([]Edge, n)

	leftLen := pivot - lo + 1
	copy(scratch[:leftLen], edges[lo:pivot+1])
	// right run copied back-to-front into the tail of scratch.
	for i := pivot + 1; i <= hi; i++ {
		scratch[hi-i+leftLen] = edges[i]
	}

	left, right := 0, n-1
	for i := lo; i <= hi; i++ {
		if scratch[left].Weight <= scratch[right].Weight {
			edges[i] = scratch[left]
			left++
		} else {
			edges[i] = scratch[right]
			right--
		}
	}
}
