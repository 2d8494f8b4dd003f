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
	"errors"
)

// Error kinds of the MST core (spec §7). All of them are fatal: the
// core never retries or recovers locally, it only reports.
var (
	ErrIoOpenFailure    = errors.New("mstlib: cannot open graph file")
	ErrIoReadFailure    = errors.New("mstlib: malformed or truncated graph file")
	ErrIoWriteFailure   = errors.New("mstlib: failed writing output")
	ErrUnsupportedTopo  = errors.New("mstlib: cohort too large for this edge list")
	ErrUnknownAlgorithm = errors.New("mstlib: unknown algorithm selector")
	ErrMalloc           = errors.New("mstlib: allocation failed")
	ErrDisconnected     = errors.New("mstlib: graph is not connected")
)

// IsIoFailure reports whether err is one of the I/O error kinds.
func IsIoFailure(err error) bool {
	return errors.Is(err, ErrIoOpenFailure) || errors.Is(err, ErrIoReadFailure) || errors.Is(err, ErrIoWriteFailure)
}
