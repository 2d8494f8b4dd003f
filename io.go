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
	"bufio"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadGraphFile reads the text edge-list format of spec §6: a header
// line "<V> <E>", followed by E "<from> <to> <weight>" lines.
func LoadGraphFile(path string) (*WeightedGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIoOpenFailure, err)
	}
	defer f.Close()
	return ReadGraph(f)
}

// ReadGraph parses the same format as LoadGraphFile from an
// arbitrary reader.
func ReadGraph(r io.Reader) (*WeightedGraph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: missing header line", ErrIoReadFailure)
	}
	var v, e int
	if _, err := fmt.Sscan(sc.Text(), &v, &e); err != nil {
		return nil, fmt.Errorf("%w: bad header: %v", ErrIoReadFailure, err)
	}

	edges := make([]Edge, 0, e)
	for i := 0; i < e; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: expected %d edges, got %d", ErrIoReadFailure, e, i)
		}
		var edge Edge
		if _, err := fmt.Sscan(sc.Text(), &edge.From, &edge.To, &edge.Weight); err != nil {
			return nil, fmt.Errorf("%w: bad edge line %d: %v", ErrIoReadFailure, i, err)
		}
		edges = append(edges, edge)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIoReadFailure, err)
	}

	return NewWeightedGraph(v, e, edges)
}

// WriteGraph dumps g in the same "<from>\t<to>\t<weight>" edge-dump
// format used by the verbose "Graph:"/"MST:" blocks of spec §6.
func WriteGraph(w io.Writer, edges []Edge) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%d\t%d\t%d\n", e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("%w: %v", ErrIoWriteFailure, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrIoWriteFailure, err)
	}
	return nil
}

// graphDoc is the YAML projection of a WeightedGraph, grounded on the
// teacher's GraphInfo/MarshalGraphToYaml pair (export.go) — reused
// here for graph-config round-tripping instead of the teacher's
// generic labeled-graph export.
type graphDoc struct {
	V     int    `yaml:"v"`
	E     int    `yaml:"e"`
	Edges []Edge `yaml:"edges"`
}

// MarshalYAML serializes g the same way the teacher serializes its
// generic Graph[K,V,W] values.
func (g *WeightedGraph) MarshalYAML() (interface{}, error) {
	return graphDoc{V: g.V, E: g.E, Edges: g.Edges}, nil
}

// UnmarshalGraphYAML parses a graph previously produced by
// WeightedGraph.MarshalYAML.
func UnmarshalGraphYAML(data []byte) (*WeightedGraph, error) {
	var doc graphDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIoReadFailure, err)
	}
	return NewWeightedGraph(doc.V, doc.E, doc.Edges)
}
