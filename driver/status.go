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

package driver

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
)

// run records one Run invocation's outcome for the status endpoint.
type run struct {
	Algorithm Algorithm `json:"algorithm"`
	Cohort    int       `json:"cohortSize"`
	Elapsed   float64   `json:"elapsedSeconds"`
	Weight    uint64    `json:"weight"`
	Err       string    `json:"error,omitempty"`
}

// StatusServer is an optional HTTP status endpoint for long-lived
// driver deployments, modeled on the teacher's workflow.Service: a
// gin.Engine guarded by a mutex, started and stopped independently of
// the work it reports on.
type StatusServer struct {
	addr string

	mu      sync.RWMutex
	running bool
	last    *run
	svc     *gin.Engine
}

func NewStatusServer(addr string) *StatusServer {
	return &StatusServer{addr: addr}
}

// Record stores the outcome of the most recent Run call.
func (s *StatusServer) Record(cfg *Config, elapsed float64, weight uint64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := &run{Algorithm: cfg.Algorithm, Cohort: cfg.CohortSize, Elapsed: elapsed, Weight: weight}
	if err != nil {
		r.Err = err.Error()
	}
	s.last = r
}

// Start brings up the HTTP listener. It is a no-op if addr is empty.
func (s *StatusServer) Start() error {
	if s.addr == "" {
		return nil
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.svc = gin.Default()
	s.router()
	s.running = true
	s.mu.Unlock()

	return s.svc.Run(s.addr)
}

func (s *StatusServer) router() {
	s.svc.GET("/status", func(c *gin.Context) {
		s.mu.RLock()
		defer s.mu.RUnlock()

		if s.last == nil {
			c.JSON(200, gin.H{"status": "idle"})
			return
		}
		c.JSON(200, gin.H{"status": "done", "last": s.last})
	})

	s.svc.GET("/cohort", func(c *gin.Context) {
		s.mu.RLock()
		defer s.mu.RUnlock()

		if s.last == nil {
			c.JSON(200, gin.H{"cohortSize": 0})
			return
		}
		c.JSON(200, gin.H{"cohortSize": s.last.Cohort})
	})
}

func (s *StatusServer) String() string {
	return fmt.Sprintf("StatusServer(%s)", s.addr)
}
