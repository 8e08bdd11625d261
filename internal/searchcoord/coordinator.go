//
// chessgo - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package searchcoord implements lazy-SMP parallel coordination: a pool of
// internal/search.Search workers shares one transposition table while each
// worker keeps its own history tables, move generators and PV stack. Only
// the primary worker (thread 0) talks to the UCI handler and decides when
// a time-controlled search stops; secondary workers search on an
// effectively infinite limit and are cut loose once the primary returns.
package searchcoord

import (
	"sync"

	"github.com/op/go-logging"

	"github.com/frankkopp/chessgo/internal/config"
	"github.com/frankkopp/chessgo/internal/evalcache"
	myLogging "github.com/frankkopp/chessgo/internal/logging"
	"github.com/frankkopp/chessgo/internal/position"
	"github.com/frankkopp/chessgo/internal/search"
	"github.com/frankkopp/chessgo/internal/tablebase"
	"github.com/frankkopp/chessgo/internal/transpositiontable"
	"github.com/frankkopp/chessgo/internal/uciInterface"
)

// Coordinator owns a shared transposition table, a shared static-eval
// cache and a pool of Search workers that race over them lazy-SMP
// style. It exposes the same surface uci.UciHandler expects from a
// single *search.Search so it can be used as a drop-in replacement.
type Coordinator struct {
	log *logging.Logger

	mu      sync.Mutex
	tt      *transpositiontable.TtTable
	tb      *tablebase.Tablebase
	ec      *evalcache.EvalCache
	primary *search.Search
	workers []*search.Search // secondary workers only, len == threads-1
}

// NewCoordinator creates a Coordinator with a single primary worker.
// Call SetThreads to grow the pool once a thread count is known, e.g.
// from config.Settings.Search.NumberOfThreads or the UCI "Threads"
// option.
func NewCoordinator() *Coordinator {
	c := &Coordinator{
		log:     myLogging.GetLog(),
		primary: search.NewSearch(),
	}
	c.tt = transpositiontable.NewTtTable(config.Settings.Search.TTSize)
	c.tb = tablebase.NewTablebase(config.Settings.Tablebase.Path, config.Settings.Tablebase.MaxPieces)
	c.ec = evalcache.NewEvalCache(config.Settings.Search.EvalCacheSize)
	c.primary.SetSharedTT(c.tt)
	c.primary.SetSharedTablebase(c.tb)
	c.primary.SetSharedEvalCache(c.ec)
	c.SetThreads(config.Settings.Search.NumberOfThreads)
	return c
}

// SetThreads resizes the worker pool to n (clamped to at least 1). Any
// running search is stopped first. The primary worker (thread 0) is
// never recreated; only the secondary pool is rebuilt.
func (c *Coordinator) SetThreads(n int) {
	if n < 1 {
		n = 1
	}
	c.StopSearch()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.workers = make([]*search.Search, 0, n-1)
	for i := 1; i < n; i++ {
		w := search.NewSearch()
		w.SetThreadID(i)
		w.SetSharedTT(c.tt)
		w.SetSharedTablebase(c.tb)
		w.SetSharedEvalCache(c.ec)
		c.workers = append(c.workers, w)
	}
	config.Settings.Search.NumberOfThreads = n
	c.log.Infof("Lazy-SMP pool resized to %d thread(s)", n)
}

// all returns every worker, primary first.
func (c *Coordinator) all() []*search.Search {
	c.mu.Lock()
	defer c.mu.Unlock()
	workers := make([]*search.Search, 0, len(c.workers)+1)
	workers = append(workers, c.primary)
	workers = append(workers, c.workers...)
	return workers
}

// NewGame stops any running search and resets hash and history state
// for every worker so the pool is ready for an unrelated position.
func (c *Coordinator) NewGame() {
	for _, w := range c.all() {
		w.NewGame()
	}
}

// StartSearch starts every worker on p. Secondary workers ignore sl's
// time control and search until StopSearch cuts them loose, since only
// the primary decides when a time-controlled search ends.
func (c *Coordinator) StartSearch(p position.Position, sl search.Limits) {
	secondaryLimits := search.Limits{
		Infinite: true,
		Depth:    sl.Depth,
		Nodes:    sl.Nodes,
		Moves:    sl.Moves,
	}
	for _, w := range c.all()[1:] {
		w.StartSearch(p, secondaryLimits)
	}
	c.primary.StartSearch(p, sl)
	go func() {
		c.primary.WaitWhileSearching()
		for _, w := range c.all()[1:] {
			w.StopSearch()
		}
	}()
}

// StopSearch stops the primary worker and waits for it, then stops and
// waits for every secondary worker. Safe to call when nothing is
// searching.
func (c *Coordinator) StopSearch() {
	c.primary.StopSearch()
	for _, w := range c.all()[1:] {
		w.StopSearch()
	}
}

// PonderHit is only meaningful for the primary worker: it owns time
// control, and secondary workers are already searching without a time
// limit.
func (c *Coordinator) PonderHit() {
	c.primary.PonderHit()
}

// IsSearching reports whether the primary worker is searching. The
// pool as a whole is considered idle once the primary has stopped,
// even if a secondary worker has not yet drained.
func (c *Coordinator) IsSearching() bool {
	return c.primary.IsSearching()
}

// WaitWhileSearching blocks until the whole pool, primary and every
// secondary worker, has stopped searching.
func (c *Coordinator) WaitWhileSearching() {
	for _, w := range c.all() {
		w.WaitWhileSearching()
	}
}

// SetUciHandler wires the UCI handler to the primary worker only.
// Secondary workers never report progress.
func (c *Coordinator) SetUciHandler(uciHandler uciInterface.UciDriver) {
	c.primary.SetUciHandler(uciHandler)
}

// GetUciHandlerPtr returns the primary worker's UCI handler.
func (c *Coordinator) GetUciHandlerPtr() uciInterface.UciDriver {
	return c.primary.GetUciHandlerPtr()
}

// IsReady initializes every worker and then signals readyok through
// the primary's UCI handler.
func (c *Coordinator) IsReady() {
	for _, w := range c.all()[1:] {
		w.IsReady()
	}
	c.primary.IsReady()
}

// ClearHash clears the shared transposition table once. Delegating to
// each worker in turn would be redundant but harmless since they all
// point at the same table; calling it once through the primary keeps
// the "ignored while searching" warning from firing once per thread.
func (c *Coordinator) ClearHash() {
	c.primary.ClearHash()
}

// ResizeHash replaces the shared transposition table with a freshly
// sized one and re-points every worker at it. Ignored with a warning
// while the pool is searching.
func (c *Coordinator) ResizeHash(sizeInMByte int) {
	if c.IsSearching() {
		msg := "Can't resize hash while searching."
		c.log.Warning(msg)
		if h := c.primary.GetUciHandlerPtr(); h != nil {
			h.SendInfoString(msg)
		}
		return
	}
	c.mu.Lock()
	config.Settings.Search.TTSize = sizeInMByte
	c.tt = transpositiontable.NewTtTable(sizeInMByte)
	c.primary.SetSharedTT(c.tt)
	for _, w := range c.workers {
		w.SetSharedTT(c.tt)
	}
	tt := c.tt
	c.mu.Unlock()
	if h := c.primary.GetUciHandlerPtr(); h != nil {
		h.SendInfoString("Hash resized: " + tt.String())
	}
}

// ResizeEvalCache replaces the shared static-evaluation cache with a
// freshly sized one and re-points every worker at it. Ignored with a
// warning while the pool is searching.
func (c *Coordinator) ResizeEvalCache(sizeInMByte int) {
	if c.IsSearching() {
		msg := "Can't resize eval cache while searching."
		c.log.Warning(msg)
		if h := c.primary.GetUciHandlerPtr(); h != nil {
			h.SendInfoString(msg)
		}
		return
	}
	c.mu.Lock()
	config.Settings.Search.EvalCacheSize = sizeInMByte
	c.ec = evalcache.NewEvalCache(sizeInMByte)
	c.primary.SetSharedEvalCache(c.ec)
	for _, w := range c.workers {
		w.SetSharedEvalCache(c.ec)
	}
	ec := c.ec
	c.mu.Unlock()
	if h := c.primary.GetUciHandlerPtr(); h != nil {
		h.SendInfoString("Eval cache resized: " + ec.String())
	}
}

// SetTablebasePath replaces the shared tablebase probe source with one
// bound to the given directory and re-points every worker at it. Loading
// is deferred to the first probe, same as NewCoordinator's default.
func (c *Coordinator) SetTablebasePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tb = tablebase.NewTablebase(path, config.Settings.Tablebase.MaxPieces)
	c.primary.SetSharedTablebase(c.tb)
	for _, w := range c.workers {
		w.SetSharedTablebase(c.tb)
	}
}

// LastSearchResult returns the primary worker's last finished result.
// Secondary workers never produce a reportable result of their own.
func (c *Coordinator) LastSearchResult() search.Result {
	return c.primary.LastSearchResult()
}

// NodesVisited returns the summed node count across the whole pool.
func (c *Coordinator) NodesVisited() uint64 {
	var total uint64
	for _, w := range c.all() {
		total += w.NodesVisited()
	}
	return total
}

// Statistics returns the primary worker's statistics. Per-thread
// statistics of secondary workers are not surfaced to UCI.
func (c *Coordinator) Statistics() *search.Statistics {
	return c.primary.Statistics()
}
