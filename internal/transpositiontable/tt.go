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

// Package transpositiontable implements the shared transposition table
// (cache) used by the search. Each bucket is a two-slot TtNode so a
// collision does not have to evict the only candidate entry. The table
// is not thread safe for Resize/Clear, which must not run concurrently
// with a search, but Probe/Put are safe to race across lazy-SMP workers:
// a write updates one bucket's slots and a reader either sees a matching
// key or rejects the slot, per the spec's tolerated-torn-read model.
package transpositiontable

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/chessgo/internal/logging"
	"github.com/frankkopp/chessgo/internal/position"
	. "github.com/frankkopp/chessgo/internal/types"
	"github.com/frankkopp/chessgo/internal/util"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB maximal memory usage of tt
	MaxSizeInMB = 65_536

	// replacementThreshold is the minimum replacement score (see
	// TtEntry.replacementScore) required to evict a slot on collision.
	replacementThreshold = -2
)

// TtTable is the actual transposition table object holding data and
// state. Create with NewTtTable().
type TtTable struct {
	log                *logging.Logger
	data               []TtNode
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64 // number of buckets, not slots
	numberOfEntries    uint64 // number of occupied slots
	currentAge         uint8
	Stats              TtStats
}

// TtStats holds statistical data on tt usage
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a new TtTable with the given number of megabytes
// as a maximum of memory usage. The actual number of buckets is the
// largest power of two fitting into that budget.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := TtTable{
		log: myLogging.GetLog(),
	}
	tt.Resize(sizeInMByte)
	return &tt
}

// Resize resizes the tt table. All entries will be cleared.
// Must not be called concurrently with a running search.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	tt.sizeInByte = uint64(sizeInMByte) * MB
	tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/TtNodeSize))))
	tt.hashKeyMask = tt.maxNumberOfEntries - 1

	if tt.sizeInByte == 0 {
		tt.maxNumberOfEntries = 0
	}

	tt.sizeInByte = tt.maxNumberOfEntries * TtNodeSize
	tt.data = make([]TtNode, tt.maxNumberOfEntries)

	tt.log.Info(out.Sprintf("TT Size %d MByte, Capacity %d buckets of 2 entries (bucket size=%dByte) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtNode{}), sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// GetEntry returns a pointer to the slot matching key in its bucket,
// or nil if neither slot holds it. Does not change statistics.
func (tt *TtTable) GetEntry(key position.Key) *TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	node := &tt.data[tt.hash(key)]
	for i := range node.slots {
		if node.slots[i].key == key {
			return &node.slots[i]
		}
	}
	return nil
}

// Probe returns a pointer to the slot matching key in its bucket,
// or nil if not found. Updates hit/miss statistics.
func (tt *TtTable) Probe(key position.Key) *TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	tt.Stats.numberOfProbes++
	e := tt.GetEntry(key)
	if e != nil {
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores a search result into the tt. If the position is already
// present in its bucket it is updated in place. Otherwise an empty
// slot is claimed, or, on a full bucket, the slot with the lower
// replacement score is evicted provided that score clears the
// replacement threshold (see TtEntry.replacementScore).
func (tt *TtTable) Put(key position.Key, move Move, depth int8, score Value, valueType ValueType, eval Value) {
	if tt.maxNumberOfEntries == 0 {
		return
	}
	tt.Stats.numberOfPuts++
	node := &tt.data[tt.hash(key)]

	for i := range node.slots {
		if node.slots[i].key == key {
			tt.Stats.numberOfUpdates++
			node.slots[i].write(key, move, depth, score, eval, valueType, tt.currentAge)
			return
		}
	}

	for i := range node.slots {
		if node.slots[i].isEmpty() {
			tt.numberOfEntries++
			node.slots[i].write(key, move, depth, score, eval, valueType, tt.currentAge)
			return
		}
	}

	tt.Stats.numberOfCollisions++
	victim := 0
	victimScore := node.slots[0].replacementScore(tt.currentAge, depth)
	if s := node.slots[1].replacementScore(tt.currentAge, depth); s < victimScore {
		victim, victimScore = 1, s
	}
	if victimScore >= replacementThreshold {
		tt.Stats.numberOfOverwrites++
		node.slots[victim].write(key, move, depth, score, eval, valueType, tt.currentAge)
	}
}

// PutEval caches a static evaluation for key without disturbing an
// existing search entry for a different position in the same bucket;
// it only ever claims an empty slot, never evicts a real entry.
func (tt *TtTable) PutEval(key position.Key, eval Value) {
	if tt.maxNumberOfEntries == 0 {
		return
	}
	node := &tt.data[tt.hash(key)]
	for i := range node.slots {
		if node.slots[i].key == key {
			node.slots[i].eval = int16(eval)
			return
		}
	}
	for i := range node.slots {
		if node.slots[i].isEmpty() {
			tt.numberOfEntries++
			node.slots[i].write(key, MoveNone, 0, ValueNA, eval, Vnone, tt.currentAge)
			return
		}
	}
}

// Clear clears all entries of the tt.
// Must not be called concurrently with a running search.
func (tt *TtTable) Clear() {
	tt.data = make([]TtNode, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.currentAge = 0
	tt.Stats = TtStats{}
}

// Hashfull returns how full the transposition table is in permill as per UCI
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / (2 * tt.maxNumberOfEntries))
}

// String returns a string representation of this TtTable instance
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB max buckets %d of size %d Bytes entries %d (%d%%) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtNode{}), tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of non empty slots in the tt
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

// AgeEntries starts a new generation: entries written before this
// call become eligible for replacement sooner, per the replacement
// score formula. Called once per search (typically from "go").
func (tt *TtTable) AgeEntries() {
	tt.currentAge = (tt.currentAge + 1) % ageModulo
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

// hash generates the internal bucket index for the data array
func (tt *TtTable) hash(key position.Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}
