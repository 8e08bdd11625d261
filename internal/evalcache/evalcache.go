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

// Package evalcache implements the shared static-evaluation cache: a
// direct-mapped, Zobrist-indexed table separate from the search
// transposition table. Unlike the TT's two-slot buckets this is a single
// slot per index since a miss just costs a re-evaluation, not a re-search;
// a collision simply overwrites. Entries are packed into one uint64 and
// read/written with atomics so lazy-SMP workers can share one instance
// without a mutex, tolerating the same torn-read/aliasing races the TT
// documents: a wrong hit is caught by the key check and costs at most one
// stale evaluation.
package evalcache

import (
	"math"
	"sync/atomic"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/chessgo/internal/logging"
	"github.com/frankkopp/chessgo/internal/position"
	. "github.com/frankkopp/chessgo/internal/types"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB is the maximal memory usage of an EvalCache.
	MaxSizeInMB = 4_096

	// slotSize is the packed size of one entry: a 48-bit key signature
	// and a 16-bit Value, atomically addressable as a single uint64.
	slotSize = 8

	// valueBits is how many low bits hold the packed Value; the
	// remaining high bits hold the key signature used to validate a
	// hit without storing the full 64-bit zobrist key.
	valueBits = 16
	valueMask = uint64(0xFFFF)
)

// EvalCache is a lock-free, direct-mapped cache of static evaluations
// keyed by the zobrist key of a position. Create with NewEvalCache.
type EvalCache struct {
	log                *logging.Logger
	data               []uint64
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	hits               uint64
	misses             uint64
	puts               uint64
}

// NewEvalCache creates an EvalCache sized to the largest power-of-two
// entry count fitting sizeInMByte.
func NewEvalCache(sizeInMByte int) *EvalCache {
	ec := &EvalCache{
		log: myLogging.GetLog(),
	}
	ec.Resize(sizeInMByte)
	return ec
}

// Resize reallocates the cache, discarding all entries. Must not run
// concurrently with a search.
func (ec *EvalCache) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		ec.log.Error(out.Sprintf("Requested size for Eval Cache of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	sizeInByte := uint64(sizeInMByte) * MB
	ec.maxNumberOfEntries = 0
	if sizeInByte >= slotSize {
		ec.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(sizeInByte/slotSize))))
	}
	ec.hashKeyMask = ec.maxNumberOfEntries - 1
	ec.sizeInByte = ec.maxNumberOfEntries * slotSize
	ec.data = make([]uint64, ec.maxNumberOfEntries)
	ec.numberOfEntries = 0

	ec.log.Info(out.Sprintf("Eval Cache Size %d MByte, Capacity %d entries (size=%dByte) (Requested were %d MBytes)",
		ec.sizeInByte/MB, ec.maxNumberOfEntries, unsafe.Sizeof(uint64(0)), sizeInMByte))
}

// Probe returns the cached evaluation for key and true on a hit. A miss
// (empty slot or a different position's key occupying the slot) returns
// ValueNA, false.
func (ec *EvalCache) Probe(key position.Key) (Value, bool) {
	if ec.maxNumberOfEntries == 0 {
		return ValueNA, false
	}
	slot := atomic.LoadUint64(&ec.data[ec.hash(key)])
	if slot == 0 {
		ec.misses++
		return ValueNA, false
	}
	sig, value := unpack(slot)
	if sig != signature(key) {
		ec.misses++
		return ValueNA, false
	}
	ec.hits++
	return value, true
}

// Store caches value for key, unconditionally overwriting whatever
// occupied the slot before.
func (ec *EvalCache) Store(key position.Key, value Value) {
	if ec.maxNumberOfEntries == 0 {
		return
	}
	ec.puts++
	idx := ec.hash(key)
	if atomic.LoadUint64(&ec.data[idx]) == 0 {
		ec.numberOfEntries++
	}
	atomic.StoreUint64(&ec.data[idx], pack(signature(key), value))
}

// Clear empties the cache without reallocating.
func (ec *EvalCache) Clear() {
	for i := range ec.data {
		atomic.StoreUint64(&ec.data[i], 0)
	}
	ec.numberOfEntries = 0
	ec.hits = 0
	ec.misses = 0
	ec.puts = 0
}

// Len returns the number of occupied slots.
func (ec *EvalCache) Len() uint64 {
	return ec.numberOfEntries
}

// String returns a short usage summary, mirroring TtTable.String.
func (ec *EvalCache) String() string {
	return out.Sprintf("EvalCache: size %d MB capacity %d entries %d puts %d hits %d (%d%%) misses %d (%d%%)",
		ec.sizeInByte/MB, ec.maxNumberOfEntries, ec.numberOfEntries, ec.puts,
		ec.hits, (ec.hits*100)/(1+ec.hits+ec.misses), ec.misses, (ec.misses*100)/(1+ec.hits+ec.misses))
}

func (ec *EvalCache) hash(key position.Key) uint64 {
	return uint64(key) & ec.hashKeyMask
}

// signature reduces a full zobrist key to the high bits not consumed by
// the slot index, enough to reject almost every aliasing collision
// without storing the whole key per slot.
func signature(key position.Key) uint64 {
	return uint64(key) >> valueBits
}

func pack(sig uint64, value Value) uint64 {
	packed := (sig << valueBits) | (uint64(uint16(value)) & valueMask)
	if packed == 0 {
		// never store the reserved "empty" representation for a real entry
		packed = 1 << valueBits
	}
	return packed
}

func unpack(slot uint64) (uint64, Value) {
	return slot >> valueBits, Value(int16(slot & valueMask))
}
