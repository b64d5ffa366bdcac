package sgdata_test

import (
	"bytes"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/AndrewDonelson/sgdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A payload value is read-only once constructed, so any number of goroutines
// may encode, digest, and inspect the same value at once. These tests hammer
// that contract; run them with -race.

// ── Load: concurrent Marshal of one shared value ──────────────────────────────

func TestLoad_ConcurrentMarshal_SharedValue(t *testing.T) {
	t.Parallel()

	seg := []byte{36, 123, 234}
	d := sgdata.FromElements(regionOf(seg), sgdata.Zero(512))
	want, err := sgdata.Marshal(d)
	require.NoError(t, err)

	const goroutines = 50
	const opsPerGoroutine = 200

	var errs atomic.Int64
	var wg sync.WaitGroup

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < opsPerGoroutine; i++ {
				wire, err := sgdata.Marshal(d)
				if err != nil || !bytes.Equal(wire, want) {
					errs.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(0), errs.Load(),
		"%d mismatches during %d concurrent Marshal calls", errs.Load(), goroutines*opsPerGoroutine)
}

// ── Load: concurrent Unmarshal of shared wire bytes ───────────────────────────

func TestLoad_ConcurrentUnmarshal_SharedWire(t *testing.T) {
	t.Parallel()

	orig := sgdata.FromBuffers([][]byte{{1, 2, 3}, {4, 5}})
	wire, err := sgdata.Marshal(orig)
	require.NoError(t, err)

	const goroutines = 50
	var errs atomic.Int64
	var wg sync.WaitGroup

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				got, err := sgdata.Unmarshal(wire)
				if err != nil || !got.Equal(orig) {
					errs.Add(1)
				}
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(0), errs.Load())
}

// ── Load: mixed operations against one hot value ──────────────────────────────

func TestLoad_Mixed_Operations(t *testing.T) {
	t.Parallel()

	bufs := [][]byte{{9, 8, 7}, {6}}
	hot := sgdata.FromList(listOf(bufs))
	wantDigest := hot.Digest()

	const goroutines = 40
	const iterations = 100
	var errs atomic.Int64
	var wg sync.WaitGroup

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(gid int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				switch i % 4 {
				case 0: // Marshal
					if _, err := sgdata.Marshal(hot); err != nil {
						errs.Add(1)
					}
				case 1: // Digest
					if hot.Digest() != wantDigest {
						errs.Add(1)
					}
				case 2: // Size walk
					if hot.Size() != 4 {
						errs.Add(1)
					}
				case 3: // JSON rendition
					if _, err := hot.MarshalJSON(); err != nil {
						errs.Add(1)
					}
				}
			}
		}(g)
	}
	wg.Wait()
	assert.Equal(t, int64(0), errs.Load())
}
