//
// FrankyGo - UCI chess engine in GO for learning purposes
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

package types

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshotAttacks copies every square's attack sub-slice so it survives the
// tables being rebuilt in place.
func snapshotAttacks(magics *[SqLength]Magic) [SqLength][]Bitboard {
	var out [SqLength][]Bitboard
	for sq, m := range magics {
		cp := make([]Bitboard, len(m.Attacks))
		copy(cp, m.Attacks)
		out[sq] = cp
	}
	return out
}

// TestMagicDiscoverPersistReloadRoundTrip exercises the full magic-table
// lifecycle: fresh discovery, persisting to disk, reloading, load-time
// validation, and a check that the reloaded tables answer every occupancy
// exactly as the freshly-discovered ones did.
func TestMagicDiscoverPersistReloadRoundTrip(t *testing.T) {
	Init()

	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)
	discoverMagics(&rookTable, &rookMagics, &rookDirections)
	discoverMagics(&bishopTable, &bishopMagics, &bishopDirections)

	require.True(t, validateMagics(&rookMagics, &rookDirections))
	require.True(t, validateMagics(&bishopMagics, &bishopDirections))

	wantRook := snapshotAttacks(&rookMagics)
	wantBishop := snapshotAttacks(&bishopMagics)

	path := filepath.Join(t.TempDir(), "magics.json")
	require.NoError(t, PersistMagics(path))

	loaded, err := LoadMagics(path)
	require.NoError(t, err)
	require.NoError(t, applyLoadedMagics(loaded))

	assert.True(t, validateMagics(&rookMagics, &rookDirections))
	assert.True(t, validateMagics(&bishopMagics, &bishopDirections))
	assert.Equal(t, wantRook, snapshotAttacks(&rookMagics))
	assert.Equal(t, wantBishop, snapshotAttacks(&bishopMagics))
}

func TestLoadMagicsRejectsMissingFile(t *testing.T) {
	_, err := LoadMagics(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Error(t, err)
}

func TestApplyLoadedMagicsRejectsShiftMismatch(t *testing.T) {
	Init()
	var mf magicsFile
	for sq := SqA1; sq <= SqH8; sq++ {
		mf.RookMagics[sq] = uint64(rookMagics[sq].Magic)
		mf.RookShifts[sq] = rookMagics[sq].Shift + 1 // corrupt every shift
		mf.BishopMagics[sq] = uint64(bishopMagics[sq].Magic)
		mf.BishopShifts[sq] = bishopMagics[sq].Shift
	}
	assert.Error(t, applyLoadedMagics(&mf))
}
