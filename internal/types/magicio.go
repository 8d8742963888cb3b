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
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultMagicsPath is the magics file used when config.MagicsFile is empty:
// where the discovered magic multipliers are persisted
// between runs, relative to the working directory the engine is started
// from. Discovery takes a perceptible amount of time (searching for 128
// collision-free multipliers), so shipping a validated copy avoids paying
// that cost on every process start.
const DefaultMagicsPath = "magics.json"

// defaultMagicsMetaPath holds a small TOML sidecar describing how and when
// the magics file was generated; purely informational, never read back by
// LoadMagics/applyLoadedMagics.
const defaultMagicsMetaPath = "magics.meta.toml"

// magicsFile is the on-disk shape of the persisted magic table: one 64-bit
// multiplier and shift per square for each slider, laid out SqA1..SqH8. The
// relevant-occupancy mask itself is pure board geometry and is always
// re-derived at load time, never stored.
type magicsFile struct {
	RookMagics   [64]uint64 `json:"rookMagics"`
	RookShifts   [64]uint  `json:"rookShifts"`
	BishopMagics [64]uint64 `json:"bishopMagics"`
	BishopShifts [64]uint  `json:"bishopShifts"`
}

// magicsMeta is the companion TOML metadata sidecar that PersistMagics writes
// to defaultMagicsMetaPath in the working directory, whatever path the JSON
// magics file itself is written to.
type magicsMeta struct {
	GeneratedAt string `toml:"generated_at"`
	RookBytes   int    `toml:"rook_table_bytes"`
	BishopBytes int    `toml:"bishop_table_bytes"`
}

// LoadMagics reads and JSON-decodes the persisted magics file at path. A
// missing or malformed file is reported as an error for the caller to treat
// as "fall back to discovery", not a fatal condition.
func LoadMagics(path string) (*magicsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading magics file %s: %w", path, err)
	}
	var mf magicsFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("decoding magics file %s: %w", path, err)
	}
	return &mf, nil
}

// applyLoadedMagics rebuilds the rook and bishop magic tables from a loaded
// magicsFile's multipliers, then validates every square's hash against the
// classical ray walker. A validation failure (stale file, square-model
// change) is returned as an error so the caller discards the tables built so
// far and runs discovery instead.
func applyLoadedMagics(mf *magicsFile) error {
	if err := populateMagics(&rookTable, &rookMagics, &rookDirections, &mf.RookMagics, &mf.RookShifts); err != nil {
		return err
	}
	if err := populateMagics(&bishopTable, &bishopMagics, &bishopDirections, &mf.BishopMagics, &mf.BishopShifts); err != nil {
		return err
	}
	if !validateMagics(&rookMagics, &rookDirections) || !validateMagics(&bishopMagics, &bishopDirections) {
		return fmt.Errorf("persisted magics failed validation")
	}
	return nil
}

// populateMagics fills in Mask/Shift/Attacks for every square from a known
// magic multiplier and shift, without searching: the mask is pure board
// geometry, so only the Carry-Rippler occupancy enumeration and the
// classical ray walker are needed to fill each square's attacks slice. The
// re-derived mask's popcount must agree with the stored shift; a mismatch
// means the file predates a square-model change and is rejected.
func populateMagics(table *[]Bitboard, magics *[64]Magic, directions *[4]Direction, numbers *[64]uint64, shifts *[64]uint) error {
	size := 0
	for sq := SqA1; sq <= SqH8; sq++ {
		edges := ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		if shifts[sq] != uint(64-m.Mask.PopCount()) {
			return fmt.Errorf("stored shift for square %d does not match recomputed mask", sq)
		}
		m.Shift = shifts[sq]
		m.Magic = Bitboard(numbers[sq])

		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		b := BbZero
		size = 0
		for {
			idx := m.index(b)
			if idx >= uint(len(m.Attacks)) {
				return fmt.Errorf("magic for square %d indexes out of range", sq)
			}
			m.Attacks[idx] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}
	}
	return nil
}

// PersistMagics writes the current rook and bishop magic multipliers (and a
// small TOML metadata sidecar) to disk so a later process start can load
// them instead of re-running discovery.
func PersistMagics(path string) error {
	var mf magicsFile
	for sq := SqA1; sq <= SqH8; sq++ {
		mf.RookMagics[sq] = uint64(rookMagics[sq].Magic)
		mf.RookShifts[sq] = rookMagics[sq].Shift
		mf.BishopMagics[sq] = uint64(bishopMagics[sq].Magic)
		mf.BishopShifts[sq] = bishopMagics[sq].Shift
	}
	data, err := json.MarshalIndent(&mf, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding magics: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing magics file %s: %w", path, err)
	}

	meta := magicsMeta{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		RookBytes:   len(rookTable) * 8,
		BishopBytes: len(bishopTable) * 8,
	}
	metaFile, err := os.Create(defaultMagicsMetaPath)
	if err != nil {
		return fmt.Errorf("creating magics metadata %s: %w", defaultMagicsMetaPath, err)
	}
	defer metaFile.Close()
	enc := toml.NewEncoder(metaFile)
	return enc.Encode(&meta)
}
