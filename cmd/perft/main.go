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

// Command perft is a benchmark/test harness for the move generator: it loads
// a position, runs the perft driver to a given depth and prints the node
// count, or with -divide a per-root-move breakdown. It wires no search, no UCI loop and no game state beyond one
// Board - it exists to exercise and time the core, not to play chess.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp/moveengine/internal/config"
	"github.com/fkopp/moveengine/internal/logging"
	"github.com/fkopp/moveengine/internal/movegen"
	"github.com/fkopp/moveengine/internal/position"
	"github.com/fkopp/moveengine/internal/types"
	"github.com/fkopp/moveengine/internal/util"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fen := flag.String("fen", position.StartFen, "FEN of the position to run perft on")
	depth := flag.Int("depth", 5, "perft depth")
	divide := flag.Bool("divide", false, "print a per-root-move node breakdown")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile for this run")
	memStats := flag.Bool("memstats", false, "print memory statistics after the run")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	types.Init()
	log := logging.GetLog()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	b, err := position.NewBoardFromFen(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid fen %q: %v\n", *fen, err)
		os.Exit(1)
	}

	out.Printf("Performing PERFT for depth %d\n", *depth)
	out.Printf("FEN: %s\n", *fen)
	out.Printf("-----------------------------------------\n")

	p := movegen.NewPerft(*depth)
	start := time.Now()

	if *divide {
		breakdown, total := p.Divide(b, *depth)
		elapsed := time.Since(start)
		movegen.PrintDivide(breakdown, total, elapsed)
	} else {
		nodes := p.Run(b, *depth)
		elapsed := time.Since(start)
		out.Printf("Nodes: %d\n", nodes)
		out.Printf("Time : %s\n", elapsed)
		out.Printf("NPS  : %d nps\n", util.Nps(nodes, elapsed))
	}

	if *memStats {
		out.Println(util.MemStat())
	}

	log.Info("perft run complete")
}
