// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"math/big"
	"math/rand/v2"
	"os"

	"github.com/consensys/go-vgen/pkg/lfsr"
	"github.com/consensys/go-vgen/pkg/poly"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Registers up to this width are checked over every possible seed.
const exhaustiveWidth = 16

var checkCmd = &cobra.Command{
	Use:   "check [flags]",
	Short: "Check symbolic expansion against bit-level simulation.",
	Long: `Check that expanding a register symbolically agrees with stepping a
	bit-level simulation of the same register.  Small registers are checked
	over every possible seed, larger ones over a number of random seeds.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg checkConfig
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		cfg.poly = readPolynomial(cmd)
		cfg.n = GetInt(cmd, "out-width")
		cfg.seeds = GetUint(cmd, "seeds")
		//
		if cfg.n <= 0 {
			fmt.Printf("output width must be positive (got %d)\n", cfg.n)
			os.Exit(2)
		}
		// Go!
		checkExpansion(cfg)
	},
}

// check config encapsulates certain parameters to be used when checking
// symbolic expansions.
type checkConfig struct {
	// Feedback polynomial under check.
	poly poly.Polynomial
	// Number of output bits to expand and replay.
	n int
	// Number of random seeds to replay.  Ignored for registers small enough
	// to check exhaustively.
	seeds uint
}

// Check that, on every seed, every term of the symbolic schedule evaluates to
// the output bit produced by a concrete register on the corresponding cycle.
func checkExpansion(cfg checkConfig) {
	width := cfg.poly.Width()
	//
	schedule, err := lfsr.Expand(cfg.poly, cfg.n)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	if width <= exhaustiveWidth {
		// Check every possible seed
		total := uint64(1) << width
		for seed := uint64(0); seed < total; seed++ {
			checkSeed(cfg, schedule, new(big.Int).SetUint64(seed))
		}
		//
		log.Infof("Checked %d output bits against all %d seeds\n", cfg.n, total)
	} else {
		// Too many seeds, so sample instead
		for i := uint(0); i < cfg.seeds; i++ {
			checkSeed(cfg, schedule, randomSeed(width))
		}
		//
		log.Infof("Checked %d output bits against %d random seeds\n", cfg.n, cfg.seeds)
	}
}

// Check a single seed, reporting the first divergent cycle (if any).
func checkSeed(cfg checkConfig, schedule []lfsr.Term, seed *big.Int) {
	sim := lfsr.NewSimulator(cfg.poly, seed)
	//
	for cycle, term := range schedule {
		expected := term.Eval(seed)
		actual := sim.Step()
		//
		if expected != actual {
			fmt.Printf("seed 0x%x: cycle %d: expansion gives %d, simulation gives %d\n",
				seed, cycle, expected, actual)
			os.Exit(1)
		}
		//
		log.Debugf("seed 0x%x: cycle %d: %s = %d", seed, cycle, term, actual)
	}
}

// Construct a uniformly random seed for a register of a given width.  Any
// excess bits are discarded by the simulator.
func randomSeed(width uint) *big.Int {
	seed := big.NewInt(0)
	//
	for bit := uint(0); bit < width; bit += 64 {
		word := new(big.Int).SetUint64(rand.Uint64())
		seed.Lsh(seed, 64)
		seed.Or(seed, word)
	}
	//
	return seed
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().String("gen-poly", "", "feedback polynomial given as a 0b or 0x literal")
	checkCmd.Flags().Uint("width", 0, "select the tabulated maximal-length polynomial of the given width")
	checkCmd.Flags().Int("out-width", 0, "number of output bits to check")
	checkCmd.Flags().Uint("seeds", 32, "number of random seeds for registers too wide to check exhaustively")
}
