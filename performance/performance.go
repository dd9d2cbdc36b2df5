// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/nkc68k/curated"
	"github.com/jetsetilly/nkc68k/hardware"
)

// the time allowed for the emulation to settle before measurement begins
const leadTime = 2 * time.Second

// Result of a performance check.
type Result struct {
	Cycles   int
	Duration time.Duration

	// effective speed of the emulated CPU in MHz
	MHz float64
}

func (r Result) String() string {
	return fmt.Sprintf("%.2fMHz (%d cycles in %.2f seconds)", r.MHz, r.Cycles, r.Duration.Seconds())
}

// Check the performance of the emulator. The machine is run as quickly as
// possible for the specified duration.
//
// A cpu profile, memory profile, a trace (or a combination of those) will be
// created as defined by the Profile argument.
func Check(ctx context.Context, output io.Writer, profile Profile, nkc *hardware.NKC, duration time.Duration) error {
	if duration <= 0 {
		return curated.Errorf("performance: duration must be positive")
	}

	var res Result

	runner := func() error {
		var err error
		res, err = measure(ctx, nkc, leadTime, duration)
		return err
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	fmt.Fprintln(output, res.String())

	return nil
}

// run the machine without throttling. cycles are counted once the lead time
// has elapsed
func measure(ctx context.Context, nkc *hardware.NKC, lead time.Duration, duration time.Duration) (Result, error) {
	var res Result

	start := time.Now()
	measuring := lead <= 0

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if nkc.CPU.Halted() {
			return res, curated.Errorf("CPU halted at %#06x", nkc.CPU.PC())
		}

		cycles := 0
		for cycles < hardware.SliceCycles && !nkc.CPU.Halted() {
			cycles += nkc.Step()
		}
		nkc.Timer.Step(nkc.Throttle.Budget(cycles, nkc.Mem.CollectWaitCycles()))

		elapsed := time.Since(start)

		if !measuring {
			if elapsed >= lead {
				measuring = true
				start = time.Now()
			}
			continue
		}

		res.Cycles += cycles
		if elapsed >= duration {
			res.Duration = elapsed
			res.MHz = float64(res.Cycles) / elapsed.Seconds() / 1e6
			return res, nil
		}
	}
}
