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

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/nkc68k/logger"
)

// Address of the statistics server.
const Address = "localhost:12680"

const url = "/debug/statsview"

var launch sync.Once

// Launch a new goroutine running the statsview. Subsequent calls have no
// effect.
func Launch(output io.Writer) {
	launch.Do(func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()

		go func() {
			err := mgr.Start()
			if err != nil {
				logger.Logf(logger.Allow, "statsview", "%v", err)
			}
		}()

		fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
	})
}
