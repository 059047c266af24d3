// SPDX-License-Identifier: MIT

package menu

import (
	"fmt"
	"io"

	"github.com/katalvlaran/roadnet/core"
)

// Narrate writes turn-by-turn directions for r followed by its total mileage.
func Narrate(w io.Writer, r core.Route) {
	fmt.Fprintf(w, "Starting at %s\n", r.Source)
	for i, road := range r.Roads {
		fmt.Fprintf(w, "Take the %s for %s miles until you reach %s\n",
			road.Name(), core.FormatLength(road.Length()), r.Stops[i+1])
	}
	fmt.Fprintf(w, "The total mileage of the route is : %.2f miles.\n", r.Total)
}
