package assign

import (
	"fmt"
	"io"
	"strings"
)

// WriteTo prints the route tables, the shape costs and the assignment:
//
//	Human routes:
//		I→D: 2
//		...
//	Human shapes:
//		IP: 2
//		...
//	Best: Human IDKP (8) + Octopus IP (12) = 20
//
// Unreachable entries print as -1; a missing assignment prints "Best: none".
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for i, t := range r.Tables {
		if t == nil {
			continue
		}
		fmt.Fprintf(&b, "%v routes:\n", r.Agents[i])
		for _, rt := range t.Routes {
			fmt.Fprintf(&b, "\t%v: %d\n", rt.Pair(), rt.Cost)
		}
	}
	for _, c := range r.Candidates {
		if len(c.Shapes) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%v shapes:\n", c.Agent)
		for _, s := range c.Shapes {
			fmt.Fprintf(&b, "\t%s: %d\n", s.Shape, s.Cost)
		}
	}

	if a := r.Assignment; a != nil {
		fmt.Fprintf(&b, "Best: %v %s (%d) + %v %s (%d) = %d\n",
			a.Legs[0].Agent, a.Legs[0].Shape, a.Legs[0].Cost,
			a.Legs[1].Agent, a.Legs[1].Shape, a.Legs[1].Cost,
			a.Total)
		for _, lt := range r.Traces {
			fmt.Fprintf(&b, "\t%v:", lt.Leg.Agent)
			for _, s := range lt.Segments {
				end := lt.Leg.Cost
				if n := len(s.Steps); n > 0 {
					end = s.Steps[n-1].Cost
				}
				fmt.Fprintf(&b, " %v@%d", s.Pair, end)
			}
			b.WriteByte('\n')
		}
	} else {
		b.WriteString("Best: none\n")
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
