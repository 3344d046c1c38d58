package vlist

import "math"

// endReached detects when the scroll position has crossed the near-bottom
// threshold. It is edge-triggered: check reports true once on the false→true
// transition and stays quiet until the condition releases, so holding the
// list at the bottom does not refire it on every scroll event.
type endReached struct {
	threshold float64
	armed     bool
}

func newEndReached(threshold float64) endReached {
	return endReached{threshold: threshold, armed: true}
}

func (d *endReached) check(scroll, viewport, total int) bool {
	if total <= 0 {
		// Nothing to reach the end of; re-arm for when content arrives.
		d.armed = true
		return false
	}
	// Trigger at the first whole row at or past total*threshold. The
	// relative epsilon keeps a product that lands exactly on a row boundary
	// from rounding up to the next row.
	limit := float64(total) * d.threshold
	reached := float64(scroll+viewport) >= math.Ceil(limit-limit*1e-9)
	if !reached {
		d.armed = true
		return false
	}
	if !d.armed {
		return false
	}
	d.armed = false
	return true
}
