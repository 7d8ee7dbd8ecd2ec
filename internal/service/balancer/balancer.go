package balancer

// Candidate is an eligible driver together with its current load.
type Candidate struct {
	DriverID int64
	// Load is the number of the driver's deliveries in assigned or in_progress status.
	Load int
	// Priority comes from the UserZone link and does not influence Pick.
	Priority int
}

// Pick returns the least-loaded candidate. Equal loads are broken by the lowest driver id
// so repeated calls over the same input always pick the same driver.
func Pick(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Load < best.Load || (c.Load == best.Load && c.DriverID < best.DriverID) {
			best = c
		}
	}
	return best, true
}
