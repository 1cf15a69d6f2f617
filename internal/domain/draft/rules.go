package draft

// MaxCandidatePoolSize bounds every candidate pool offered for a slot.
const MaxCandidatePoolSize = 5

// Rules stores the bench shape and pool size of a draft.
type Rules struct {
	SubstituteSlots   int
	ReserveSlots      int
	CandidatePoolSize int
}

func DefaultRules() Rules {
	return Rules{
		SubstituteSlots:   7,
		ReserveSlots:      5,
		CandidatePoolSize: MaxCandidatePoolSize,
	}
}

func (r Rules) normalized() Rules {
	if r.SubstituteSlots < 0 {
		r.SubstituteSlots = 0
	}
	if r.ReserveSlots < 0 {
		r.ReserveSlots = 0
	}
	r.CandidatePoolSize = poolLimit(r.CandidatePoolSize)
	return r
}

func poolLimit(limit int) int {
	if limit <= 0 || limit > MaxCandidatePoolSize {
		return MaxCandidatePoolSize
	}
	return limit
}
