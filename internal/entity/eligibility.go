package entity

// Eligibility - whether an account may submit a move right now, and why not.
type Eligibility struct {
	CanPlay bool
	Reason  string
}

func Eligible() *Eligibility {
	return &Eligibility{CanPlay: true}
}

func Ineligible(reason error) *Eligibility {
	return &Eligibility{Reason: reason.Error()}
}
