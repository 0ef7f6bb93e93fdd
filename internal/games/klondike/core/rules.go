package core

// CanDropOnFoundation reports whether candidate may be placed on a foundation
// whose top card is top (hasTop false means the foundation is empty).
// Foundations build up by suit from the ace.
func CanDropOnFoundation(candidate, top Card, hasTop bool) bool {
	if !hasTop {
		return candidate.Rank() == Ace
	}
	return candidate.Suit() == top.Suit() && candidate.Rank() == top.Rank()+1
}

// CanDropOnPile reports whether candidate may be placed on a tableau pile
// whose top card is top (hasTop false means the pile is empty).
// Piles build down in alternating colors; only a king starts an empty pile.
func CanDropOnPile(candidate, top Card, hasTop bool) bool {
	if !hasTop {
		return candidate.Rank() == King
	}
	if top.FaceDown {
		return false
	}
	if candidate.Color() == top.Color() {
		return false
	}
	return top.Rank() == candidate.Rank()+1
}

// Accepts reports whether the run (bottom to top) may be dropped onto d.
// Only the bottom card is checked against d; the run itself is assumed to be
// a legally sequenced face-up run because only those can be picked up.
func Accepts(d *Deck, run []Card) bool {
	if len(run) == 0 {
		return false
	}
	top, ok := d.Top()
	switch d.Role() {
	case RoleFoundation:
		return len(run) == 1 && CanDropOnFoundation(run[0], top, ok)
	case RolePile:
		return CanDropOnPile(run[0], top, ok)
	default:
		return false
	}
}
