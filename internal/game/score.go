package game

const (
	BlackjackLimit = 21

	// Dealer must stay anywhere in [DealerStayMin, BlackjackLimit].
	DealerStayMin = 17
)

// HandValue counts every ace as 11 and then downgrades aces to 1, one at a
// time, until the hand no longer busts or no aces are left.
func HandValue(hand []Card) int {
	score := 0
	aces := 0

	for _, card := range hand {
		score += card.Value
		if card.IsAce() {
			aces++
		}
	}

	for score > BlackjackLimit && aces > 0 {
		score -= 10
		aces--
	}

	return score
}

func Busted(hand []Card) bool {
	return HandValue(hand) > BlackjackLimit
}

func MustStay(value int) bool {
	return value >= DealerStayMin && value <= BlackjackLimit
}
