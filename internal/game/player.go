package game

// Player is the state shared by the human and the dealer. Wins survive
// ClearHand and only ever go up.
type Player struct {
	Hand []Card
	Wins int
}

func NewPlayer() *Player {
	return &Player{
		Hand: make([]Card, 0, 10),
	}
}

func (p *Player) ReceiveCard(card Card) {
	p.Hand = append(p.Hand, card)
}

func (p *Player) Value() int {
	return HandValue(p.Hand)
}

func (p *Player) Busted() bool {
	return Busted(p.Hand)
}

func (p *Player) AddWin() {
	p.Wins++
}

func (p *Player) ClearHand() {
	p.Hand = make([]Card, 0, 10)
}

// FirstCard is the dealer's face-up card during the human's turn.
func (p *Player) FirstCard() (Card, bool) {
	if len(p.Hand) == 0 {
		return Card{}, false
	}
	return p.Hand[0], true
}
