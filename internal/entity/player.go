package entity

const (
	KindHuman    = "human"
	KindComputer = "computer"
)

type Player struct {
	Mark string
	Kind string
}

func NewPlayer(mark, kind string) *Player {
	return &Player{
		Mark: mark,
		Kind: kind,
	}
}

func (that *Player) IsBot() bool {
	return that.Kind == KindComputer
}
