package editor

type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeJump
	ModeOpen
	ModeExit
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeJump:
		return "jump"
	case ModeOpen:
		return "open"
	case ModeExit:
		return "exit"
	}
	return "unknown"
}
