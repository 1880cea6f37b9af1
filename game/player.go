package game

import "golang.org/x/exp/rand"

// Direction 移动方向
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta 方向对应的单步偏移
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite 反方向；DirNone 的反方向仍是 DirNone
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// IsReverseOf 是否为 other 的正反方向（掉头）
func (d Direction) IsReverseOf(other Direction) bool {
	return d != DirNone && d == other.Opposite()
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// State 一局游戏的完整状态。Snake 头在前，长度至少为 1
type State struct {
	Snake     []Position
	Food      Position
	Direction Direction
	Score     int
	GameOver  bool
}

// NewState 开局状态：蛇长 1 位于中心，向右，食物随机
func NewState(rng *rand.Rand) State {
	return State{
		Snake:     []Position{Center()},
		Food:      RandomPosition(rng),
		Direction: DirRight,
	}
}

// RandomPosition 在整个棋盘上均匀取一格
func RandomPosition(rng *rand.Rand) Position {
	return Position{X: rng.Intn(BoardSize), Y: rng.Intn(BoardSize)}
}

// Head 蛇头
func (s State) Head() Position {
	return s.Snake[0]
}

// Tail 蛇尾
func (s State) Tail() Position {
	return s.Snake[len(s.Snake)-1]
}

// Occupies p 是否落在蛇身上（含蛇头）
func (s State) Occupies(p Position) bool {
	for _, seg := range s.Snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Clone 深拷贝，交给渲染端的快照不能与引擎共享底层数组
func (s State) Clone() State {
	c := s
	c.Snake = append([]Position(nil), s.Snake...)
	return c
}
