package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// FoodScore 每吃到一个食物的得分
const FoodScore = 10

// Engine 单步推进规则。除食物刷新使用的随机源外不持有任何状态
type Engine struct {
	rng *rand.Rand
}

// NewEngine seed 为 0 时使用当前时间
func NewEngine(seed uint64) *Engine {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

// NewState 使用引擎的随机源生成开局状态
func (e *Engine) NewState() State {
	return NewState(e.rng)
}

// Advance 推进一个 Tick，返回新状态；入参不会被修改
func (e *Engine) Advance(s State) State {
	if s.GameOver {
		return s
	}

	newHead := s.Head().Step(s.Direction)

	// 先判自撞：撞上即结束，蛇身/食物/分数保持 Tick 前的值
	if s.Occupies(newHead) {
		next := s.Clone()
		next.GameOver = true
		return next
	}

	newSnake := make([]Position, 0, len(s.Snake)+1)
	newSnake = append(newSnake, newHead)
	newSnake = append(newSnake, s.Snake[:len(s.Snake)-1]...)

	next := s
	next.Snake = newSnake

	if newHead == s.Food {
		newSnake = append(newSnake, s.Tail())
		next.Snake = newSnake
		// 刷新时不排除蛇身所在格
		next.Food = RandomPosition(e.rng)
		next.Score = s.Score + FoodScore
	}

	return next
}
