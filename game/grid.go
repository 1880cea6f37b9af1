package game

import "fmt"

// BoardSize 棋盘边长（正方形，环形拓扑）
const BoardSize = 20

// Position 棋盘格坐标，X 向右递增，Y 向下递增
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Wrap 将坐标折回 [0, size)，用于越界后从对边进入
func Wrap(coord, size int) int {
	return (coord + size) % size
}

// Step 沿方向前进一格，两个轴都做环绕
func (p Position) Step(dir Direction) Position {
	dx, dy := dir.Delta()
	return Position{
		X: Wrap(p.X+dx, BoardSize),
		Y: Wrap(p.Y+dy, BoardSize),
	}
}

// InBounds 是否位于棋盘内
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// Center 棋盘中心（蛇的出生点）
func Center() Position {
	return Position{X: BoardSize / 2, Y: BoardSize / 2}
}
