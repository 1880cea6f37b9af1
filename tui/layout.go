package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/mohamedali2285/Snakes/game"
)

const (
	// cellWidth 每个棋盘格占两列，终端字符约为 1:2，这样格子接近正方形
	cellWidth = 2

	startLabel   = "[ Start Game ]"
	restartLabel = "[ Restart Game ]"
	playingHint  = "tap the edge zones or use arrows"
)

var (
	styleDefault = tcell.StyleDefault
	styleBoard   = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleSnake   = tcell.StyleDefault.Background(tcell.ColorGreen)
	styleHead    = tcell.StyleDefault.Background(tcell.ColorLime)
	styleFood    = tcell.StyleDefault.Background(tcell.ColorRed)
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleOverlay = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true)
	styleButton  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleHint    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Layout 屏幕上各元素的位置（单位：终端字符）
type Layout struct {
	Left int // 棋盘左上角列
	Top  int // 棋盘左上角行
}

// DefaultLayout 第 0 行分数，空一行后是棋盘
func DefaultLayout() Layout {
	return Layout{Left: 1, Top: 2}
}

// BoardWidth 棋盘占用的列数
func (l Layout) BoardWidth() int {
	return game.BoardSize * cellWidth
}

// BoardHeight 棋盘占用的行数
func (l Layout) BoardHeight() int {
	return game.BoardSize
}

// ControlRow 按钮/提示所在行
func (l Layout) ControlRow() int {
	return l.Top + l.BoardHeight() + 1
}

// InBoard 屏幕坐标是否落在棋盘上
func (l Layout) InBoard(x, y int) bool {
	return x >= l.Left && x < l.Left+l.BoardWidth() && y >= l.Top && y < l.Top+l.BoardHeight()
}

// BoardTap 把屏幕上的一次点击换算成相对棋盘的 Tap 与棋盘尺寸。
// 取字符格中心点，避免落在 3×3 分界线上
func (l Layout) BoardTap(x, y int) (game.Tap, game.Bounds, bool) {
	if !l.InBoard(x, y) {
		return game.Tap{}, game.Bounds{}, false
	}
	tap := game.Tap{
		X: float64(x-l.Left) + 0.5,
		Y: float64(y-l.Top) + 0.5,
	}
	bounds := game.Bounds{
		Width:  float64(l.BoardWidth()),
		Height: float64(l.BoardHeight()),
	}
	return tap, bounds, true
}

// CellOrigin 棋盘格在屏幕上的左上角
func (l Layout) CellOrigin(p game.Position) (x, y int) {
	return l.Left + p.X*cellWidth, l.Top + p.Y
}

// centeredX 文本在棋盘宽度内居中时的起始列
func (l Layout) centeredX(text string) int {
	return l.Left + (l.BoardWidth()-len(text))/2
}

// ButtonLabel 当前阶段可见的按钮文字，无按钮时为空
func ButtonLabel(c game.Controls) string {
	switch {
	case c.Start:
		return startLabel
	case c.Restart:
		return restartLabel
	default:
		return ""
	}
}

// OnButton 屏幕坐标是否落在可见按钮上
func (l Layout) OnButton(c game.Controls, x, y int) bool {
	label := ButtonLabel(c)
	if label == "" || y != l.ControlRow() {
		return false
	}
	x0 := l.centeredX(label)
	return x >= x0 && x < x0+len(label)
}
