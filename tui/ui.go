package tui

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/mohamedali2285/Snakes/game"
)

// quitRequest 由外部取消（信号等）投递到事件队列，让事件循环退出
type quitRequest struct{}

// UI 终端渲染与输入：观察会话快照并重绘，把鼠标点击和按键转为会话操作。
// 绘制只发生在事件循环所在协程
type UI struct {
	screen  tcell.Screen
	session *game.Session
	layout  Layout

	snap      game.Snapshot
	mouseDown bool

	// 事件队列满时快照会丢失，置位后由事件循环主动拉取最新快照
	missed atomic.Bool
}

// New screen 需已 Init
func New(screen tcell.Screen, session *game.Session) *UI {
	return &UI{
		screen:  screen,
		session: session,
		layout:  DefaultLayout(),
		snap:    session.Snapshot(),
	}
}

// Run 事件循环，直到用户退出或 ctx 被取消
func (u *UI) Run(ctx context.Context) error {
	u.screen.EnableMouse()
	u.screen.HideCursor()

	// Tick 协程发出的快照经事件队列交给本协程绘制
	cancel := u.session.Subscribe(u.post)
	defer cancel()

	go func() {
		<-ctx.Done()
		_ = u.screen.PostEvent(tcell.NewEventInterrupt(quitRequest{}))
	}()

	u.snap = u.session.Snapshot()
	u.draw()

	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !u.handle(ev) {
			return nil
		}
	}
}

// post 会话观察者，可能在任意协程调用
func (u *UI) post(s game.Snapshot) {
	if err := u.screen.PostEvent(tcell.NewEventInterrupt(s)); err != nil {
		u.missed.Store(true)
		game.Log.Debugf("snapshot %d not queued: %v", s.Version, err)
	}
}

// handle 处理一个事件，返回 false 表示退出
func (u *UI) handle(ev tcell.Event) bool {
	if u.missed.Swap(false) {
		u.observe(u.session.Snapshot())
	}

	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		switch data := ev.Data().(type) {
		case quitRequest:
			return false
		case game.Snapshot:
			u.observe(data)
		}

	case *tcell.EventResize:
		u.screen.Sync()
		u.draw()

	case *tcell.EventKey:
		return u.handleKey(ev)

	case *tcell.EventMouse:
		u.handleMouse(ev)
	}

	return true
}

func (u *UI) observe(s game.Snapshot) {
	if s.Version < u.snap.Version {
		return
	}
	// 同一局内分数上涨说明刚吃到食物
	if s.Phase == game.PhasePlaying && u.snap.Phase == game.PhasePlaying && s.State.Score > u.snap.State.Score {
		_ = u.screen.Beep()
	}
	u.snap = s
	u.draw()
}

func (u *UI) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		u.session.Turn(game.DirUp)
	case tcell.KeyDown:
		u.session.Turn(game.DirDown)
	case tcell.KeyLeft:
		u.session.Turn(game.DirLeft)
	case tcell.KeyRight:
		u.session.Turn(game.DirRight)
	case tcell.KeyEnter:
		u.activate()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case ' ':
			u.activate()
		}
	}
	return true
}

func (u *UI) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	// 只在按下的那一刻算一次点击，按住拖动不重复触发
	click := pressed && !u.mouseDown
	u.mouseDown = pressed
	if !click {
		return
	}

	x, y := ev.Position()
	if tap, bounds, ok := u.layout.BoardTap(x, y); ok {
		u.session.Input(tap, bounds)
		return
	}
	if u.layout.OnButton(u.snap.Controls, x, y) {
		u.activate()
	}
}

// activate 触发当前可见的按钮
func (u *UI) activate() {
	controls := u.session.Snapshot().Controls
	var err error
	switch {
	case controls.Start:
		err = u.session.Start()
	case controls.Restart:
		err = u.session.Restart()
	default:
		return
	}
	if err != nil {
		game.Log.Warnf("control ignored: %v", err)
	}
}

func (u *UI) draw() {
	s := u.screen
	l := u.layout
	st := u.snap.State

	s.Fill(' ', styleDefault)

	drawText(s, l.Left, 0, styleText, fmt.Sprintf("Score: %d", st.Score))

	for y := 0; y < game.BoardSize; y++ {
		for x := 0; x < game.BoardSize; x++ {
			drawCell(s, l, game.Position{X: x, Y: y}, styleBoard)
		}
	}

	drawCell(s, l, st.Food, styleFood)
	for i, p := range st.Snake {
		style := styleSnake
		if i == 0 {
			style = styleHead
		}
		drawCell(s, l, p, style)
	}

	if st.GameOver {
		msg := fmt.Sprintf("Game Over! Score: %d", st.Score)
		drawText(s, l.centeredX(msg), l.Top+l.BoardHeight()/2, styleOverlay, msg)
	}

	if label := ButtonLabel(u.snap.Controls); label != "" {
		drawText(s, l.centeredX(label), l.ControlRow(), styleButton, label)
	} else if u.snap.Phase == game.PhasePlaying {
		drawText(s, l.centeredX(playingHint), l.ControlRow(), styleHint, playingHint)
	}

	s.Show()
}

func drawCell(s tcell.Screen, l Layout, p game.Position, style tcell.Style) {
	x, y := l.CellOrigin(p)
	for i := 0; i < cellWidth; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
