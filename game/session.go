package game

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Phase 会话阶段
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Controls 各阶段可见的操作按钮
type Controls struct {
	Start   bool
	Restart bool
}

// ControlsFor 未开始显示 Start，结束显示 Restart，进行中都不显示
func ControlsFor(p Phase) Controls {
	return Controls{
		Start:   p == PhaseNotStarted,
		Restart: p == PhaseGameOver,
	}
}

// Snapshot 交给渲染端的只读快照
type Snapshot struct {
	State    State
	Phase    Phase
	Controls Controls
	Pending  Direction // 已接受、将在下一次 Tick 生效的转向
	Tick     uint64
	// Version 每次状态变化递增，跨局不清零。观察者可能乱序收到快照，只保留版本最大的
	Version  uint64
}

// Session 一局游戏的控制器：持有权威状态，由单个 Tick 协程推进
type Session struct {
	engine  *Engine
	metrics *SessionMetrics

	mu       sync.Mutex
	phase    Phase
	state    State
	tickSeq  uint64
	version  uint64
	loop     *tickLoop
	closed   bool
	interval time.Duration

	// 输入端在 mu 内写这一个值（后写覆盖），Tick 读取并清空
	pending atomic.Int32

	obsMu     sync.RWMutex
	observers map[int]func(Snapshot)
	nextObsID int
}

// NewSession 创建会话，处于 NotStarted 阶段，尚未启动 Tick
func NewSession(engine *Engine) *Session {
	return &Session{
		engine:    engine,
		metrics:   &SessionMetrics{},
		phase:     PhaseNotStarted,
		state:     engine.NewState(),
		interval:  TickInterval,
		observers: make(map[int]func(Snapshot)),
	}
}

// Metrics 会话指标
func (s *Session) Metrics() *SessionMetrics {
	return s.metrics
}

// Start NotStarted → Playing：重置状态并开始周期推进
func (s *Session) Start() error {
	snap, err := s.begin(PhaseNotStarted, ErrAlreadyStarted)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	Log.Infof("game started: head=%s food=%s", snap.State.Head(), snap.State.Food)
	s.publish(snap)
	return nil
}

// Restart GameOver → Playing：整体替换状态并重新开始周期推进
func (s *Session) Restart() error {
	snap, err := s.begin(PhaseGameOver, ErrNotGameOver)
	if err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	Log.Infof("game restarted: head=%s food=%s", snap.State.Head(), snap.State.Food)
	s.publish(snap)
	return nil
}

func (s *Session) begin(from Phase, wrongPhase error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Snapshot{}, ErrSessionClosed
	}
	if s.phase != from {
		return Snapshot{}, wrongPhase
	}

	s.state = s.engine.NewState()
	s.pending.Store(int32(DirNone))
	s.tickSeq = 0
	s.version++
	s.phase = PhasePlaying
	s.metrics.IncGamesStarted()
	s.startTickerLocked()

	return s.snapshotLocked(), nil
}

// Input 点击输入：映射为转向意图，仅记录，等下一次 Tick 生效
func (s *Session) Input(tap Tap, bounds Bounds) bool {
	dir := tapZone(tap, bounds)
	if dir == DirNone {
		s.metrics.IncTapIgnored()
		return false
	}
	return s.Turn(dir)
}

// Turn 直接的转向意图（方向键等）。与当前方向相反或不在 Playing 阶段时忽略。
// 判断与写入都在锁内完成，上一局的转向不会落到新一局
func (s *Session) Turn(dir Direction) bool {
	s.mu.Lock()
	if s.closed || s.phase != PhasePlaying {
		s.mu.Unlock()
		return false
	}
	next, ok := Steer(dir, s.state.Direction)
	if !ok {
		s.mu.Unlock()
		if dir != DirNone {
			s.metrics.IncReversalRejected()
		}
		return false
	}
	s.pending.Store(int32(next))
	s.version++
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.metrics.IncAccepted()
	s.publish(snap)
	return true
}

// Tick 推进一步（周期任务每次触发调用一次）。非 Playing 阶段为空操作
func (s *Session) Tick() {
	s.tick(nil)
}

// tick loop 非空时只允许当前登记的周期任务推进，过期任务直接退出。
// 返回 false 表示周期任务应当停止。
func (s *Session) tick(loop *tickLoop) bool {
	start := time.Now()

	s.mu.Lock()
	if s.closed || s.phase != PhasePlaying || (loop != nil && s.loop != loop) {
		s.mu.Unlock()
		return false
	}

	// 处理输入 → 更新世界
	if next, ok := Steer(Direction(s.pending.Swap(int32(DirNone))), s.state.Direction); ok {
		s.state.Direction = next
	}
	prev := s.state
	s.state = s.engine.Advance(prev)
	s.tickSeq++
	s.version++

	ate := s.state.Score > prev.Score
	over := s.state.GameOver
	if over {
		s.phase = PhaseGameOver
		s.stopTickerLocked()
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.metrics.AddTick(time.Since(start).Nanoseconds())
	if ate {
		s.metrics.IncFoodEaten()
		Log.Debugf("food eaten: score=%d length=%d next food=%s", snap.State.Score, len(snap.State.Snake), snap.State.Food)
	}
	if over {
		Log.Infof("game over: score=%d length=%d ticks=%d crash=%s",
			snap.State.Score, len(snap.State.Snake), snap.Tick, snap.State.Head().Step(snap.State.Direction))
	}

	// 广播结果
	s.publish(snap)
	return !over
}

// Snapshot 当前状态的只读副本
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		State:    s.state.Clone(),
		Phase:    s.phase,
		Controls: ControlsFor(s.phase),
		Pending:  Direction(s.pending.Load()),
		Tick:     s.tickSeq,
		Version:  s.version,
	}
}

// Subscribe 注册观察者，返回取消函数。
// 回调可能来自 Tick 协程或输入所在协程，实现方需自行保证并发安全；
// 不同协程的快照到达顺序不定，按 Snapshot.Version 取新
func (s *Session) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.obsMu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	s.obsMu.Unlock()

	return func() {
		s.obsMu.Lock()
		delete(s.observers, id)
		s.obsMu.Unlock()
	}
}

func (s *Session) publish(snap Snapshot) {
	s.obsMu.RLock()
	fns := make([]func(Snapshot), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.obsMu.RUnlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// Close 停止周期任务并等待其退出；之后的开始/重开返回 ErrSessionClosed
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	loop := s.stopTickerLocked()
	s.mu.Unlock()

	if loop != nil {
		<-loop.done
	}
	Log.Infof("session closed: %v", s.metrics.Snapshot())
}
