package game

import (
	"sync/atomic"
)

// SessionMetrics 记录会话运行期的关键指标（用于日志与调试）
type SessionMetrics struct {
	TickCount         int64 // 实际推进的 Tick 次数
	TotalTickNs       int64 // Tick 累计耗时（纳秒）
	InputsAccepted    int64 // 被接受的转向输入数
	ReversalsRejected int64 // 因掉头被拒绝的输入数
	TapsIgnored       int64 // 落在无效区域的点击数
	FoodEaten         int64 // 吃到的食物数
	GamesStarted      int64 // 开局次数（含重开）
}

func (m *SessionMetrics) IncAccepted() { atomic.AddInt64(&m.InputsAccepted, 1) }
func (m *SessionMetrics) IncReversalRejected() { atomic.AddInt64(&m.ReversalsRejected, 1) }
func (m *SessionMetrics) IncTapIgnored() { atomic.AddInt64(&m.TapsIgnored, 1) }
func (m *SessionMetrics) IncFoodEaten() { atomic.AddInt64(&m.FoodEaten, 1) }
func (m *SessionMetrics) IncGamesStarted() { atomic.AddInt64(&m.GamesStarted, 1) }
func (m *SessionMetrics) AddTick(ns int64) {
	atomic.AddInt64(&m.TickCount, 1)
	atomic.AddInt64(&m.TotalTickNs, ns)
}

// Snapshot 返回只读副本
func (m *SessionMetrics) Snapshot() map[string]any {
	tick := atomic.LoadInt64(&m.TickCount)
	total := atomic.LoadInt64(&m.TotalTickNs)
	var avgMs float64
	if tick > 0 {
		avgMs = float64(total) / float64(tick) / 1e6
	}
	return map[string]any{
		"tick_count":         tick,
		"inputs_accepted":    atomic.LoadInt64(&m.InputsAccepted),
		"reversals_rejected": atomic.LoadInt64(&m.ReversalsRejected),
		"taps_ignored":       atomic.LoadInt64(&m.TapsIgnored),
		"food_eaten":         atomic.LoadInt64(&m.FoodEaten),
		"games_started":      atomic.LoadInt64(&m.GamesStarted),
		"avg_tick_ms":        avgMs,
	}
}
