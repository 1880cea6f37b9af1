package game

import "time"

// TickInterval 世界推进间隔
const TickInterval = 150 * time.Millisecond

// tickLoop 一个周期任务的生命周期句柄
type tickLoop struct {
	stop chan struct{}
	done chan struct{}
}

// startTickerLocked 启动会话的 Tick 循环（单协程推进世界）。调用方持有 s.mu
func (s *Session) startTickerLocked() {
	if s.loop != nil {
		return
	}
	loop := &tickLoop{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	s.loop = loop

	interval := s.interval
	go func() {
		defer close(loop.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-loop.stop:
				return
			case <-ticker.C:
				if !s.tick(loop) {
					return
				}
			}
		}
	}()
}

// stopTickerLocked 注销并通知当前周期任务退出，不等待。调用方持有 s.mu。
// 返回被停止的任务，便于在释放锁后等待 done
func (s *Session) stopTickerLocked() *tickLoop {
	loop := s.loop
	if loop == nil {
		return nil
	}
	s.loop = nil
	close(loop.stop)
	return loop
}
