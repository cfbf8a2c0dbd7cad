package game

import (
	"sort"

	"github.com/gonewx/shaperave/pkg/types"
)

// Scheduler 基于游戏循环时间的任务调度器
//
// 所有任务都在 Update 中、在游戏循环所在的线程上执行，不需要加锁。
//
// 规则：
//   - 一次性任务在累计时间 >= 到期时间时触发一次
//   - 周期任务每次 Update 最多触发一次（周期很短时等价于"每帧一次"）
//   - 在回调中新建的任务不会在同一次 Update 中执行
//   - 同一 key 的任务同时只存在一个，新任务替换并取消旧任务
type Scheduler struct {
	now    float64
	nextID types.TimerHandle
	tasks  []*scheduledTask
	keyed  map[string]types.TimerHandle
}

type scheduledTask struct {
	id        types.TimerHandle
	key       string
	due       float64
	period    float64
	repeating bool
	once      func()
	tick      func(types.TimerHandle)
	done      bool
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		keyed: make(map[string]types.TimerHandle),
	}
}

// Now 返回调度器累计时间（秒）
func (s *Scheduler) Now() float64 {
	return s.now
}

func (s *Scheduler) add(task *scheduledTask) types.TimerHandle {
	s.nextID++
	task.id = s.nextID
	s.tasks = append(s.tasks, task)
	return task.id
}

// After 在 delay 秒后执行一次 fn
func (s *Scheduler) After(delay float64, fn func()) types.TimerHandle {
	if delay < 0 {
		delay = 0
	}
	return s.add(&scheduledTask{due: s.now + delay, once: fn})
}

// AfterKeyed 在 delay 秒后执行一次 fn，并取消同一 key 下尚未执行的任务
func (s *Scheduler) AfterKeyed(key string, delay float64, fn func()) types.TimerHandle {
	if old, ok := s.keyed[key]; ok {
		s.Cancel(old)
	}
	if delay < 0 {
		delay = 0
	}
	h := s.add(&scheduledTask{key: key, due: s.now + delay, once: fn})
	s.keyed[key] = h
	return h
}

// Every 每隔 period 秒执行一次 fn，直到回调中取消自身
// 回调参数是任务自己的句柄
func (s *Scheduler) Every(period float64, fn func(types.TimerHandle)) types.TimerHandle {
	if period < 0 {
		period = 0
	}
	return s.add(&scheduledTask{due: s.now + period, period: period, repeating: true, tick: fn})
}

// Cancel 取消任务，返回任务在取消前是否存活
func (s *Scheduler) Cancel(h types.TimerHandle) bool {
	if h == types.NoTimer {
		return false
	}
	for _, t := range s.tasks {
		if t.id == h && !t.done {
			t.done = true
			if t.key != "" && s.keyed[t.key] == h {
				delete(s.keyed, t.key)
			}
			return true
		}
	}
	return false
}

// Alive 检查任务是否尚未执行且未被取消
func (s *Scheduler) Alive(h types.TimerHandle) bool {
	if h == types.NoTimer {
		return false
	}
	for _, t := range s.tasks {
		if t.id == h {
			return !t.done
		}
	}
	return false
}

// Pending 返回存活任务数量
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.done {
			n++
		}
	}
	return n
}

// Update 推进时间并执行到期任务
//
// 参数:
//   - dt: 距上一次 Update 的时间（秒）
func (s *Scheduler) Update(dt float64) {
	s.now += dt

	// 只处理本次 Update 开始前已经存在的任务
	snapshot := make([]*scheduledTask, len(s.tasks))
	copy(snapshot, s.tasks)
	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].due < snapshot[j].due
	})

	for _, t := range snapshot {
		if t.done || t.due > s.now {
			continue
		}
		if t.repeating {
			t.due += t.period
			t.tick(t.id)
			continue
		}
		t.done = true
		if t.key != "" && s.keyed[t.key] == t.id {
			delete(s.keyed, t.key)
		}
		t.once()
	}

	// 清理已完成的任务（保持相对顺序）
	alive := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.done {
			alive = append(alive, t)
		}
	}
	for i := len(alive); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = alive
}

// Clear 取消所有任务
func (s *Scheduler) Clear() {
	for _, t := range s.tasks {
		t.done = true
	}
	s.tasks = nil
	s.keyed = make(map[string]types.TimerHandle)
}
