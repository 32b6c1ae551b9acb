package engine

import (
	"dronespire.ai/internal/sim/tasks"
	"dronespire.ai/internal/sim/world"
)

// TickLogEntry records what one tick did, for replay and diagnosis.
type TickLogEntry struct {
	Tick    uint64 `json:"tick"`
	DroneID uint32 `json:"drone_id,omitempty"`
	Task    string `json:"task,omitempty"`
	Mined   uint32 `json:"mined,omitempty"`
	Digest  string `json:"digest"`
}

// TickLog receives one entry per tick. The engine itself performs no I/O;
// sinks decide whether to buffer, write or drop.
type TickLog interface {
	WriteTick(TickLogEntry) error
}

// Engine owns the world, the drones and the task queue for one session.
// It is single-threaded: all mutation funnels through Tick.
type Engine struct {
	World  *world.World
	Drones []Drone
	Tasks  *tasks.Manager

	tick    uint64
	tickLog TickLog
}

func New(w *world.World, drones []Drone) *Engine {
	return &Engine{
		World:  w,
		Drones: drones,
		Tasks:  tasks.NewManager(),
	}
}

// SetTickLog installs an optional per-tick sink. Pass nil to detach.
func (e *Engine) SetTickLog(l TickLog) {
	e.tickLog = l
}

// Tick advances the simulation by one synchronous step. At most one drone
// does work and at most one task completes, regardless of queue depth.
// The Thinking/Working/Finished walk happens entirely inside the call; a
// caller polling between ticks only ever observes Idle.
func (e *Engine) Tick() {
	nowTick := e.tick
	e.tick++

	idx := -1
	for i := range e.Drones {
		if e.Drones[i].available() {
			idx = i
			break
		}
	}
	if idx == -1 {
		e.logTick(TickLogEntry{Tick: nowTick})
		return
	}

	task, ok := e.Tasks.StartNext()
	if !ok {
		e.logTick(TickLogEntry{Tick: nowTick})
		return
	}

	d := &e.Drones[idx]
	d.Status = Thinking
	d.CurrentTask = &task
	d.Status = Working
	mined := tasks.Apply(e.World, task)
	e.Tasks.Complete(task)
	d.Status = Finished
	d.CurrentTask = nil
	d.Status = Idle

	e.logTick(TickLogEntry{
		Tick:    nowTick,
		DroneID: d.ID,
		Task:    task.Description(),
		Mined:   mined,
	})
}

func (e *Engine) logTick(entry TickLogEntry) {
	if e.tickLog == nil {
		return
	}
	entry.Digest = e.World.Digest()
	// A failing sink must not stall the simulation.
	_ = e.tickLog.WriteTick(entry)
}
