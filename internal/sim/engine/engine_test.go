package engine

import (
	"encoding/json"
	"testing"

	"dronespire.ai/internal/dsl"
	"dronespire.ai/internal/sim/coords"
	"dronespire.ai/internal/sim/tasks"
	"dronespire.ai/internal/sim/world"
)

func mineBox(t *testing.T, min, max coords.TileCoord3) tasks.Task {
	t.Helper()
	b, err := coords.NewTileBox3(min, max)
	if err != nil {
		t.Fatalf("new box: %v", err)
	}
	return tasks.MineBox(b)
}

func TestNewDrone_StartsIdle(t *testing.T) {
	d := NewDrone(1)
	if d.ID != 1 || d.Status != Idle || d.CurrentTask != nil {
		t.Fatalf("drone = %+v, want idle #1 with no task", d)
	}
}

func TestTick_ExecutesOneTask(t *testing.T) {
	w := world.New(2, 2, 1, world.Stone)
	e := New(w, []Drone{NewDrone(1)})
	e.Tasks.Push(mineBox(t, coords.New(0, 0, 0), coords.New(1, 1, 0)))

	e.Tick()

	if e.World.Resources.Stone != 4 {
		t.Fatalf("resources.stone = %d, want 4", e.World.Resources.Stone)
	}
	if e.Drones[0].Status != Idle || e.Drones[0].CurrentTask != nil {
		t.Fatalf("drone = %+v, want idle with no task after the tick", e.Drones[0])
	}
	if e.Tasks.AnyPending() {
		t.Fatalf("task should be done")
	}
}

func TestTick_AtMostOneTaskPerTick(t *testing.T) {
	w := world.New(4, 1, 1, world.Stone)
	e := New(w, []Drone{NewDrone(1), NewDrone(2)})
	e.Tasks.Push(mineBox(t, coords.New(0, 0, 0), coords.New(0, 0, 0)))
	e.Tasks.Push(mineBox(t, coords.New(1, 0, 0), coords.New(1, 0, 0)))

	e.Tick()
	if e.World.Resources.Stone != 1 {
		t.Fatalf("after tick 1: stone = %d, want 1 (one task per tick, even with two idle drones)", e.World.Resources.Stone)
	}
	if !e.Tasks.AnyPending() {
		t.Fatalf("second task should still be pending")
	}

	e.Tick()
	if e.World.Resources.Stone != 2 {
		t.Fatalf("after tick 2: stone = %d, want 2", e.World.Resources.Stone)
	}
	if e.Tasks.AnyPending() {
		t.Fatalf("queue should be drained")
	}
}

func TestTick_NoPendingTaskIsNoOp(t *testing.T) {
	w := world.New(2, 2, 1, world.Stone)
	e := New(w, []Drone{NewDrone(1)})
	before := w.Digest()
	e.Tick()
	if w.Digest() != before {
		t.Fatalf("tick with empty queue mutated the world")
	}
	if e.Drones[0].Status != Idle {
		t.Fatalf("drone should be untouched, got %v", e.Drones[0].Status)
	}
}

func TestTick_NoDronesIsNoOp(t *testing.T) {
	w := world.New(2, 2, 1, world.Stone)
	e := New(w, nil)
	e.Tasks.Push(mineBox(t, coords.New(0, 0, 0), coords.New(1, 1, 0)))
	e.Tick()
	if e.World.Resources.Stone != 0 {
		t.Fatalf("no drones, nothing should be mined")
	}
	if !e.Tasks.AnyPending() {
		t.Fatalf("task should remain pending with no drone to run it")
	}
}

func TestTick_FirstAvailableDroneRuns(t *testing.T) {
	w := world.New(2, 1, 1, world.Stone)
	busy := NewDrone(7)
	busy.Status = Working
	e := New(w, []Drone{busy, NewDrone(8)})
	e.Tasks.Push(mineBox(t, coords.New(0, 0, 0), coords.New(0, 0, 0)))

	var log memLog
	e.SetTickLog(&log)
	e.Tick()

	if len(log.entries) != 1 || log.entries[0].DroneID != 8 {
		t.Fatalf("entries = %+v, want drone 8 to have run", log.entries)
	}
}

type memLog struct {
	entries []TickLogEntry
}

func (l *memLog) WriteTick(e TickLogEntry) error {
	l.entries = append(l.entries, e)
	return nil
}

func TestTickLog_RecordsTaskAndDigest(t *testing.T) {
	w := world.New(2, 2, 1, world.Stone)
	e := New(w, []Drone{NewDrone(1)})
	e.Tasks.Push(mineBox(t, coords.New(0, 0, 0), coords.New(1, 1, 0)))

	var log memLog
	e.SetTickLog(&log)
	e.Tick()
	e.Tick() // no-op tick still logs

	if len(log.entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(log.entries))
	}
	first := log.entries[0]
	if first.Tick != 0 || first.Mined != 4 || first.Task == "" {
		t.Fatalf("first entry = %+v, want tick 0 with 4 mined tiles", first)
	}
	if first.Digest != w.Digest() {
		t.Fatalf("digest should reflect post-tick state")
	}
	second := log.entries[1]
	if second.Tick != 1 || second.Mined != 0 || second.Task != "" {
		t.Fatalf("second entry = %+v, want empty no-op entry", second)
	}
}

func TestEndToEnd_CompiledProgramThroughEngine(t *testing.T) {
	const doc = `{
	  "version": 1,
	  "node": "Program",
	  "statements": [
	    {"node": "Let", "name": "area", "ty": "TileBox", "value":
	      {"node": "TileBoxFromCoords",
	       "min": {"node": "TileCoord", "x": 0, "y": 0, "z": 0},
	       "max": {"node": "TileCoord", "x": 1, "y": 1, "z": 0}}},
	    {"node": "ExprStmt", "expr":
	      {"node": "Call", "func": "mine_box", "args": [{"node": "VarRef", "name": "area"}]}}
	  ]
	}`
	var prog dsl.Program
	if err := json.Unmarshal([]byte(doc), &prog); err != nil {
		t.Fatalf("decode program: %v", err)
	}
	compiled, err := dsl.Compile(&prog)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if len(compiled) != 1 {
		t.Fatalf("got %d tasks, want 1", len(compiled))
	}

	w := world.New(3, 3, 1, world.Stone)
	e := New(w, []Drone{NewDrone(1)})
	for _, task := range compiled {
		e.Tasks.Push(task)
	}

	e.Tick()

	if e.World.Resources.Stone != 4 {
		t.Fatalf("resources.stone = %d, want 4", e.World.Resources.Stone)
	}
	d := e.Drones[0]
	if d.Status != Idle || d.CurrentTask != nil {
		t.Fatalf("drone = %+v, want exactly one idle drone with no task", d)
	}
}
