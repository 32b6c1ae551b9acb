package engine

import "dronespire.ai/internal/sim/tasks"

type DroneStatus uint8

const (
	Idle DroneStatus = iota
	Thinking
	Working
	Finished
)

func (s DroneStatus) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Thinking:
		return "Thinking"
	case Working:
		return "Working"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Drone is a pure status/assignment record; there is no spatial movement
// in this core. A drone holds at most one task at a time.
type Drone struct {
	ID          uint32
	Status      DroneStatus
	CurrentTask *tasks.Task
}

func NewDrone(id uint32) Drone {
	return Drone{ID: id, Status: Idle}
}

func (d Drone) available() bool {
	return d.Status == Idle || d.Status == Finished
}
