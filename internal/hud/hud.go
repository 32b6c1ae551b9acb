// Package hud builds the read-only display strings the presentation layer
// shows each frame. Nothing here mutates engine state.
package hud

import (
	"fmt"

	"dronespire.ai/internal/sim/engine"
	"dronespire.ai/internal/sim/tasks"
	"dronespire.ai/internal/sim/world"
)

const (
	DronePanelHeading = "Drones"
	TaskPanelHeading  = "Tasks"
)

// FormatStatus renders the top status line.
func FormatStatus(r world.Resources, waveLabel string, coreHP, coreHPMax uint32) string {
	return fmt.Sprintf("Stone: %d | Iron: %d | %s | Core %d/%d",
		r.Stone, r.Iron, waveLabel, coreHP, coreHPMax)
}

func droneStatusLabel(s engine.DroneStatus) string {
	switch s {
	case engine.Idle:
		return "Idle"
	case engine.Thinking:
		return "Thinking..."
	case engine.Working:
		return "Working"
	case engine.Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// SidePanel renders one line per drone and per queued task.
func SidePanel(drones []engine.Drone, m *tasks.Manager) []string {
	out := make([]string, 0, len(drones)+2)
	out = append(out, fmt.Sprintf("[%s]", DronePanelHeading))
	for _, d := range drones {
		task := "None"
		if d.CurrentTask != nil {
			task = d.CurrentTask.Description()
		}
		out = append(out, fmt.Sprintf("Drone #%d – %s – %s", d.ID, droneStatusLabel(d.Status), task))
	}
	out = append(out, fmt.Sprintf("[%s]", TaskPanelHeading))
	for _, e := range m.Entries() {
		out = append(out, fmt.Sprintf("%s – %s", e.Task.Description(), e.State))
	}
	return out
}
