package game

import (
	"github.com/faiface/pixel"
	"github.com/sirupsen/logrus"
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

func (button MouseButton) String() string {
	switch button {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	default:
		return "other"
	}
}

type ButtonState int

const (
	Pressed ButtonState = iota
	Released
)

// PressEvent is a mouse button changing state at a screen position
type PressEvent struct {
	Button   MouseButton
	State    ButtonState
	Position pixel.Vec
}

// TriggerEvent requests the reveal of the tile at Coordinates
type TriggerEvent struct {
	Coordinates Coordinates
}

// HandleInput turns the host's button events into reveal triggers. Only left
// presses over the board trigger anything.
func (board *Board) HandleInput(view View, events []PressEvent) []TriggerEvent {
	var triggers []TriggerEvent

	for _, event := range events {
		if event.State != Pressed {
			continue
		}

		coords, ok := board.WorldToCell(view, event.Position)
		if !ok {
			continue
		}

		fields := logrus.Fields{
			"button":      event.Button,
			"coordinates": coords,
		}
		switch event.Button {
		case MouseLeft:
			log.WithFields(fields).Debug("Trying to uncover tile")
			triggers = append(triggers, TriggerEvent{Coordinates: coords})
		case MouseRight:
			// TODO: toggle flags once covered tiles track a flagged state
			log.WithFields(fields).Info("Trying to flag bomb")
		default:
			log.WithFields(fields).Debug("Ignoring button press")
		}
	}

	return triggers
}

// ProcessTriggers runs the reveal triggers in order, merging their outcomes
func (board *Board) ProcessTriggers(triggers []TriggerEvent) RevealOutcome {
	var outcome RevealOutcome
	for _, trigger := range triggers {
		outcome.Merge(board.ProcessRevealTrigger(trigger.Coordinates))
	}
	return outcome
}
