package match

import (
	"context"

	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

// Turn states, in the order a round visits them.
const (
	StateRoundStart      = "round_start"
	StateStatusTick      = "status_tick"
	StateActiveAction    = "active_action"
	StateActiveCleanup   = "active_cleanup"
	StateReactiveAction  = "reactive_action"
	StateReactiveCleanup = "reactive_cleanup"
	StateCheckEnd        = "check_end"
	StateFinished        = "finished"
)

const (
	eventTick      = "tick"
	eventAct       = "act"
	eventCleanup   = "cleanup"
	eventReact     = "react"
	eventCheck     = "check"
	eventNextRound = "next_round"
	eventFinish    = "finish"
)

// newMachine builds the round state machine. Every transition is logged at debug.
func newMachine(logger *zap.Logger, round func() int) *fsm.FSM {
	return fsm.NewFSM(
		StateRoundStart,
		fsm.Events{
			{Name: eventTick, Src: []string{StateRoundStart}, Dst: StateStatusTick},
			{Name: eventAct, Src: []string{StateStatusTick}, Dst: StateActiveAction},
			{Name: eventCleanup, Src: []string{StateActiveAction}, Dst: StateActiveCleanup},
			{Name: eventReact, Src: []string{StateActiveCleanup}, Dst: StateReactiveAction},
			{Name: eventCleanup, Src: []string{StateReactiveAction}, Dst: StateReactiveCleanup},
			{Name: eventCheck, Src: []string{StateReactiveCleanup}, Dst: StateCheckEnd},
			{Name: eventNextRound, Src: []string{StateCheckEnd}, Dst: StateRoundStart},
			{Name: eventFinish, Src: []string{StateCheckEnd}, Dst: StateFinished},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				logger.Debug("match state",
					zap.String("event", e.Event),
					zap.String("from", e.Src),
					zap.String("to", e.Dst),
					zap.Int("round", round()),
				)
			},
		},
	)
}
