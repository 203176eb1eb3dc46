package processor

// State is a step of a single launch attempt.
type State string

const (
	StateIdle                      State = "idle"
	StateConfirming                State = "confirming"
	StatePersistingCampaign        State = "persisting_campaign"
	StatePersistingPhases          State = "persisting_phases"
	StatePersistingPosts           State = "persisting_posts"
	StatePersistingPlatformEntries State = "persisting_platform_entries"
	StateNotifyingDownstream       State = "notifying_downstream"
	StateDone                      State = "done"

	StateCampaignUpdateFailed State = "campaign_update_failed"
	StatePhaseUpdateFailed    State = "phase_update_failed"
	StatePostPersistFailed    State = "post_persist_failed"
)

// failureStates maps each fatal step to the terminal state it ends in.
var failureStates = map[State]State{
	StateConfirming:         StateCampaignUpdateFailed,
	StatePersistingCampaign: StateCampaignUpdateFailed,
	StatePersistingPhases:   StatePhaseUpdateFailed,
	StatePersistingPosts:    StatePostPersistFailed,
}

// failureKinds maps each fatal step to its error kind.
var failureKinds = map[State]error{
	StateConfirming:         ErrCampaignUpdateFailed,
	StatePersistingCampaign: ErrCampaignUpdateFailed,
	StatePersistingPhases:   ErrPhaseUpdateFailed,
	StatePersistingPosts:    ErrPostPersistFailed,
}

// trace records the states a launch attempt passes through.
type trace struct {
	states []State
}

func newTrace() *trace {
	return &trace{states: []State{StateIdle}}
}

func (t *trace) enter(s State) {
	t.states = append(t.states, s)
}

func (t *trace) current() State {
	return t.states[len(t.states)-1]
}

// fail records the terminal failure state for the current step and the return to idle.
func (t *trace) fail() State {
	step := t.current()
	t.enter(failureStates[step])
	t.enter(StateIdle)
	return step
}

func (t *trace) snapshot() []State {
	out := make([]State, len(t.states))
	copy(out, t.states)
	return out
}
