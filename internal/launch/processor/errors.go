package processor

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrUnauthorized     = errors.New("unauthorized access to campaign")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNoPhases         = errors.New("campaign has no phases")

	ErrCampaignUpdateFailed = errors.New("campaign update failed")
	ErrPhaseUpdateFailed    = errors.New("phase update failed")
	ErrPostPersistFailed    = errors.New("post persist failed")
	ErrStepTimeout          = errors.New("step timed out")

	ErrPlatformEntryPersistFailed = errors.New("platform entry persist failed")
	ErrNotificationFailed         = errors.New("notification failed")
	ErrEventPublishFailed         = errors.New("event publish failed")

	errNoRowsUpdated = errors.New("no rows updated")
)

// LaunchError is a fatal launch failure. It unwraps to both its Kind sentinel and the cause, so
// errors.Is works against either.
type LaunchError struct {
	Step  State
	Kind  error
	Err   error
	Trace []State
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch failed at %s: %v: %v", e.Step, e.Kind, e.Err)
}

func (e *LaunchError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// withTimeout marks err as a step timeout when the step's deadline expired.
func withTimeout(err error) error {
	if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, ErrStepTimeout) {
		return errors.Join(ErrStepTimeout, err)
	}
	return err
}
