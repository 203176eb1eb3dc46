package schedule

import (
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

var (
	ErrMalformedPhase = errors.New("malformed phase")
	ErrInvalidCadence = errors.New("invalid cadence")
)

// MalformedPhaseError reports a timeline phase whose window cannot be resolved.
type MalformedPhaseError struct {
	PhaseID uuid.UUID
	Name    string
	Reason  string
}

func (e *MalformedPhaseError) Error() string {
	return fmt.Sprintf("malformed phase %q (%s): %s", e.Name, e.PhaseID, e.Reason)
}

func (e *MalformedPhaseError) Unwrap() error {
	return ErrMalformedPhase
}

// Cadence is the posting policy applied to every week of every phase.
type Cadence struct {
	// DayOffsets are the days within each week (0 = the week's first day) that get a post.
	DayOffsets []int
	// Hour is the local time-of-day stamped on every generated post.
	Hour int
}

// DefaultCadence posts three times a week, two days apart, at local midnight.
var DefaultCadence = Cadence{
	DayOffsets: []int{0, 2, 4},
	Hour:       0,
}

// Validate checks that every offset falls inside a week and the hour is a valid time of day.
func (c Cadence) Validate() error {
	if len(c.DayOffsets) == 0 {
		return fmt.Errorf("%w: no day offsets", ErrInvalidCadence)
	}
	if c.Hour < 0 || c.Hour > 23 {
		return fmt.Errorf("%w: hour %d outside 0-23", ErrInvalidCadence, c.Hour)
	}
	seen := make(map[int]bool, len(c.DayOffsets))
	for _, offset := range c.DayOffsets {
		if offset < 0 || offset >= daysPerWeek {
			return fmt.Errorf("%w: day offset %d outside 0-%d", ErrInvalidCadence, offset, daysPerWeek-1)
		}
		if seen[offset] {
			return fmt.Errorf("%w: duplicate day offset %d", ErrInvalidCadence, offset)
		}
		seen[offset] = true
	}
	return nil
}

// PostsPerWeek returns how many posts a full week produces.
func (c Cadence) PostsPerWeek() int {
	return len(c.DayOffsets)
}

const PlatformStatusPending = "pending"

// PlannedPlatformEntry is the per-network instance of a planned post.
type PlannedPlatformEntry struct {
	Platform string   `json:"platform"`
	Caption  *string  `json:"caption"`
	Hashtags []string `json:"hashtags"`
	Status   string   `json:"status"`
}

// PlannedPost is a post the launch will create.
type PlannedPost struct {
	UserID          uuid.UUID              `json:"user_id"`
	CampaignID      uuid.UUID              `json:"campaign_id"`
	PhaseID         uuid.UUID              `json:"phase_id"`
	ScheduledAt     civil.DateTime         `json:"scheduled_at"`
	PlatformEntries []PlannedPlatformEntry `json:"platform_entries"`
}

// Schedule is the full set of posts generated for a timeline.
type Schedule struct {
	Posts []PlannedPost `json:"posts"`
}

// PlatformEntryCount returns the total number of platform entries across all posts.
func (s Schedule) PlatformEntryCount() int {
	n := 0
	for _, p := range s.Posts {
		n += len(p.PlatformEntries)
	}
	return n
}

// GeneratePostSchedule expands every timeline phase into posts following the cadence, and fans each
// post out to one pending platform entry per platform. Dates past a phase's end are dropped.
//
// The output depends only on its inputs. It does not de-duplicate against posts that may already
// be persisted.
func GeneratePostSchedule(tl Timeline, platforms []string, userID uuid.UUID, cadence Cadence) (Schedule, error) {
	if err := cadence.Validate(); err != nil {
		return Schedule{}, err
	}
	for _, phase := range tl.Phases {
		if err := validatePhase(phase); err != nil {
			return Schedule{}, err
		}
	}

	sched := Schedule{Posts: []PlannedPost{}}
	at := civil.Time{Hour: cadence.Hour}
	for _, phase := range tl.Phases {
		weeks := (phase.Window().LengthDays() + daysPerWeek - 1) / daysPerWeek
		for w := 0; w < weeks; w++ {
			for _, offset := range cadence.DayOffsets {
				date := phase.Start.AddDays(w*daysPerWeek + offset)
				if date.After(phase.End) {
					continue
				}
				sched.Posts = append(sched.Posts, PlannedPost{
					UserID:          userID,
					CampaignID:      tl.CampaignID,
					PhaseID:         phase.PhaseID,
					ScheduledAt:     civil.DateTime{Date: date, Time: at},
					PlatformEntries: platformEntries(platforms),
				})
			}
		}
	}
	return sched, nil
}

func platformEntries(platforms []string) []PlannedPlatformEntry {
	entries := make([]PlannedPlatformEntry, 0, len(platforms))
	for _, platform := range platforms {
		entries = append(entries, PlannedPlatformEntry{
			Platform: platform,
			Hashtags: []string{},
			Status:   PlatformStatusPending,
		})
	}
	return entries
}

func validatePhase(p TimelinePhase) error {
	switch {
	case !p.Start.IsValid():
		return &MalformedPhaseError{PhaseID: p.PhaseID, Name: p.Name, Reason: "missing start date"}
	case !p.End.IsValid():
		return &MalformedPhaseError{PhaseID: p.PhaseID, Name: p.Name, Reason: "missing end date"}
	case p.End.Before(p.Start):
		return &MalformedPhaseError{PhaseID: p.PhaseID, Name: p.Name, Reason: "end date before start date"}
	}
	return nil
}
