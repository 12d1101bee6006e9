package migration

// ItemKind names the kind of legacy record an Outcome is about.
type ItemKind string

const (
	KindWorkout       ItemKind = "workout"
	KindWorkoutScore  ItemKind = "workout_score"
	KindMovement      ItemKind = "movement"
	KindMovementScore ItemKind = "movement_score"
)

// Status is what happened to one legacy record.
type Status string

const (
	StatusMigrated Status = "migrated"
	StatusSkipped  Status = "skipped" // Intentionally not migrated, e.g. the vendor sample WOD
	StatusFailed   Status = "failed"
)

// Outcome records what happened to one legacy record.
type Outcome struct {
	Kind   ItemKind
	Name   string // Legacy title or name, for finding the record again
	Status Status
	Err    error // nil when migrated
}

// Report collects per-record outcomes of a run. A nil *Report discards them.
type Report struct {
	Outcomes []Outcome
}

func (r *Report) add(kind ItemKind, name string, status Status, err error) {
	if r == nil {
		return
	}
	r.Outcomes = append(r.Outcomes, Outcome{Kind: kind, Name: name, Status: status, Err: err})
}

// Count returns how many records of kind ended with status.
func (r *Report) Count(kind ItemKind, status Status) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, o := range r.Outcomes {
		if o.Kind == kind && o.Status == status {
			n++
		}
	}
	return n
}

// Failures returns the outcomes of every record that failed to migrate.
func (r *Report) Failures() []Outcome {
	if r == nil {
		return nil
	}
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			out = append(out, o)
		}
	}
	return out
}
