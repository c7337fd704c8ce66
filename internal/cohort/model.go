package cohort

import "time"

// Cohort represents one program cohort tracked on the dashboard.
type Cohort struct {
	ID                  string
	Name                string
	Program             string
	Status              string
	StartDate           string
	EndDate             string
	Participants        int
	Progress            int
	Milestones          []string
	CompletedMilestones int
	CreatedAt           time.Time
}
