package cohort

import "time"

// Fixtures returns the development seed cohorts.
func Fixtures() []Cohort {
	now := time.Now().UTC()
	return []Cohort{
		{
			ID: "1", Name: "EVP A25", Program: "Pre-Incubation", Status: "Active",
			StartDate: "2025-01-15", EndDate: "2025-04-30",
			Participants: 45, Progress: 65,
			Milestones:          []string{"Ideation", "Prototyping", "Market Research", "Pitch Preparation"},
			CompletedMilestones: 2, CreatedAt: now,
		},
		{
			ID: "2", Name: "EdAstra Batch 6", Program: "Innovation Challenge", Status: "Active",
			StartDate: "2025-02-01", EndDate: "2025-05-15",
			Participants: 32, Progress: 40,
			Milestones:          []string{"Team Formation", "Problem Identification", "Solution Design", "Demo Day"},
			CompletedMilestones: 1, CreatedAt: now,
		},
		{
			ID: "3", Name: "Tentative Sprint", Program: "Advanced Incubation", Status: "Planning",
			StartDate: "2025-03-01", EndDate: "2025-06-30",
			Participants: 28, Progress: 15,
			Milestones:          []string{"Onboarding", "Mentor Matching", "Development", "Launch"},
			CompletedMilestones: 0, CreatedAt: now,
		},
	}
}
