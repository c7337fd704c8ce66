package stats

// Fixtures returns the development seed stats for the dashboard.
func Fixtures() []Stat {
	return []Stat{
		{ID: "c1", Category: "cohort", Label: "Total Participants", Value: "105", Icon: "Users", Color: "text-cyan-600"},
		{ID: "c2", Category: "cohort", Label: "Active Cohorts", Value: "3", Icon: "TrendingUp", Color: "text-lime-600"},
		{ID: "c3", Category: "cohort", Label: "Completion Rate", Value: "78%", Icon: "Target", Color: "text-purple-600"},
		{ID: "c4", Category: "cohort", Label: "Success Stories", Value: "24", Icon: "Award", Color: "text-orange-600"},
		{ID: "l1", Category: "campus_lead", Label: "Telangana", Value: "15 leads", Icon: "MapPin", Color: "text-cyan-600"},
		{ID: "l2", Category: "campus_lead", Label: "Maharashtra", Value: "12 leads", Icon: "MapPin", Color: "text-lime-600"},
		{ID: "l3", Category: "campus_lead", Label: "Tamil Nadu", Value: "10 leads", Icon: "MapPin", Color: "text-purple-600"},
		{ID: "l4", Category: "campus_lead", Label: "Karnataka", Value: "8 leads", Icon: "MapPin", Color: "text-orange-600"},
	}
}
