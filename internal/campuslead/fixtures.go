package campuslead

// Fixtures returns the development seed campus leads.
func Fixtures() []CampusLead {
	return []CampusLead{
		{
			ID: "1", Name: "Priya Sharma", College: "MS Degree College",
			Location: "Hyderabad, Telangana", Status: "Active",
			EventsOrganized: 12, StudentsReached: 245,
			Performance: "Excellent", LastActivity: "2 hours ago",
		},
		{
			ID: "2", Name: "Rahul Verma", College: "IIT Bombay",
			Location: "Mumbai, Maharashtra", Status: "Active",
			EventsOrganized: 18, StudentsReached: 320,
			Performance: "Excellent", LastActivity: "5 hours ago",
		},
		{
			ID: "3", Name: "Ananya Reddy", College: "NIT Warangal",
			Location: "Warangal, Telangana", Status: "Active",
			EventsOrganized: 9, StudentsReached: 180,
			Performance: "Good", LastActivity: "1 day ago",
		},
		{
			ID: "4", Name: "Karthik Menon", College: "VIT Chennai",
			Location: "Chennai, Tamil Nadu", Status: "Active",
			EventsOrganized: 15, StudentsReached: 290,
			Performance: "Excellent", LastActivity: "3 hours ago",
		},
		{
			ID: "5", Name: "Sneha Patel", College: "BITS Pilani",
			Location: "Pilani, Rajasthan", Status: "Inactive",
			EventsOrganized: 6, StudentsReached: 125,
			Performance: "Average", LastActivity: "1 week ago",
		},
	}
}
