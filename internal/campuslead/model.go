package campuslead

// CampusLead represents one campus lead in the directory. UserID links the
// lead to a registered identity when one exists; it is not validated
// against the user directory.
type CampusLead struct {
	ID              string
	UserID          *string
	Name            string
	College         string
	Location        string
	Status          string
	EventsOrganized int
	StudentsReached int
	Performance     string
	LastActivity    string
}
