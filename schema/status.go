package schema

// RosterStatus summarizes the state of the roster store for status output.
type RosterStatus struct {
	Backend       DatabaseBackend `json:"backend"`
	TotalStudents int             `json:"total_students"`
	AtRisk        int             `json:"at_risk"`
}
