package core

import (
	"fmt"
	"regexp"

	"github.com/huangsam/studentrisk/schema"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateRoster checks the structural integrity of an imported roster:
// required identity fields are present, student IDs are unique, and emails
// are well-formed. It reports on the whole batch rather than failing on the
// first bad row.
func ValidateRoster(rows []schema.StudentRecord) error {
	seen := make(map[string]bool, len(rows))
	var missingID, badEmail int

	for i := range rows {
		r := &rows[i]
		if r.StudentID == "" || r.Name == "" || r.Email == "" {
			missingID++
			continue
		}
		if seen[r.StudentID] {
			return fmt.Errorf("duplicate student ID %s", r.StudentID)
		}
		seen[r.StudentID] = true
		if !emailPattern.MatchString(r.Email) {
			badEmail++
		}
	}

	if missingID > 0 {
		return fmt.Errorf("missing required identity fields for %d records", missingID)
	}
	if badEmail > 0 {
		return fmt.Errorf("invalid email format for %d records", badEmail)
	}
	return nil
}
