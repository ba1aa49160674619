package roster

import (
	"fmt"

	"github.com/huangsam/studentrisk/schema"
)

// PrintRosterStatus prints roster status information.
func PrintRosterStatus(status schema.RosterStatus) {
	fmt.Printf("Roster Backend: %s\n", status.Backend)
	if status.Backend == schema.NoneBackend {
		return
	}
	fmt.Printf("Total Students: %d\n", status.TotalStudents)
	if status.TotalStudents > 0 {
		fmt.Printf("At Risk: %d\n", status.AtRisk)
	}
}
