package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/studentrisk/schema"
)

// Color variables for console output.
var (
	FailureColor = color.New(color.FgRed, color.Bold)     // failureColor represents standard danger.
	HighColor    = color.New(color.FgMagenta, color.Bold) // highColor represents strong, distinct warning.
	MediumColor  = color.New(color.FgYellow)              // mediumColor represents standard caution, not bold.
	LowColor     = color.New(color.FgCyan)                // lowColor represents informational / low-priority signal.
)

// GetColorLabel returns a colored risk label for console output (table).
func GetColorLabel(l schema.RiskLevel) string {
	switch l {
	case schema.FailureRisk:
		return FailureColor.Sprint(string(l))
	case schema.HighRisk:
		return HighColor.Sprint(string(l))
	case schema.MediumRisk:
		return MediumColor.Sprint(string(l))
	case schema.LowRisk:
		return LowColor.Sprint(string(l))
	default:
		return string(l)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetRosterDBFilePath returns the path to the SQLite DB file for the roster store.
func GetRosterDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".studentrisk_roster.db"
	}
	return filepath.Join(homeDir, ".studentrisk_roster.db")
}

// TruncateName truncates a student name to a maximum width with an ellipsis
// suffix. Requires maxWidth > 3 so there is room for both content and the
// ellipsis.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
