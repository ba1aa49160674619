package schema

// Custom string types for type safety.
type (
	// RiskLevel represents the categorical academic risk assigned to a student.
	RiskLevel string

	// Feature represents one of the canonical academic mark columns.
	Feature string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the roster store.
	DatabaseBackend string
)

// Risk levels, ordered from best to worst. This listing order is also the
// fixed encoding order for the learned predictor's label codec, so persisted
// models stay interpretable regardless of training-data row order.
const (
	LowRisk     RiskLevel = "Low"
	MediumRisk  RiskLevel = "Medium"
	HighRisk    RiskLevel = "High"
	FailureRisk RiskLevel = "Failure"
)

// RiskLevels is the full label vocabulary in encoding order.
var RiskLevels = []RiskLevel{LowRisk, MediumRisk, HighRisk, FailureRisk}

// Canonical academic mark columns. Names match the CSV roster headers.
const (
	FeatureCat1       Feature = "cat1_marks"
	FeatureCat2       Feature = "cat2_marks"
	FeatureAssignment Feature = "assignment_marks"
	FeatureAttendance Feature = "attendance_marks"
	FeatureQuiz       Feature = "quiz_marks"
)

// CanonicalFeatures is the fixed selection order for features. Training picks
// the available subset in this order; inference order is derived later from
// the importance ranking.
var CanonicalFeatures = []Feature{
	FeatureCat1,
	FeatureCat2,
	FeatureAssignment,
	FeatureAttendance,
	FeatureQuiz,
}

// Output modes.
const (
	TextOut    OutputMode = "text"
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// Database backends for the roster store.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// MaxTotalMarks is the maximum achievable total across all five components.
const MaxTotalMarks = 60.0
