package roster

import (
	"fmt"

	"github.com/huangsam/studentrisk/schema"
)

// quoteTableName quotes a table name for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	if backend == schema.MySQLBackend {
		return fmt.Sprintf("`%s`", name)
	}
	return fmt.Sprintf("%q", name)
}

// getCreateStudentsQuery returns the CREATE TABLE query for the roster table.
func getCreateStudentsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(studentsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				student_id VARCHAR(64) PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				email VARCHAR(255),
				phone VARCHAR(64),
				age INT,
				gender VARCHAR(32),
				course_name VARCHAR(255),
				course_code VARCHAR(64),
				cat1_marks DOUBLE,
				cat2_marks DOUBLE,
				assignment_marks DOUBLE,
				attendance_marks DOUBLE,
				quiz_marks DOUBLE,
				total_internal_marks DOUBLE,
				risk_level VARCHAR(32),
				risk_score DOUBLE
			);
		`, quotedTableName)
	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				student_id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				email TEXT,
				phone TEXT,
				age INTEGER,
				gender TEXT,
				course_name TEXT,
				course_code TEXT,
				cat1_marks DOUBLE PRECISION,
				cat2_marks DOUBLE PRECISION,
				assignment_marks DOUBLE PRECISION,
				attendance_marks DOUBLE PRECISION,
				quiz_marks DOUBLE PRECISION,
				total_internal_marks DOUBLE PRECISION,
				risk_level TEXT,
				risk_score DOUBLE PRECISION
			);
		`, quotedTableName)
	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				student_id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				email TEXT,
				phone TEXT,
				age INTEGER,
				gender TEXT,
				course_name TEXT,
				course_code TEXT,
				cat1_marks REAL,
				cat2_marks REAL,
				assignment_marks REAL,
				attendance_marks REAL,
				quiz_marks REAL,
				total_internal_marks REAL,
				risk_level TEXT,
				risk_score REAL
			);
		`, quotedTableName)
	}
}

// studentColumns lists the roster columns in insert order.
const studentColumns = `student_id, name, email, phone, age, gender,
		course_name, course_code, cat1_marks, cat2_marks, assignment_marks,
		attendance_marks, quiz_marks, total_internal_marks, risk_level, risk_score`

// getUpsertQuery returns the upsert query for the roster table. Placeholders
// use '?' and are rewritten for PostgreSQL by rebind.
func getUpsertQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(studentsTable, backend)
	values := `?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?`

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			INSERT INTO %s (%s) VALUES (%s)
			ON DUPLICATE KEY UPDATE
				name = VALUES(name), email = VALUES(email), phone = VALUES(phone),
				age = VALUES(age), gender = VALUES(gender),
				course_name = VALUES(course_name), course_code = VALUES(course_code),
				cat1_marks = VALUES(cat1_marks), cat2_marks = VALUES(cat2_marks),
				assignment_marks = VALUES(assignment_marks),
				attendance_marks = VALUES(attendance_marks), quiz_marks = VALUES(quiz_marks),
				total_internal_marks = VALUES(total_internal_marks),
				risk_level = VALUES(risk_level), risk_score = VALUES(risk_score);
		`, quotedTableName, studentColumns, values)
	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			INSERT INTO %s (%s) VALUES (%s)
			ON CONFLICT (student_id) DO UPDATE SET
				name = EXCLUDED.name, email = EXCLUDED.email, phone = EXCLUDED.phone,
				age = EXCLUDED.age, gender = EXCLUDED.gender,
				course_name = EXCLUDED.course_name, course_code = EXCLUDED.course_code,
				cat1_marks = EXCLUDED.cat1_marks, cat2_marks = EXCLUDED.cat2_marks,
				assignment_marks = EXCLUDED.assignment_marks,
				attendance_marks = EXCLUDED.attendance_marks, quiz_marks = EXCLUDED.quiz_marks,
				total_internal_marks = EXCLUDED.total_internal_marks,
				risk_level = EXCLUDED.risk_level, risk_score = EXCLUDED.risk_score;
		`, quotedTableName, studentColumns, values)
	default: // SQLite
		return fmt.Sprintf(`
			INSERT OR REPLACE INTO %s (%s) VALUES (%s);
		`, quotedTableName, studentColumns, values)
	}
}
