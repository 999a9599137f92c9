// file: internals/helpers/db_errors.go
package helper

import (
	"math"
	"strings"
)

// IsUniqueViolation detects a Postgres unique violation (SQLSTATE 23505)
// without importing pgconn, so it also matches wrapped driver errors and the
// sqlite test driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "unique failed")
}

// Round2 rounds to 2 decimal places. Percentages and scores are rounded only
// at the response boundary, never inside aggregation loops.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
