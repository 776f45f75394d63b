package repository

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// nextSequentialID builds the next zero-padded ID for a registry table
// (VST-0001, GST-0001, INM-0001). Soft-deleted rows are included so a
// deleted record's ID is never reissued.
func nextSequentialID(db *gorm.DB, tableModel interface{}, column, prefix string) (string, error) {
	var last string
	err := db.Model(tableModel).Unscoped().
		Select(column).Order("id desc").Limit(1).
		Scan(&last).Error
	if err != nil {
		return "", err
	}

	seq := 0
	if last != "" {
		if n, err := strconv.Atoi(strings.TrimPrefix(last, prefix+"-")); err == nil {
			seq = n
		}
	}
	return fmt.Sprintf("%s-%04d", prefix, seq+1), nil
}
