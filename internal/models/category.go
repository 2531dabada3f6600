package models

import "time"

// Category groups transactions for reporting purposes
type Category struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// UncategorizedName is the display name used when a breakdown entry references
// a category that no longer exists
const UncategorizedName = "Uncategorized"

// DefaultCategoryNames returns the categories seeded for new installations
func DefaultCategoryNames() []string {
	return []string{
		"Groceries",
		"Dining",
		"Housing",
		"Transportation",
		"Utilities",
		"Healthcare",
		"Entertainment",
		"Salary",
		"Other",
	}
}
