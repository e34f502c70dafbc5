package specification

import "gorm.io/gorm"

// Specification is a composable query filter applied to a gorm query.
// Repositories AND all specifications they receive.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
