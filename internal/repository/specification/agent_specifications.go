package specification

import "gorm.io/gorm"

// ByAgentType filters agents by their type enum
type ByAgentType struct {
	Type string
}

func (s ByAgentType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}

// ByRegistration matches an agent registration identity
type ByRegistration struct {
	UserId string
	Name   string
	Type   string
}

func (s ByRegistration) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ? AND name = ? AND type = ?", s.UserId, s.Name, s.Type)
}
