package specification

import "gorm.io/gorm"

// ByExternalUserId matches a user by the immutable external identifier
type ByExternalUserId struct {
	UserId string
}

func (s ByExternalUserId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}

// ByEmail matches a user by email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByKeyHash matches an API key by its SHA-256 hash
type ByKeyHash struct {
	Hash string
}

func (s ByKeyHash) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("key_hash = ?", s.Hash)
}

// NotRevoked filters out revoked API keys
type NotRevoked struct{}

func (s NotRevoked) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("revoked = false")
}
