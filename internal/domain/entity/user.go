package entity

// User is a registered account. Password holds the bcrypt hash and is
// never serialized into API responses.
type User struct {
	ID        int    `gorm:"primaryKey"`
	Firstname string `gorm:"not null"`
	Lastname  string `gorm:"not null"`
	Email     string `gorm:"not null;uniqueIndex"` // stored lowercase
	Password  string `gorm:"not null"`
	CreatedAt int64  `gorm:"not null"`
	UpdatedAt int64  `gorm:"not null;autoUpdateTime:false"`
}
