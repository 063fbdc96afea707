package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a global user account
type User struct {
	ID           uint           `gorm:"primaryKey"`
	Email        string         `gorm:"uniqueIndex;not null"`
	PasswordHash string         `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	// Relationships
	OwnedServers []Server `gorm:"foreignKey:OwnerID"`
	Servers      []Server `gorm:"many2many:server_members"`
}

// Category groups servers by topic, e.g. "jazz"
type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:100;not null"`
	Description string
	Icon        string // path under storage.icons_dir
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships
	Servers []Server `gorm:"foreignKey:CategoryID"`
}

// Server is a community users join
type Server struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	OwnerID     uint   `gorm:"not null;index"`
	CategoryID  uint   `gorm:"not null;index"`
	Description string `gorm:"size:250"`
	Icon        string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships
	Owner    User      `gorm:"foreignKey:OwnerID"`
	Category Category  `gorm:"foreignKey:CategoryID"`
	Members  []User    `gorm:"many2many:server_members"`
	Channels []Channel `gorm:"foreignKey:ServerID;constraint:OnDelete:CASCADE"`
}

// Channel is a topic inside a server
type Channel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	OwnerID   uint   `gorm:"not null"`
	Topic     string `gorm:"size:100"`
	ServerID  uint   `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Owner  User   `gorm:"foreignKey:OwnerID"`
	Server Server `gorm:"foreignKey:ServerID"`
}

// All lists every model for migration
func All() []interface{} {
	return []interface{}{&User{}, &Category{}, &Server{}, &Channel{}}
}
