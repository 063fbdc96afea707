package servers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thatcatcamp/djchat/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrCategoryNotFound is returned when no category has the requested name
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryExists is returned when creating a category whose name is taken
	ErrCategoryExists = errors.New("category already exists")
)

// CreateCategory creates a new category. Names are unique; the unique index
// still rejects a concurrent duplicate that slips past the lookup.
func CreateCategory(db *gorm.DB, name, description, icon string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	var existing []models.Category
	lookup := db.Where("name = ?", name).Limit(1).Find(&existing)
	if lookup.Error != nil {
		return nil, fmt.Errorf("failed to check category %s: %w", name, lookup.Error)
	}
	if lookup.RowsAffected > 0 {
		return nil, fmt.Errorf("category %s: %w", name, ErrCategoryExists)
	}

	category := &models.Category{
		Name:        name,
		Description: description,
		Icon:        icon,
	}
	if err := db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// ListCategories returns all categories ordered by name
func ListCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	if err := db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetCategoryByName retrieves a category by its exact name
func GetCategoryByName(db *gorm.DB, name string) (*models.Category, error) {
	var category models.Category
	result := db.Where("name = ?", name).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", result.Error)
	}
	return &category, nil
}

// CreateServer creates a server in the named category
func CreateServer(db *gorm.DB, ownerID uint, categoryName, name, description, icon string) (*models.Server, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("server name is required")
	}

	category, err := GetCategoryByName(db, categoryName)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", categoryName, err)
	}

	server := &models.Server{
		Name:        name,
		OwnerID:     ownerID,
		CategoryID:  category.ID,
		Description: description,
		Icon:        icon,
	}
	if err := db.Create(server).Error; err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}
	server.Category = *category

	return server, nil
}

// AddMember adds a user to a server. Adding an existing member is a no-op.
func AddMember(db *gorm.DB, serverID, userID uint) error {
	var server models.Server
	if err := db.First(&server, serverID).Error; err != nil {
		return &ServerNotFoundError{ID: fmt.Sprint(serverID)}
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	if err := db.Model(&server).Association("Members").Append(&user); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

// CreateChannel creates a channel inside a server
func CreateChannel(db *gorm.DB, serverID, ownerID uint, name, topic string) (*models.Channel, error) {
	var server models.Server
	if err := db.First(&server, serverID).Error; err != nil {
		return nil, &ServerNotFoundError{ID: fmt.Sprint(serverID)}
	}

	channel := &models.Channel{
		Name:     strings.ToLower(strings.TrimSpace(name)),
		OwnerID:  ownerID,
		Topic:    topic,
		ServerID: server.ID,
	}
	if err := db.Create(channel).Error; err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	return channel, nil
}
