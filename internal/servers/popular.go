package servers

import (
	"fmt"

	"github.com/thatcatcamp/djchat/internal/models"
	"gorm.io/gorm"
)

// Popular returns up to limit servers with the most members, ties broken by id
func Popular(db *gorm.DB, limit int) ([]Listing, error) {
	if limit <= 0 {
		return []Listing{}, nil
	}

	var rows []memberCount
	err := db.Table("servers").
		Select("servers.id AS server_id, COUNT(server_members.user_id) AS members").
		Joins("LEFT JOIN server_members ON server_members.server_id = servers.id").
		Group("servers.id").
		Order("members DESC, servers.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank servers: %w", err)
	}
	if len(rows) == 0 {
		return []Listing{}, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ServerID)
	}

	var found []models.Server
	if err := db.Preload("Category").Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to load servers: %w", err)
	}
	byID := make(map[uint]models.Server, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	listings := make([]Listing, 0, len(rows))
	for _, r := range rows {
		s, ok := byID[r.ServerID]
		if !ok {
			continue
		}
		l := toListing(s)
		n := r.Members
		l.NumMembers = &n
		listings = append(listings, l)
	}
	return listings, nil
}
