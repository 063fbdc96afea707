// SPDX-License-Identifier: MIT

// Package servers implements the server catalog: categories, servers,
// membership, channels and the filtered server list behind the API.
package servers

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/thatcatcamp/djchat/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrInvalidQuantity is returned for a qty that is not a positive integer
	ErrInvalidQuantity = errors.New("qty must be a positive integer")
	// ErrAuthenticationRequired is returned when by_user is set without a user
	ErrAuthenticationRequired = errors.New("Authentication credentials were not provided.")
	// ErrInvalidServerID is returned when by_serverid is not an integer
	ErrInvalidServerID = errors.New("Server value error")
)

// ServerNotFoundError reports a by_serverid filter that matched nothing
type ServerNotFoundError struct {
	ID string
}

func (e *ServerNotFoundError) Error() string {
	return fmt.Sprintf("Server with id %s not found", e.ID)
}

// Query holds the server list filters
type Query struct {
	Category       string
	Qty            int // 0 means no limit
	ByUser         bool
	ByServerID     string
	WithNumMembers bool
}

// ParseQuery reads the filters from request query parameters
func ParseQuery(values url.Values) (Query, error) {
	q := Query{
		Category:       values.Get("category"),
		ByUser:         values.Get("by_user") == "true",
		ByServerID:     values.Get("by_serverid"),
		WithNumMembers: values.Get("with_num_members") == "true",
	}

	if raw := values.Get("qty"); raw != "" {
		qty, err := strconv.Atoi(raw)
		if err != nil || qty <= 0 {
			return Query{}, ErrInvalidQuantity
		}
		q.Qty = qty
	}

	return q, nil
}

// ChannelListing is a channel as it appears inside a server listing
type ChannelListing struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Topic  string `json:"topic"`
	Owner  uint   `json:"owner"`
	Server uint   `json:"server"`
}

// Listing is one server in the list response
type Listing struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Owner       uint             `json:"owner"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	Channels    []ChannelListing `json:"channel_server"`
	NumMembers  *int64           `json:"num_members,omitempty"`
}

// List applies the filters in q. user may be nil for anonymous requests.
func List(db *gorm.DB, q Query, user *models.User) ([]Listing, error) {
	tx := db.Model(&models.Server{})

	if q.Category != "" {
		tx = tx.Joins("JOIN categories ON categories.id = servers.category_id").
			Where("categories.name = ?", q.Category)
	}

	if q.ByUser {
		if user == nil {
			return nil, ErrAuthenticationRequired
		}
		tx = tx.Where("servers.id IN (?)",
			db.Table("server_members").Select("server_id").Where("user_id = ?", user.ID))
	}

	if q.ByServerID != "" {
		id, err := strconv.ParseUint(q.ByServerID, 10, 64)
		if err != nil {
			return nil, ErrInvalidServerID
		}
		tx = tx.Where("servers.id = ?", id)

		var count int64
		if err := tx.Session(&gorm.Session{}).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to look up server: %w", err)
		}
		if count == 0 {
			return nil, &ServerNotFoundError{ID: q.ByServerID}
		}
	}

	if q.Qty > 0 {
		tx = tx.Limit(q.Qty)
	}

	var found []models.Server
	if err := tx.Preload("Category").Preload("Channels").Order("servers.id ASC").Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}

	listings := make([]Listing, 0, len(found))
	for _, s := range found {
		listings = append(listings, toListing(s))
	}

	if q.WithNumMembers {
		if err := annotateMembers(db, listings); err != nil {
			return nil, err
		}
	}

	return listings, nil
}

func toListing(s models.Server) Listing {
	channels := make([]ChannelListing, 0, len(s.Channels))
	for _, ch := range s.Channels {
		channels = append(channels, ChannelListing{
			ID:     ch.ID,
			Name:   ch.Name,
			Topic:  ch.Topic,
			Owner:  ch.OwnerID,
			Server: ch.ServerID,
		})
	}

	return Listing{
		ID:          s.ID,
		Name:        s.Name,
		Owner:       s.OwnerID,
		Category:    s.Category.Name,
		Description: s.Description,
		Icon:        s.Icon,
		Channels:    channels,
	}
}

type memberCount struct {
	ServerID uint
	Members  int64
}

func annotateMembers(db *gorm.DB, listings []Listing) error {
	ids := make([]uint, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}

	counts := make(map[uint]int64, len(ids))
	if len(ids) > 0 {
		var rows []memberCount
		err := db.Table("server_members").
			Select("server_id, COUNT(*) AS members").
			Where("server_id IN ?", ids).
			Group("server_id").
			Scan(&rows).Error
		if err != nil {
			return fmt.Errorf("failed to count members: %w", err)
		}
		for _, r := range rows {
			counts[r.ServerID] = r.Members
		}
	}

	for i := range listings {
		n := counts[listings[i].ID]
		listings[i].NumMembers = &n
	}
	return nil
}
