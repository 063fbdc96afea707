package servers

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/thatcatcamp/djchat/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

type fixture struct {
	db    *gorm.DB
	alice models.User
	bob   models.User
	jazz  []*models.Server
	rock  *models.Server
}

// seed creates two jazz servers and one rock server. Alice is in every
// server, Bob only in the second jazz server.
func seed(t *testing.T) fixture {
	t.Helper()
	db := setupTestDB(t)

	f := fixture{db: db}
	f.alice = models.User{Email: "alice@example.com", PasswordHash: "x"}
	f.bob = models.User{Email: "bob@example.com", PasswordHash: "x"}
	db.Create(&f.alice)
	db.Create(&f.bob)

	if _, err := CreateCategory(db, "jazz", "smooth", ""); err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if _, err := CreateCategory(db, "rock", "loud", ""); err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	for _, name := range []string{"Blue Note", "Village Vanguard"} {
		s, err := CreateServer(db, f.alice.ID, "jazz", name, "", "")
		if err != nil {
			t.Fatalf("CreateServer: %v", err)
		}
		f.jazz = append(f.jazz, s)
	}
	rock, err := CreateServer(db, f.bob.ID, "rock", "Garage", "", "")
	if err != nil {
		t.Fatalf("CreateServer: %v", err)
	}
	f.rock = rock

	for _, s := range []*models.Server{f.jazz[0], f.jazz[1], f.rock} {
		if err := AddMember(db, s.ID, f.alice.ID); err != nil {
			t.Fatalf("AddMember: %v", err)
		}
	}
	if err := AddMember(db, f.jazz[1].ID, f.bob.ID); err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	return f
}

func names(listings []Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.Name)
	}
	return out
}

func TestParseQuery(t *testing.T) {
	q, err := ParseQuery(url.Values{
		"category":         {"jazz"},
		"qty":              {"3"},
		"by_user":          {"true"},
		"by_serverid":      {"7"},
		"with_num_members": {"true"},
	})
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	want := Query{Category: "jazz", Qty: 3, ByUser: true, ByServerID: "7", WithNumMembers: true}
	if q != want {
		t.Errorf("ParseQuery = %+v, want %+v", q, want)
	}

	if q, _ := ParseQuery(url.Values{"by_user": {"True"}}); q.ByUser {
		t.Error("only the literal \"true\" enables by_user")
	}

	for _, bad := range []string{"zero", "0", "-2"} {
		if _, err := ParseQuery(url.Values{"qty": {bad}}); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("qty=%s: expected ErrInvalidQuantity, got %v", bad, err)
		}
	}
}

func TestListAll(t *testing.T) {
	f := seed(t)

	got, err := List(f.db, Query{}, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 servers, got %v", names(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].ID >= got[i].ID {
			t.Error("listings should be ordered by id")
		}
	}
	if got[0].NumMembers != nil {
		t.Error("num_members should be absent unless requested")
	}
	if got[0].Category != "jazz" {
		t.Errorf("category = %q, want jazz", got[0].Category)
	}
}

func TestListFilters(t *testing.T) {
	f := seed(t)

	byCategory, err := List(f.db, Query{Category: "jazz"}, nil)
	if err != nil || len(byCategory) != 2 {
		t.Errorf("category filter: %v %v", names(byCategory), err)
	}

	none, err := List(f.db, Query{Category: "polka"}, nil)
	if err != nil || len(none) != 0 {
		t.Errorf("unknown category should give empty list: %v %v", names(none), err)
	}

	mine, err := List(f.db, Query{ByUser: true}, &f.bob)
	if err != nil || len(mine) != 1 || mine[0].Name != "Village Vanguard" {
		t.Errorf("by_user filter: %v %v", names(mine), err)
	}

	limited, err := List(f.db, Query{Qty: 2}, nil)
	if err != nil || len(limited) != 2 {
		t.Errorf("qty filter: %v %v", names(limited), err)
	}
}

func TestListByUserRequiresAuth(t *testing.T) {
	f := seed(t)

	if _, err := List(f.db, Query{ByUser: true}, nil); !errors.Is(err, ErrAuthenticationRequired) {
		t.Errorf("expected ErrAuthenticationRequired, got %v", err)
	}
}

func TestListByServerID(t *testing.T) {
	f := seed(t)

	got, err := List(f.db, Query{ByServerID: "3"}, nil)
	if err != nil || len(got) != 1 || got[0].ID != 3 {
		t.Errorf("by_serverid: %v %v", names(got), err)
	}

	if _, err := List(f.db, Query{ByServerID: "abc"}, nil); !errors.Is(err, ErrInvalidServerID) {
		t.Errorf("expected ErrInvalidServerID, got %v", err)
	}

	_, err = List(f.db, Query{ByServerID: "99"}, nil)
	var nf *ServerNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected ServerNotFoundError, got %v", err)
	}
	if nf.Error() != "Server with id 99 not found" {
		t.Errorf("unexpected message %q", nf.Error())
	}

	// the id exists but not in this category
	if _, err := List(f.db, Query{Category: "jazz", ByServerID: "3"}, nil); !errors.As(err, &nf) {
		t.Errorf("filters should combine, got %v", err)
	}
}

func TestListWithNumMembers(t *testing.T) {
	f := seed(t)

	got, err := List(f.db, Query{WithNumMembers: true}, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := map[string]int64{"Blue Note": 1, "Village Vanguard": 2, "Garage": 1}
	for _, l := range got {
		if l.NumMembers == nil {
			t.Fatalf("%s: num_members missing", l.Name)
		}
		if *l.NumMembers != want[l.Name] {
			t.Errorf("%s: num_members = %d, want %d", l.Name, *l.NumMembers, want[l.Name])
		}
	}
}

func TestPopular(t *testing.T) {
	f := seed(t)

	got, err := Popular(f.db, 2)
	if err != nil {
		t.Fatalf("Popular: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2, got %v", names(got))
	}
	if got[0].Name != "Village Vanguard" || got[1].Name != "Blue Note" {
		t.Errorf("expected most members first then id order, got %v", names(got))
	}

	empty, err := Popular(f.db, 0)
	if err != nil || len(empty) != 0 {
		t.Errorf("limit 0 should return nothing: %v %v", names(empty), err)
	}
}

func TestCategories(t *testing.T) {
	f := seed(t)

	if _, err := CreateCategory(f.db, "jazz", "", ""); !errors.Is(err, ErrCategoryExists) {
		t.Errorf("duplicate category should fail with ErrCategoryExists, got %v", err)
	}
	if _, err := CreateCategory(f.db, "  ", "", ""); err == nil {
		t.Error("blank category name should fail")
	}

	cats, err := ListCategories(f.db)
	if err != nil || len(cats) != 2 || cats[0].Name != "jazz" {
		t.Errorf("ListCategories: %+v %v", cats, err)
	}

	if _, err := GetCategoryByName(f.db, "polka"); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
	if _, err := CreateServer(f.db, f.alice.ID, "polka", "Oompah", "", ""); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("server in unknown category: %v", err)
	}
}

func TestCreateCategoryReportsLookupFailure(t *testing.T) {
	db := setupTestDB(t)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("DB: %v", err)
	}
	sqlDB.Close()

	_, err = CreateCategory(db, "jazz", "", "")
	if err == nil {
		t.Fatal("expected an error from a closed database")
	}
	if errors.Is(err, ErrCategoryExists) {
		t.Errorf("database failure reported as duplicate: %v", err)
	}
	if !strings.Contains(err.Error(), "failed to check category") {
		t.Errorf("lookup failure should surface before insert, got %v", err)
	}
}

func TestAddMemberTwice(t *testing.T) {
	f := seed(t)

	if err := AddMember(f.db, f.rock.ID, f.alice.ID); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	got, _ := List(f.db, Query{ByServerID: "3", WithNumMembers: true}, nil)
	if *got[0].NumMembers != 1 {
		t.Errorf("re-adding a member should not duplicate, got %d", *got[0].NumMembers)
	}

	if err := AddMember(f.db, 404, f.alice.ID); err == nil {
		t.Error("expected error for unknown server")
	}
}

func TestCreateChannel(t *testing.T) {
	f := seed(t)

	ch, err := CreateChannel(f.db, f.jazz[0].ID, f.alice.ID, "General", "chat")
	if err != nil {
		t.Fatalf("CreateChannel: %v", err)
	}
	if ch.Name != "general" {
		t.Errorf("channel names are lowercased, got %q", ch.Name)
	}

	got, _ := List(f.db, Query{ByServerID: "1"}, nil)
	if len(got[0].Channels) != 1 || got[0].Channels[0].Topic != "chat" {
		t.Errorf("channel not listed: %+v", got[0].Channels)
	}

	if _, err := CreateChannel(f.db, 404, f.alice.ID, "x", ""); err == nil {
		t.Error("expected error for unknown server")
	}
}
