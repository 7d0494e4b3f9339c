package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/table-booking/internal/audit"
	"github.com/BruksfildServices01/table-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/table-booking/internal/db"
	"github.com/BruksfildServices01/table-booking/internal/lock"
	"github.com/BruksfildServices01/table-booking/internal/middleware"
	"github.com/BruksfildServices01/table-booking/internal/routes"
	"github.com/BruksfildServices01/table-booking/internal/seed"
)

type server struct {
	router *gin.Engine
	seeded *seed.Result
}

func setupServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := dbpkg.OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("could not open database: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("could not migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	seeded, err := seed.Apply(context.Background(), db, seed.Dataset{
		Restrictions: []string{"Gluten Free", "Vegetarian"},
		Endorsements: []string{"Gluten Free", "Vegetarian"},
		Users: []seed.UserSeed{
			{Name: "Test User 1", Email: "test1@example.com", Restrictions: []string{"Gluten Free"}},
			{Name: "Test User 2", Email: "test2@example.com", Restrictions: []string{"Vegetarian"}},
		},
		Restaurants: []seed.RestaurantSeed{
			{Name: "Test Restaurant", Address: "123 Test St", Endorsements: []string{"Gluten Free", "Vegetarian"}, Tables: []int{4, 6}},
		},
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	dispatcher := audit.NewDispatcher(audit.New(db), nil)
	t.Cleanup(dispatcher.Close)

	cfg := &config.Config{
		ReservationDuration: 2 * time.Hour,
		Timezone:            "UTC",
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, routes.Deps{
		Locker: lock.NewLocal(),
		Audit:  dispatcher,
	})

	return &server{router: r, seeded: seeded}
}

func (s *server) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid json %q: %v", w.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	s := setupServer(t)

	w := s.do(t, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get(middleware.HeaderRequestID) == "" {
		t.Error("expected a request id header")
	}
}

func TestSearchEndpoint(t *testing.T) {
	s := setupServer(t)
	path := fmt.Sprintf("/api/restaurants/search?user_ids=%d,%d&datetime=2024-03-20T19:30:00",
		s.seeded.UserIDs[0], s.seeded.UserIDs[1])

	w := s.do(t, http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var results []struct {
		ID             uint     `json:"id"`
		Name           string   `json:"name"`
		Endorsements   []string `json:"endorsements"`
		AvailableTable struct {
			ID       uint `json:"id"`
			Capacity int  `json:"capacity"`
		} `json:"available_table"`
		UserConflicts map[string]any `json:"user_conflicts"`
	}
	decode(t, w, &results)

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %s", w.Body.String())
	}
	if results[0].Name != "Test Restaurant" || results[0].AvailableTable.Capacity != 4 {
		t.Errorf("unexpected result %+v", results[0])
	}
	if results[0].UserConflicts != nil {
		t.Errorf("expected user_conflicts to be omitted, got %v", results[0].UserConflicts)
	}
}

func TestSearchEndpointErrors(t *testing.T) {
	s := setupServer(t)

	cases := []struct {
		name   string
		query  string
		status int
		msg    string
	}{
		{"missing user ids", "datetime=2024-03-20T19:30:00", http.StatusBadRequest, "Missing required field: user_ids"},
		{"missing datetime", "user_ids=1,2", http.StatusBadRequest, "Missing required field: datetime"},
		{"invalid user ids", "user_ids=1,abc&datetime=2024-03-20T19:30:00", http.StatusBadRequest, "Invalid user_ids format. Expected comma-separated numbers"},
		{"invalid datetime", "user_ids=1,2&datetime=invalid", http.StatusBadRequest, "Invalid datetime format"},
		{"unknown user", "user_ids=1,999&datetime=2024-03-20T19:30:00", http.StatusNotFound, "One or more users not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(t, http.MethodGet, "/api/restaurants/search?"+tc.query, nil)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}

			var body map[string]string
			decode(t, w, &body)
			if body["error"] != tc.msg {
				t.Errorf("expected %q, got %q", tc.msg, body["error"])
			}
		})
	}
}

func TestReservationLifecycle(t *testing.T) {
	s := setupServer(t)

	w := s.do(t, http.MethodPost, "/api/reservations", map[string]any{
		"restaurant_id": s.seeded.RestaurantIDs[0],
		"user_ids":      s.seeded.UserIDs,
		"datetime":      "2024-03-20T19:30:00",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created struct {
		ID         uint   `json:"id"`
		Restaurant string `json:"restaurant"`
		Table      struct {
			ID       uint `json:"id"`
			Capacity int  `json:"capacity"`
		} `json:"table"`
		Datetime string `json:"datetime"`
		Users    []struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		} `json:"users"`
		AdditionalGuests int `json:"additional_guests"`
	}
	decode(t, w, &created)

	if created.Restaurant != "Test Restaurant" || created.Table.Capacity != 4 {
		t.Errorf("unexpected reservation %+v", created)
	}
	if created.Datetime != "2024-03-20T19:30:00" || len(created.Users) != 2 {
		t.Errorf("unexpected reservation %+v", created)
	}

	// the 4-seat table is taken, search falls through to the 6-seat one
	path := fmt.Sprintf("/api/restaurants/search?user_ids=%d&datetime=2024-03-20T20:00:00", s.seeded.UserIDs[0])
	w = s.do(t, http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var results []struct {
		AvailableTable struct {
			Capacity int `json:"capacity"`
		} `json:"available_table"`
		UserConflicts map[string][]struct {
			Restaurant string `json:"restaurant"`
			Datetime   string `json:"datetime"`
		} `json:"user_conflicts"`
	}
	decode(t, w, &results)
	if len(results) != 1 || results[0].AvailableTable.Capacity != 6 {
		t.Fatalf("expected the 6-seat table, got %s", w.Body.String())
	}
	key := fmt.Sprint(s.seeded.UserIDs[0])
	if c := results[0].UserConflicts[key]; len(c) != 1 || c[0].Datetime != "2024-03-20T19:30:00" {
		t.Errorf("expected a conflict for user %s, got %s", key, w.Body.String())
	}

	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/reservations/%d", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var deleted map[string]string
	decode(t, w, &deleted)
	if deleted["message"] != "Reservation deleted successfully" {
		t.Errorf("unexpected body %v", deleted)
	}

	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/reservations/%d", created.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}
}

func TestCreateReservationEndpointErrors(t *testing.T) {
	s := setupServer(t)

	cases := []struct {
		name   string
		body   any
		status int
		msg    string
	}{
		{
			name:   "empty body",
			body:   map[string]any{},
			status: http.StatusBadRequest,
			msg:    "Missing required fields",
		},
		{
			name:   "empty user list",
			body:   map[string]any{"restaurant_id": 1, "user_ids": []uint{}, "datetime": "2024-03-20T19:30:00"},
			status: http.StatusBadRequest,
			msg:    "Missing required fields",
		},
		{
			name:   "bad datetime",
			body:   map[string]any{"restaurant_id": 1, "user_ids": []uint{1}, "datetime": "later"},
			status: http.StatusBadRequest,
			msg:    "Invalid datetime format",
		},
		{
			name:   "negative guests",
			body:   map[string]any{"restaurant_id": 1, "user_ids": []uint{1}, "datetime": "2024-03-20T19:30:00", "additional_guests": -2},
			status: http.StatusBadRequest,
			msg:    "Additional guests must be non-negative",
		},
		{
			name:   "unknown user",
			body:   map[string]any{"restaurant_id": 1, "user_ids": []uint{1, 999}, "datetime": "2024-03-20T19:30:00"},
			status: http.StatusNotFound,
			msg:    "One or more users not found",
		},
		{
			name:   "no suitable table",
			body:   map[string]any{"restaurant_id": 999, "user_ids": []uint{1}, "datetime": "2024-03-20T19:30:00"},
			status: http.StatusNotFound,
			msg:    "No suitable table found",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/api/reservations", tc.body)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}

			var body map[string]string
			decode(t, w, &body)
			if body["error"] != tc.msg {
				t.Errorf("expected %q, got %q", tc.msg, body["error"])
			}
		})
	}
}

func TestDeleteUnknownReservationEndpoint(t *testing.T) {
	s := setupServer(t)

	for _, id := range []string{"999", "abc"} {
		w := s.do(t, http.MethodDelete, "/api/reservations/"+id, nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("id %s: expected 404, got %d", id, w.Code)
		}

		var body map[string]string
		decode(t, w, &body)
		if body["error"] != "Reservation not found" {
			t.Errorf("id %s: unexpected body %v", id, body)
		}
	}
}
