package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"task-sync-scheduler/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCalendarClient(t *testing.T) {
	// Constructing fake credentials for local parsing flows
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Initialize with broken JWT/OAuth config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		// Native oauth load requires token.json
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from installed app config bad token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"broken": true`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp("", "creds.json")
		defer os.Remove(tmpFile.Name())
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), tmpFile.Name())
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("List Events E2E", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/test-fail/events" && r.Method == http.MethodGet {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"items": [
						{
							"id": "event-123",
							"summary": "Existing Event",
							"start": { "date": "2024-05-01" },
							"end": { "date": "2024-05-02" }
						}
					]
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			CalendarID: "primary",
			TimeMin:    time.Now(),
			TimeMax:    time.Now().Add(time.Hour * 24),
		})
		if err != nil {
			t.Fatalf("failed to list events: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		if events[0].Summary != "Existing Event" {
			t.Errorf("unexpected event: %s", events[0].Summary)
		}
		if !events[0].AllDay {
			t.Errorf("expected all-day event")
		}

		_, err = client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			CalendarID: "test-fail",
			TimeMin:    time.Now(),
			TimeMax:    time.Now().Add(time.Hour * 24),
		})
		if err == nil {
			t.Fatalf("expected api error on test-fail")
		}
	})
}

func TestDailyBookedHours(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/primary/events" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		// Day 1: a 1.5h meeting. Days 2-3: spanned by an all-day event.
		// One event starts before the range and must be ignored.
		w.Write([]byte(`{
			"items": [
				{
					"id": "meeting",
					"summary": "Standup",
					"start": { "dateTime": "2025-01-26T09:00:00Z" },
					"end":   { "dateTime": "2025-01-26T10:30:00Z" }
				},
				{
					"id": "offsite",
					"summary": "Offsite",
					"start": { "date": "2025-01-27" },
					"end":   { "date": "2025-01-29" }
				},
				{
					"id": "early",
					"summary": "Before horizon",
					"start": { "dateTime": "2025-01-20T09:00:00Z" },
					"end":   { "dateTime": "2025-01-20T11:00:00Z" }
				}
			]
		}`))
	})

	start := time.Date(2025, 1, 26, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 29, 0, 0, 0, 0, time.UTC)

	booked, err := client.DailyBookedHours(context.Background(), gcalendar.BookedHoursRequest{
		CalendarID: "primary",
		Start:      start,
		End:        end,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(booked) != 3 {
		t.Fatalf("expected 3 seeded days, got %d", len(booked))
	}

	want := map[string]float64{
		"2025-01-26": 1.5,
		"2025-01-27": gcalendar.AllDayEventHours,
		"2025-01-28": gcalendar.AllDayEventHours,
	}
	for dayStr, hours := range want {
		day, _ := time.Parse("2006-01-02", dayStr)
		if got := booked[day]; got != hours {
			t.Errorf("day %s: expected %.1fh, got %.1fh", dayStr, hours, got)
		}
	}
}

func TestDailyBookedHoursEmptyRange(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"items": []}`))
	})

	// A single-day horizon yields an empty half-open range; it must
	// resolve to zero capacity, not a failed run.
	day := time.Date(2025, 1, 26, 0, 0, 0, 0, time.UTC)
	booked, err := client.DailyBookedHours(context.Background(), gcalendar.BookedHoursRequest{
		Start: day,
		End:   day,
	})
	if err != nil {
		t.Fatalf("unexpected error for empty range: %v", err)
	}
	if len(booked) != 0 {
		t.Errorf("expected no seeded days, got %v", booked)
	}
	if calls != 0 {
		t.Errorf("empty range must not hit the calendar, got %d calls", calls)
	}
}
