// Command timetable_verify fetches the live timetable from a running API
// instance and audits it for double-booked faculty or classrooms. Intended
// for post-deploy smoke checks and migration verification.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

type entry struct {
	ID          string    `json:"id"`
	SubjectID   string    `json:"subject_id"`
	FacultyID   string    `json:"faculty_id"`
	ClassroomID string    `json:"classroom_id"`
	DayOfWeek   int       `json:"day_of_week"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

type envelope struct {
	Data []entry `json:"data"`
}

type clash struct {
	Resource string
	First    entry
	Second   entry
}

func main() {
	var (
		baseURL string
		token   string
		timeout time.Duration
	)

	flag.StringVar(&baseURL, "base", "http://localhost:8080", "API base URL")
	flag.StringVar(&token, "token", os.Getenv("TIMETABLE_TOKEN"), "Bearer token")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	flag.Parse()

	entries, err := fetchEntries(baseURL, token, timeout)
	if err != nil {
		log.Fatalf("failed to fetch timetable: %v", err)
	}

	clashes := findClashes(entries)
	fmt.Printf("timetable entries: %d\n", len(entries))
	if len(clashes) == 0 {
		fmt.Println("no double bookings found")
		return
	}

	for _, c := range clashes {
		fmt.Printf("CLASH %s day=%d %s-%s: %s vs %s\n",
			c.Resource, c.First.DayOfWeek,
			c.First.StartTime.Format("15:04"), c.First.EndTime.Format("15:04"),
			c.First.ID, c.Second.ID)
	}
	os.Exit(1)
}

func fetchEntries(baseURL, token string, timeout time.Duration) ([]entry, error) {
	client := &http.Client{Timeout: timeout}
	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/v1/timetable", nil)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func findClashes(entries []entry) []clash {
	var clashes []clash
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			a, b := entries[i], entries[j]
			if a.DayOfWeek != b.DayOfWeek {
				continue
			}
			if !overlaps(a, b) {
				continue
			}
			if a.FacultyID == b.FacultyID {
				clashes = append(clashes, clash{Resource: "faculty/" + a.FacultyID, First: a, Second: b})
			}
			if a.ClassroomID == b.ClassroomID {
				clashes = append(clashes, clash{Resource: "classroom/" + a.ClassroomID, First: a, Second: b})
			}
		}
	}
	return clashes
}

func overlaps(a, b entry) bool {
	am, bm := minutes(a), minutes(b)
	return am.start < bm.end && am.end > bm.start
}

type span struct{ start, end int }

func minutes(e entry) span {
	return span{
		start: e.StartTime.Hour()*60 + e.StartTime.Minute(),
		end:   e.EndTime.Hour()*60 + e.EndTime.Minute(),
	}
}
