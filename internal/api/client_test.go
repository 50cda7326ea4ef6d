package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

// envelopeServer returns a test server that records the last query and
// responds with the given body.
func envelopeServer(t *testing.T, body string) (*httptest.Server, *url.Values) {
	t.Helper()

	var lastQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			lastQuery = r.URL.Query()
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(body))
		},
	))
	t.Cleanup(srv.Close)

	return srv, &lastQuery
}

func TestCallBuildsQueryParameters(t *testing.T) {
	srv, query := envelopeServer(t, `{"success":true,"data":null}`)

	c := NewClient(srv.URL, "secret-key")
	if err := c.UpdateStatus(context.Background(), "u-42", "Completed"); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	q := *query
	if got := q.Get("key"); got != "secret-key" {
		t.Errorf("key = %q", got)
	}
	if got := q.Get("action"); got != "updateStatus" {
		t.Errorf("action = %q", got)
	}
	if got := q.Get("uid"); got != "u-42" {
		t.Errorf("uid = %q", got)
	}
	if got := q.Get("status"); got != "Completed" {
		t.Errorf("status = %q", got)
	}
}

func TestCallServerError(t *testing.T) {
	srv, _ := envelopeServer(t, `{"success":false,"error":"sheet unavailable"}`)

	c := NewClient(srv.URL, "k")
	err := c.Sync(context.Background())
	if err == nil {
		t.Fatalf("Sync: want error, got nil")
	}

	var callErr *CallError
	if !errors.As(err, &callErr) {
		t.Fatalf("error type = %T, want *CallError", err)
	}
	if callErr.Message != "sheet unavailable" {
		t.Errorf("message = %q", callErr.Message)
	}
}

func TestCallGenericFallbackMessage(t *testing.T) {
	srv, _ := envelopeServer(t, `{"success":false}`)

	c := NewClient(srv.URL, "k")
	err := c.Sync(context.Background())

	var callErr *CallError
	if !errors.As(err, &callErr) {
		t.Fatalf("error type = %T, want *CallError", err)
	}
	if callErr.Message != "API request failed" {
		t.Errorf("message = %q, want generic fallback", callErr.Message)
	}
}

func TestCallMalformedResponse(t *testing.T) {
	srv, _ := envelopeServer(t, `<html>not json</html>`)

	c := NewClient(srv.URL, "k")
	if err := c.Sync(context.Background()); err == nil {
		t.Errorf("Sync on non-JSON body: want error, got nil")
	}
}

func TestGetAssignmentsCoercion(t *testing.T) {
	srv, _ := envelopeServer(t, `{"success":true,"data":[
		{"uid":"a1","title":"Quiz","type":"Test/Quiz","daysUntilDue":3},
		{"uid":"a2","title":"Essay","daysUntilDue":"5"},
		{"uid":"a3","title":"Lab","daysUntilDue":"soon","dueDate":"May 12"},
		{"uid":"a4","title":"Float","daysUntilDue":2.0,"priority":7},
		{"uid":"a5","title":"Huge","daysUntilDue":1e19},
		{"uid":"a6","title":"NaN","daysUntilDue":"NaN"},
		{"uid":"","title":"ορφανό"}
	]}`)

	c := NewClient(srv.URL, "k")
	got, err := c.GetAssignments(context.Background())
	if err != nil {
		t.Fatalf("GetAssignments: %v", err)
	}

	// The uid-less record is dropped at the boundary.
	if len(got) != 6 {
		t.Fatalf("got %d records, want 6", len(got))
	}

	if d, ok := got[0].Due(); !ok || d != 3 {
		t.Errorf("a1 due = %v %v, want 3 true", d, ok)
	}
	if d, ok := got[1].Due(); !ok || d != 5 {
		t.Errorf("a2 due (numeric string) = %v %v, want 5 true", d, ok)
	}
	if _, ok := got[2].Due(); ok {
		t.Errorf("a3 due: garbage string must coerce to unknown")
	}
	if got[2].DueDate != "May 12" {
		t.Errorf("a3 dueDate = %q", got[2].DueDate)
	}
	if d, ok := got[3].Due(); !ok || d != 2 {
		t.Errorf("a4 due (float) = %v %v, want 2 true", d, ok)
	}
	if got[3].Priority != "7" {
		t.Errorf("a4 priority (bare number) = %q, want \"7\"", got[3].Priority)
	}
	if _, ok := got[4].Due(); ok {
		t.Errorf("a5 due: out-of-range number must coerce to unknown")
	}
	if _, ok := got[5].Due(); ok {
		t.Errorf("a6 due: non-finite value must coerce to unknown")
	}
}

func TestGetCategoriesDeduplicates(t *testing.T) {
	srv, _ := envelopeServer(t,
		`{"success":true,"data":["Math","History","Math","","Science"]}`,
	)

	c := NewClient(srv.URL, "k")
	got, err := c.GetCategories(context.Background())
	if err != nil {
		t.Fatalf("GetCategories: %v", err)
	}

	want := []string{"Math", "History", "Science"}
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("categories[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCallTransportFailure(t *testing.T) {
	srv, _ := envelopeServer(t, `{"success":true}`)
	srv.Close()

	c := NewClient(srv.URL, "k")
	if err := c.Sync(context.Background()); err == nil {
		t.Errorf("Sync against closed server: want error, got nil")
	}
}
