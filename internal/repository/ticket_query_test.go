package repository

import (
	"regexp"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func TestBuildTicketQueryEmptyFilter(t *testing.T) {
	query := buildTicketQuery(TicketFilter{})
	if len(query) != 0 {
		t.Fatalf("empty filter must match everything, got %v", query)
	}
}

func TestBuildTicketQueryCompositeAND(t *testing.T) {
	email := "john@acme.com"
	notAccepted := domain.AcceptedStatusNotAccepted
	query := buildTicketQuery(TicketFilter{
		AssignedMember: &email,
		AcceptedStatus: &notAccepted,
	})

	if len(query) != 2 {
		t.Fatalf("expected two constraints, got %v", query)
	}
	if query["assignedMember"] != email {
		t.Fatalf("assignedMember = %v", query["assignedMember"])
	}
	if query["memberAcceptedStatus"] != notAccepted {
		t.Fatalf("memberAcceptedStatus = %v", query["memberAcceptedStatus"])
	}
}

func TestBuildTicketQueryDayWindow(t *testing.T) {
	day := time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)
	query := buildTicketQuery(TicketFilter{CreatedOn: &day})

	window, ok := query["createdAt"].(bson.M)
	if !ok {
		t.Fatalf("createdAt constraint missing: %v", query)
	}
	start := window["$gte"].(time.Time)
	end := window["$lt"].(time.Time)

	wantStart := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantStart.Add(24 * time.Hour)) {
		t.Fatalf("end = %v, want %v", end, wantStart.Add(24*time.Hour))
	}
}

func TestSubstringRegexQuotesMetacharacters(t *testing.T) {
	rx := substringRegex("a.c+")
	if rx.Pattern != `a\.c\+` {
		t.Fatalf("pattern = %q", rx.Pattern)
	}
	if rx.Options != "i" {
		t.Fatalf("options = %q, want i", rx.Options)
	}
}

func TestSubstringRegexMatchesSubstringsCaseInsensitively(t *testing.T) {
	cases := []struct {
		term, value string
		want        bool
	}{
		{"oh", "John Doe", true},
		{"acm", "Acme Corp", true},
		{"Acm", "PacMed", false},
		{"a.c", "abc", false},
		{"a.c", "xa.cy", true},
	}
	for _, tc := range cases {
		rx := substringRegex(tc.term)
		matched, err := regexp.MatchString("(?i)"+rx.Pattern, tc.value)
		if err != nil {
			t.Fatalf("MatchString(%q, %q): %v", tc.term, tc.value, err)
		}
		if matched != tc.want {
			t.Fatalf("substring %q against %q = %v, want %v", tc.term, tc.value, matched, tc.want)
		}
	}
}

func TestPrefixRegexAnchorsAtStart(t *testing.T) {
	rx := prefixRegex("Acm")

	if matched, _ := regexp.MatchString("(?i)"+rx.Pattern, "Acme Corp"); !matched {
		t.Fatal("prefix must match Acme Corp")
	}
	if matched, _ := regexp.MatchString("(?i)"+rx.Pattern, "PacMed"); matched {
		t.Fatal("prefix must not match mid-word occurrences")
	}
}

func TestBuildTicketQuerySearchFieldsUseRegex(t *testing.T) {
	name := "jo"
	company := "acme"
	query := buildTicketQuery(TicketFilter{
		NameContains:    &name,
		CompanyContains: &company,
	})

	if _, ok := query["userName"].(primitive.Regex); !ok {
		t.Fatalf("userName should be a regex, got %T", query["userName"])
	}
	if _, ok := query["userCompany"].(primitive.Regex); !ok {
		t.Fatalf("userCompany should be a regex, got %T", query["userCompany"])
	}
}

func TestBuildTicketUpdateSetsOnlyProvidedFields(t *testing.T) {
	closed := domain.TicketStatusClosed
	reason := "duplicate"
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	update := buildTicketUpdate(TicketUpdate{
		Status:            &closed,
		ReasonForDeleting: &reason,
	}, now)

	set, ok := update["$set"].(bson.M)
	if !ok {
		t.Fatalf("expected $set document, got %v", update)
	}
	if len(set) != 3 {
		t.Fatalf("expected status, reason and updatedAt only, got %v", set)
	}
	if set["status"] != closed {
		t.Fatalf("status = %v", set["status"])
	}
	if set["reasonForDeleting"] != reason {
		t.Fatalf("reasonForDeleting = %v", set["reasonForDeleting"])
	}
	if set["updatedAt"] != now {
		t.Fatalf("updatedAt = %v", set["updatedAt"])
	}
}

func TestParseObjectIDRejectsBadHex(t *testing.T) {
	if _, err := parseObjectID("not-a-hex-id"); err == nil {
		t.Fatal("expected error for malformed id")
	}
	oid := primitive.NewObjectID()
	parsed, err := parseObjectID(oid.Hex())
	if err != nil {
		t.Fatalf("parseObjectID: %v", err)
	}
	if parsed != oid {
		t.Fatalf("parsed = %v, want %v", parsed, oid)
	}
}
