package match

import (
	"testing"
)

func TestBranch_Accepted(t *testing.T) {
	names := []string{
		"42-add-login-flow",
		"1-fix",
		"9999-a",
		"7-player-bullet-2",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			if got := Branch(name); len(got) != 0 {
				t.Errorf("Branch(%q) = %+v, want no findings", name, got)
			}
		})
	}
}

func TestBranch_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  string
	}{
		{"no issue number", "title-no-number", CodeBranchMissingIssueNumber},
		{"empty", "", CodeBranchMissingIssueNumber},
		{"uppercase in title", "42-Add-Login", CodeBranchInvalidTitleCasing},
		{"underscore in title", "42-add_login", CodeBranchInvalidTitleCasing},
		{"consecutive hyphens", "42-add--login", CodeBranchInvalidTitleCasing},
		{"number only", "42", CodeBranchInvalidTitleCasing},
		{"trailing hyphen", "42-add-", CodeBranchInvalidTitleCasing},
		{"no hyphen after number", "42addlogin", CodeBranchInvalidTitleCasing},
		{"hyphen right after hyphen separator", "42--add", CodeBranchInvalidTitleCasing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Branch(tt.input)
			if len(got) == 0 {
				t.Fatalf("Branch(%q) accepted, want %s", tt.input, tt.code)
			}
			if got[0].Code != tt.code {
				t.Errorf("Branch(%q) code = %s, want %s", tt.input, got[0].Code, tt.code)
			}
		})
	}
}

func TestBranch_BothFindings(t *testing.T) {
	// Нет номера и заголовок не kebab: обе диагностики сразу.
	got := Branch("Add-Login")
	if len(got) != 2 {
		t.Fatalf("Branch(\"Add-Login\") = %d findings, want 2", len(got))
	}
	if got[0].Code != CodeBranchMissingIssueNumber {
		t.Errorf("first code = %s, want %s", got[0].Code, CodeBranchMissingIssueNumber)
	}
	if got[1].Code != CodeBranchInvalidTitleCasing {
		t.Errorf("second code = %s, want %s", got[1].Code, CodeBranchInvalidTitleCasing)
	}
}

func TestBranch_SpanPointsAtOffendingRun(t *testing.T) {
	got := Branch("42-add_login")
	if len(got) != 1 {
		t.Fatalf("findings = %d, want 1", len(got))
	}
	span := got[0].Span
	if span.Start != 6 || span.End != 7 {
		t.Errorf("span = %s, want 6-7 (the underscore)", span)
	}
}
