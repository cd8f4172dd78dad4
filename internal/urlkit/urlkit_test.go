package urlkit

import "testing"

func TestHost(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"www.ibm.com/foo/bar", "www.ibm.com"},
		{"http://www.ibm.com/foo/bar", "www.ibm.com"},
		{"https://www.ibm.com/foo/bar", "www.ibm.com"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Host(tc.in); got != tc.expected {
			t.Fatalf("Host(%q): expected %q got %q", tc.in, tc.expected, got)
		}
	}
}

func TestTLD(t *testing.T) {
	if got := TLD("http://www.ibm.com/foo/bar"); got != "com" {
		t.Fatalf("expected com got %s", got)
	}
	if got := TLD("http://bbc.co.uk/foo"); got != "uk" {
		t.Fatalf("expected uk got %s", got)
	}
}

func TestRegisteredDomain(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"http://www.ibm.com/foo/bar", "ibm.com"},
		{"http://foo.bbc.co.uk/foo/bar", "bbc.co.uk"},
		{"foo", ""},
	}
	for _, tc := range tests {
		if got := RegisteredDomain(tc.in); got != tc.expected {
			t.Fatalf("RegisteredDomain(%q): expected %q got %q", tc.in, tc.expected, got)
		}
	}
}
