package main

import (
	"context"
	"fmt"
	"net"
	"testing"

	"kanban/internal/api"
)

func TestFormatCLIError_NetworkGuidance(t *testing.T) {
	err := &net.DNSError{Err: "dial tcp: connection refused", Name: "127.0.0.1", IsTemporary: true}
	lines := formatCLIError(err)
	if !containsLine(lines, "hint: ensure a kanban server is running at KANBAN_API_URL.") {
		t.Fatalf("expected connectivity guidance, got %v", lines)
	}
	if !containsLine(lines, "hint: start local server manually with: kanban srv") {
		t.Fatalf("expected manual-start guidance, got %v", lines)
	}
}

func TestFormatCLIError_APIUnknownServiceGuidance(t *testing.T) {
	err := &api.APIError{Status: 404, Message: "api error: 404 Not Found"}
	lines := formatCLIError(err)
	if !containsLine(lines, "hint: verify KANBAN_API_URL points to a kanban server.") {
		t.Fatalf("expected api-url guidance, got %v", lines)
	}
}

func TestFormatCLIError_PersistenceGuidance(t *testing.T) {
	err := &api.APIError{Status: 500, Code: api.CodePersistenceFailed, ErrorCode: 4006, Message: "persist boards: disk full"}
	lines := formatCLIError(err)
	if lines[0] != "persistence_failed: persist boards: disk full" {
		t.Fatalf("expected original message first, got %v", lines)
	}
	if !containsLine(lines, "hint: check free disk space and permissions for KANBAN_DB.") {
		t.Fatalf("expected persistence guidance, got %v", lines)
	}
	if containsLine(lines, "hint: server returned an internal error; check server logs for details.") {
		t.Fatalf("did not expect generic internal hint, got %v", lines)
	}
}

func TestFormatCLIError_APIInternalGuidance(t *testing.T) {
	err := &api.APIError{Status: 500, Code: "internal", Message: "internal error"}
	lines := formatCLIError(err)
	if !containsLine(lines, "hint: server returned an internal error; check server logs for details.") {
		t.Fatalf("expected internal-error guidance, got %v", lines)
	}
}

func TestFormatCLIError_Timeout(t *testing.T) {
	lines := formatCLIError(fmt.Errorf("get state: %w", context.DeadlineExceeded))
	if !containsLine(lines, "hint: request timed out; check server health or increase KANBAN_HTTP_TIMEOUT.") {
		t.Fatalf("expected timeout guidance, got %v", lines)
	}
}

func containsLine(lines []string, expected string) bool {
	for _, line := range lines {
		if line == expected {
			return true
		}
	}
	return false
}
