package jsonapi

import (
	"context"
	"errors"
	"net"
	"testing"
)

func TestClassifyNetworkError(t *testing.T) {
	kind, errno := classifyNetworkError(&net.DNSError{Name: "down.example", Err: "no such host"})
	if kind != "DNSError" || errno != nil {
		t.Fatalf("dns: kind=%q errno=%v", kind, errno)
	}

	kind, _ = classifyNetworkError(context.DeadlineExceeded)
	if kind != "DeadlineExceeded" {
		t.Fatalf("deadline: kind=%q", kind)
	}

	// Unrecognized errors fall back to the bare type name.
	kind, _ = classifyNetworkError(errors.New("boom"))
	if kind != "errorString" {
		t.Fatalf("fallback: kind=%q", kind)
	}
}
