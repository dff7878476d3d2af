package jsonapi

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"
)

// classifyNetworkError maps a transport failure to the name of its concrete
// error class and, when the chain carries one, the OS error number.
func classifyNetworkError(err error) (kind string, errno *int) {
	var sysErr syscall.Errno
	if errors.As(err, &sysErr) {
		n := int(sysErr)
		errno = &n
	}

	var (
		dnsErr *net.DNSError
		tlsErr *tls.CertificateVerificationError
		opErr  *net.OpError
		netErr net.Error
		urlErr *url.Error
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "DeadlineExceeded", errno
	case errors.Is(err, context.Canceled):
		return "Canceled", errno
	case errors.As(err, &dnsErr):
		return "DNSError", errno
	case errors.As(err, &tlsErr):
		return "CertificateVerificationError", errno
	case errors.As(err, &opErr):
		return "OpError", errno
	case errors.As(err, &netErr) && netErr.Timeout():
		return "Timeout", errno
	case errors.As(err, &urlErr):
		return "URLError", errno
	}
	return errorTypeName(err), errno
}

// errorTypeName reduces the dynamic type of err to its bare type name,
// e.g. *net.OpError -> "OpError".
func errorTypeName(err error) string {
	name := strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
