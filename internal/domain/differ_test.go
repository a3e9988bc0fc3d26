package domain

import (
	"errors"
	"net/netip"
	"testing"
)

func ipv4(a, b, c, d uint32) uint32 {
	return a<<24 | b<<16 | c<<8 | d
}

func TestDiffExpandedRange(t *testing.T) {
	addrs, err := Diff(netip.MustParsePrefix("172.18.0.0/15"), netip.MustParsePrefix("172.18.0.0/16"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// The delta is exactly 172.19.0.0/16: 65534 usable hosts.
	if len(addrs) != 65534 {
		t.Fatalf("expected 65534 addresses, got %d", len(addrs))
	}
	if addrs[0] != ipv4(172, 19, 0, 1) {
		t.Fatalf("unexpected first address: %d", addrs[0])
	}
	if addrs[len(addrs)-1] != ipv4(172, 19, 255, 254) {
		t.Fatalf("unexpected last address: %d", addrs[len(addrs)-1])
	}
	for i := 1; i < len(addrs); i++ {
		if addrs[i] <= addrs[i-1] {
			t.Fatalf("addresses not strictly ascending at index %d: %d then %d", i, addrs[i-1], addrs[i])
		}
	}
}

func TestDiffSmallExpansion(t *testing.T) {
	addrs, err := Diff(netip.MustParsePrefix("10.0.0.0/23"), netip.MustParsePrefix("10.0.0.0/24"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(addrs) != 254 {
		t.Fatalf("expected 254 addresses, got %d", len(addrs))
	}
	if addrs[0] != ipv4(10, 0, 1, 1) || addrs[253] != ipv4(10, 0, 1, 254) {
		t.Fatalf("unexpected bounds: %d .. %d", addrs[0], addrs[253])
	}
}

func TestDiffIdenticalRangesIsEmpty(t *testing.T) {
	addrs, err := Diff(netip.MustParsePrefix("172.18.0.0/16"), netip.MustParsePrefix("172.18.0.0/16"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(addrs) != 0 {
		t.Fatalf("expected empty diff, got %d addresses", len(addrs))
	}
}

func TestDiffSlash31KeepsBothAddresses(t *testing.T) {
	addrs, err := Diff(netip.MustParsePrefix("10.0.0.0/30"), netip.MustParsePrefix("10.0.0.0/31"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(addrs) != 2 || addrs[0] != ipv4(10, 0, 0, 2) || addrs[1] != ipv4(10, 0, 0, 3) {
		t.Fatalf("unexpected addresses: %v", addrs)
	}
}

func TestDiffRejectsDisjointNarrower(t *testing.T) {
	_, err := Diff(netip.MustParsePrefix("10.0.0.0/16"), netip.MustParsePrefix("192.168.0.0/24"))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestDiffRejectsSwappedArguments(t *testing.T) {
	_, err := Diff(netip.MustParsePrefix("172.18.0.0/16"), netip.MustParsePrefix("172.18.0.0/15"))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestDiffRejectsIPv6(t *testing.T) {
	_, err := Diff(netip.MustParsePrefix("fd00::/15"), netip.MustParsePrefix("fd00::/16"))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}
