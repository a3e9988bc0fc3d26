package domain

import (
	"encoding/binary"
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// Diff returns every usable host address available in wider but not in
// narrower, as 32-bit integers in ascending order. The delta is decomposed
// into whole subnets and hosts are enumerated per subnet, so the network and
// broadcast addresses of each newly exposed block are excluded.
func Diff(wider, narrower netip.Prefix) ([]uint32, error) {
	if !wider.IsValid() || !narrower.IsValid() {
		return nil, fmt.Errorf("%w: malformed prefix", ErrInvalidRange)
	}
	if !wider.Addr().Is4() || !narrower.Addr().Is4() {
		return nil, fmt.Errorf("%w: only ipv4 prefixes are supported", ErrInvalidRange)
	}

	wider = wider.Masked()
	narrower = narrower.Masked()
	if narrower.Bits() < wider.Bits() || !wider.Contains(narrower.Addr()) {
		return nil, fmt.Errorf("%w: %s is not a subset of %s", ErrInvalidRange, narrower, wider)
	}

	var builder netipx.IPSetBuilder
	builder.AddPrefix(wider)
	builder.RemovePrefix(narrower)
	set, err := builder.IPSet()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	var out []uint32
	for _, prefix := range set.Prefixes() {
		out = appendUsableHosts(out, prefix)
	}
	return out, nil
}

func appendUsableHosts(out []uint32, prefix netip.Prefix) []uint32 {
	r := netipx.RangeOfPrefix(prefix)
	first := addrToUint32(r.From())
	last := addrToUint32(r.To())

	// /31 point-to-point links and /32 hosts treat every address as usable.
	if prefix.Bits() < 31 {
		first++
		last--
	}

	for addr := first; ; addr++ {
		out = append(out, addr)
		if addr == last {
			break
		}
	}
	return out
}

func addrToUint32(addr netip.Addr) uint32 {
	b := addr.As4()
	return binary.BigEndian.Uint32(b[:])
}
