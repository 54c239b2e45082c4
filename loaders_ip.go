package datacraft

import (
	"math/rand/v2"
	"net/netip"
	"regexp"
)

var cidrPattern = regexp.MustCompile(`^((25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)/(3[0-2]|[12]?[0-9])$`)

const defaultCIDR = "192.168.0.0/16"

func ipTypeLoader() TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		cidr := configString(spec.Config(), "cidr", defaultCIDR)
		return IPSupplier(loader.Rand(), cidr)
	}, "ip", "ipv4")
}

// IPSupplierData returns random IPv4 addresses inside a network.
type IPSupplierData struct {
	base uint32
	mask uint32
	rnd  *rand.Rand
}

// IPSupplier returns random IPv4 addresses inside the CIDR network.
func IPSupplier(rnd *rand.Rand, cidr string) (*IPSupplierData, error) {
	if !cidrPattern.MatchString(cidr) {
		return nil, NewSpecErrorf("invalid CIDR format: '%s'", cidr)
	}
	prefix, err := netip.ParsePrefix(cidr)
	if err != nil {
		return nil, NewSpecErrorf("invalid CIDR format: '%s': %w", cidr, err)
	}
	addr := prefix.Addr().As4()
	base := uint32(addr[0])<<24 | uint32(addr[1])<<16 | uint32(addr[2])<<8 | uint32(addr[3])
	var mask uint32
	if prefix.Bits() > 0 {
		mask = ^uint32(0) << (32 - prefix.Bits())
	}
	return &IPSupplierData{
		base: base & mask,
		mask: mask,
		rnd:  rnd,
	}, nil
}

var _ ValueSupplier = (*IPSupplierData)(nil)

func (s *IPSupplierData) Next(iteration int64) (any, error) {
	ip := s.base | (s.rnd.Uint32() &^ s.mask)
	return netip.AddrFrom4([4]byte{byte(ip >> 24), byte(ip >> 16), byte(ip >> 8), byte(ip)}).String(), nil
}
