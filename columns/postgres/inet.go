package postgres

import (
	"database/sql/driver"
	"net/netip"
	"reflect"
	"strings"

	"github.com/Station-Manager/errors"

	"github.com/SergeiKhmelevSPA/sqltypes"
	"github.com/SergeiKhmelevSPA/sqltypes/columns"
)

func init() {
	sqltypes.MustRegisterColumnFor("postgres", sqltypes.ColumnType{
		Name:    "inet",
		SQLType: "inet",
		GoType:  reflect.TypeOf(Inet{}),
	})
}

type inetCodec struct{}

func (inetCodec) DecodeColumn(src any) (netip.Prefix, error) {
	const op errors.Op = "columns.postgres.inetCodec.DecodeColumn"
	s, err := columns.AsString(src)
	if err != nil {
		return netip.Prefix{}, errors.New(op).Err(err)
	}
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return netip.Prefix{}, errors.New(op).Err(err)
		}
		return p, nil
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, errors.New(op).Err(err)
	}
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

func (inetCodec) EncodeColumn(v netip.Prefix) (driver.Value, error) {
	return v.String(), nil
}

func (inetCodec) EqualColumn(a, b netip.Prefix) bool { return a == b }

// Inet stores an IP address or network in a PostgreSQL inet column. Bare host
// addresses decode with a full-length mask (/32 or /128), matching what the
// server reports for them.
type Inet struct {
	sqltypes.Immutable[netip.Prefix, inetCodec]
}

// InetFrom returns a valid Inet column holding p.
func InetFrom(p netip.Prefix) Inet {
	return Inet{sqltypes.NewImmutable[netip.Prefix, inetCodec](p)}
}

// InetFromAddr returns a valid Inet column for a host address.
func InetFromAddr(a netip.Addr) Inet {
	return InetFrom(netip.PrefixFrom(a, a.BitLen()))
}

// ParseInet returns an Inet column for a textual address or CIDR network.
func ParseInet(s string) (Inet, error) {
	var c inetCodec
	p, err := c.DecodeColumn(s)
	if err != nil {
		return Inet{}, err
	}
	return InetFrom(p), nil
}
