package validators

import (
	"net"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmailFormatValid checks the shape local@domain.tld, nothing more.
func IsEmailFormatValid(email string) bool {
	return emailPattern.MatchString(email)
}

// Resolver is the subset of *net.Resolver used by the domain check.
type Resolver interface {
	LookupMX(host string) ([]*net.MX, error)
	LookupIP(host string) ([]net.IP, error)
}

type netResolver struct{}

func (netResolver) LookupMX(host string) ([]*net.MX, error) { return net.LookupMX(host) }
func (netResolver) LookupIP(host string) ([]net.IP, error)  { return net.LookupIP(host) }

func IsEmailDomainValid(email string) bool {
	return IsEmailDomainValidWith(netResolver{}, email)
}

// IsEmailDomainValidWith accepts a domain with MX records, or failing that any A/AAAA record.
func IsEmailDomainValidWith(r Resolver, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := r.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := r.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
