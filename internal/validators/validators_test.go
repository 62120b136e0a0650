package validators

import (
	"errors"
	"net"
	"testing"
)

type fakeResolver struct {
	mx  map[string][]*net.MX
	ips map[string][]net.IP
}

func (f fakeResolver) LookupMX(host string) ([]*net.MX, error) {
	if v, ok := f.mx[host]; ok {
		return v, nil
	}
	return nil, errors.New("no such host")
}

func (f fakeResolver) LookupIP(host string) ([]net.IP, error) {
	if v, ok := f.ips[host]; ok {
		return v, nil
	}
	return nil, errors.New("no such host")
}

func TestIsEmailDomainValidWith(t *testing.T) {
	r := fakeResolver{
		mx:  map[string][]*net.MX{"lavado.es": {{Host: "mx.lavado.es.", Pref: 10}}},
		ips: map[string][]net.IP{"solo-a.es": {net.ParseIP("192.0.2.10")}},
	}

	tests := []struct {
		email string
		want  bool
	}{
		{"ana@lavado.es", true},
		{"ana@solo-a.es", true},
		{"ana@desconocido.es", false},
		{"ana@", false},
		{"sin-arroba", false},
	}

	for _, tt := range tests {
		if got := IsEmailDomainValidWith(r, tt.email); got != tt.want {
			t.Errorf("IsEmailDomainValidWith(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsEmailFormatValid(t *testing.T) {
	valid := []string{"ana@lavado.es", "a.b+c@sub.example.com"}
	invalid := []string{"", "ana", "ana@lavado", "ana @lavado.es", "@lavado.es"}

	for _, e := range valid {
		if !IsEmailFormatValid(e) {
			t.Errorf("%q should be valid", e)
		}
	}
	for _, e := range invalid {
		if IsEmailFormatValid(e) {
			t.Errorf("%q should be invalid", e)
		}
	}
}

func TestDigitsOnly(t *testing.T) {
	if got := DigitsOnly("+34 612-345 678"); got != "34612345678" {
		t.Fatalf("DigitsOnly = %q", got)
	}
	if got := DigitsOnly("abc"); got != "" {
		t.Fatalf("DigitsOnly(abc) = %q", got)
	}
}
