package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid runs a cheap DNS sanity check on an admin account
// email before the account is created: the domain must resolve to at
// least one MX or address record.
func IsEmailDomainValid(email string) bool {
	_, domain, found := strings.Cut(email, "@")
	if !found || domain == "" || strings.Contains(domain, "@") {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
