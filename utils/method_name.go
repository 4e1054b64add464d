package utils

import "strings"

const (
	AvahiServerInterface     = "org.freedesktop.Avahi.Server"
	AvahiEntryGroupInterface = "org.freedesktop.Avahi.EntryGroup"
)

// ToCamel maps a snake_case identifier to the CamelCase member names used
// on the bus: "entry_group_new" becomes "EntryGroupNew". Each segment has its
// first byte upper-cased and the rest left as is. Empty segments vanish.
func ToCamel(snake string) string {
	var b strings.Builder
	b.Grow(len(snake))
	for _, segment := range strings.Split(snake, "_") {
		if segment == "" {
			continue
		}
		b.WriteString(strings.ToUpper(segment[:1]))
		b.WriteString(segment[1:])
	}
	return b.String()
}

// GenerateMethod joins an interface name and a snake_case method into the
// fully qualified member, e.g. "org.freedesktop.Avahi.Server.EntryGroupNew".
func GenerateMethod(iface string, method string) string {
	return iface + "." + ToCamel(method)
}
