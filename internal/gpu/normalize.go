package gpu

import "strings"

// NormalizeID canonicalizes a hexadecimal identifier: every leading
// 0x/0X prefix is removed and the rest is lowercased. Any string is
// accepted; malformed ids simply never match anything downstream.
func NormalizeID(id string) string {
	id = strings.ToLower(id)
	for strings.HasPrefix(id, "0x") {
		id = id[2:]
	}
	return id
}
