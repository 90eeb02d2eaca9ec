package static

import (
	"os"
	"os/user"

	"github.com/monify-labs/sysfetch/pkg/models"
)

var (
	currentUser = user.Current
	hostname    = os.Hostname
)

// CollectIdentifier returns the user and host for the user@host header.
// Either half falls back to "unknown".
func CollectIdentifier() *models.IdentifierInfo {
	id := &models.IdentifierInfo{User: "unknown", Hostname: "unknown"}

	if u, err := currentUser(); err == nil && u.Username != "" {
		id.User = u.Username
	} else if name := os.Getenv("USER"); name != "" {
		id.User = name
	}

	if h, err := hostname(); err == nil && h != "" {
		id.Hostname = h
	}

	return id
}
