//go:build !tinygo

package hal

import "github.com/denisbrodbeck/machineid"

const identityApp = "picoled"

// hostIdentity derives a stable per-machine identity without exposing the raw machine id.
func hostIdentity() string {
	id, err := machineid.ProtectedID(identityApp)
	if err != nil || id == "" {
		return "host"
	}
	if len(id) > 16 {
		id = id[:16]
	}
	return id
}
