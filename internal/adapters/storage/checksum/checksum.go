// Package checksum computes the sidecar checksums published next to repository files.
package checksum

import (
	"crypto/md5"  //nolint:gosec // Repository clients still request .md5 sidecars
	"crypto/sha1" //nolint:gosec // Repository clients still request .sha1 sidecars
	_ "crypto/sha256"
	_ "crypto/sha512"
	"encoding/hex"

	"github.com/opencontainers/go-digest"
)

// Sidecar is one checksum file: its extension and its hex encoded content.
type Sidecar struct {
	Extension string
	Value     string
}

// Extensions lists the sidecar extensions in the order Compute returns them.
var Extensions = []string{"md5", "sha1", "sha256", "sha512"}

// Compute returns the sidecars for data.
func Compute(data []byte) []Sidecar {
	md5Sum := md5.Sum(data)   //nolint:gosec // See import
	sha1Sum := sha1.Sum(data) //nolint:gosec // See import

	return []Sidecar{
		{Extension: "md5", Value: hex.EncodeToString(md5Sum[:])},
		{Extension: "sha1", Value: hex.EncodeToString(sha1Sum[:])},
		{Extension: "sha256", Value: digest.SHA256.FromBytes(data).Encoded()},
		{Extension: "sha512", Value: digest.SHA512.FromBytes(data).Encoded()},
	}
}

// FileName returns the sidecar file name for name, e.g. lib-1.0.pom.sha1.
func (s Sidecar) FileName(name string) string {
	return name + "." + s.Extension
}
