package smite

import (
	"crypto/md5"
	"encoding/hex"
)

// timestampLayout is the UTC wall-clock format the API embeds in signatures
// and URL paths (YYYYMMDDHHMMSS).
const timestampLayout = "20060102150405"

// nowTimestamp formats the client clock's current UTC time for the API.
func (c *Client) nowTimestamp() string {
	return c.clock().UTC().Format(timestampLayout)
}

// signature derives the per-request auth digest for a method at a timestamp:
// the lowercase hex MD5 of devID + method + authKey + timestamp. The remote
// service recomputes it and validates the timestamp within its own tolerance
// window, so a fresh timestamp is needed per request.
func (c *Client) signature(method, ts string) string {
	sum := md5.Sum([]byte(c.devID + method + c.authKey + ts))
	return hex.EncodeToString(sum[:])
}
