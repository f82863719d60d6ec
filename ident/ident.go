// Package ident generates the entity identifiers used across every store.
// Ids are globally unique strings minted at creation time; there is no
// central id authority. The format is `<prefix>-<unix-millis>-<random>`,
// so ids sort roughly by creation time while the random suffix keeps two
// entities created in the same millisecond distinct.
package ident

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Well-known prefixes for the entity kinds that mint ids.
const (
	UserPrefix  = "user"
	AssetPrefix = "asset"
	PostPrefix  = "post"
	ReplyPrefix = "reply"
	OrderPrefix = "order"
)

// suffixLen is the number of random characters appended after the timestamp.
const suffixLen = 8

// New returns a fresh identifier for the given prefix.
func New(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), randomSuffix())
}

// randomSuffix produces the random tail of an id. A v4 UUID supplies the
// entropy; only the leading characters are kept.
func randomSuffix() string {
	u := uuid.NewString()
	// Strip the dashes so the suffix is a plain alphanumeric run.
	compact := make([]byte, 0, suffixLen)
	for i := 0; i < len(u) && len(compact) < suffixLen; i++ {
		if u[i] != '-' {
			compact = append(compact, u[i])
		}
	}
	return string(compact)
}
