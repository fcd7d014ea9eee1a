package core

import (
	"hash/fnv"
	"strconv"
)

func HashContent(content []byte) string {
	h := fnv.New64a()
	_, _ = h.Write(content)
	return strconv.FormatUint(h.Sum64(), 36)
}

// ETag returns a strong entity tag for content.
func ETag(content []byte) string {
	return `"` + HashContent(content) + `"`
}
