package vfs

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
)

// Fingerprint returns the hex SHA-256 of a tree's names, order, kinds and
// contents. Two trees list and read identically iff their fingerprints
// match, so it tells whether a session has drifted from its fixture.
func Fingerprint(dir *Dir) string {
	h := sha256.New()
	hashDir(h, dir)
	return hex.EncodeToString(h.Sum(nil))
}

// hashDir writes length-prefixed records, depth first.
func hashDir(h hash.Hash, dir *Dir) {
	writeField(h, "d", dir.names...)
	for _, name := range dir.names {
		switch c := dir.children[name].(type) {
		case *Dir:
			hashDir(h, c)
		case *File:
			writeField(h, "f", c.Content)
		}
	}
}

func writeField(h hash.Hash, tag string, values ...string) {
	var n [8]byte
	h.Write([]byte(tag))
	binary.BigEndian.PutUint64(n[:], uint64(len(values)))
	h.Write(n[:])
	for _, v := range values {
		binary.BigEndian.PutUint64(n[:], uint64(len(v)))
		h.Write(n[:])
		h.Write([]byte(v))
	}
}
