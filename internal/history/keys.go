package history

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
)

var entryPrefix = []byte("history:entry:")

// entryKey orders entries by insertion: the sequence is big-endian so
// lexicographic key order matches push order.
func entryKey(seq uint64) []byte {
	key := make([]byte, len(entryPrefix)+8)
	copy(key, entryPrefix)
	binary.BigEndian.PutUint64(key[len(entryPrefix):], seq)
	return key
}

func entrySeq(key []byte) (uint64, error) {
	if len(key) != len(entryPrefix)+8 {
		return 0, fmt.Errorf("invalid history key length %d", len(key))
	}
	return binary.BigEndian.Uint64(key[len(entryPrefix):]), nil
}

// prefixUpperBound is the first key after every key carrying the entry prefix.
func prefixUpperBound() []byte {
	upper := make([]byte, len(entryPrefix))
	copy(upper, entryPrefix)
	upper[len(upper)-1]++
	return upper
}

type storedEntry struct {
	key   []byte
	entry Entry
}

func newestFirst(stored []storedEntry) []Entry {
	entries := make([]Entry, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		entries = append(entries, stored[i].entry)
	}
	return entries
}

// decodeEntry reports false for values that are not valid entries.
func decodeEntry(key, value []byte) (storedEntry, bool) {
	var entry Entry
	if err := json.Unmarshal(value, &entry); err != nil {
		return storedEntry{}, false
	}
	k := make([]byte, len(key))
	copy(k, key)
	return storedEntry{key: k, entry: entry}, true
}
