package search

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

type Kind string

const (
	KindHashLike         Kind = "hashLike"
	KindBlockNumberLike  Kind = "blockNumberLike"
	KindOpaqueIdentifier Kind = "opaqueIdentifier"
)

var (
	hashPattern        = regexp.MustCompile(`(?i)^(0x)?[0-9a-f]{64}$`)
	blockNumberPattern = regexp.MustCompile(`^[0-9]+$`)
	nonAlphanumeric    = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// Classification is the interpretation of a free-text query. LookupValue is the
// value the hash lookups compare against.
type Classification struct {
	Kind        Kind   `json:"kind"`
	Query       string `json:"query"`
	LookupValue string `json:"lookupValue"`
}

// Classify maps every input to exactly one kind.
// 64 hex digits (optionally 0x or 0X prefixed) are hash-like, all-digit input is a
// block number, anything else is an identifier that is hashed before lookup.
func Classify(query string) Classification {
	trimmed := strings.TrimSpace(query)
	switch {
	case hashPattern.MatchString(trimmed):
		lookup := "0x" + trimmed[len(trimmed)-64:]
		return Classification{Kind: KindHashLike, Query: trimmed, LookupValue: lookup}
	case blockNumberPattern.MatchString(trimmed):
		return Classification{Kind: KindBlockNumberLike, Query: trimmed, LookupValue: trimmed}
	default:
		return Classification{Kind: KindOpaqueIdentifier, Query: trimmed, LookupValue: IdentifierHash(trimmed)}
	}
}

// SearchType is the label recorded in the search history.
func (c Classification) SearchType() string {
	switch c.Kind {
	case KindHashLike:
		return "tx_hash"
	case KindBlockNumberLike:
		return "block_number"
	default:
		return "integra_id"
	}
}

// IdentifierHash derives the Integra hash of a human-assigned identifier:
// keccak256 of the identifier with every non-alphanumeric character removed.
func IdentifierHash(identifier string) string {
	return crypto.Keccak256Hash([]byte(nonAlphanumeric.ReplaceAllString(identifier, ""))).Hex()
}

// ContentHash is the keccak256 digest of raw document bytes.
func ContentHash(data []byte) string {
	return crypto.Keccak256Hash(data).Hex()
}
