package badger

import (
	"encoding/binary"
	"fmt"
)

// Key prefixes for different data types
const (
	recipeRecordPrefix = "recrec"
	recipeOrderPrefix  = "record"
	recipePosPrefix    = "recpos"
	recipeOrderSeq     = "recseq"
)

// makeRecipeKey generates a key for a recipe by ID.
func makeRecipeKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", recipeRecordPrefix, id))
}

// makeOrderKey generates a key for the corpus-order index.
// Format: prefix:seq where seq is BigEndian so lexicographic iteration
// yields insertion order.
func makeOrderKey(seq uint64) []byte {
	prefix := recipeOrderPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}

// makePosKey generates the reverse-lookup key from recipe ID to its corpus
// position. Kept alongside the order index so deletes don't have to scan.
func makePosKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", recipePosPrefix, id))
}

// encodeSeq serializes a corpus position for storage in the pos index.
func encodeSeq(seq uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, seq)
	return buf
}

// decodeSeq deserializes a corpus position.
func decodeSeq(data []byte) uint64 {
	return binary.BigEndian.Uint64(data)
}
