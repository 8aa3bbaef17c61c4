// Package transcript logs the operations a prover session performs
// (which counter ran, at what arity, with what result) and commits them to
// a Merkle tree, so a batch of tautology checks can be attested and later
// spot-checked without replaying every computation.
package transcript

import (
	"encoding/binary"
)

// Entry is one logged counter invocation.
type Entry struct {
	Op     string
	Arity  int
	Count  uint64
	Proven bool
}

// encode serializes an Entry into the leaf bytes fed to the Merkle tree.
func (e Entry) encode() []byte {
	buf := make([]byte, len(e.Op)+1+8+8+1)
	off := copy(buf, e.Op)
	buf[off] = 0
	off++
	binary.LittleEndian.PutUint64(buf[off:], uint64(e.Arity))
	off += 8
	binary.LittleEndian.PutUint64(buf[off:], e.Count)
	off += 8
	if e.Proven {
		buf[off] = 1
	}
	return buf
}

// Log accumulates entries for one session.
type Log struct {
	entries []Entry
}

// Record appends an entry to the log.
func (l *Log) Record(op string, arity int, count uint64, proven bool) {
	l.entries = append(l.entries, Entry{Op: op, Arity: arity, Count: count, Proven: proven})
}

// Entries returns the entries recorded so far.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Commit builds a Merkle tree over the logged entries, in recorded order.
func (l *Log) Commit() *MerkleTree {
	leaves := make([][]byte, len(l.entries))
	for i, e := range l.entries {
		leaves[i] = e.encode()
	}
	return BuildMerkleTree(leaves)
}
