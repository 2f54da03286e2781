package registry

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/golang/snappy"
)

// Export writes the index's ascending key sequence through a snappy
// stream: a uvarint key count, then uvarint length plus raw bytes per
// key. This is a session snapshot, not a storage format the tree itself
// depends on.
func (ix *Index) Export(w io.Writer) error {
	ix.mu.RLock()
	keys := ix.tree.Keys()
	ix.mu.RUnlock()

	sw := snappy.NewBufferedWriter(w)
	buf := make([]byte, binary.MaxVarintLen64)

	n := binary.PutUvarint(buf, uint64(len(keys)))
	if _, err := sw.Write(buf[:n]); err != nil {
		return fmt.Errorf("failed to write key count: %v", err)
	}
	for _, key := range keys {
		n = binary.PutUvarint(buf, uint64(len(key)))
		if _, err := sw.Write(buf[:n]); err != nil {
			return fmt.Errorf("failed to write key length: %v", err)
		}
		if _, err := sw.Write([]byte(key)); err != nil {
			return fmt.Errorf("failed to write key: %v", err)
		}
	}

	if err := sw.Close(); err != nil {
		return fmt.Errorf("failed to flush snapshot: %v", err)
	}
	return nil
}

// Import replays a snapshot produced by Export into this index, on top
// of whatever it already holds.
func (ix *Index) Import(r io.Reader) error {
	br := bufio.NewReader(snappy.NewReader(r))

	count, err := binary.ReadUvarint(br)
	if err != nil {
		return fmt.Errorf("failed to read key count: %v", err)
	}

	for i := uint64(0); i < count; i++ {
		klen, err := binary.ReadUvarint(br)
		if err != nil {
			return fmt.Errorf("failed to read key length: %v", err)
		}
		data := make([]byte, klen)
		if _, err := io.ReadFull(br, data); err != nil {
			return fmt.Errorf("failed to read key: %v", err)
		}
		if err := ix.Insert(string(data)); err != nil {
			return fmt.Errorf("failed to insert imported key: %v", err)
		}
	}
	return nil
}
