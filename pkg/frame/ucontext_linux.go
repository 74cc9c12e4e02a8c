package frame

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unsafe"
)

// UContextAt interprets p, the third argument received by a SA_SIGINFO
// signal handler, as a UContext.
func UContextAt(p unsafe.Pointer) *UContext {
	return (*UContext)(p)
}

// ParseUContext decodes a ucontext_t captured as raw bytes. Bytes past the
// machine context are ignored.
func ParseUContext(b []byte) (*UContext, error) {
	var uc UContext
	if len(b) < binary.Size(&uc) {
		return nil, fmt.Errorf("ucontext too short: %d bytes, need %d", len(b), binary.Size(&uc))
	}
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, &uc); err != nil {
		return nil, fmt.Errorf("could not decode ucontext: %w", err)
	}
	return &uc, nil
}
