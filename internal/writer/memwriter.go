package writer

// MemWriter captures contents in memory.
type MemWriter struct {
	Buf    []byte
	Writes int
}

// WriteContents stores a copy of buf, replacing any previous contents.
func (w *MemWriter) WriteContents(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	w.Writes++
	return nil
}
