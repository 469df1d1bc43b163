// Package mmap maps input files read-only into memory.
//
//	m, err := mmap.Open("points.bin")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// On Unix the file is mapped with mmap(2) and access hints go through
// madvise(2). Other platforms read the file into memory and ignore hints.
//
// Close is idempotent. Callers must not touch Bytes() after Close returns.
package mmap
