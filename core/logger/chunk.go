package logger

import "unicode/utf8"

// DefaultChunkSize is the longest line, in runes, handed to a console output
// by the restricted sink.
const DefaultChunkSize = 4000

// Chunk splits msg into consecutive pieces of at most size runes. Splitting is
// purely length based; concatenating the result yields msg. An empty message
// yields no chunks and one that already fits is returned as a single chunk.
func Chunk(msg string, size int) []string {
	if msg == "" {
		return nil
	}
	if size <= 0 || utf8.RuneCountInString(msg) <= size {
		return []string{msg}
	}
	out := make([]string, 0, utf8.RuneCountInString(msg)/size+1)
	start, n := 0, 0
	for i := range msg {
		if n == size {
			out = append(out, msg[start:i])
			start, n = i, 0
		}
		n++
	}
	return append(out, msg[start:])
}
