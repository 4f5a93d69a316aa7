/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package resultwriter

const hexDigits = "0123456789abcdef"

// safeStringSet reports, for each byte value, whether it may be copied into a JSON string
// verbatim. '"', '\\' and control characters all require escaping.
var safeStringSet = [256]bool{}

func init() {
	for i := 0x20; i <= 0x7e; i++ {
		safeStringSet[i] = true
	}
	safeStringSet['"'] = false
	safeStringSet['\\'] = false
}

// WriteString writes a Go string as a double-quoted JSON string, escaping characters that are not
// allowed to appear verbatim.
func (stream *Stream) WriteString(s string) {
	stream.writeOneByte('"')

	start := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < utf8RuneSelf && safeStringSet[b] {
			continue
		}

		if start < i {
			stream.write([]byte(s[start:i]))
		}

		switch b {
		case '"':
			stream.writeTwoBytes('\\', '"')
		case '\\':
			stream.writeTwoBytes('\\', '\\')
		case '\n':
			stream.writeTwoBytes('\\', 'n')
		case '\r':
			stream.writeTwoBytes('\\', 'r')
		case '\t':
			stream.writeTwoBytes('\\', 't')
		default:
			if b < utf8RuneSelf {
				// Other control characters are escaped as \u00XX.
				stream.writeSixBytes('\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xf])
			} else {
				// Multi-byte UTF-8 sequences are already valid JSON and need no escaping; copy
				// the single byte and let the loop continue over the rest of the sequence.
				stream.writeOneByte(b)
			}
		}

		start = i + 1
	}

	if start < len(s) {
		stream.write([]byte(s[start:]))
	}

	stream.writeOneByte('"')
}

const utf8RuneSelf = 0x80
