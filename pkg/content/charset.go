package content

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var metaCharsetPattern = regexp.MustCompile(`(?i)charset\s*=\s*["']?\s*([a-z0-9_\-]+)`)

// decodeToUTF8 converts page bytes to UTF-8 using, in order: BOM
// detection, the Content-Type header charset, the meta-tag charset, and
// finally a Windows-1252 fallback for bytes that are not valid UTF-8.
// Valid UTF-8 input is returned unchanged.
func decodeToUTF8(raw []byte, contentType string) string {
	if enc := bomEncoding(raw); enc != nil {
		if decoded, err := transformBytes(raw, enc); err == nil {
			return decoded
		}
	}

	if utf8.Valid(raw) {
		return string(raw)
	}

	name := charsetFromContentType(contentType)
	if name == "" {
		name = charsetFromMeta(raw)
	}
	if enc := encodingByName(name); enc != nil {
		if decoded, err := transformBytes(raw, enc); err == nil {
			return decoded
		}
	}

	// Windows-1252 decodes any byte sequence and covers the common
	// latin-1 family mislabels.
	if decoded, err := transformBytes(raw, charmap.Windows1252); err == nil {
		return decoded
	}
	return string(raw)
}

func transformBytes(raw []byte, enc encoding.Encoding) (string, error) {
	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func bomEncoding(raw []byte) encoding.Encoding {
	switch {
	case bytes.HasPrefix(raw, []byte{0xFF, 0xFE}):
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case bytes.HasPrefix(raw, []byte{0xFE, 0xFF}):
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	default:
		return nil
	}
}

func charsetFromContentType(contentType string) string {
	if m := metaCharsetPattern.FindStringSubmatch(contentType); len(m) > 1 {
		return strings.ToLower(m[1])
	}
	return ""
}

// charsetFromMeta sniffs the charset declaration from the document head.
func charsetFromMeta(raw []byte) string {
	head := raw
	if len(head) > 4096 {
		head = head[:4096]
	}
	if m := metaCharsetPattern.FindSubmatch(head); len(m) > 1 {
		return strings.ToLower(string(m[1]))
	}
	return ""
}

func encodingByName(name string) encoding.Encoding {
	switch name {
	case "", "utf-8", "utf8":
		return nil
	case "iso-8859-1", "latin-1", "latin1":
		return charmap.ISO8859_1
	case "iso-8859-2":
		return charmap.ISO8859_2
	case "iso-8859-15":
		return charmap.ISO8859_15
	case "windows-1250":
		return charmap.Windows1250
	case "windows-1251":
		return charmap.Windows1251
	case "windows-1252":
		return charmap.Windows1252
	case "koi8-r":
		return charmap.KOI8R
	default:
		return nil
	}
}
