// Package format classifies uploads by file extension into the standard-image
// and camera-RAW families. Classification trusts the extension; no content
// sniffing is performed.
package format

import (
	"path/filepath"
	"strings"
)

type Kind int

const (
	KindUnsupported Kind = iota
	KindStandard
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindRaw:
		return "raw"
	default:
		return "unsupported"
	}
}

var standardExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tif":  {},
	"tiff": {},
	"webp": {},
}

var rawExtensions = map[string]struct{}{
	"cr2": {}, "cr3": {},
	"nef": {}, "nrw": {},
	"arw": {}, "srf": {}, "sr2": {},
	"dng": {},
	"raf": {},
	"orf": {},
	"rw2": {},
	"pef": {}, "ptx": {},
	"x3f": {},
	"mrw": {},
	"dcr": {}, "kdc": {},
	"erf": {},
	"mef": {},
	"mos": {},
	"raw": {},
}

// Classify maps a filename to its format family by extension, case-insensitive.
func Classify(filename string) Kind {
	ext := normalizeExt(filename)
	if ext == "" {
		return KindUnsupported
	}
	if _, ok := rawExtensions[ext]; ok {
		return KindRaw
	}
	if _, ok := standardExtensions[ext]; ok {
		return KindStandard
	}
	return KindUnsupported
}

// RawFormat returns the lowercase RAW extension family for a filename, or ""
// when the file is not a recognized RAW format.
func RawFormat(filename string) string {
	ext := normalizeExt(filename)
	if _, ok := rawExtensions[ext]; ok {
		return ext
	}
	return ""
}

func normalizeExt(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}
