// Package imagestore resolves an image src string to a decoded bitmap,
// the "image store" spec.md §6.3 treats as an external collaborator.
// Grounded on the teacher's pkg/images/loader.go (data-URI decoding,
// pluggable fetcher), extended with the ImageStore interface contract
// and ImageState result type spec.md §6.3 specifies.
package imagestore

import "image"

// StateKind discriminates ImageState's variant, spec.md §6.3's
// Fetched|Svg|NetworkError|DecodeError sum type.
type StateKind uint8

const (
	StateFetched StateKind = iota
	StateSvg
	StateNetworkError
	StateDecodeError
)

// ImageState is the result of resolving one image src.
type ImageState struct {
	Kind   StateKind
	Bitmap image.Image // set when Kind == StateFetched
	Svg    []byte      // set when Kind == StateSvg: raw SVG document bytes
	Err    error       // set for the two error kinds
}

// ImageStore resolves an image src (URL, file path, or data URI) to its
// decoded contents. The core never initiates network I/O itself
// (spec.md §6.3); implementations that need network access must
// pre-populate their cache or fetch synchronously inside Get.
type ImageStore interface {
	Get(src string) ImageState
}
