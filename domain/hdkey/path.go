package hdkey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	privatePathRoot = "m"
	publicPathRoot  = "M"
)

var hardenedMarkers = []string{"'", "h", "H"}

type path struct {
	isPrivate bool
	indexes   []uint32
}

// parsePath parses paths of the form m/44'/0'/0'/0/1. A path rooted at "m"
// yields a private key and a path rooted at "M" a public one. Hardened
// elements are marked with ', h or H.
func parsePath(pathString string) (*path, error) {
	parts := strings.Split(pathString, "/")

	var isPrivate bool
	switch parts[0] {
	case privatePathRoot:
		isPrivate = true
	case publicPathRoot:
		isPrivate = false
	default:
		str := fmt.Sprintf("path %q must start with %s or %s", pathString, privatePathRoot, publicPathRoot)
		return nil, makeError(ErrInvalidPath, str)
	}

	indexes := make([]uint32, len(parts)-1)
	for i, part := range parts[1:] {
		index, err := parseIndex(part)
		if err != nil {
			return nil, err
		}
		indexes[i] = index
	}

	return &path{
		isPrivate: isPrivate,
		indexes:   indexes,
	}, nil
}

func parseIndex(part string) (uint32, error) {
	hardened := false
	for _, marker := range hardenedMarkers {
		if strings.HasSuffix(part, marker) {
			hardened = true
			part = strings.TrimSuffix(part, marker)
			break
		}
	}

	value, err := strconv.ParseUint(part, 10, 32)
	if err != nil || value >= HardenedKeyStart {
		str := fmt.Sprintf("invalid path element %q: indexes must be in [0, %d]", part, HardenedKeyStart-1)
		return 0, makeError(ErrInvalidPath, str)
	}

	index := uint32(value)
	if hardened {
		index |= HardenedKeyStart
	}
	return index, nil
}

// DerivePath derives the descendant of the key along the given path. A path
// rooted at "m" requires a private key and returns one; a path rooted at "M"
// returns the public projection of the descendant.
func (k *ExtendedKey) DerivePath(pathString string) (*ExtendedKey, error) {
	parsedPath, err := parsePath(pathString)
	if err != nil {
		return nil, err
	}
	if parsedPath.isPrivate && !k.IsPrivate() {
		str := fmt.Sprintf("path %q requires a private key", pathString)
		return nil, makeError(ErrNotAPrivateKey, str)
	}

	descendant, err := k.DeriveIndexes(parsedPath.indexes)
	if err != nil {
		return nil, err
	}
	if !parsedPath.isPrivate {
		return descendant.Neuter()
	}
	return descendant, nil
}

// DeriveIndexes derives the descendant of the key by deriving each index in
// turn. An empty list returns the key itself.
func (k *ExtendedKey) DeriveIndexes(indexes []uint32) (*ExtendedKey, error) {
	descendant := k
	for i, index := range indexes {
		var err error
		descendant, err = descendant.Derive(index)
		if err != nil {
			return nil, errors.Wrapf(err, "error deriving path element %d", i)
		}
	}
	return descendant, nil
}
