// Package storage abstracts the blob store product images land in.
// Any service that accepts bytes plus a content type and hands back a
// stable URL satisfies the contract.
package storage

import (
	"context"
	"io"
)

type ObjectStore interface {
	Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error)
}
