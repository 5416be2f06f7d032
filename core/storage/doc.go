// Package storage provides a thin facade over Azure Blob Storage.
//
// The container client is built from a SAS (shared-access-signature) URL, so
// the query string on that URL is the only credential involved; no account
// key, no interactive login. On top of the client, Store exposes the blob
// operations the application needs: upload, download, existence checks,
// deletion, and listing, plus helpers for moving blobs to and from the local
// filesystem.
//
// # Client Interface
//
// The Client interface abstracts the SDK container client, making it easier
// to mock blob interactions for unit testing (as seen in core/storage/mocks).
//
// # Store
//
// Store delegates each operation to a single backend call. There are no
// retries and no caching at this layer; cancellation and deadlines come from
// the caller's context. One deliberate asymmetry to be aware of: Delete
// reports success as a bare bool and discards the cause of any failure,
// while every other operation returns the underlying error.
//
// # Storage Paths
//
// GeneratePath derives date-partitioned storage keys from source URLs,
// shaped <prefix>/<year>/<month>/<day>/<md5-of-url>.jpg. The digest covers
// the URL string, not the fetched bytes.
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	store := storage.NewStore(client, cfg)
//	key, err := store.Upload(ctx, "test_folder/hello.txt", data)
package storage
