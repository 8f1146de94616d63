package domain

import "errors"

// ErrInvalidUploadRequest is an error thrown when session parameters are invalid
var ErrInvalidUploadRequest = errors.New("invalid upload request")

// ErrUnknownSession is an error thrown when a session is missing or no longer active
var ErrUnknownSession = errors.New("unknown session")

// ErrChunkIndexOutOfRange is an error thrown when a chunk index exceeds the declared count
var ErrChunkIndexOutOfRange = errors.New("chunk index out of range")

// ErrChunkDigestMismatch is an error thrown when chunk bytes disagree with the claimed digest
var ErrChunkDigestMismatch = errors.New("chunk digest mismatch")

// ErrChunkNotFound is an error thrown when a chunk row is absent
var ErrChunkNotFound = errors.New("chunk not found")

// ErrIncompleteUpload is an error thrown when finalize runs before every chunk arrived
var ErrIncompleteUpload = errors.New("incomplete upload")

// ErrSizeMismatch is an error thrown when assembled bytes disagree with the declared size
var ErrSizeMismatch = errors.New("size mismatch")

// ErrSessionExpired is an error thrown when a session's expiry has passed
var ErrSessionExpired = errors.New("session expired")

// ErrFinalizeInProgress is an error thrown when a concurrent finalize already claimed the session
var ErrFinalizeInProgress = errors.New("finalize already in progress")

// ErrAssetNotFound is an error thrown when an asset is missing or deleted
var ErrAssetNotFound = errors.New("asset not found")

// ErrAssetInUse is an error thrown when deleting an asset that still has usages
var ErrAssetInUse = errors.New("asset in use")

// ErrFolderNotFound is an error thrown when a folder is missing or deleted
var ErrFolderNotFound = errors.New("folder not found")

// ErrFolderNotEmpty is an error thrown when deleting a non-empty folder without a strategy
var ErrFolderNotEmpty = errors.New("folder not empty")

// ErrParentNotFound is an error thrown when a parent folder does not resolve
var ErrParentNotFound = errors.New("parent folder not found")

// ErrCyclicMove is an error thrown when a move would make a folder its own descendant
var ErrCyclicMove = errors.New("cyclic move rejected")

// ErrFolderPathTaken is an error thrown when a folder path is already occupied
var ErrFolderPathTaken = errors.New("folder path already exists")

// ErrStorageWriteFailure is an error thrown when the blob store fails a write
var ErrStorageWriteFailure = errors.New("storage write failure")
