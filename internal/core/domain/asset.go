package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssetProcessingStatus summarizes the post-ingest processing pipeline
type AssetProcessingStatus string

const (
	AssetProcessingPending   AssetProcessingStatus = "pending"
	AssetProcessingCompleted AssetProcessingStatus = "completed"
	AssetProcessingPartial   AssetProcessingStatus = "partial"
)

// ProcessingStepState is the outcome of a single pipeline step
type ProcessingStepState string

const (
	StepStatePending   ProcessingStepState = "pending"
	StepStateCompleted ProcessingStepState = "completed"
	StepStateFailed    ProcessingStepState = "failed"
	StepStateSkipped   ProcessingStepState = "skipped"
)

// ProcessingStep identifies a pipeline step
type ProcessingStep string

const (
	StepThumbnail  ProcessingStep = "thumbnail"
	StepResponsive ProcessingStep = "responsive"
	StepMetadata   ProcessingStep = "metadata"
	StepOptimize   ProcessingStep = "optimize"
	StepCDN        ProcessingStep = "cdn"
)

// StepResult records one step's state and, when failed, the reason
type StepResult struct {
	State ProcessingStepState `json:"state"`
	Error string              `json:"error,omitempty"`
}

// Asset is a finalized, content-addressed file. ChecksumSHA256 is the dedup
// key: it is unique among non-deleted assets.
type Asset struct {
	ID             uuid.UUID
	Filename       string
	OriginalName   string
	MimeType       string
	Extension      string
	SizeBytes      int64
	StorageKey     string
	ChecksumSHA256 string
	Width          *int
	Height         *int
	Duration       *float64
	FolderID       *uuid.UUID
	Processing     AssetProcessingStatus
	Steps          map[ProcessingStep]StepResult
	Version        int
	ParentAssetID  *uuid.UUID
	IsPublic       bool
	OwnerID        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// AssetMetadata carries the caller-declared fields handed to the registry
// alongside assembled content. Content defines identity; these are advisory.
type AssetMetadata struct {
	Filename string
	MimeType string
	FolderID *uuid.UUID
	OwnerID  string
	IsPublic bool
}
