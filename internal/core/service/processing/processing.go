package processing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"media-vault/internal/config"
	"media-vault/internal/core/domain"
	"media-vault/internal/core/port"
)

type processingService struct {
	uow     port.UnitOfWork
	storage port.BlobStorage
	cfg     config.ProcessingConfig
	logger  *slog.Logger
}

// NewProcessingService creates the post-ingest pipeline service
func NewProcessingService(uow port.UnitOfWork, storage port.BlobStorage, cfg config.ProcessingConfig, logger *slog.Logger) port.ProcessingService {
	return &processingService{
		uow:     uow,
		storage: storage,
		cfg:     cfg,
		logger:  logger,
	}
}

// HandleMessage decodes an ingest event from the broker and runs the pipeline
func (p *processingService) HandleMessage(ctx context.Context, data []byte) error {
	var event domain.AssetIngestedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("could not decode ingest event: %w", err)
	}
	return p.Process(ctx, event)
}

// Process runs every pipeline step against the asset. Each step records its
// own outcome; a failed step never rolls back earlier ones and never stops
// the rest of the pipeline. The asset stays servable at original resolution
// throughout.
func (p *processingService) Process(ctx context.Context, event domain.AssetIngestedEvent) error {

	asset, err := p.uow.AssetRepo().FindByID(ctx, event.AssetID)
	if err != nil {
		if errors.Is(err, domain.ErrAssetNotFound) {
			// deleted between ingest and processing; nothing to redeliver
			p.logger.Warn("skipping processing for missing asset", "asset_id", event.AssetID)
			return nil
		}
		return err
	}

	steps := asset.Steps
	if steps == nil {
		steps = make(map[domain.ProcessingStep]domain.StepResult)
	}

	for _, step := range []struct {
		name domain.ProcessingStep
		run  func(context.Context, *domain.Asset) (domain.ProcessingStepState, error)
	}{
		{domain.StepMetadata, p.runMetadata},
		{domain.StepThumbnail, p.runThumbnail},
		{domain.StepResponsive, p.runResponsive},
		{domain.StepOptimize, p.runOptimize},
		{domain.StepCDN, p.runCDN},
	} {
		if steps[step.name].State == domain.StepStateCompleted {
			continue // redelivered event; don't redo finished work
		}
		state, stepErr := step.run(ctx, asset)
		result := domain.StepResult{State: state}
		if stepErr != nil {
			result = domain.StepResult{State: domain.StepStateFailed, Error: stepErr.Error()}
			p.logger.Error("processing step failed", "asset_id", asset.ID, "step", step.name, "error", stepErr)
		}
		steps[step.name] = result
	}

	summary := domain.AssetProcessingCompleted
	for _, result := range steps {
		if result.State == domain.StepStateFailed {
			summary = domain.AssetProcessingPartial
			break
		}
	}

	return p.uow.AssetRepo().UpdateSteps(ctx, asset.ID, steps, summary)
}

func isImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}
