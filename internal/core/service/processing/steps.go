package processing

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"

	_ "image/gif"
	_ "image/jpeg"

	"media-vault/internal/core/domain"
)

// runMetadata probes the stored object's header for intrinsic dimensions.
// Only the leading bytes are fetched; full decoding is left to the
// derivative steps.
func (p *processingService) runMetadata(ctx context.Context, asset *domain.Asset) (domain.ProcessingStepState, error) {
	if !isImage(asset.MimeType) {
		return domain.StepStateSkipped, nil
	}

	header, err := p.storage.ReadHeader(ctx, asset.StorageKey, p.cfg.HeaderProbeSize)
	if err != nil {
		return domain.StepStateFailed, fmt.Errorf("could not read header: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(header))
	if err != nil {
		return domain.StepStateFailed, fmt.Errorf("could not decode image config: %w", err)
	}

	width, height := cfg.Width, cfg.Height
	if err := p.uow.AssetRepo().UpdateDimensions(ctx, asset.ID, &width, &height, nil); err != nil {
		return domain.StepStateFailed, err
	}
	return domain.StepStateCompleted, nil
}

func (p *processingService) runThumbnail(ctx context.Context, asset *domain.Asset) (domain.ProcessingStepState, error) {
	if !isImage(asset.MimeType) {
		return domain.StepStateSkipped, nil
	}
	key := fmt.Sprintf("derived/%s/thumb.png", asset.ID)
	if err := p.writeResized(ctx, asset, key, p.cfg.ThumbnailMaxDim); err != nil {
		return domain.StepStateFailed, err
	}
	return domain.StepStateCompleted, nil
}

func (p *processingService) runResponsive(ctx context.Context, asset *domain.Asset) (domain.ProcessingStepState, error) {
	if !isImage(asset.MimeType) {
		return domain.StepStateSkipped, nil
	}
	for _, dim := range p.cfg.ResponsiveDims {
		key := fmt.Sprintf("derived/%s/w%d.png", asset.ID, dim)
		if err := p.writeResized(ctx, asset, key, dim); err != nil {
			return domain.StepStateFailed, fmt.Errorf("size %d: %w", dim, err)
		}
	}
	return domain.StepStateCompleted, nil
}

func (p *processingService) runOptimize(ctx context.Context, asset *domain.Asset) (domain.ProcessingStepState, error) {
	if !p.cfg.OptimizeEnabled || !isImage(asset.MimeType) {
		return domain.StepStateSkipped, nil
	}

	img, err := p.decodeOriginal(ctx, asset)
	if err != nil {
		return domain.StepStateFailed, err
	}

	var buf bytes.Buffer
	encoder := png.Encoder{CompressionLevel: png.BestCompression}
	if err := encoder.Encode(&buf, img); err != nil {
		return domain.StepStateFailed, fmt.Errorf("could not re-encode: %w", err)
	}

	key := fmt.Sprintf("derived/%s/optimized.png", asset.ID)
	if err := p.storage.Write(ctx, key, &buf, int64(buf.Len()), "image/png"); err != nil {
		return domain.StepStateFailed, fmt.Errorf("%w: %w", domain.ErrStorageWriteFailure, err)
	}
	return domain.StepStateCompleted, nil
}

// runCDN replicates the original bytes under the CDN prefix
func (p *processingService) runCDN(ctx context.Context, asset *domain.Asset) (domain.ProcessingStepState, error) {
	if !p.cfg.CDNEnabled {
		return domain.StepStateSkipped, nil
	}

	rc, err := p.storage.Read(ctx, asset.StorageKey)
	if err != nil {
		return domain.StepStateFailed, err
	}
	defer rc.Close()

	key := fmt.Sprintf("%s/%s", p.cfg.CDNPrefix, asset.StorageKey)
	if err := p.storage.Write(ctx, key, rc, asset.SizeBytes, asset.MimeType); err != nil {
		return domain.StepStateFailed, fmt.Errorf("%w: %w", domain.ErrStorageWriteFailure, err)
	}
	return domain.StepStateCompleted, nil
}

func (p *processingService) decodeOriginal(ctx context.Context, asset *domain.Asset) (image.Image, error) {
	rc, err := p.storage.Read(ctx, asset.StorageKey)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("could not read object: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}
	return img, nil
}

func (p *processingService) writeResized(ctx context.Context, asset *domain.Asset, key string, maxDim int) error {
	img, err := p.decodeOriginal(ctx, asset)
	if err != nil {
		return err
	}

	resized := downsample(img, maxDim)

	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return fmt.Errorf("could not encode: %w", err)
	}
	if err := p.storage.Write(ctx, key, &buf, int64(buf.Len()), "image/png"); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorageWriteFailure, err)
	}
	return nil
}

// downsample scales the image so its longest side is at most maxDim,
// preserving aspect ratio. Nearest-neighbor is enough for derivative
// previews; originals are always kept.
func downsample(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	outW, outH := maxDim, maxDim
	if w > h {
		outH = h * maxDim / w
	} else {
		outW = w * maxDim / h
	}
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}

	out := image.NewRGBA(image.Rect(0, 0, outW, outH))
	for y := 0; y < outH; y++ {
		srcY := bounds.Min.Y + y*h/outH
		for x := 0; x < outW; x++ {
			srcX := bounds.Min.X + x*w/outW
			out.Set(x, y, img.At(srcX, srcY))
		}
	}
	return out
}
