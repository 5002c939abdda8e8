package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"youthstream/palco/internal/access"
	"youthstream/palco/internal/common"
	"youthstream/palco/internal/constants"
	"youthstream/palco/internal/db/repositories"
	"youthstream/palco/internal/logging"
	"youthstream/palco/internal/metrics"
	"youthstream/palco/internal/models/dtos"
	gormModels "youthstream/palco/internal/models/gorm"
)

const catalogCacheTTL = 30 * time.Second

// StreamService serves the catalog and the per-stream access checks.
// Every read path funnels through access.Decide; the listing filter is
// presentation only and the detail path re-checks server-side.
type StreamService struct {
	streamRepo *repositories.StreamRepositoryGORM
	cache      common.CacheInterface
	metricsReg *metrics.MetricsRegistry
	accessLog  *AccessLogService
}

func NewStreamService(
	streamRepo *repositories.StreamRepositoryGORM,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
	accessLog *AccessLogService,
) *StreamService {
	return &StreamService{
		streamRepo: streamRepo,
		cache:      cache,
		metricsReg: metricsReg,
		accessLog:  accessLog,
	}
}

// Catalog returns the streams visible to the identity, catalog order
// preserved.
func (svc *StreamService) Catalog(ctx context.Context, id *access.Identity) ([]dtos.StreamResponse, error) {
	streams, err := svc.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	visible := make([]dtos.StreamResponse, 0, len(streams))
	for i := range streams {
		if access.Decide(id, StreamInfoOf(&streams[i]), now) == access.Allow {
			visible = append(visible, StreamToResponse(&streams[i]))
		}
	}
	return visible, nil
}

// GetStream re-runs the access decision for one stream. The decision
// outcome is returned alongside the stream so the handler can map it
// to 200/401/403 without re-implementing the rules.
func (svc *StreamService) GetStream(ctx context.Context, id *access.Identity, streamID string) (*dtos.StreamResponse, access.Decision, error) {
	stream, err := svc.streamRepo.GetByID(ctx, streamID)
	if err != nil {
		return nil, access.Forbidden, err
	}

	now := time.Now()
	decision, reason := access.DecideReason(id, StreamInfoOf(stream), now)

	svc.metricsReg.AccessDecisionsTotal.WithLabelValues(decision.String(), string(reason)).Inc()

	if decision != access.Allow {
		svc.accessLog.Record(id, streamID, decision, reason)
		logging.Info("Stream access denied",
			"stream_id", streamID,
			"decision", decision.String(),
			"reason", string(reason),
		)
		return nil, decision, nil
	}

	resp := StreamToResponse(stream)
	return &resp, access.Allow, nil
}

// CreateStream inserts a stream from an admin request. VIP streams get
// an access code when none was supplied.
func (svc *StreamService) CreateStream(ctx context.Context, req dtos.CreateStreamReq) (*dtos.StreamResponse, error) {
	if len(req.Title) < 2 {
		return nil, fmt.Errorf("%w: title must be at least 2 characters", ErrValidation)
	}
	if len(req.SourceURL) < 3 {
		return nil, fmt.Errorf("%w: source url is required", ErrValidation)
	}

	sourceType := constants.StreamSource(req.SourceType)
	if !sourceType.Valid() {
		return nil, fmt.Errorf("%w: unknown source type %q", ErrValidation, req.SourceType)
	}

	level := constants.StreamAccess(req.AccessLevel)
	if req.AccessLevel == "" {
		level = constants.AccessPublic
	}
	if !level.Valid() {
		return nil, fmt.Errorf("%w: unknown access level %q", ErrValidation, req.AccessLevel)
	}

	category := req.Category
	if category == "" {
		category = "Geral"
	}

	isLive := false
	if req.IsLive != nil {
		isLive = *req.IsLive
	}

	accessCode := req.AccessCode
	if accessCode == "" && level == constants.AccessVIP {
		accessCode = generateAccessCode()
	}

	stream := &gormModels.Stream{
		Title:       req.Title,
		Description: req.Description,
		SourceType:  sourceType,
		SourceURL:   req.SourceURL,
		Thumbnail:   req.Thumbnail,
		Category:    category,
		IsLive:      isLive,
		AccessLevel: level,
		AccessCode:  accessCode,
	}

	if err := svc.streamRepo.Create(ctx, stream); err != nil {
		return nil, err
	}

	svc.invalidateCatalog()
	svc.refreshLiveGauge(ctx)
	logging.Info("Stream created", "stream_id", stream.ID, "access_level", string(level))

	resp := StreamToResponse(stream)
	return &resp, nil
}

// UpdateStream applies a partial admin update.
func (svc *StreamService) UpdateStream(ctx context.Context, streamID string, req dtos.UpdateStreamReq) (*dtos.StreamResponse, error) {
	stream, err := svc.streamRepo.GetByID(ctx, streamID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		stream.Title = *req.Title
	}
	if req.Description != nil {
		stream.Description = *req.Description
	}
	if req.SourceURL != nil {
		stream.SourceURL = *req.SourceURL
	}
	if req.Thumbnail != nil {
		stream.Thumbnail = *req.Thumbnail
	}
	if req.Category != nil {
		stream.Category = *req.Category
	}
	if req.IsLive != nil {
		stream.IsLive = *req.IsLive
	}
	if req.AccessLevel != nil {
		level := constants.StreamAccess(*req.AccessLevel)
		if !level.Valid() {
			return nil, fmt.Errorf("%w: unknown access level %q", ErrValidation, *req.AccessLevel)
		}
		stream.AccessLevel = level
	}

	if err := svc.streamRepo.Update(ctx, stream); err != nil {
		return nil, err
	}

	svc.invalidateCatalog()
	svc.refreshLiveGauge(ctx)

	resp := StreamToResponse(stream)
	return &resp, nil
}

// DeleteStream removes a stream and its grants.
func (svc *StreamService) DeleteStream(ctx context.Context, streamID string) error {
	if err := svc.streamRepo.Delete(ctx, streamID); err != nil {
		return err
	}

	svc.invalidateCatalog()
	svc.refreshLiveGauge(ctx)
	logging.Info("Stream deleted", "stream_id", streamID)
	return nil
}

func (svc *StreamService) loadCatalog(ctx context.Context) ([]gormModels.Stream, error) {
	key := string(constants.CachePrefixCatalog) + "all"

	if val, found := svc.cache.Get(key); found {
		if streams, ok := val.([]gormModels.Stream); ok {
			svc.metricsReg.CacheHitsTotal.WithLabelValues(string(constants.CachePrefixCatalog)).Inc()
			return streams, nil
		}
		// A cache backend that round-trips through JSON loses the
		// concrete type; fall through to the database.
	}

	svc.metricsReg.CacheMissesTotal.WithLabelValues(string(constants.CachePrefixCatalog)).Inc()

	streams, err := svc.streamRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	svc.cache.Set(key, streams, catalogCacheTTL)
	return streams, nil
}

func (svc *StreamService) invalidateCatalog() {
	svc.cache.Delete(string(constants.CachePrefixCatalog) + "all")
}

func (svc *StreamService) refreshLiveGauge(ctx context.Context) {
	streams, err := svc.streamRepo.List(ctx)
	if err != nil {
		return
	}
	live := 0
	for i := range streams {
		if streams[i].IsLive {
			live++
		}
	}
	svc.metricsReg.StreamsLive.Set(float64(live))
}

// StreamToResponse converts a stream row to its API shape. The access
// code is deliberately absent; it only travels in private VIP links.
func StreamToResponse(s *gormModels.Stream) dtos.StreamResponse {
	return dtos.StreamResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		SourceType:  string(s.SourceType),
		SourceURL:   s.SourceURL,
		Thumbnail:   s.Thumbnail,
		Category:    s.Category,
		IsLive:      s.IsLive,
		AccessLevel: string(s.AccessLevel),
		Viewers:     s.Viewers,
		CreatedAt:   s.CreatedAt,
	}
}

const accessCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateAccessCode() string {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		return strings.ToUpper(fmt.Sprintf("%09X", time.Now().UnixNano())[:9])
	}
	var sb strings.Builder
	for _, b := range buf {
		sb.WriteByte(accessCodeAlphabet[int(b)%len(accessCodeAlphabet)])
	}
	return sb.String()
}
