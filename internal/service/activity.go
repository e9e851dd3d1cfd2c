package service

import (
	"context"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/activity"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
)

// ActivityService exposes the append-only audit trail.
type ActivityService interface {
	ListActivity(ctx context.Context, filter *dto.ActivityFilter) (*dto.ListActivityResponse, error)
}

type activityService struct {
	ServiceParams
}

func NewActivityService(params ServiceParams) ActivityService {
	return &activityService{ServiceParams: params}
}

func (s *activityService) ListActivity(ctx context.Context, filter *dto.ActivityFilter) (*dto.ListActivityResponse, error) {
	if filter == nil {
		filter = &dto.ActivityFilter{QueryFilter: *types.NewDefaultQueryFilter()}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var entries []*activity.Activity
	var err error
	switch {
	case filter.EntityType != nil && filter.EntityID != nil:
		entries, err = s.ActivityRepo.ListByEntity(ctx, *filter.EntityType, *filter.EntityID, &filter.QueryFilter)
	case filter.UserID != nil:
		entries, err = s.ActivityRepo.ListByUser(ctx, *filter.UserID, &filter.QueryFilter)
	default:
		entries, err = s.ActivityRepo.List(ctx, &filter.QueryFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.ActivityRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(entries, func(a *activity.Activity, _ int) *dto.ActivityResponse {
		return dto.NewActivityResponse(a)
	})
	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

// recordActivity appends an audit record for a mutation. Failures are
// logged and swallowed so auditing never blocks the write it describes.
func recordActivity(ctx context.Context, params ServiceParams, action, entityType string, entityID, details string) {
	entry := &activity.Activity{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ACTIVITY),
		UserID:     types.GetUserID(ctx),
		Action:     action,
		EntityType: entityType,
		Details:    details,
		BaseModel:  types.GetDefaultBaseModel(ctx),
	}
	if entityID != "" {
		entry.EntityID = &entityID
	}

	if err := params.ActivityRepo.Create(ctx, entry); err != nil {
		params.Logger.Errorw("failed to record activity",
			"action", action,
			"entity_type", entityType,
			"entity_id", entityID,
			"error", err)
	}
}
