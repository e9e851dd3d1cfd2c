package dto

import (
	"github.com/bizledger/bizledger/internal/domain/activity"
	"github.com/bizledger/bizledger/internal/types"
)

type ActivityResponse struct {
	*activity.Activity
}

type ListActivityResponse = types.ListResponse[*ActivityResponse]

func NewActivityResponse(a *activity.Activity) *ActivityResponse {
	if a == nil {
		return nil
	}
	return &ActivityResponse{Activity: a}
}

type ActivityFilter struct {
	types.QueryFilter
	EntityType *string `json:"entity_type,omitempty" form:"entity_type"`
	EntityID   *string `json:"entity_id,omitempty" form:"entity_id"`
	UserID     *string `json:"user_id,omitempty" form:"user_id"`
}
