package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/suchimauz/goodx-diary-web/internal/core/ports/in"
)

type (
	CacheHitType         string
	CacheHitResourceType string
)

const (
	CacheHitResourceTypeAll           CacheHitResourceType = "_all_"
	CacheHitResourceTypePatient       CacheHitResourceType = "patient"
	CacheHitResourceTypeBookingType   CacheHitResourceType = "booking_type"
	CacheHitResourceTypeBookingStatus CacheHitResourceType = "booking_status"
)

const (
	CacheHitTypeInvalidate CacheHitType = "invalidate"
)

var errMalformedMessage = errors.New("malformed cache message")

type CacheMessageRoutingKey struct {
	Source       string
	Receiver     string
	ResourceType CacheHitResourceType
	ResourceID   string
	CacheHitType CacheHitType
}

// CacheMessage - тело события, 0 означает "любой"
type CacheMessage struct {
	EntityUID int64 `json:"entity_uid"`
	DiaryUID  int64 `json:"diary_uid"`
}

// Пример routingKey:
// goodx.goodx-diary-web.patient.42.invalidate
// goodx.goodx-diary-web.booking_type.7.invalidate
// goodx.goodx-diary-web._all_._all_.invalidate
func parseCacheMessageRoutingKey(routingKey string) (CacheMessageRoutingKey, error) {
	parts := strings.Split(routingKey, ".")

	if len(parts) < 5 {
		return CacheMessageRoutingKey{}, fmt.Errorf("%w: invalid routing key: %s", errMalformedMessage, routingKey)
	}

	return CacheMessageRoutingKey{
		Source:       parts[0],
		Receiver:     parts[1],
		ResourceType: CacheHitResourceType(parts[2]),
		ResourceID:   parts[3],
		CacheHitType: CacheHitType(parts[4]),
	}, nil
}

func parseCacheMessage(body []byte) (CacheMessage, error) {
	var msg CacheMessage
	if len(body) == 0 {
		return msg, nil
	}
	if err := json.Unmarshal(body, &msg); err != nil {
		return msg, fmt.Errorf("%w: %v", errMalformedMessage, err)
	}
	return msg, nil
}

func handleMessage(ctx context.Context, useCase in.ReferenceCacheUseCase, routingKey string, body []byte) error {
	key, err := parseCacheMessageRoutingKey(routingKey)
	if err != nil {
		return err
	}

	// Кэш только читает справочники, события store не нужны
	if key.CacheHitType != CacheHitTypeInvalidate {
		return nil
	}

	if key.ResourceType == CacheHitResourceTypeAll {
		useCase.InvalidateAllCache(ctx)
		return nil
	}

	msg, err := parseCacheMessage(body)
	if err != nil {
		return err
	}

	switch key.ResourceType {
	case CacheHitResourceTypePatient:
		useCase.InvalidatePatientsCache(ctx, msg.EntityUID)
	case CacheHitResourceTypeBookingType:
		useCase.InvalidateBookingTypesCache(ctx, msg.EntityUID, msg.DiaryUID)
	case CacheHitResourceTypeBookingStatus:
		useCase.InvalidateBookingStatusesCache(ctx, msg.EntityUID, msg.DiaryUID)
	default:
		return fmt.Errorf("%w: unknown resource type: %s", errMalformedMessage, key.ResourceType)
	}

	return nil
}
