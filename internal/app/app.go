package app

import (
	"context"

	"jobport/internal/common"
	"jobport/internal/policy"
)

type Logger interface {
	Info(msg string)
	Error(msg string)
}

func analyticsPayload(ctx context.Context, payload map[string]string) map[string]string {
	if payload == nil {
		payload = map[string]string{}
	}
	if requestID, ok := common.RequestIDFromContext(ctx); ok {
		payload["request_id"] = requestID
	}
	return payload
}

func denyError(d policy.Decision) error {
	switch d.Reason {
	case policy.ReasonInvalidStatus, policy.ReasonTerminalState:
		return common.NewValidationError(d.Reason, map[string]string{"status": d.Reason})
	default:
		return common.NewError(common.CodeForbidden, d.Reason, nil)
	}
}
