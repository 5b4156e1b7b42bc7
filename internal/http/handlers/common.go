package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"jobport/internal/common"
	"jobport/internal/http/middleware"
	"jobport/internal/policy"
)

var errUnauthorized = common.NewError(common.CodeUnauthorized, "unauthorized", nil)

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return common.NewValidationError("request body is required", nil)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return common.NewValidationError("invalid json body", nil)
	}
	return nil
}

// idFromPath extracts the id segment between prefix and suffix, e.g. the
// application id in /applications/{id}/status.
func idFromPath(path, prefix, suffix string) (common.UUID, error) {
	raw := strings.TrimPrefix(path, prefix)
	if suffix != "" {
		raw = strings.TrimSuffix(raw, suffix)
	}
	raw = strings.Trim(raw, "/")
	if raw == "" || strings.Contains(raw, "/") {
		return "", common.NewValidationError("invalid id", map[string]string{"id": "id is required"})
	}
	id, err := common.ParseUUID(raw)
	if err != nil {
		return "", common.NewValidationError("invalid id", map[string]string{"id": "id must be a valid uuid"})
	}
	return id, nil
}

func principalFrom(r *http.Request) (policy.Principal, error) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		return policy.Principal{}, errUnauthorized
	}
	return principal, nil
}
