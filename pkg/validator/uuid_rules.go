package validator

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rtokit/pkg/rto"
)

// IsUUID validates the canonical 36-character form, rejecting the nil UUID.
// Length and hyphen positions are checked before parsing.
func IsUUID(opts ...rto.RuleOption) rto.Rule {
	return newRule("is_uuid", func(v any, _ rto.View) bool {
		switch id := v.(type) {
		case uuid.UUID:
			return id != uuid.Nil
		case string:
			if len(id) != 36 || strings.Count(id, "-") != 4 {
				return false
			}
			if id[8] != '-' || id[13] != '-' || id[18] != '-' || id[23] != '-' {
				return false
			}
			parsed, err := uuid.Parse(id)
			return err == nil && parsed != uuid.Nil
		default:
			return false
		}
	}, "'%s' must be a UUID.", opts)
}
