package dynconfig

import "strconv"

// Keys for runtime-tunable parameters stored in config_parameters.
// Unset keys fall back to the registered default.
const (
	KeyClaimNotifyEnabled = "claim_notify_enabled"
	KeyPublicPageSize     = "public_page_size"
	KeyMaintenanceBanner  = "maintenance_banner"
)

var defaults = map[string]string{
	KeyClaimNotifyEnabled: "true",
	KeyPublicPageSize:     "50",
	KeyMaintenanceBanner:  "",
}

func DefaultFor(key string) (string, bool) {
	v, ok := defaults[key]
	return v, ok
}

func KnownKeys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	return keys
}

func AsBool(value string) bool {
	b, err := strconv.ParseBool(value)
	return err == nil && b
}

func AsInt(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
