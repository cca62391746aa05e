// Package config loads, normalizes, and validates zizutil CLI settings.
//
// Settings start from repository defaults, are overridden by an optional
// TOML file (~/.config/zizutil/config.toml unless --config says otherwise),
// and finally by ZIZUTIL_* environment variables. Unknown TOML keys are
// rejected so typos surface early.
//
// These settings only tune the CLI (log output, reconcile and menu flag
// defaults). The JSON files managed by the reconciler are handled by the
// jsonconfig package.
package config
