// Package logger builds the zap logger used across UCS.
//
// Level "debug" selects zap's development config, anything else the
// production one. Format is "json" or "console".
//
// Request scoped logs carry the ray id set by the rayid middleware:
//
//	l := logger.WithRayID(log, c)
//	l.Error("Upload failed", zap.String("key", key), zap.Error(err))
package logger
