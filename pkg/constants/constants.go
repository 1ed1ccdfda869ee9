// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644
	UserOnlyPerms      = 0o700

	BaseDirName = ".doxa"
	LogDir      = "logs"
	LoggerName  = "doxa"

	DefaultConfigFileName = "config"
	DefaultConfigFileType = "json"

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	// RequestTimeout bounds a single workflow run, confirmation included.
	RequestTimeout    = 3 * time.Minute
	APIRequestTimeout = 30 * time.Second
	ShutdownTimeout   = 10 * time.Second

	DefaultNetwork    = "base"
	DefaultAPIAddress = "localhost:8080"
	DefaultRateLimit  = 120
	MetricsNamespace  = "doxa"

	// Environment variables
	EnvPrefix = "DOXA"

	// Config keys
	ConfigNetworkKey          = "network"
	ConfigRPCKey              = "rpc"
	ConfigFactoryKey          = "factory"
	ConfigFlagshipTokenKey    = "flagship-token"
	ConfigStorageURIKey       = "storage.uri"
	ConfigStorageGatewayKey   = "storage.gateway"
	ConfigStorageRegionKey    = "storage.region"
	ConfigStorageEndpointKey  = "storage.endpoint"
	ConfigStoragePathStyleKey = "storage.path-style"
	ConfigStorageAccessKeyKey = "storage.access-key"
	ConfigStorageSecretKeyKey = "storage.secret-key"
	ConfigStorageCredsKey     = "storage.credentials-file"
	ConfigAPIAddressKey       = "api.address"
	ConfigAPIRateLimitKey     = "api.rate-limit"
	ConfigAPIOriginsKey       = "api.allowed-origins"

	// Default local content directory under the base dir
	ContentDir = "content"
)
