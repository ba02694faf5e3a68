// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// validate checks that the final merged [StructuredConfig] can start the
// console.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RetryCount < 0 {
		return fmt.Errorf("%w: negative retry count", ErrInvalidAdapterConfigs)
	}

	if cfg.Storage.Cache.DSN == "" || cfg.Storage.Cache.MaxAge <= 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.CachePruneInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.Locale != "" {
		if _, err := language.Parse(cfg.App.Locale); err != nil {
			return fmt.Errorf("%w: locale %q: %w", ErrInvalidAppConfigs, cfg.App.Locale, err)
		}
	}

	return nil
}
